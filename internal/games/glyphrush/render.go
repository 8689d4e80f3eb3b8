package glyphrush

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/glyph-rush/internal/core"
	"github.com/vovakirdan/glyph-rush/internal/round"
)

// Screen layout. Each grid cell is cellW columns by cellH rows with the
// glyph in the second column, leaving room for the cursor brackets.
const (
	cellW    = 4
	cellH    = 2
	hudY     = 0
	targetsY = 2
	barY     = 4
	gridTop  = 6
)

// Visual characters for rendering
const (
	BarFull   = '█'
	BarEmpty  = '░'
	CursorL   = '['
	CursorR   = ']'
	MarkGlyph = '✕'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.machine == nil {
		drawMessageBox(dst, core.ColorBrightRed, "Glyph Rush", "", fmt.Sprintf("Configuration error: %v", g.err))
		return
	}
	if !g.started {
		g.drawTitle(dst)
		return
	}

	s := g.machine.Snapshot()
	g.drawHUD(dst, s)
	g.drawTargets(dst)
	g.drawTimerBar(dst)
	g.drawGrid(dst)
	g.drawFooter(dst)

	if g.board.victory {
		dst.Dim()
		drawMessageBox(dst, core.ColorBrightYellow,
			"Congratulations!",
			"",
			fmt.Sprintf("Every %s glyph is unlocked.", g.set.Name),
			fmt.Sprintf("Final score %d after %d rounds.", s.Score, s.Rounds),
			"",
			"Press R to work another shift",
		)
	}
}

func (g *Game) drawTitle(dst *core.Screen) {
	lines := []string{
		strings.ToUpper(g.title),
		"",
		"Pick every cell that shows one of the target glyphs",
		"before the timer runs out. Clean rounds earn a bonus,",
		"empty-handed rounds cost a point. Each point unlocks",
		fmt.Sprintf("another of the %d %s glyphs.", g.set.Count(), g.set.Name),
		"",
		"Arrows move   Space/Enter or click pick",
		"[ faster   ] slower   Q quit",
		"",
		"Press Enter to start",
	}
	color := core.ColorCyan
	if g.err != nil {
		lines = append(lines, "", fmt.Sprintf("Error: %v", g.err))
		color = core.ColorBrightRed
	}
	drawMessageBox(dst, color, lines...)
}

func (g *Game) drawHUD(dst *core.Screen, s round.GameSession) {
	dst.DrawTextColored(2, hudY, g.title, core.ColorCyan)

	scoreColor := core.ColorBrightWhite
	if g.board.pulsing() {
		if g.board.pulseDir > 0 {
			scoreColor = core.ColorBrightGreen
		} else {
			scoreColor = core.ColorBrightRed
		}
	}
	score := fmt.Sprintf("Score: %d", g.board.score)
	x := 2 + utf8.RuneCountInString(g.title) + 3
	dst.DrawTextColored(x, hudY, score, scoreColor)
	x += utf8.RuneCountInString(score) + 3

	unlocked := fmt.Sprintf("Unlocked: %.1f%%", g.board.unlocked*100)
	dst.DrawTextColored(x, hudY, unlocked, core.ColorYellow)

	right := fmt.Sprintf("Round %d  %.2gx", s.Rounds, s.Timescale)
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(right)-2, hudY, right, core.ColorGray)
}

func (g *Game) drawTargets(dst *core.Screen) {
	var sb strings.Builder
	for i, t := range g.board.targets {
		if i > 0 {
			sb.WriteString("   ")
		}
		sb.WriteRune(rune(t))
	}
	label := "Find: "
	text := sb.String()
	total := utf8.RuneCountInString(label) + utf8.RuneCountInString(text)
	x := (dst.Width() - total) / 2
	dst.DrawTextColored(x, targetsY, label, core.ColorGray)
	dst.DrawTextColored(x+utf8.RuneCountInString(label), targetsY, text, core.ColorBrightYellow)
}

func (g *Game) drawTimerBar(dst *core.Screen) {
	width := core.Max(dst.Width()-8, 10)
	x := (dst.Width() - width) / 2
	filled := int(g.board.barFraction()*float64(width) + 0.5)

	color := core.ColorGreen
	switch {
	case g.board.wrapActive:
		color = core.ColorCyan
	case g.board.swiping():
		color = core.ColorOrange
	}

	dst.DrawHLine(x, barY, filled, BarFull, color)
	dst.DrawHLine(x+filled, barY, width-filled, BarEmpty, core.ColorGray)
}

func (g *Game) drawGrid(dst *core.Screen) {
	b := g.board
	for i, c := range b.cells {
		row, col := i/max(b.cols, 1), i%max(b.cols, 1)
		p := g.cellCenter(row, col, b.cols)

		r, color := rune(c.Glyph), core.ColorWhite
		switch c.Status {
		case round.PickCorrect:
			color = core.ColorBrightGreen
		case round.PickIncorrect:
			r, color = MarkGlyph, core.ColorRed
		default:
			if b.wrapActive && c.IsTarget {
				color = core.ColorYellow
			}
		}
		if b.flashing(i) {
			color = core.ColorBrightWhite
		}
		dst.SetColored(p.X, p.Y, r, color)

		if row == g.cursorRow && col == g.cursorCol {
			dst.SetColored(p.X-1, p.Y, CursorL, core.ColorCyan)
			dst.SetColored(p.X+1, p.Y, CursorR, core.ColorCyan)
		}
	}
}

func (g *Game) drawFooter(dst *core.Screen) {
	h := dst.Height()
	dst.DrawTextCentered(h-2, hintText(g.board.remaining, g.board.available), core.ColorWhite)
	dst.DrawTextCentered(h-1, "arrows move  space pick  [ ] timescale  q quit", core.ColorGray)
}

// hintText describes how many matches are left this round.
func hintText(remaining, available int) string {
	switch {
	case available == 0:
		return "No matches this round."
	case remaining == 0:
		return "All matches found!"
	case remaining == 1:
		return "1 match remaining."
	default:
		return fmt.Sprintf("%d matches remaining.", remaining)
	}
}

// gridOrigin returns the top-left screen position of the grid, centered
// horizontally.
func (g *Game) gridOrigin(cols int) core.Point {
	w := g.runtime.ScreenW
	return core.Point{X: core.Max((w-cols*cellW)/2, 0), Y: gridTop}
}

// cellCenter returns where the glyph of a cell is drawn.
func (g *Game) cellCenter(row, col, cols int) core.Point {
	o := g.gridOrigin(cols)
	return core.Point{X: o.X + col*cellW + 1, Y: o.Y + row*cellH}
}

// hitTest maps a screen position to a cell index.
func (g *Game) hitTest(p core.Point, rows, cols int) (int, bool) {
	o := g.gridOrigin(cols)
	area := core.NewRect(o.X, o.Y, cols*cellW, rows*cellH)
	if !area.Contains(p.X, p.Y) {
		return 0, false
	}
	row := (p.Y - o.Y) / cellH
	col := (p.X - o.X) / cellW
	return row*cols + col, true
}

// drawMessageBox draws lines centered in a bordered box in the middle of the screen.
func drawMessageBox(dst *core.Screen, color core.Color, lines ...string) {
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, utf8.RuneCountInString(l))
	}
	boxW := inner + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		dst.DrawHLine(box.X, y, boxW, ' ', core.ColorDefault)
	}
	dst.DrawBox(box, color)

	for i, l := range lines {
		x := box.X + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawTextColored(x, box.Y+1+i, l, core.ColorBrightWhite)
	}
}
