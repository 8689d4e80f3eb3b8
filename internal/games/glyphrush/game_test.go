package glyphrush

import (
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/glyph-rush/internal/core"
	"github.com/vovakirdan/glyph-rush/internal/registry"
	"github.com/vovakirdan/glyph-rush/internal/round"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func startedGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(42))
	step(g, core.ActionConfirm)
	if !g.State().Started {
		t.Fatalf("game did not start: %v", g.Err())
	}
	return g
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{GameID, GameIDLinearB} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
	}

	g, err := registry.Create(GameIDLinearB)
	if err != nil {
		t.Fatal(err)
	}
	g.Reset(testConfig(1))
	if got := g.(*Game).set.Count(); got != 88 {
		t.Errorf("Linear B variant has %d glyphs, expected 88", got)
	}
}

func TestTitleScreenUntilConfirm(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	for i := 0; i < 10; i++ {
		res := step(g, core.ActionUp)
		if res.State.Started || !res.State.Paused {
			t.Fatal("game should wait on the title screen")
		}
	}

	res := step(g, core.ActionConfirm)
	if !res.State.Started || res.State.Paused {
		t.Fatal("Confirm should start the game")
	}
	if res.State.Rounds != 1 || res.State.Score != 0 {
		t.Errorf("rounds=%d score=%d, expected first round at score 0", res.State.Rounds, res.State.Score)
	}
	if res.State.Progress <= 0 || res.State.Progress >= 0.02 {
		t.Errorf("Progress = %v, expected about 1%%", res.State.Progress)
	}
}

func TestClickStartsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	in := core.NewInputFrame()
	in.Click(0, 0)
	if res := g.Step(in); !res.State.Started {
		t.Error("a click on the title screen should start the game")
	}
}

func TestConfirmPicksUnderCursor(t *testing.T) {
	g := startedGame(t)

	// The first board is a single cell drawn from four unlocked glyphs, all targets
	res := step(g, core.ActionConfirm)
	if res.State.Score != 1 {
		t.Fatalf("score = %d, expected 1 after picking the only match", res.State.Score)
	}
	snap := g.Snapshot()
	if snap.State != round.StateEndingEarly.String() {
		t.Errorf("state = %s, expected the round to end early", snap.State)
	}
	if snap.CellData[2] != int(round.PickCorrect) {
		t.Errorf("cell status = %d, expected correct", snap.CellData[2])
	}
}

func TestCursorClampsToGrid(t *testing.T) {
	g := startedGame(t)

	step(g, core.ActionRight, core.ActionDown)
	snap := g.Snapshot()
	if snap.CursorRow != 0 || snap.CursorCol != 0 {
		t.Errorf("cursor = (%d, %d), expected to stay inside a 1x1 grid", snap.CursorRow, snap.CursorCol)
	}

	step(g, core.ActionLeft, core.ActionUp)
	snap = g.Snapshot()
	if snap.CursorRow != 0 || snap.CursorCol != 0 {
		t.Errorf("cursor = (%d, %d), expected (0, 0)", snap.CursorRow, snap.CursorCol)
	}
}

func TestClickHitTest(t *testing.T) {
	g := startedGame(t)

	miss := core.NewInputFrame()
	miss.Click(0, 0)
	if res := g.Step(miss); res.State.Score != 0 {
		t.Fatal("a click outside the grid should not pick")
	}

	p := g.cellCenter(0, 0, 1)
	hit := core.NewInputFrame()
	hit.Click(p.X, p.Y)
	if res := g.Step(hit); res.State.Score != 1 {
		t.Errorf("click on the cell should pick it, score = %d", res.State.Score)
	}
	if g.board.lastPick != p {
		t.Errorf("pick position = %v, expected %v", g.board.lastPick, p)
	}
}

func TestHitTestCells(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	rows, cols := 3, 4
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := g.cellCenter(r, c, cols)
			idx, ok := g.hitTest(p, rows, cols)
			if !ok || idx != r*cols+c {
				t.Errorf("hitTest(center of %d,%d) = %d, %v", r, c, idx, ok)
			}
		}
	}

	o := g.gridOrigin(cols)
	if _, ok := g.hitTest(core.Point{X: o.X + cols*cellW, Y: o.Y}, rows, cols); ok {
		t.Error("point right of the grid should miss")
	}
	if _, ok := g.hitTest(core.Point{X: o.X, Y: o.Y + rows*cellH}, rows, cols); ok {
		t.Error("point below the grid should miss")
	}
}

func TestTimescaleKeys(t *testing.T) {
	g := startedGame(t)

	res := step(g, core.ActionSlower)
	if res.State.Timescale != 1.5 {
		t.Errorf("timescale = %v, expected 1.5", res.State.Timescale)
	}
	step(g, core.ActionFaster)
	res = step(g, core.ActionFaster)
	if res.State.Timescale != 0.75 {
		t.Errorf("timescale = %v, expected 0.75", res.State.Timescale)
	}
	if snap := g.Snapshot(); snap.State != round.StateEndingEarly.String() {
		t.Errorf("state = %s, expected the timescale change to end the round", snap.State)
	}
}

func TestRoundsAdvanceOverTime(t *testing.T) {
	g := startedGame(t)

	// Play well past one full round without touching anything
	for i := 0; i < 60*12; i++ {
		step(g)
	}
	if got := g.State().Rounds; got < 2 {
		t.Errorf("rounds = %d, expected the timeout to deal a new round", got)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1500)
	rng := rand.New(rand.NewSource(7))
	actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionConfirm}
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i == 0 {
			inputs[i].Set(core.ActionConfirm)
			continue
		}
		if rng.Intn(4) == 0 {
			inputs[i].Set(actions[rng.Intn(len(actions))])
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(12345))
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if !reflect.DeepEqual(s1, s2) {
		t.Errorf("determinism failed:\nrun1=%+v\nrun2=%+v", s1, s2)
	}
	if s1.Round < 2 {
		t.Errorf("expected several rounds, got %d", s1.Round)
	}
}

func TestRenderTitle(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Press Enter to start") {
		t.Error("title screen should explain how to start")
	}
	if !strings.Contains(out, "341") {
		t.Error("title screen should mention the glyph count")
	}
}

func TestRenderBoard(t *testing.T) {
	g := startedGame(t)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "Find:", "1 match remaining.", "Unlocked: 1.2%"} {
		if !strings.Contains(out, want) {
			t.Errorf("board missing %q", want)
		}
	}

	snap := g.Snapshot()
	p := g.cellCenter(0, 0, 1)
	if got := screen.Get(p.X, p.Y); got != rune(snap.CellData[0]) {
		t.Errorf("cell glyph = %q, expected %q", got, rune(snap.CellData[0]))
	}
	if screen.Get(p.X-1, p.Y) != CursorL || screen.Get(p.X+1, p.Y) != CursorR {
		t.Error("cursor brackets missing around the selected cell")
	}
}

func TestVictoryAndRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glyphrush.yaml")
	if err := os.WriteFile(path, []byte("glyphs:\n  start_unlock_fraction: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testConfig(3))
	res := step(g, core.ActionConfirm)
	if !res.State.GameOver {
		t.Fatal("a fully unlocked pool should win at once")
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Congratulations!") {
		t.Error("victory message missing")
	}

	// Picks are ignored until restart
	res = step(g, core.ActionConfirm)
	if !res.State.GameOver || res.State.Rounds != 0 {
		t.Error("input after victory should not resume the game")
	}

	res = step(g, core.ActionRestart)
	if !res.State.GameOver || !res.State.Started {
		t.Error("restart should begin a new run, which wins again with this config")
	}
}

func TestHintText(t *testing.T) {
	tests := []struct {
		remaining, available int
		expected             string
	}{
		{0, 0, "No matches this round."},
		{0, 3, "All matches found!"},
		{1, 3, "1 match remaining."},
		{3, 3, "3 matches remaining."},
	}
	for _, tc := range tests {
		if got := hintText(tc.remaining, tc.available); got != tc.expected {
			t.Errorf("hintText(%d, %d) = %q, expected %q", tc.remaining, tc.available, got, tc.expected)
		}
	}
}

func TestBoardTimerBar(t *testing.T) {
	clock := core.NewVirtualClock()
	b := newBoard(clock)

	if b.barFraction() != 1 {
		t.Error("bar should be full before it starts")
	}

	b.StartTimerBar(time.Second)
	clock.Advance(250 * time.Millisecond)
	if got := b.barFraction(); got != 0.75 {
		t.Errorf("barFraction = %v, expected 0.75", got)
	}

	b.PlayEarlyEndAnimation(time.Second, 0.5)
	if got := b.barFraction(); got != 0.5 {
		t.Errorf("wrap-up should start from the cut point, got %v", got)
	}
	clock.Advance(time.Second)
	if got := b.barFraction(); got != 0 {
		t.Errorf("wrap-up should drain the bar, got %v", got)
	}

	b.ResetRoundVisuals()
	if b.barFraction() != 1 {
		t.Error("reset should refill the bar")
	}
}

func TestBoardPulseScalesWithMultiplier(t *testing.T) {
	clock := core.NewVirtualClock()
	b := newBoard(clock)

	b.SetAnimationMultiplier(2)
	b.RenderScore(3, 1)
	clock.Advance(pulseDuration + time.Millisecond)
	if !b.pulsing() {
		t.Error("pulse should last longer with a multiplier of 2")
	}
	clock.Advance(pulseDuration)
	if b.pulsing() {
		t.Error("pulse should have finished")
	}
}

func TestFixedPresetLocksTimescaleOverride(t *testing.T) {
	SetDifficultyPreset("fixed")
	SetTimescale(2)
	t.Cleanup(func() {
		SetDifficultyPreset("")
		SetTimescale(0)
	})

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Timescale.Default != 2 {
		t.Errorf("default timescale %v, expected 2", cfg.Timescale.Default)
	}
	if len(cfg.Timescale.Options) != 1 || cfg.Timescale.Options[0] != 2 {
		t.Errorf("options %v, expected [2]", cfg.Timescale.Options)
	}
}
