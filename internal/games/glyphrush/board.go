package glyphrush

import (
	"time"

	"github.com/vovakirdan/glyph-rush/internal/core"
	"github.com/vovakirdan/glyph-rush/internal/glyph"
	"github.com/vovakirdan/glyph-rush/internal/round"
)

// Base durations for transient effects. They are stretched by the round's
// animation multiplier so small boards animate slower than full ones.
const (
	pulseDuration = 150 * time.Millisecond
	flashDuration = 120 * time.Millisecond
)

// board is the terminal-side view state. It implements round.RenderPort and
// turns the machine's calls into what Render draws on the next frame.
type board struct {
	clock core.Scheduler

	targets []glyph.Glyph
	rows    int
	cols    int
	cells   []round.Cell

	score      int
	pulseDir   int
	pulseUntil time.Duration

	unlocked  float64
	remaining int
	available int

	barActive   bool
	barStart    time.Duration
	barDuration time.Duration

	swipeActive   bool
	swipeStart    time.Duration
	swipeDuration time.Duration

	wrapActive   bool
	wrapStart    time.Duration
	wrapDuration time.Duration
	wrapPct      float64

	multiplier float64

	flashIndex int
	flashUntil time.Duration
	lastPick   core.Point

	overlay bool
	victory bool
}

var _ round.RenderPort = (*board)(nil)

func newBoard(clock core.Scheduler) *board {
	return &board{
		clock:      clock,
		multiplier: 1,
		flashIndex: -1,
		overlay:    true,
	}
}

func (b *board) RenderTargets(targets []glyph.Glyph) {
	b.targets = targets
}

func (b *board) RenderGrid(rows, cols int, cells []round.Cell) {
	b.rows, b.cols = rows, cols
	b.cells = cells
	b.flashIndex = -1
}

func (b *board) MarkCell(index int, status round.PickStatus, at core.Point) {
	if index < 0 || index >= len(b.cells) {
		return
	}
	b.cells[index].Status = status
	b.flashIndex = index
	b.flashUntil = b.clock.Now() + b.stretch(flashDuration)
	b.lastPick = at
}

func (b *board) RenderScore(score, direction int) {
	b.score = score
	b.pulseDir = direction
	b.pulseUntil = b.clock.Now() + b.stretch(pulseDuration)
}

func (b *board) RenderUnlockedPercentage(fraction float64) {
	b.unlocked = fraction
}

func (b *board) RenderHint(remaining, available int) {
	b.remaining, b.available = remaining, available
}

func (b *board) ResetRoundVisuals() {
	b.barActive = false
	b.swipeActive = false
	b.wrapActive = false
	b.flashIndex = -1
}

func (b *board) StartTimerBar(d time.Duration) {
	b.barActive = true
	b.barStart = b.clock.Now()
	b.barDuration = d
}

func (b *board) StartSwipe(d time.Duration) {
	b.swipeActive = true
	b.swipeStart = b.clock.Now()
	b.swipeDuration = d
}

func (b *board) PlayEarlyEndAnimation(d time.Duration, pct float64) {
	b.barActive = false
	b.swipeActive = false
	b.wrapActive = true
	b.wrapStart = b.clock.Now()
	b.wrapDuration = d
	b.wrapPct = core.ClampF(pct, 0, 1)
}

func (b *board) SetAnimationMultiplier(m float64) {
	b.multiplier = m
}

func (b *board) ShowVictory() {
	b.victory = true
}

func (b *board) ShowOverlay() {
	b.overlay = true
}

func (b *board) HideOverlay() {
	b.overlay = false
	b.victory = false
}

// barFraction returns how much of the timer bar is still full, 0..1.
// The bar stays full until it is started and drains from where the round was
// cut during a wrap-up.
func (b *board) barFraction() float64 {
	now := b.clock.Now()
	switch {
	case b.wrapActive:
		left := 1 - b.wrapPct
		return left * (1 - progress(now-b.wrapStart, b.wrapDuration))
	case b.barActive:
		return 1 - progress(now-b.barStart, b.barDuration)
	default:
		return 1
	}
}

// swiping reports whether the end-of-round warning is running.
func (b *board) swiping() bool {
	return b.swipeActive && b.clock.Now()-b.swipeStart < b.swipeDuration
}

func (b *board) pulsing() bool {
	return b.pulseDir != 0 && b.clock.Now() < b.pulseUntil
}

func (b *board) flashing(index int) bool {
	return index == b.flashIndex && b.clock.Now() < b.flashUntil
}

func (b *board) stretch(d time.Duration) time.Duration {
	return time.Duration(float64(d) * b.multiplier)
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 1
	}
	return core.ClampF(float64(elapsed)/float64(total), 0, 1)
}
