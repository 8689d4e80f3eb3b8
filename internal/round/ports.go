package round

import (
	"time"

	"github.com/vovakirdan/glyph-rush/internal/core"
	"github.com/vovakirdan/glyph-rush/internal/glyph"
)

// RenderPort is everything the machine tells the UI.
// Calls happen synchronously from Machine methods and timer callbacks.
type RenderPort interface {
	RenderTargets(targets []glyph.Glyph)
	RenderGrid(rows, cols int, cells []Cell)
	MarkCell(index int, status PickStatus, at core.Point)
	RenderScore(score, direction int)
	RenderUnlockedPercentage(fraction float64)
	// RenderHint reports how many matches are still hidden out of those
	// available this round. available == 0 means the round has none.
	RenderHint(remaining, available int)
	ResetRoundVisuals()
	StartTimerBar(d time.Duration)
	// StartSwipe starts the end-of-round warning that runs for d.
	StartSwipe(d time.Duration)
	// PlayEarlyEndAnimation wraps up a round that ended at pct (0..1) of its
	// duration; the next round starts after d.
	PlayEarlyEndAnimation(d time.Duration, pct float64)
	SetAnimationMultiplier(m float64)
	ShowVictory()
	ShowOverlay()
	HideOverlay()
}

// InputPort is how the UI drives the machine.
type InputPort interface {
	Pick(index, x, y int) error
	ChangeTimescale(scale float64) error
	StartGame() error
}

var _ InputPort = (*Machine)(nil)

// NopRender discards every render call.
type NopRender struct{}

func (NopRender) RenderTargets([]glyph.Glyph)                  {}
func (NopRender) RenderGrid(int, int, []Cell)                  {}
func (NopRender) MarkCell(int, PickStatus, core.Point)         {}
func (NopRender) RenderScore(int, int)                         {}
func (NopRender) RenderUnlockedPercentage(float64)             {}
func (NopRender) RenderHint(int, int)                          {}
func (NopRender) ResetRoundVisuals()                           {}
func (NopRender) StartTimerBar(time.Duration)                  {}
func (NopRender) StartSwipe(time.Duration)                     {}
func (NopRender) PlayEarlyEndAnimation(time.Duration, float64) {}
func (NopRender) SetAnimationMultiplier(float64)               {}
func (NopRender) ShowVictory()                                 {}
func (NopRender) ShowOverlay()                                 {}
func (NopRender) HideOverlay()                                 {}
