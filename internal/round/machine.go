// Package round implements the round lifecycle: target sampling, grid
// population, pick evaluation, bonus scoring, early ends, timeouts and
// victory detection.
//
// A Machine is not safe for concurrent use. All calls, including the timer
// callbacks it arms on its Scheduler, must come from one goroutine.
package round

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyph-rush/internal/config"
	"github.com/vovakirdan/glyph-rush/internal/core"
	"github.com/vovakirdan/glyph-rush/internal/glyph"
	"github.com/vovakirdan/glyph-rush/internal/pool"
	"github.com/vovakirdan/glyph-rush/internal/score"
)

// Options configures a Machine.
type Options struct {
	Config    config.GlyphRushConfig
	Scheduler core.Scheduler
	Render    RenderPort    // Defaults to NopRender
	Rand      *rand.Rand    // Defaults to a time-seeded source
	Logger    *log.Logger   // Defaults to a discarding logger
	Universe  []glyph.Glyph // Defaults to the configured glyph set
}

// Machine drives rounds for one GameSession.
type Machine struct {
	cfg      config.GlyphRushConfig
	diff     *config.DifficultyManager
	clock    core.Scheduler
	render   RenderPort
	rng      *rand.Rand
	log      *log.Logger
	universe []glyph.Glyph

	s GameSession

	// debounceUntil is fixed when a round starts, using the timescale in
	// force at that moment.
	debounceUntil time.Duration
	debounceSet   bool

	timers []core.Timer
}

// New creates a machine in the idle state. Call StartGame to begin.
func New(opts Options) (*Machine, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Scheduler == nil {
		return nil, errors.New("round: scheduler is required")
	}

	universe := opts.Universe
	if universe == nil {
		set, _ := glyph.Lookup(opts.Config.Glyphs.Set)
		universe = set.Glyphs()
	}

	m := &Machine{
		cfg:      opts.Config,
		diff:     config.NewDifficultyManager(opts.Config),
		clock:    opts.Scheduler,
		render:   opts.Render,
		rng:      opts.Rand,
		log:      opts.Logger,
		universe: universe,
	}
	if m.render == nil {
		m.render = NopRender{}
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.log == nil {
		m.log = log.New(io.Discard)
	}
	m.s.Timescale = opts.Config.Timescale.Default
	return m, nil
}

// StartGame begins a fresh play-through: a newly shuffled pool, score zero
// and the first round. It fails only when the pool cannot be seeded.
func (m *Machine) StartGame() error {
	m.cancelTimers()

	p, err := pool.Initialize(m.universe, m.cfg.Glyphs.StartUnlockFraction, m.rng)
	if err != nil {
		m.s.GameRunning = false
		m.s.State = StateEnded
		return fmt.Errorf("round: start game: %w", err)
	}

	m.s = GameSession{
		Pool:        p,
		FirstRound:  true,
		GameRunning: true,
		Timescale:   m.s.Timescale,
		State:       StateIdle,
		Round:       m.s.Round,
	}
	m.debounceSet = false

	m.log.Info("game started", "universe", len(m.universe), "unlocked", p.UnlockedCount(), "timescale", m.s.Timescale)

	m.render.HideOverlay()
	m.render.RenderScore(0, 0)
	m.render.RenderUnlockedPercentage(p.UnlockedFraction())
	if m.checkVictory() {
		return nil
	}
	m.nextRound()
	return nil
}

// StartRound scores the previous round and deals a new one.
// It does nothing once the game has stopped, and rejects a second start
// arriving within the debounce window of the previous one.
func (m *Machine) StartRound() {
	if !m.s.GameRunning {
		return
	}
	if now := m.clock.Now(); m.debounceSet && now < m.debounceUntil {
		m.log.Warn("round start debounced", "round", m.s.Round, "wait", m.debounceUntil-now)
		return
	}
	m.nextRound()
}

// nextRound deals a round without the debounce check. The machine's own
// wrap-up and timeout timers use it: cancelTimers keeps them single-armed,
// and they are the only pending transition out of the current round.
func (m *Machine) nextRound() {
	if !m.s.GameRunning {
		return
	}
	now := m.clock.Now()

	m.cancelTimers()

	if !m.s.FirstRound {
		bonus := BonusPoints(m.s.CorrectPicks, m.s.IncorrectPicks, m.s.MatchingPicksAvailable)
		if bonus != 0 {
			m.log.Debug("round bonus", "round", m.s.Round, "points", bonus)
			m.applyDelta(bonus)
			if !m.s.GameRunning {
				return
			}
		}
	}
	m.s.FirstRound = false
	m.debounceUntil = now + m.scaled(m.cfg.Timing.StartDebounce)
	m.debounceSet = true

	m.s.CorrectPicks = 0
	m.s.IncorrectPicks = 0

	m.s.Targets = m.s.Pool.Sample(m.cfg.Glyphs.TargetCount, m.rng)
	m.s.Rows, m.s.Cols = m.diff.GridDimensions(m.s.Score)

	n := m.s.Rows * m.s.Cols
	m.s.Cells = make([]Cell, n)
	m.s.MatchingPicksAvailable = 0
	for i := range m.s.Cells {
		g := m.s.Pool.Draw(m.rng)
		target := slices.Contains(m.s.Targets, g)
		if target {
			m.s.MatchingPicksAvailable++
		}
		m.s.Cells[i] = Cell{Glyph: g, IsTarget: target}
	}

	duration := m.diff.RoundDuration(m.s.Pool.UnlockedFraction(), m.s.Timescale)

	m.s.Round++
	m.s.Rounds++
	m.s.State = StateRunning
	m.s.RoundStarted = now
	m.s.RoundDuration = duration
	id := m.s.Round

	m.render.ResetRoundVisuals()
	m.render.SetAnimationMultiplier(m.diff.AnimationMultiplier(m.s.Rows, m.s.Cols))
	m.render.RenderTargets(slices.Clone(m.s.Targets))
	m.render.RenderGrid(m.s.Rows, m.s.Cols, slices.Clone(m.s.Cells))
	m.render.RenderHint(m.s.MatchingPicksAvailable, m.s.MatchingPicksAvailable)

	m.arm(duration, func() { m.onTimeout(id) })

	// The timer bar restarts after a short reset so the UI can clear the
	// previous round first.
	reset := min(m.scaled(m.cfg.Timing.ResetDelay), duration)
	m.arm(reset, func() {
		if m.current(id) {
			m.render.StartTimerBar(duration - reset)
		}
	})

	swipeAt := max(0, duration-m.scaled(m.cfg.Timing.MinRound))
	m.arm(swipeAt, func() {
		if m.current(id) {
			m.render.StartSwipe(duration - swipeAt)
		}
	})

	m.log.Debug("round started",
		"round", id,
		"score", m.s.Score,
		"grid", fmt.Sprintf("%dx%d", m.s.Rows, m.s.Cols),
		"targets", len(m.s.Targets),
		"matching", m.s.MatchingPicksAvailable,
		"duration", duration,
	)
}

// Pick resolves the cell at index. (x, y) is where the pointer was, passed
// through to the render side. Picks outside a running round, out of range or
// on an already resolved cell change nothing.
func (m *Machine) Pick(index, x, y int) error {
	if !m.s.GameRunning || m.s.State != StateRunning {
		return ErrNotRunning
	}
	if index < 0 || index >= len(m.s.Cells) {
		return fmt.Errorf("%w: index %d outside %d cells", ErrInvalidPick, index, len(m.s.Cells))
	}
	cell := &m.s.Cells[index]
	if cell.Status != PickNone {
		return fmt.Errorf("%w: cell %d already %s", ErrInvalidPick, index, cell.Status)
	}

	at := core.Point{X: x, Y: y}
	if !cell.IsTarget {
		cell.Status = PickIncorrect
		m.s.IncorrectPicks++
		m.render.MarkCell(index, PickIncorrect, at)
		m.applyDelta(-1)
		return nil
	}

	cell.Status = PickCorrect
	m.s.CorrectPicks++
	m.render.MarkCell(index, PickCorrect, at)
	m.applyDelta(1)
	if m.s.State != StateRunning {
		// Victory
		return nil
	}

	remaining := m.s.Remaining()
	m.render.RenderHint(remaining, m.s.MatchingPicksAvailable)
	if remaining == 0 {
		m.EndRoundEarly()
	}
	return nil
}

// EndRoundEarly cuts the running round short, plays the wrap-up and then
// starts the next round. It is skipped when the natural timeout is already
// closer than the early-end threshold.
func (m *Machine) EndRoundEarly() {
	if m.s.State != StateRunning {
		return
	}

	now := m.clock.Now()
	elapsed := now - m.s.RoundStarted
	left := m.s.RoundDuration - elapsed
	if left < m.scaled(m.cfg.Timing.EarlyEndThreshold) {
		m.log.Debug("early end skipped", "round", m.s.Round, "left", left)
		return
	}

	m.cancelTimers()
	m.s.State = StateEndingEarly

	pct := 1.0
	if m.s.RoundDuration > 0 {
		pct = float64(elapsed) / float64(m.s.RoundDuration)
	}
	wrap := m.scaled(m.cfg.Timing.EndRound)
	m.render.PlayEarlyEndAnimation(wrap, pct)

	id := m.s.Round
	m.log.Debug("round ended early", "round", id, "elapsed", elapsed, "correct", m.s.CorrectPicks)
	m.arm(wrap, func() {
		if m.s.Round != id || m.s.State != StateEndingEarly {
			m.log.Debug("stale wrap-up timer", "round", id)
			return
		}
		m.nextRound()
	})
}

func (m *Machine) onTimeout(id int) {
	if m.s.Round != id || m.s.State != StateRunning {
		m.log.Debug("stale round timer", "round", id, "current", m.s.Round, "state", m.s.State)
		return
	}
	m.log.Debug("round timed out", "round", id, "correct", m.s.CorrectPicks, "incorrect", m.s.IncorrectPicks, "matching", m.s.MatchingPicksAvailable)
	m.s.State = StateIdle
	m.nextRound()
}

// ChangeTimescale sets the multiplier applied to every duration from the next
// round on. A running round is ended early so the new pacing applies at once.
func (m *Machine) ChangeTimescale(scale float64) error {
	if scale <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimescale, scale)
	}
	if scale == m.s.Timescale {
		return nil
	}
	m.log.Debug("timescale changed", "from", m.s.Timescale, "to", scale)
	m.s.Timescale = scale
	if m.s.State == StateRunning {
		m.EndRoundEarly()
	}
	return nil
}

// Stop ends the game without victory.
func (m *Machine) Stop() {
	m.cancelTimers()
	m.s.GameRunning = false
	m.s.State = StateEnded
}

// Timescale returns the active timescale.
func (m *Machine) Timescale() float64 {
	return m.s.Timescale
}

// Snapshot returns a copy of the session. The pool is shared and must not be
// modified.
func (m *Machine) Snapshot() GameSession {
	return m.s.clone()
}

// applyDelta updates the score and pool together, then checks for victory.
func (m *Machine) applyDelta(delta int) {
	res := score.Apply(m.s.Score, delta, m.s.Pool, m.cfg.Glyphs.TargetCount)
	if !res.Changed {
		return
	}
	m.s.Score = res.Score
	m.render.RenderScore(res.Score, score.Direction(delta))
	m.render.RenderUnlockedPercentage(m.s.Pool.UnlockedFraction())
	m.checkVictory()
}

func (m *Machine) checkVictory() bool {
	if !m.s.Pool.Complete() {
		return false
	}
	m.cancelTimers()
	m.s.GameRunning = false
	m.s.Victory = true
	m.s.State = StateEnded
	m.log.Info("victory", "score", m.s.Score, "rounds", m.s.Rounds)
	m.render.ShowOverlay()
	m.render.ShowVictory()
	return true
}

func (m *Machine) current(id int) bool {
	return m.s.Round == id && m.s.State == StateRunning
}

func (m *Machine) arm(d time.Duration, f func()) {
	m.timers = append(m.timers, m.clock.AfterFunc(d, f))
}

func (m *Machine) cancelTimers() {
	for _, t := range m.timers {
		t.Stop()
	}
	m.timers = m.timers[:0]
}

func (m *Machine) scaled(d time.Duration) time.Duration {
	return config.Scale(d, m.s.Timescale)
}
