// Package glyphrush implements Glyph Rush, a reflex matching game.
// Target glyphs are shown above a grid; the player picks every matching cell
// before the round timer runs out. Scoring unlocks more glyphs, which grows
// the grid and shortens rounds until the whole glyph set is unlocked.
package glyphrush

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/glyph-rush/internal/config"
	"github.com/vovakirdan/glyph-rush/internal/core"
	"github.com/vovakirdan/glyph-rush/internal/glyph"
	"github.com/vovakirdan/glyph-rush/internal/pool"
	"github.com/vovakirdan/glyph-rush/internal/registry"
	"github.com/vovakirdan/glyph-rush/internal/round"
)

// Registered game IDs.
const (
	GameID        = "glyphrush"
	GameIDLinearB = "glyphrush_linear_b"
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	timescale        float64
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Empty or unknown names
// keep the timescale from the config file.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetTimescale overrides the starting timescale. Zero keeps the configured one.
func SetTimescale(ts float64) {
	timescale = ts
}

// SetLogger routes game logs. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// LoadConfig resolves the effective configuration for a glyph set: the
// loaded file, the difficulty preset and the timescale override. An empty
// setID keeps the configured set.
func LoadConfig(setID string) (config.GlyphRushConfig, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.GlyphRushConfig{}, err
	}
	if setID != "" {
		cfg.Glyphs.Set = setID
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	if timescale > 0 {
		cfg.Timescale.Default = timescale
		if config.IsFixedPreset(difficultyPreset) {
			cfg.Timescale.Options = []float64{timescale}
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.GlyphRushConfig{}, err
	}
	return cfg, nil
}

// Preflight checks that a game can start with the current settings: the
// config loads and the starting pool is not empty.
func Preflight(setID string) error {
	cfg, err := LoadConfig(setID)
	if err != nil {
		return err
	}
	set, _ := glyph.Lookup(cfg.Glyphs.Set)
	_, err = pool.Initialize(set.Glyphs(), cfg.Glyphs.StartUnlockFraction, rand.New(rand.NewSource(1)))
	return err
}

// Game adapts a round.Machine to the registry.Game interface. The machine's
// timers run on a virtual clock advanced once per Step, so the whole game is
// deterministic for a given seed and input sequence.
type Game struct {
	id    string
	title string
	setID string

	runtime core.RuntimeConfig
	cfg     config.GlyphRushConfig
	diff    *config.DifficultyManager
	set     glyph.Set

	clock   *core.VirtualClock
	machine *round.Machine
	board   *board

	started   bool
	cursorRow int
	cursorCol int
	tickCount int
	err       error
}

// New creates the Linear A game.
func New() *Game {
	return &Game{id: GameID, title: "Glyph Rush"}
}

// NewLinearB creates the Linear B variant.
func NewLinearB() *Game {
	return &Game{id: GameIDLinearB, title: "Glyph Rush: Linear B", setID: glyph.LinearBID}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads configuration and puts the game on its title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = 60
	}

	cfg, err := LoadConfig(g.setID)
	if err != nil {
		logger.Warn("config rejected, using defaults", "game", g.id, "err", err)
		cfg = config.DefaultGlyphRushConfig()
		if g.setID != "" {
			cfg.Glyphs.Set = g.setID
		}
	}
	g.cfg = cfg
	g.diff = config.NewDifficultyManager(cfg)
	g.set, _ = glyph.Lookup(cfg.Glyphs.Set)

	g.clock = core.NewVirtualClock()
	g.board = newBoard(g.clock)
	g.machine, g.err = round.New(round.Options{
		Config:    cfg,
		Scheduler: g.clock,
		Render:    g.board,
		Rand:      rand.New(rand.NewSource(runtime.Seed)),
		Logger:    logger.WithPrefix(g.id),
	})

	g.started = false
	g.cursorRow, g.cursorCol = 0, 0
	g.tickCount = 0
}

// Resize updates the screen size used for layout and hit-testing. The
// current run carries on.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.machine == nil {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	if !g.started {
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) || len(in.Clicks) > 0 {
			g.start()
		}
		g.advance()
		return core.StepResult{State: g.State()}
	}

	s := g.machine.Snapshot()
	if s.Victory {
		if in.Has(core.ActionRestart) {
			g.start()
		}
		g.advance()
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionSlower):
		g.changeTimescale(1)
	case in.Has(core.ActionFaster):
		g.changeTimescale(-1)
	}

	g.moveCursor(in, s.Rows, s.Cols)

	if in.Has(core.ActionConfirm) {
		idx := g.cursorRow*s.Cols + g.cursorCol
		g.pick(idx, g.cellCenter(g.cursorRow, g.cursorCol, s.Cols))
	}
	for _, p := range in.Clicks {
		if idx, ok := g.hitTest(p, s.Rows, s.Cols); ok {
			g.pick(idx, p)
		}
	}

	g.advance()
	return core.StepResult{State: g.State()}
}

func (g *Game) start() {
	if err := g.machine.StartGame(); err != nil {
		g.err = err
		logger.Error("cannot start game", "game", g.id, "err", err)
		return
	}
	g.err = nil
	g.started = true
	g.cursorRow, g.cursorCol = 0, 0
}

func (g *Game) pick(idx int, at core.Point) {
	err := g.machine.Pick(idx, at.X, at.Y)
	switch {
	case err == nil:
	case errors.Is(err, round.ErrInvalidPick), errors.Is(err, round.ErrNotRunning):
		logger.Debug("pick ignored", "index", idx, "err", err)
	default:
		logger.Warn("pick failed", "index", idx, "err", err)
	}
}

func (g *Game) changeTimescale(dir int) {
	next := g.diff.StepTimescale(g.machine.Timescale(), dir)
	if err := g.machine.ChangeTimescale(next); err != nil {
		logger.Warn("timescale rejected", "value", next, "err", err)
	}
}

// moveCursor applies arrow input, clamping at the grid edges.
func (g *Game) moveCursor(in core.InputFrame, rows, cols int) {
	if in.Has(core.ActionUp) {
		g.cursorRow--
	}
	if in.Has(core.ActionDown) {
		g.cursorRow++
	}
	if in.Has(core.ActionLeft) {
		g.cursorCol--
	}
	if in.Has(core.ActionRight) {
		g.cursorCol++
	}
	g.cursorRow = core.Clamp(g.cursorRow, 0, max(rows-1, 0))
	g.cursorCol = core.Clamp(g.cursorCol, 0, max(cols-1, 0))
}

func (g *Game) advance() {
	g.clock.Advance(time.Second / time.Duration(g.runtime.TickRate))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.machine == nil {
		return core.GameState{}
	}
	s := g.machine.Snapshot()
	return core.GameState{
		Score:     s.Score,
		GameOver:  s.Victory,
		Paused:    !g.started,
		Started:   g.started,
		Progress:  s.UnlockedFraction(),
		Rounds:    s.Rounds,
		Timescale: s.Timescale,
	}
}

// Err returns the last configuration or start error, if any.
func (g *Game) Err() error {
	return g.err
}

// Register the game variants with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.Register(GameIDLinearB, func() registry.Game {
		return NewLinearB()
	})
}
