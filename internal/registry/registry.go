// Package registry holds the factories of the playable games.
// Game packages register in init(); the platform looks them up by ID, so
// cmd and tui never import a game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/glyph-rush/internal/core"
)

// Game is what the platform drives. Implementations hold pure game logic:
// no Bubble Tea, no wall clock, no I/O beyond config loading in Reset.
type Game interface {
	// ID is the stable identifier used on the command line and in the scores table.
	ID() string

	// Title is the display name.
	Title() string

	// Reset puts the game back to its initial state for the given screen and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. The screen is reused between frames.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// ErrorReporter is implemented by games that can fail to start, for
// example on a bad configuration file.
type ErrorReporter interface {
	Err() error
}

// Resizer is implemented by games that can follow a terminal resize
// without losing the current run.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory. It panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name of a registered game, or the ID itself
// when unknown.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
