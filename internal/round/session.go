package round

import (
	"time"

	"github.com/vovakirdan/glyph-rush/internal/glyph"
	"github.com/vovakirdan/glyph-rush/internal/pool"
)

// State is the lifecycle state of the current round.
type State int

const (
	StateIdle State = iota
	StateRunning
	StateEndingEarly
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEndingEarly:
		return "ending-early"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// PickStatus is the resolution of a grid cell. Anything but PickNone is final.
type PickStatus int

const (
	PickNone PickStatus = iota
	PickCorrect
	PickIncorrect
)

func (p PickStatus) String() string {
	switch p {
	case PickCorrect:
		return "correct"
	case PickIncorrect:
		return "incorrect"
	default:
		return "unpicked"
	}
}

// Cell is one grid position showing a glyph.
type Cell struct {
	Glyph    glyph.Glyph
	IsTarget bool
	Status   PickStatus
}

// GameSession is the complete state of one play-through.
type GameSession struct {
	Pool  *pool.Pool
	Score int

	Targets []glyph.Glyph
	Rows    int
	Cols    int
	Cells   []Cell

	CorrectPicks           int
	IncorrectPicks         int
	MatchingPicksAvailable int

	FirstRound  bool
	GameRunning bool
	Victory     bool
	Timescale   float64

	State         State
	Round         int           // Identity of the current round, never reused
	Rounds        int           // Rounds dealt this game
	RoundStarted  time.Duration // Clock time the current round started
	RoundDuration time.Duration
}

// Remaining returns how many matching cells are still unpicked.
func (s GameSession) Remaining() int {
	return s.MatchingPicksAvailable - s.CorrectPicks
}

// UnlockedFraction returns the pool's unlocked fraction, or 0 before the
// first game.
func (s GameSession) UnlockedFraction() float64 {
	if s.Pool == nil {
		return 0
	}
	return s.Pool.UnlockedFraction()
}

// clone copies the slices so callers cannot mutate live state.
// The pool is shared and must be treated as read-only.
func (s GameSession) clone() GameSession {
	s.Targets = append([]glyph.Glyph(nil), s.Targets...)
	s.Cells = append([]Cell(nil), s.Cells...)
	return s
}

// BonusPoints scores a finished round: +1 when every available match was
// found without a miss, -1 when matches existed and none were found, else 0.
func BonusPoints(correct, incorrect, matching int) int {
	switch {
	case matching > 0 && incorrect == 0 && correct == matching:
		return 1
	case matching > 0 && correct == 0:
		return -1
	default:
		return 0
	}
}
