// Package pool manages the partition of a glyph universe into unlocked glyphs,
// which may appear on the board, and locked glyphs held in reserve.
package pool

import (
	"errors"
	"math"
	"math/rand"

	"github.com/vovakirdan/glyph-rush/internal/glyph"
)

// ErrEmptyPool is returned when initialization would leave no unlocked glyphs.
var ErrEmptyPool = errors.New("pool: unlocked set is empty after initialization")

// Pool holds the unlocked/locked partition.
// Both slices are ordered: unlocks take from the front of locked,
// relocks take from the front of unlocked and append to locked.
type Pool struct {
	size     int
	unlocked []glyph.Glyph
	locked   []glyph.Glyph
}

// Initialize shuffles the universe and unlocks ceil(len*fraction) glyphs.
func Initialize(universe []glyph.Glyph, fraction float64, rng *rand.Rand) (*Pool, error) {
	shuffled := make([]glyph.Glyph, len(universe))
	copy(shuffled, universe)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := int(math.Ceil(float64(len(shuffled)) * fraction))
	if n > len(shuffled) {
		n = len(shuffled)
	}
	if n <= 0 {
		return nil, ErrEmptyPool
	}

	p := &Pool{
		size:     len(shuffled),
		unlocked: append([]glyph.Glyph(nil), shuffled[:n]...),
		locked:   append([]glyph.Glyph(nil), shuffled[n:]...),
	}
	return p, nil
}

// Adjust moves glyphs between the partitions and returns how many moved.
// Positive deltas unlock up to delta glyphs. Negative deltas relock glyphs one
// at a time while more than floor remain unlocked. The floor is never below 1.
func (p *Pool) Adjust(delta, floor int) int {
	switch {
	case delta > 0:
		n := min(delta, len(p.locked))
		p.unlocked = append(p.unlocked, p.locked[:n]...)
		p.locked = append([]glyph.Glyph(nil), p.locked[n:]...)
		return n

	case delta < 0:
		floor = max(floor, 1)
		moved := 0
		for moved < -delta && len(p.unlocked) > floor {
			p.locked = append(p.locked, p.unlocked[0])
			p.unlocked = p.unlocked[1:]
			moved++
		}
		return moved
	}
	return 0
}

// Size returns the size of the universe.
func (p *Pool) Size() int {
	return p.size
}

// UnlockedCount returns the number of unlocked glyphs.
func (p *Pool) UnlockedCount() int {
	return len(p.unlocked)
}

// LockedCount returns the number of locked glyphs.
func (p *Pool) LockedCount() int {
	return len(p.locked)
}

// Unlocked returns a copy of the unlocked glyphs.
func (p *Pool) Unlocked() []glyph.Glyph {
	return append([]glyph.Glyph(nil), p.unlocked...)
}

// Locked returns a copy of the locked glyphs.
func (p *Pool) Locked() []glyph.Glyph {
	return append([]glyph.Glyph(nil), p.locked...)
}

// UnlockedFraction returns |unlocked| / |universe|.
func (p *Pool) UnlockedFraction() float64 {
	if p.size == 0 {
		return 0
	}
	return float64(len(p.unlocked)) / float64(p.size)
}

// Complete reports whether every glyph is unlocked.
func (p *Pool) Complete() bool {
	return p.UnlockedFraction() >= 1.0
}

// Sample returns up to n distinct unlocked glyphs chosen uniformly.
func (p *Pool) Sample(n int, rng *rand.Rand) []glyph.Glyph {
	tmp := p.Unlocked()
	n = min(n, len(tmp))
	// Partial Fisher-Yates: the first n slots end up a uniform sample
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(tmp)-i)
		tmp[i], tmp[j] = tmp[j], tmp[i]
	}
	return tmp[:n]
}

// Draw returns one unlocked glyph chosen uniformly, with replacement.
func (p *Pool) Draw(rng *rand.Rand) glyph.Glyph {
	return p.unlocked[rng.Intn(len(p.unlocked))]
}
