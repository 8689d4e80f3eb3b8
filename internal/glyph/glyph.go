// Package glyph defines the displayable characters used by the matching game
// and the named code point sets they are drawn from.
package glyph

import (
	"fmt"
	"sort"
	"sync"
)

// Glyph is a single Unicode code point shown on the board.
type Glyph rune

// String returns the glyph as a one-rune string.
func (g Glyph) String() string {
	return string(rune(g))
}

// Range is an inclusive span of code points.
type Range struct {
	First Glyph
	Last  Glyph
}

// Len returns the number of code points in the range (0 for inverted ranges).
func (r Range) Len() int {
	if r.Last < r.First {
		return 0
	}
	return int(r.Last-r.First) + 1
}

// Contains reports whether g falls inside the range.
func (r Range) Contains(g Glyph) bool {
	return g >= r.First && g <= r.Last
}

// Set is a named universe of glyphs made of one or more ranges.
type Set struct {
	ID     string
	Name   string
	Font   string // Suggested font family for renderers that can pick one
	Ranges []Range
}

// Count returns the total number of valid glyphs across all ranges.
func (s Set) Count() int {
	total := 0
	for _, r := range s.Ranges {
		total += r.Len()
	}
	return total
}

// Glyphs expands the ranges into a slice, in range order.
func (s Set) Glyphs() []Glyph {
	out := make([]Glyph, 0, s.Count())
	for _, r := range s.Ranges {
		for g := r.First; g <= r.Last; g++ {
			out = append(out, g)
		}
	}
	return out
}

// Contains reports whether g belongs to the set.
func (s Set) Contains(g Glyph) bool {
	for _, r := range s.Ranges {
		if r.Contains(g) {
			return true
		}
	}
	return false
}

var (
	sets = make(map[string]Set)
	mu   sync.RWMutex
)

// Register adds a glyph set. Panics on duplicate IDs.
func Register(s Set) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := sets[s.ID]; exists {
		panic(fmt.Sprintf("glyph: set %q already registered", s.ID))
	}
	sets[s.ID] = s
}

// Lookup returns the set registered under id.
func Lookup(id string) (Set, bool) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := sets[id]
	return s, ok
}

// List returns all registered sets sorted by ID.
func List() []Set {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Set, 0, len(sets))
	for _, s := range sets {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}
