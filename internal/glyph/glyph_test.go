package glyph

import "testing"

func TestLinearACount(t *testing.T) {
	if got := LinearA.Count(); got != 341 {
		t.Errorf("LinearA.Count() = %d, expected 341", got)
	}
	if got := len(LinearA.Glyphs()); got != 341 {
		t.Errorf("len(LinearA.Glyphs()) = %d, expected 341", got)
	}
}

func TestLinearBCount(t *testing.T) {
	// 12 + 26 + 19 + 2 + 15 + 14
	if got := LinearB.Count(); got != 88 {
		t.Errorf("LinearB.Count() = %d, expected 88", got)
	}
}

func TestRangeLen(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		expected int
	}{
		{"single", Range{First: 10, Last: 10}, 1},
		{"span", Range{First: 10, Last: 19}, 10},
		{"inverted", Range{First: 20, Last: 10}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Len(); got != tc.expected {
				t.Errorf("Len() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestSetGlyphsAreUniqueAndContained(t *testing.T) {
	seen := make(map[Glyph]bool)
	for _, g := range LinearA.Glyphs() {
		if seen[g] {
			t.Fatalf("duplicate glyph %d", g)
		}
		seen[g] = true
		if !LinearA.Contains(g) {
			t.Errorf("Contains(%d) = false for expanded glyph", g)
		}
	}

	// Gap between the first and second range
	if LinearA.Contains(67383) {
		t.Error("Contains(67383) should be false")
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup(LinearAID)
	if !ok {
		t.Fatal("linear-a should be registered")
	}
	if s.Name != "Linear A" {
		t.Errorf("Name = %q, expected Linear A", s.Name)
	}

	if _, ok := Lookup("klingon"); ok {
		t.Error("unknown set should not be found")
	}

	list := List()
	if len(list) < 2 || list[0].ID != LinearAID || list[1].ID != LinearBID {
		t.Errorf("List() not sorted or incomplete: %v", list)
	}
}

func TestGlyphString(t *testing.T) {
	if got := Glyph('A').String(); got != "A" {
		t.Errorf("String() = %q, expected A", got)
	}
}
