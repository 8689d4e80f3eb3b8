package glyphrush

// Snapshot contains the observable game state for replays and tests.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Started   bool
	Victory   bool
	State     string
	Score     int
	Round     int
	Timescale float64

	Unlocked int
	Locked   int

	Rows      int
	Cols      int
	CursorRow int
	CursorCol int

	// Targets are code points
	Targets []int

	// Cell states (flattened: row*cols + col = index)
	// Each cell is 3 ints: Glyph, IsTarget, Status
	CellData []int

	CorrectPicks   int
	IncorrectPicks int
	Matching       int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Started:   g.started,
		CursorRow: g.cursorRow,
		CursorCol: g.cursorCol,
	}
	if g.machine == nil {
		return snap
	}

	s := g.machine.Snapshot()
	snap.Victory = s.Victory
	snap.State = s.State.String()
	snap.Score = s.Score
	snap.Round = s.Rounds
	snap.Timescale = s.Timescale
	snap.Rows, snap.Cols = s.Rows, s.Cols
	snap.CorrectPicks = s.CorrectPicks
	snap.IncorrectPicks = s.IncorrectPicks
	snap.Matching = s.MatchingPicksAvailable

	if s.Pool != nil {
		snap.Unlocked = s.Pool.UnlockedCount()
		snap.Locked = s.Pool.LockedCount()
	}

	snap.Targets = make([]int, len(s.Targets))
	for i, t := range s.Targets {
		snap.Targets[i] = int(t)
	}

	snap.CellData = make([]int, len(s.Cells)*3)
	for i, c := range s.Cells {
		idx := i * 3
		snap.CellData[idx] = int(c.Glyph)
		if c.IsTarget {
			snap.CellData[idx+1] = 1
		}
		snap.CellData[idx+2] = int(c.Status)
	}
	return snap
}
