package round

import "errors"

var (
	// ErrInvalidPick is returned for an out-of-range or already resolved cell.
	ErrInvalidPick = errors.New("round: invalid pick")

	// ErrNotRunning is returned for a pick while no round accepts input.
	ErrNotRunning = errors.New("round: no round in progress")

	// ErrInvalidTimescale is returned for a non-positive timescale.
	ErrInvalidTimescale = errors.New("round: timescale must be positive")
)
