package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonSquare indicates rows of differing lengths or a non N×N table.
	ErrNonSquare = errors.New("gridgraph: grid must be square (N×N)")
	// ErrBadDimension indicates a requested dimension below 1.
	ErrBadDimension = errors.New("gridgraph: dimension must be at least 1")
	// ErrBadDensity indicates an obstacle density outside [0,1].
	ErrBadDensity = errors.New("gridgraph: obstacle density must be within [0,1]")
	// ErrInvalidEndpoint indicates a start or goal cell that is out of bounds or blocked.
	ErrInvalidEndpoint = errors.New("gridgraph: endpoint is out of bounds or blocked")
	// ErrNoPath indicates no clearance route exists between two cells.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
