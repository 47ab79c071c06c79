package nn

import "github.com/pkg/errors"

var (
	// ErrShapeMismatch is returned when sample vectors or matrices disagree in length.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrInvalidComplexity is returned for complexities outside the pairing schedule.
	ErrInvalidComplexity = errors.New("invalid complexity level")
	// ErrEmptyCatalog is returned when no functions are available for scoring.
	ErrEmptyCatalog = errors.New("empty function catalog")
	// ErrIndexOutOfRange is returned by Store lookups past the end of the store.
	ErrIndexOutOfRange = errors.New("unit index out of range")
	// ErrInvalidUnit is returned when a unit would break the store's invariants.
	ErrInvalidUnit = errors.New("invalid unit")
)
