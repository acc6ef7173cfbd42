package movingai

import (
	"errors"
	"fmt"
)

// Parse and query errors.
var (
	ErrInvalidHeader    = errors.New("movingai: invalid map header")
	ErrInvalidDimension = errors.New("movingai: invalid map dimension")
	ErrInvalidSection   = errors.New("movingai: invalid section tag")
	ErrShapeMismatch    = errors.New("movingai: map body does not match declared shape")
	ErrUnknownTile      = errors.New("movingai: unknown tile code")
	ErrOutOfBounds      = errors.New("movingai: coordinate out of bounds")
	ErrInvalidScenario  = errors.New("movingai: invalid scenario record")
)

// ParseError describes the first malformed line of a map or scenario file.
// Line and Column are 1-based; Column is 0 when the whole line is at fault.
// Err is one of the package sentinel errors.
type ParseError struct {
	Line     int
	Column   int
	Expected string
	Found    string
	Err      error
}

func (e *ParseError) Error() string {
	pos := fmt.Sprintf("line %d", e.Line)
	if e.Column > 0 {
		pos = fmt.Sprintf("line %d, column %d", e.Line, e.Column)
	}
	if e.Expected == "" {
		return fmt.Sprintf("%s: %v: found %q", pos, e.Err, e.Found)
	}
	return fmt.Sprintf("%s: %v: expected %s, found %q", pos, e.Err, e.Expected, e.Found)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// BoundsError reports a coordinate outside a map. It unwraps to ErrOutOfBounds.
type BoundsError struct {
	Coords        Coords
	Height, Width int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("%v: %s not in [0,%d)x[0,%d)", ErrOutOfBounds, e.Coords, e.Height, e.Width)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
