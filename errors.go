package gaussbg

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSurface is returned by NewBackground when no surface is given.
	ErrNoSurface = errors.New("gaussbg: no drawing surface")

	// ErrInvalidConfig is returned for a configuration that cannot be used.
	ErrInvalidConfig = errors.New("gaussbg: invalid config")

	// ErrInvalidColor is returned when a layer color cannot be parsed.
	ErrInvalidColor = errors.New("gaussbg: invalid color")

	// ErrInvalidLayer is returned for a layer spec with negative counts.
	ErrInvalidLayer = errors.New("gaussbg: invalid layer")
)

// PixelAccessError reports that the pixels of a surface could not be read
// back or written for blurring. The frame that hit it is incomplete.
type PixelAccessError struct {
	Op  string // "read" or "write"
	Err error
}

func (e *PixelAccessError) Error() string {
	return fmt.Sprintf("gaussbg: cannot %s surface pixels: %v", e.Op, e.Err)
}

func (e *PixelAccessError) Unwrap() error {
	return e.Err
}
