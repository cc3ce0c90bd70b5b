package stack

import "errors"

var (
	// ErrDimensions is returned for non-positive stack dimensions or pixel
	// data that does not match them.
	ErrDimensions = errors.New("stack: invalid dimensions")
	// ErrFrameSize is returned when a frame does not hold Width×Height pixels.
	ErrFrameSize = errors.New("stack: frame size mismatch")
	// ErrMaskSize is returned when a mask does not hold Width×Height pixels.
	ErrMaskSize = errors.New("stack: mask size mismatch")
	// ErrReferencePeaks is returned when the reference pixel has fewer than
	// two peaks, so no reference period exists.
	ErrReferencePeaks = errors.New("stack: reference section needs at least two peaks")
)
