package stack

import "fmt"

// PeakValue marks a peak in a peak stack.
const PeakValue = 255

// Stack is a frame-major 8-bit image stack. Pixel (x, y) of frame z is
// stored at Pix[(z*Height+y)*Width+x].
type Stack struct {
	Width, Height, Depth int
	Pix                  []uint8
}

// New returns a zeroed stack.
func New(width, height, depth int) (*Stack, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrDimensions, width, height, depth)
	}

	return &Stack{
		Width:  width,
		Height: height,
		Depth:  depth,
		Pix:    make([]uint8, width*height*depth),
	}, nil
}

// FromFrames builds a stack from frames of width×height pixels each, in
// row-major order. The pixel data is copied.
func FromFrames(width, height int, frames [][]uint8) (*Stack, error) {
	s, err := New(width, height, len(frames))
	if err != nil {
		return nil, err
	}

	size := width * height
	for z, frame := range frames {
		if len(frame) != size {
			return nil, fmt.Errorf("%w: frame %d has %d pixels, want %d", ErrFrameSize, z, len(frame), size)
		}

		copy(s.Pix[z*size:], frame)
	}

	return s, nil
}

// Validate reports whether the dimensions are positive and match Pix.
func (s *Stack) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil stack", ErrDimensions)
	}

	if s.Width <= 0 || s.Height <= 0 || s.Depth <= 0 {
		return fmt.Errorf("%w: %dx%dx%d", ErrDimensions, s.Width, s.Height, s.Depth)
	}

	if want := s.Width * s.Height * s.Depth; len(s.Pix) != want {
		return fmt.Errorf("%w: %d pixels, want %d", ErrDimensions, len(s.Pix), want)
	}

	return nil
}

func (s *Stack) offset(x, y, z int) int {
	return (z*s.Height+y)*s.Width + x
}

// At returns the pixel at (x, y) in frame z.
func (s *Stack) At(x, y, z int) uint8 {
	return s.Pix[s.offset(x, y, z)]
}

// Set stores v at (x, y) in frame z.
func (s *Stack) Set(x, y, z int, v uint8) {
	s.Pix[s.offset(x, y, z)] = v
}

// Frame returns frame z as a sub-slice of Pix.
func (s *Stack) Frame(z int) []uint8 {
	size := s.Width * s.Height
	return s.Pix[z*size : (z+1)*size]
}

// Section returns the values of pixel (x, y) across all frames.
func (s *Stack) Section(x, y int) []int {
	out := make([]int, s.Depth)
	for z := range out {
		out[z] = int(s.At(x, y, z))
	}

	return out
}
