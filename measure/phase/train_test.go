package phase

import (
	"math"
	"slices"
	"testing"
)

func TestPositiveIndices(t *testing.T) {
	if got := PositiveIndices([]uint8{0, 255, 0, 3}); !slices.Equal(got, []int{1, 3}) {
		t.Fatalf("uint8: got %v", got)
	}
	if got := PositiveIndices([]int{-1, 0, 2, 0}); !slices.Equal(got, []int{2}) {
		t.Fatalf("int: got %v", got)
	}
	if got := PositiveIndices([]float64{0.5, -0.5, math.NaN(), 1}); !slices.Equal(got, []int{0, 3}) {
		t.Fatalf("float64: got %v", got)
	}
	if got := PositiveIndices([]int(nil)); len(got) != 0 {
		t.Fatalf("nil: got %v", got)
	}
}

func TestCountPositive(t *testing.T) {
	if got := CountPositive([]uint8{0, 255, 0, 3, 1}); got != 3 {
		t.Fatalf("CountPositive = %d, want 3", got)
	}
	if got := CountPositive([]int{-4, 0}); got != 0 {
		t.Fatalf("CountPositive = %d, want 0", got)
	}
}

func TestMeanPeriod(t *testing.T) {
	train := []int{30, 10, 20, 50}

	if got, want := MeanPeriod(train), 40.0/3; math.Abs(got-want) > 1e-12 {
		t.Fatalf("MeanPeriod = %v, want %v", got, want)
	}
	if !slices.Equal(train, []int{30, 10, 20, 50}) {
		t.Fatalf("train modified: %v", train)
	}
	if got := MeanPeriod([]int{4}); got != 0 {
		t.Fatalf("single peak: got %v, want 0", got)
	}
	if got := MeanPeriod(nil); got != 0 {
		t.Fatalf("empty: got %v, want 0", got)
	}
}

func TestDegrees(t *testing.T) {
	tests := []struct{ rad, want float64 }{
		{rad: 0, want: 0},
		{rad: math.Pi, want: 180},
		{rad: -math.Pi / 2, want: -90},
	}

	for _, tt := range tests {
		if got := Degrees(tt.rad); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("Degrees(%v) = %v, want %v", tt.rad, got, tt.want)
		}
	}
}

func TestBeatsPerMinute(t *testing.T) {
	tests := []struct {
		peaks, frames int
		rate          float64
		want          float64
	}{
		{peaks: 10, frames: 240, rate: 24, want: 60},
		{peaks: 3, frames: 300, rate: 10, want: 6},
		{peaks: 0, frames: 100, rate: 24, want: 0},
		{peaks: 5, frames: 0, rate: 24, want: 0},
		{peaks: 5, frames: 100, rate: 0, want: 0},
		{peaks: 5, frames: 100, rate: math.NaN(), want: 0},
	}

	for _, tt := range tests {
		if got := BeatsPerMinute(tt.peaks, tt.frames, tt.rate); math.Abs(got-tt.want) > 1e-12 {
			t.Fatalf("BeatsPerMinute(%d, %d, %v) = %v, want %v", tt.peaks, tt.frames, tt.rate, got, tt.want)
		}
	}
}
