package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// ParabolicBumps returns a trace of the given length with a downward parabola
// of the given height and half-width (where it reaches zero) centred on each
// position. Samples outside every bump are 0; overlapping bumps take the maximum.
func ParabolicBumps(length int, height, halfWidth float64, centers ...int) []float64 {
	out := make([]float64, length)
	for _, c := range centers {
		for i := range out {
			d := float64(i - c)
			v := height * (1 - (d*d)/(halfWidth*halfWidth))
			if v > out[i] {
				out[i] = v
			}
		}
	}
	return out
}

// PulseTrain returns the positions start, start+period, ... below length.
func PulseTrain(length, start, period int) []int {
	if period <= 0 {
		return nil
	}
	var out []int
	for i := start; i < length; i += period {
		if i >= 0 {
			out = append(out, i)
		}
	}
	return out
}

// CalciumTrace returns an 8-bit-like trace with a baseline and a fast-rise,
// exponential-decay transient at every pulse position.
func CalciumTrace(length int, baseline, amplitude, decay float64, pulses []int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = baseline
	}
	for _, p := range pulses {
		for i := p; i < length; i++ {
			out[i] += amplitude * math.Exp(-float64(i-p)/decay)
		}
	}
	return out
}

// Quantize rounds x to integers clamped into [0, 255].
func Quantize(x []float64) []int {
	out := make([]int, len(x))
	for i, v := range x {
		r := int(math.Round(v))
		if r < 0 {
			r = 0
		}
		if r > 255 {
			r = 255
		}
		out[i] = r
	}
	return out
}
