package peaks

import (
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/cwbudde/algo-peaks/dsp/core"
	"github.com/cwbudde/algo-peaks/dsp/parabola"
)

const minPeriodSamples = 4

// EstimatePeriod returns the dominant repetition period of trace in samples.
//
// The mean-removed trace is autocorrelated via FFT. The search starts after
// the first lag at which the normalized autocorrelation drops to zero or
// below, and picks the largest positive local maximum in [minLag, maxLag].
// The lag is refined to sub-sample precision with a parabola through the
// maximum and its two neighbours.
//
// minLag below 1 is raised to 1; maxLag <= 0 or beyond the trace selects
// len(trace)-2.
func EstimatePeriod(trace []float64, minLag, maxLag int) (float64, error) {
	n := len(trace)
	if n < minPeriodSamples {
		return 0, fmt.Errorf("%w: %d samples, need %d", ErrTraceTooShort, n, minPeriodSamples)
	}

	minLag = max(minLag, 1)
	if maxLag <= 0 || maxLag > n-2 {
		maxLag = n - 2
	}

	if minLag > maxLag {
		return 0, fmt.Errorf("%w: empty lag range [%d, %d]", ErrNoPeriod, minLag, maxLag)
	}

	mean := core.Mean(trace)
	centred := make([]float64, n)
	for i, v := range trace {
		centred[i] = v - mean
	}

	if core.Dot(centred, centred) == 0 {
		return 0, ErrFlatTrace
	}

	acf, err := autocorrelate(centred)
	if err != nil {
		return 0, err
	}

	start := 1
	for start < n && acf[start] > 0 {
		start++
	}

	if start >= n {
		return 0, fmt.Errorf("%w: autocorrelation never decays", ErrNoPeriod)
	}

	best := -1
	for lag := max(start, minLag); lag <= maxLag; lag++ {
		v := acf[lag]
		if v <= 0 || v < acf[lag-1] || v < acf[lag+1] {
			continue
		}

		if best < 0 || v > acf[best] {
			best = lag
		}
	}

	if best < 0 {
		return 0, fmt.Errorf("%w: no positive autocorrelation maximum in [%d, %d]", ErrNoPeriod, minLag, maxLag)
	}

	fit := parabola.Fit(acf[best-1 : best+2])
	if x, ok := fit.Apex(); ok && fit.Concave() && x >= 0 && x <= 2 {
		return float64(best-1) + x, nil
	}

	return float64(best), nil
}

// DistanceFromPeriod suggests a MinDistance for peaks repeating with the
// given period: half the period, at least 2. Periods that are not positive
// and finite yield the default distance.
func DistanceFromPeriod(period float64) float64 {
	if !(period > 0) || math.IsInf(period, 0) {
		return defaultMinDistance
	}

	return max(period/2, minMinDistance)
}

// autocorrelate returns the linear autocorrelation of x for lags 0..len(x)-1,
// normalized by the zero-lag value.
func autocorrelate(x []float64) ([]float64, error) {
	n := len(x)
	fftSize := nextPowerOf2(2 * n)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("peaks: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range x {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("peaks: forward FFT failed: %w", err)
	}

	for i, v := range freq {
		freq[i] = complex(real(v)*real(v)+imag(v)*imag(v), 0)
	}

	lagged := make([]complex128, fftSize)
	if err := plan.Inverse(lagged, freq); err != nil {
		return nil, fmt.Errorf("peaks: inverse FFT failed: %w", err)
	}

	acf := make([]float64, n)
	zero := real(lagged[0])
	for i := range acf {
		acf[i] = real(lagged[i]) / zero
	}

	return acf, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}

	return p
}
