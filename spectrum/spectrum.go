package spectrum

import (
	"errors"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/fizzbuzz/sequence"
)

// ErrTooFewSamples indicates an analysis window shorter than two samples.
var ErrTooFewSamples = errors.New("spectrum: need at least 2 samples")

// Result holds one-sided spectrum data for a category waveform.
// Immutable once returned.
type Result struct {
	freqs  []float64
	mags   []float64
	period int64
	n      int
}

// Analyze runs a real FFT over the categories of positions 1..n and
// returns the one-sided magnitude spectrum (n/2+1 bins, frequencies in
// cycles per position).
// Complexity: O(n log n). Errors: ErrTooFewSamples, plus any classifier error.
func Analyze(c sequence.Classifier, n int) (*Result, error) {
	if n < 2 {
		return nil, ErrTooFewSamples
	}
	cats, err := sequence.Categories(c, 1, int64(n))
	if err != nil {
		return nil, err
	}

	data := make([]float64, n)
	for i, cat := range cats {
		data[i] = float64(cat)
	}

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, data)

	freqs := make([]float64, len(coeffs))
	mags := make([]float64, len(coeffs))
	for i, co := range coeffs {
		freqs[i] = fft.Freq(i)
		mags[i] = cmplx.Abs(co)
	}

	return &Result{freqs: freqs, mags: mags, period: c.Period(), n: n}, nil
}

// Len returns the number of spectrum bins: n/2 + 1.
func (r *Result) Len() int { return len(r.mags) }

// Samples returns the analysis window length n.
func (r *Result) Samples() int { return r.n }

// Frequencies returns a copy of the bin frequencies in cycles per position,
// bin i at i/n.
func (r *Result) Frequencies() []float64 {
	cp := make([]float64, len(r.freqs))
	copy(cp, r.freqs)

	return cp
}

// Magnitudes returns a copy of the unnormalized bin magnitudes.
func (r *Result) Magnitudes() []float64 {
	cp := make([]float64, len(r.mags))
	copy(cp, r.mags)

	return cp
}

// Fundamental returns 1/period, the lowest frequency at which any
// component of the waveform can appear.
func (r *Result) Fundamental() float64 { return 1 / float64(r.period) }

// Peak returns the frequency and magnitude of the strongest non-DC bin.
// Ties resolve to the lowest frequency.
func (r *Result) Peak() (freq, mag float64) {
	best := 1
	for i := 2; i < len(r.mags); i++ {
		if r.mags[i] > r.mags[best] {
			best = i
		}
	}

	return r.freqs[best], r.mags[best]
}
