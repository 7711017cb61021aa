// Package spectrum computes the discrete Fourier spectrum of the category
// waveform. Treating categories over positions 1..n as a real-valued
// signal makes the periodicity of the classification visible: every
// nonzero component sits at a multiple of 1/period.
//
// ⚙️ Usage:
//
//	t, _ := pattern.New(pattern.DefaultRules())
//	res, _ := spectrum.Analyze(t, 150)
//	f, m := res.Peak() // strongest non-DC component
//
// For the classic rules the energy concentrates at the per-divisor cycle
// frequencies (1/5, 2/5, 1/3), not at the composite fundamental 1/15 —
// the waveform is a weighted sum of the two divisor square-combs.
//
// Complexity: O(n log n) per analysis.
//
// Errors:
//   - ErrTooFewSamples — n must be ≥ 2
package spectrum
