// Package viz renders divisibility tables as PNG images: the category
// waveform over several periods, a 2-D position heatmap, the frequency
// spectrum, a per-batch category heatmap, and the cell matrices of the
// compact and modular encodings.
//
// Everything here is presentation; no new semantics. Each function builds
// its figure from the public query surface of the table packages and
// writes one image file.
//
// ⚙️ Usage:
//
//	t, _ := pattern.New(pattern.DefaultRules())
//	err := viz.Waveform(t, 5, "fizzbuzz_waveform.png")
//
// Errors:
//   - ErrBadSpan — non-positive periods/size arguments
//   - ErrNotTwoRules — matrix plots are drawn for exactly two rules
//   - sequence.ErrBadBatch — bad batch arguments to the batched figure
package viz
