// Package fizzbuzz is the branch-free FizzBuzz playground: build a
// lookup table once, index into it forever.
//
// 🚀 What is fizzbuzz?
//
//	The classification "which divisors divide position p" repeats with
//	period LCM(divisors). This module turns that observation into three
//	interchangeable table encodings plus the glue around them:
//		• pattern/  — the period-sized vector: one modulo, one lookup
//		• compact/  — the 2^k binary tensor: k modulos, four cells for classic rules
//		• modular/  — the remainder-indexed tensor: the Cartesian structure laid bare
//		• sequence/ — range and batched evaluation over any encoding
//		• spectrum/ — FFT of the category waveform (the periodicity, visualized)
//		• viz/      — PNG figures: waveform, heatmap, spectrum, cell matrices
//
// ✨ Why choose fizzbuzz?
//
//   - No branches – categories are bitmasks read straight out of a table
//   - Arbitrary rules – any set of positive divisors with labels, not just 3/5
//   - Provably equivalent encodings – one contract, three storage layouts
//   - Immutable tables – build once, query from any number of goroutines
//
// Quick taste:
//
//	t, _ := pattern.New(pattern.DefaultRules())
//	for p := int64(1); p <= 15; p++ {
//		s, _ := t.Render(p)
//		fmt.Println(s)
//	}
//
// Binaries live under cmd/: fizzbuzz (transcripts, table dumps,
// representation comparison, batches, JSON) and fizzbuzz-plot (PNG
// figures).
package fizzbuzz
