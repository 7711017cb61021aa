package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fizzbuzz/spectrum"
)

// Spectrum plots the one-sided magnitude spectrum of a category waveform
// with a dashed marker at the fundamental frequency 1/period, and saves
// the figure to path.
// Complexity: O(bins).
func Spectrum(res *spectrum.Result, path string) error {
	freqs := res.Frequencies()
	mags := res.Magnitudes()

	pts := make(plotter.XYs, len(mags))
	var maxMag float64
	for i := range mags {
		pts[i].X = freqs[i]
		pts[i].Y = mags[i]
		if mags[i] > maxMag {
			maxMag = mags[i]
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Magnitude spectrum (%d samples)", res.Samples())
	p.X.Label.Text = "frequency (cycles/position)"
	p.Y.Label.Text = "magnitude"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 180, A: 255}
	p.Add(plotter.NewGrid(), line)

	fund := res.Fundamental()
	marker, err := plotter.NewLine(plotter.XYs{{X: fund, Y: 0}, {X: fund, Y: maxMag}})
	if err != nil {
		return err
	}
	marker.Color = color.RGBA{R: 200, A: 255}
	marker.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(marker)

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
