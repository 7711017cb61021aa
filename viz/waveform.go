package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/fizzbuzz/sequence"
)

// Waveform plots the category value of every position across the given
// number of periods, with a dashed vertical marker at each period
// boundary, and saves the figure to path.
// Complexity: O(periods · period).
func Waveform(c sequence.Classifier, periods int, path string) error {
	if periods < 1 {
		return ErrBadSpan
	}
	period := c.Period()
	n := int64(periods) * period

	cats, err := sequence.Categories(c, 1, n)
	if err != nil {
		return err
	}

	pts := make(plotter.XYs, n)
	var maxCat float64
	for i, cat := range cats {
		pts[i].X = float64(i + 1)
		pts[i].Y = float64(cat)
		if pts[i].Y > maxCat {
			maxCat = pts[i].Y
		}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Category waveform over %d period(s) of %d", periods, period)
	p.X.Label.Text = "position"
	p.Y.Label.Text = "category"

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{B: 180, A: 255}

	dots, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	dots.GlyphStyle.Shape = draw.CircleGlyph{}
	dots.GlyphStyle.Radius = vg.Points(1.5)
	dots.GlyphStyle.Color = color.RGBA{B: 180, A: 255}

	p.Add(plotter.NewGrid(), line, dots)

	// Period boundary markers.
	for b := int64(1); b <= int64(periods); b++ {
		x := float64(b * period)
		marker, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: maxCat}})
		if err != nil {
			return err
		}
		marker.Color = color.RGBA{R: 200, A: 255}
		marker.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(marker)
	}

	return p.Save(12*vg.Inch, 4*vg.Inch, path)
}
