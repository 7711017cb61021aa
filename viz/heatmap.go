package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fizzbuzz/sequence"
)

// Heatmap lays positions 1..size² out as a size×size grid, row by row
// from the top, colors each cell by its category, and saves the figure
// to path. The periodic texture of the classification shows as diagonal
// banding whenever size is not a multiple of the period.
// Complexity: O(size²).
func Heatmap(c sequence.Classifier, size int, path string) error {
	if size < 1 {
		return ErrBadSpan
	}

	cats, err := sequence.Categories(c, 1, int64(size)*int64(size))
	if err != nil {
		return err
	}

	g := grid{
		cols: size,
		rows: size,
		at: func(col, row int) float64 {
			// Row 0 is drawn at the bottom; position 1 belongs top-left.
			pos := (size-1-row)*size + col

			return float64(cats[pos])
		},
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Categories of positions 1..%d", size*size)
	p.X.Label.Text = "column"
	p.Y.Label.Text = "row"

	hm := plotter.NewHeatMap(g, moreland.SmoothBlueRed().Palette(16))
	p.Add(hm)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
