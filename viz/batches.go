package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fizzbuzz/sequence"
)

// Batches draws count batches of length positions each as one heatmap:
// batch i occupies one row and covers positions
// offset + i·length + 1 … offset + (i+1)·length, colored by category.
// Batches are independent windows onto the same sequence; the figure
// makes the shared periodic texture across rows visible.
// Complexity: O(count · length).
// Errors: sequence.ErrBadBatch on non-positive count/length or negative offset.
func Batches(c sequence.Classifier, count, length int, offset int64, path string) error {
	if count < 1 || length < 1 || offset < 0 {
		return sequence.ErrBadBatch
	}

	cats, err := sequence.Categories(c, offset+1, offset+int64(count)*int64(length))
	if err != nil {
		return err
	}

	g := grid{
		cols: length,
		rows: count,
		at: func(col, row int) float64 {
			// Row 0 is drawn at the bottom; batch 0 belongs on top.
			batch := count - 1 - row

			return float64(cats[batch*length+col])
		},
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Batched categories: %d batches × %d positions (offset %d)", count, length, offset)
	p.X.Label.Text = "position within batch"
	p.Y.Label.Text = "batch"

	hm := plotter.NewHeatMap(g, moreland.SmoothBlueRed().Palette(16))
	p.Add(hm)

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
