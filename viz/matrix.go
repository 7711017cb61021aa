package viz

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/fizzbuzz/compact"
	"github.com/katalvlaran/fizzbuzz/modular"
)

// CompactMatrix draws the 2×2 cell matrix of a two-rule compact table —
// x axis: second rule's flag, y axis: first rule's flag — and saves the
// figure to path.
// Errors: ErrNotTwoRules for any other rule count.
func CompactMatrix(t *compact.Table, path string) error {
	rules := t.Rules()
	if len(rules) != 2 {
		return ErrNotTwoRules
	}

	return saveMatrix(
		fmt.Sprintf("Compact matrix: [div %d?][div %d?]", rules[0].Divisor, rules[1].Divisor),
		fmt.Sprintf("divisible by %d", rules[1].Divisor),
		fmt.Sprintf("divisible by %d", rules[0].Divisor),
		2, 2,
		func(col, row int) float64 {
			c, err := t.At(int64(row), int64(col))
			if err != nil {
				return 0
			}

			return float64(c)
		},
		path,
	)
}

// ModularMatrix draws the d0×d1 remainder matrix of a two-rule modular
// table — x axis: remainder mod the second divisor, y axis: remainder mod
// the first — and saves the figure to path.
// Errors: ErrNotTwoRules for any other rule count.
func ModularMatrix(t *modular.Table, path string) error {
	rules := t.Rules()
	if len(rules) != 2 {
		return ErrNotTwoRules
	}

	return saveMatrix(
		fmt.Sprintf("Modular matrix: [n%%%d][n%%%d]", rules[0].Divisor, rules[1].Divisor),
		fmt.Sprintf("n mod %d", rules[1].Divisor),
		fmt.Sprintf("n mod %d", rules[0].Divisor),
		int(rules[1].Divisor), int(rules[0].Divisor),
		func(col, row int) float64 {
			c, err := t.At(int64(row), int64(col))
			if err != nil {
				return 0
			}

			return float64(c)
		},
		path,
	)
}

// saveMatrix renders one cols×rows category grid as a heatmap PNG.
func saveMatrix(title, xLabel, yLabel string, cols, rows int, at func(col, row int) float64, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	hm := plotter.NewHeatMap(
		grid{cols: cols, rows: rows, at: at},
		moreland.SmoothBlueRed().Palette(4),
	)
	p.Add(hm)

	return p.Save(5*vg.Inch, 5*vg.Inch, path)
}
