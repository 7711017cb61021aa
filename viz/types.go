// Package viz defines plot errors and the shared grid adapter.
package viz

import "errors"

// Sentinel errors for plot construction.
var (
	// ErrBadSpan indicates a non-positive periods or size argument.
	ErrBadSpan = errors.New("viz: plot span must be ≥ 1")
	// ErrNotTwoRules indicates a matrix plot over a rule set that is not
	// exactly two rules; only the 2-D cell layout is drawn.
	ErrNotTwoRules = errors.New("viz: matrix plots are defined for exactly two rules")
)

// grid adapts a dense 2-D cell function to plotter.GridXYZ.
// at receives the column and row index; axis values are the indices
// themselves.
type grid struct {
	cols, rows int
	at         func(c, r int) float64
}

func (g grid) Dims() (int, int)   { return g.cols, g.rows }
func (g grid) Z(c, r int) float64 { return g.at(c, r) }
func (g grid) X(c int) float64    { return float64(c) }
func (g grid) Y(r int) float64    { return float64(r) }
