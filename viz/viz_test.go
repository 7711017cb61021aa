package viz_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/fizzbuzz/compact"
	"github.com/katalvlaran/fizzbuzz/modular"
	"github.com/katalvlaran/fizzbuzz/pattern"
	"github.com/katalvlaran/fizzbuzz/sequence"
	"github.com/katalvlaran/fizzbuzz/spectrum"
	"github.com/katalvlaran/fizzbuzz/viz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePNG asserts that path exists and holds a non-empty PNG file.
func requirePNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "plot file must exist")
	assert.Greater(t, info.Size(), int64(0), "plot file must be non-empty")

	head := make([]byte, 8)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	_, err = io.ReadFull(f, head)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, head, "PNG signature")
}

// TestWaveform_WritesPNG renders five periods of the default table.
func TestWaveform_WritesPNG(t *testing.T) {
	tab, err := pattern.New(pattern.DefaultRules())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "waveform.png")
	require.NoError(t, viz.Waveform(tab, 5, path))
	requirePNG(t, path)
}

// TestWaveform_BadSpan covers the span boundary.
func TestWaveform_BadSpan(t *testing.T) {
	tab, err := pattern.New(pattern.DefaultRules())
	require.NoError(t, err)

	err = viz.Waveform(tab, 0, filepath.Join(t.TempDir(), "never.png"))
	assert.ErrorIs(t, err, viz.ErrBadSpan)
}

// TestHeatmap_WritesPNG renders a 20×20 position grid.
func TestHeatmap_WritesPNG(t *testing.T) {
	tab, err := pattern.New(pattern.DefaultRules())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "heatmap.png")
	require.NoError(t, viz.Heatmap(tab, 20, path))
	requirePNG(t, path)

	err = viz.Heatmap(tab, 0, filepath.Join(t.TempDir(), "never.png"))
	assert.ErrorIs(t, err, viz.ErrBadSpan)
}

// TestSpectrum_WritesPNG renders the spectrum of ten periods.
func TestSpectrum_WritesPNG(t *testing.T) {
	tab, err := pattern.New(pattern.DefaultRules())
	require.NoError(t, err)
	res, err := spectrum.Analyze(tab, 150)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "spectrum.png")
	require.NoError(t, viz.Spectrum(res, path))
	requirePNG(t, path)
}

// TestBatches_WritesPNG renders three batches of ten positions and
// covers the batch-argument boundary.
func TestBatches_WritesPNG(t *testing.T) {
	tab, err := pattern.New(pattern.DefaultRules())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "batches.png")
	require.NoError(t, viz.Batches(tab, 3, 10, 0, path))
	requirePNG(t, path)

	// Offset shifts every row the same way.
	path = filepath.Join(t.TempDir(), "batches_offset.png")
	require.NoError(t, viz.Batches(tab, 2, 5, 100, path))
	requirePNG(t, path)

	never := filepath.Join(t.TempDir(), "never.png")
	assert.ErrorIs(t, viz.Batches(tab, 0, 10, 0, never), sequence.ErrBadBatch)
	assert.ErrorIs(t, viz.Batches(tab, 3, 0, 0, never), sequence.ErrBadBatch)
	assert.ErrorIs(t, viz.Batches(tab, 3, 10, -1, never), sequence.ErrBadBatch)
}

// TestMatrixPlots_TwoRuleOnly verifies the matrix heatmaps and their
// two-rule restriction.
func TestMatrixPlots_TwoRuleOnly(t *testing.T) {
	dir := t.TempDir()

	ct, err := compact.New(pattern.DefaultRules())
	require.NoError(t, err)
	path := filepath.Join(dir, "compact.png")
	require.NoError(t, viz.CompactMatrix(ct, path))
	requirePNG(t, path)

	mt, err := modular.New(pattern.DefaultRules())
	require.NoError(t, err)
	path = filepath.Join(dir, "modular.png")
	require.NoError(t, viz.ModularMatrix(mt, path))
	requirePNG(t, path)

	three := []pattern.Rule{
		{Divisor: 3, Label: "Fizz"},
		{Divisor: 5, Label: "Buzz"},
		{Divisor: 7, Label: "Bazz"},
	}
	ct3, err := compact.New(three)
	require.NoError(t, err)
	assert.ErrorIs(t, viz.CompactMatrix(ct3, filepath.Join(dir, "never.png")), viz.ErrNotTwoRules)

	mt3, err := modular.New(three)
	require.NoError(t, err)
	assert.ErrorIs(t, viz.ModularMatrix(mt3, filepath.Join(dir, "never.png")), viz.ErrNotTwoRules)
}
