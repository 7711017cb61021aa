package plotapp_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/fizzbuzz/internal/plotapp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the plot CLI with argv and returns (code, stdout, stderr).
func run(args ...string) (int, string, string) {
	var out, errBuf bytes.Buffer
	code := plotapp.Run(args, &out, &errBuf)

	return code, out.String(), errBuf.String()
}

// TestRun_EveryFigure renders each figure kind to a temp file.
func TestRun_EveryFigure(t *testing.T) {
	dir := t.TempDir()
	for _, plot := range []string{"waveform", "heatmap", "spectrum", "batches", "compact", "modular"} {
		path := filepath.Join(dir, plot+".png")
		code, out, errOut := run("-plot", plot, "-o", path)
		require.Equal(t, 0, code, "%s: %s", plot, errOut)
		assert.Contains(t, out, "wrote "+path)

		info, err := os.Stat(path)
		require.NoError(t, err, plot)
		assert.Greater(t, info.Size(), int64(0), "%s file must be non-empty", plot)
	}
}

// TestRun_MatrixNeedsTwoRules verifies the two-rule restriction maps to a
// usage error.
func TestRun_MatrixNeedsTwoRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "never.png")
	code, _, errOut := run("-plot", "compact", "-rules", "3=Fizz,5=Buzz,7=Bazz", "-o", path)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "exactly two rules")
}

// TestRun_UsageErrors covers flag validation exits.
func TestRun_UsageErrors(t *testing.T) {
	code, _, errOut := run("-plot", "pie", "-o", "x.png")
	assert.Equal(t, 2, code)
	assert.NotEmpty(t, errOut)

	code, _, _ = run()
	assert.Equal(t, 2, code, "-o is required")
}

// TestRun_Version verifies the version exit.
func TestRun_Version(t *testing.T) {
	code, out, _ := run("-version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "fizzbuzz-plot version")
}
