package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "returns.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeries(t *testing.T) {
	path := writeCSV(t, "0.012\n-0.034\n0.007\n")

	series, err := Series(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.012, -0.034, 0.007}, series)
}

func TestSeries_SkipsHeaderRow(t *testing.T) {
	path := writeCSV(t, "date,return\n2026-01-02,0.012\n2026-01-03,-0.034\n")

	series, err := Series(path, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.012, -0.034}, series)
}

func TestSeries_BadValueAfterHeader(t *testing.T) {
	path := writeCSV(t, "return\n0.012\nnope\n")

	_, err := Series(path, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestSeries_ColumnOutOfRange(t *testing.T) {
	path := writeCSV(t, "0.012\n")

	_, err := Series(path, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "need column 3")
}

func TestSeries_MissingFile(t *testing.T) {
	_, err := Series(filepath.Join(t.TempDir(), "absent.csv"), 0)
	require.Error(t, err)
}

func TestSeries_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	series, err := Series(path, 0)
	require.NoError(t, err)
	assert.Empty(t, series)
}
