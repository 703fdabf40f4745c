package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharpeFromSummary(t *testing.T) {
	// One-year portfolio return of 18%, risk-free rate 3%, annualized
	// standard deviation 12%.
	assert.Equal(t, 1.25, SharpeFromSummary(0.18, 0.03, 0.12))
}

func TestSharpe_SeriesMode(t *testing.T) {
	assert.Equal(t, -3.024907069875915, Sharpe(itc, 0.03))
}

func TestSharpe_NearZeroDeviationFallsBackToZero(t *testing.T) {
	assert.Equal(t, 0.0, SharpeFromSummary(0.18, 0.03, 0.0))
	assert.Equal(t, 0.0, SharpeFromSummary(0.18, 0.03, 1e-17))
}

func TestSharpe_ConstantSeriesFallsBackToZero(t *testing.T) {
	// Zero variance resolves to a zero standard deviation, which must
	// not become a denominator.
	constant := []float64{0.05, 0.05, 0.05, 0.05}
	assert.Equal(t, 0.0, Sharpe(constant, 0.03))
}
