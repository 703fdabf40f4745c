// Package risk provides market risk metrics composed from the stats layer
package risk

import (
	"fmt"
	"math"

	"github.com/corpfin/riskstats/stats"
)

// Beta is the market risk coefficient β: the covariance of an asset's
// returns with a market benchmark, over the benchmark's own variance.
//
//	β = 1          moves exactly with the market
//	β > 1          more volatile than the market
//	0 < β < 1      less volatile than the market
//	β = 0          uncorrelated to the market
//	β < 0          negatively correlated to the market
//
// Beta is a named float64, so a precomputed ratio converts in with
// risk.Beta(v) and the raw value converts back out with float64(b).
type Beta float64

// NewBeta computes the beta of series against market.
//
// Both series must cover the same data points; a length mismatch makes
// the ratio meaningless for any timeframe and panics with both lengths.
// Two empty series return Beta(0) rather than the NaN that a
// zero-variance division would produce.
func NewBeta(series, market []float64) Beta {
	if len(series) != len(market) {
		panic(fmt.Sprintf("risk: beta series has %d points, market has %d; lengths must match", len(series), len(market)))
	}
	if len(series) == 0 {
		return Beta(0)
	}

	return Beta(stats.Covariance(series, market, nil) / stats.Variance(market, nil))
}

// IsOne reports whether the series moves exactly with the market.
// Equality is within 1e-6 to absorb floating-point noise; exact
// comparison would miss betas off from 1 only in the last few bits.
func (b Beta) IsOne() bool {
	return math.Abs(float64(b)-1.0) < 1e-6
}

// IsNegative reports a set sign bit. Negative zero counts as negative
// here, which a plain < 0 comparison would miss.
func (b Beta) IsNegative() bool {
	return math.Signbit(float64(b))
}

// IsPositive reports a clear sign bit; positive zero counts as positive.
func (b Beta) IsPositive() bool {
	return !math.Signbit(float64(b))
}

// Value returns the raw ratio.
func (b Beta) Value() float64 {
	return float64(b)
}
