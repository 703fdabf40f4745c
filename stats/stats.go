// Package stats provides descriptive statistics over float64 return series
package stats

import (
	"fmt"
	"math"
)

// Mean returns the arithmetic mean (sum / N) of series.
//
// An empty series divides zero by zero and yields NaN. The primitives in
// this package are total functions; guarding "no data" belongs to the
// layer that knows what it means (see risk.NewBeta for the pattern).
func Mean(series []float64) float64 {
	sum := 0.0
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

// Variance returns the population variance of series: the average of the
// squared deviations from the mean, divisor N (not the N-1 sample form).
//
// A non-nil preMean is used verbatim and the mean is never recomputed;
// callers may intentionally pass a value that differs from Mean(series)
// to decouple the deviation base from the series itself. A nil preMean
// computes Mean(series) internally. Empty series yield NaN, as with Mean.
func Variance(series []float64, preMean *float64) float64 {
	var m float64
	if preMean != nil {
		m = *preMean
	} else {
		m = Mean(series)
	}

	sum := 0.0
	for _, v := range series {
		diff := v - m
		sum += diff * diff
	}
	return sum / float64(len(series))
}

// Means carries a precomputed mean pair for Covariance. The pair travels
// as one value: supplying half of it is not representable.
type Means struct {
	X float64
	Y float64
}

// Covariance returns the population covariance of the paired series x and
// y, divisor N. Position i in x corresponds to position i in y, so the
// series must have equal length; a mismatch is a caller bug and panics
// with both lengths. A non-nil pre supplies both means verbatim; nil
// computes Mean(x) and Mean(y).
func Covariance(x, y []float64, pre *Means) float64 {
	if len(x) != len(y) {
		panic(fmt.Sprintf("stats: covariance series length mismatch: x has %d points, y has %d", len(x), len(y)))
	}

	var mx, my float64
	if pre != nil {
		mx, my = pre.X, pre.Y
	} else {
		mx, my = Mean(x), Mean(y)
	}

	sum := 0.0
	for i := range x {
		sum += (x[i] - mx) * (y[i] - my)
	}
	return sum / float64(len(x))
}

// StdDev returns the non-negative square root of variance. The input is
// an already-computed variance, not a series, so there is no empty-input
// case; a negative input yields NaN per math.Sqrt and is not guarded.
func StdDev(variance float64) float64 {
	return math.Sqrt(variance)
}
