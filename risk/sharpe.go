package risk

import "github.com/corpfin/riskstats/stats"

// machineEpsilon is the ulp of 1.0 in IEEE-754 double precision.
// Standard deviations below it are treated as zero instead of being used
// as a denominator.
const machineEpsilon = 2.220446049250313e-16

// Sharpe returns the Sharpe ratio of a return series against the
// risk-free rate. The portfolio return is Mean(series) and the standard
// deviation comes from the population variance computed with that same
// mean passed through, so the mean is evaluated once.
func Sharpe(series []float64, riskFree float64) float64 {
	rp := stats.Mean(series)
	sd := stats.StdDev(stats.Variance(series, &rp))
	return sharpe(rp, riskFree, sd)
}

// SharpeFromSummary returns the Sharpe ratio from already-annualized
// summary figures, for callers holding no raw series. Both the portfolio
// return and the standard deviation are required; the signature enforces
// that.
func SharpeFromSummary(portfolioReturn, riskFree, stdDev float64) float64 {
	return sharpe(portfolioReturn, riskFree, stdDev)
}

func sharpe(rp, rf, sd float64) float64 {
	if sd < machineEpsilon {
		return 0.0
	}
	return (rp - rf) / sd
}
