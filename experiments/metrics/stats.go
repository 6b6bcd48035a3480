package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Summarize reduces a series of observations to its mean and sample standard
// deviation.
func Summarize(name string, values []float64) Summary {
	if len(values) == 0 {
		return Summary{Name: name}
	}
	mean, std := stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		std = 0
	}
	return Summary{Name: name, Count: len(values), Mean: mean, StdDev: std}
}

// ZVal returns the two-tailed z-value for a confidence level given in
// percent.
func ZVal(confidence float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	return dist.Quantile((1 + confidence/100) / 2)
}

// WinRate returns the share of wins, draws counting half, together with the
// half-width of its normal-approximation confidence interval.
func WinRate(wins, draws, games int, confidence float64) (rate, margin float64) {
	if games == 0 {
		return 0, 0
	}
	n := float64(games)
	rate = (float64(wins) + float64(draws)/2) / n
	margin = ZVal(confidence) * math.Sqrt(rate*(1-rate)/n)
	return rate, margin
}
