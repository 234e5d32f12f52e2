package pricing

import "gonum.org/v1/gonum/stat/distuv"

// normCDF computes the cumulative distribution function of the standard normal distribution.
// It returns the probability that a standard normal random variable is less than or equal to x.
func normCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}
