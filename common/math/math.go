package math

import (
	"errors"
	"math"
)

var (
	errZeroValue       = errors.New("cannot calculate average of no values")
	errNotEnoughValues = errors.New("at least two values are required")
	errInvalidPeriods  = errors.New("periods must be greater than zero")
)

// ArithmeticAverage returns the mean of a series
func ArithmeticAverage(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errZeroValue
	}
	var sum float64
	for i := range values {
		sum += values[i]
	}
	return sum / float64(len(values)), nil
}

// SampleStandardDeviation uses Bessel's correction
func SampleStandardDeviation(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, errNotEnoughValues
	}
	mean, err := ArithmeticAverage(values)
	if err != nil {
		return 0, err
	}
	var combined float64
	for i := range values {
		combined += (values[i] - mean) * (values[i] - mean)
	}
	return math.Sqrt(combined / float64(len(values)-1)), nil
}

// DownsideDeviation is the sample deviation of the negative values in a
// series around zero. Positive values count as zero
func DownsideDeviation(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, errNotEnoughValues
	}
	var combined float64
	for i := range values {
		if values[i] < 0 {
			combined += values[i] * values[i]
		}
	}
	return math.Sqrt(combined / float64(len(values)-1)), nil
}

// ExcessReturns subtracts the per period risk free rate from each return
func ExcessReturns(returns []float64, riskFreeRate, periods float64) ([]float64, error) {
	if periods <= 0 {
		return nil, errInvalidPeriods
	}
	perPeriod := riskFreeRate / periods
	resp := make([]float64, len(returns))
	for i := range returns {
		resp[i] = returns[i] - perPeriod
	}
	return resp, nil
}

// CalculateSharpeRatio returns the annualised Sharpe ratio of a series of
// per period returns. A flat series has a ratio of zero
func CalculateSharpeRatio(returns []float64, riskFreeRate, periods float64) (float64, error) {
	excess, err := ExcessReturns(returns, riskFreeRate, periods)
	if err != nil {
		return 0, err
	}
	stdDev, err := SampleStandardDeviation(excess)
	if err != nil {
		return 0, err
	}
	if stdDev == 0 {
		return 0, nil
	}
	mean, err := ArithmeticAverage(excess)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(periods) * mean / stdDev, nil
}

// CalculateSortinoRatio is the Sharpe ratio with only downside volatility
// in the denominator
func CalculateSortinoRatio(returns []float64, riskFreeRate, periods float64) (float64, error) {
	excess, err := ExcessReturns(returns, riskFreeRate, periods)
	if err != nil {
		return 0, err
	}
	downside, err := DownsideDeviation(excess)
	if err != nil {
		return 0, err
	}
	if downside == 0 {
		return 0, nil
	}
	mean, err := ArithmeticAverage(excess)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(periods) * mean / downside, nil
}

// CalculateCompoundAnnualGrowthRate returns the growth rate as a fraction,
// where years is the number of intervals divided by the intervals per year.
// A close value at or below zero against a positive open is a total loss
// and returns -1
func CalculateCompoundAnnualGrowthRate(openValue, closeValue, intervalsPerYear, numberOfIntervals float64) (float64, error) {
	if intervalsPerYear <= 0 || numberOfIntervals <= 0 {
		return 0, errInvalidPeriods
	}
	if openValue == 0 {
		return 0, errZeroValue
	}
	ratio := closeValue / openValue
	if ratio <= 0 {
		return -1, nil
	}
	years := numberOfIntervals / intervalsPerYear
	return math.Pow(ratio, 1/years) - 1, nil
}
