package spectral

import (
	"math"
)

// PowerSpectrum provides conversions between power and natural-log power
// representations of a one-sided spectrum
type PowerSpectrum struct {
	// No state needed - stateless calculation
}

// NewPowerSpectrum creates a new power spectrum calculator
func NewPowerSpectrum() *PowerSpectrum {
	return &PowerSpectrum{}
}

// LogPeriodogram returns the natural log of every bin. Non-positive bins are
// not floored; they become -Inf or NaN.
func (ps *PowerSpectrum) LogPeriodogram(powerSpectrum []float64) []float64 {
	logPower := make([]float64, len(powerSpectrum))
	for i, p := range powerSpectrum {
		logPower[i] = math.Log(p)
	}

	return logPower
}

// FromLog maps a natural-log power spectrum back to power
func (ps *PowerSpectrum) FromLog(logPower []float64) []float64 {
	power := make([]float64, len(logPower))
	for i, lp := range logPower {
		power[i] = math.Exp(lp)
	}

	return power
}

// NonPositiveBins returns the indices of bins whose logarithm is undefined
func (ps *PowerSpectrum) NonPositiveBins(powerSpectrum []float64) []int {
	var bins []int
	for i, p := range powerSpectrum {
		if !(p > 0) {
			bins = append(bins, i)
		}
	}

	return bins
}
