package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowerSpectrum_LogPeriodogram(t *testing.T) {
	ps := NewPowerSpectrum()

	logPower := ps.LogPeriodogram([]float64{1, math.E, 0.01})
	assert.InDelta(t, 0.0, logPower[0], 1e-15)
	assert.InDelta(t, 1.0, logPower[1], 1e-15)
	assert.InDelta(t, math.Log(0.01), logPower[2], 1e-15)

	assert.Empty(t, ps.LogPeriodogram(nil))
}

func TestPowerSpectrum_LogPeriodogramIsNotFloored(t *testing.T) {
	logPower := NewPowerSpectrum().LogPeriodogram([]float64{0, -1})
	assert.True(t, math.IsInf(logPower[0], -1))
	assert.True(t, math.IsNaN(logPower[1]))
}

func TestPowerSpectrum_FromLogInvertsLog(t *testing.T) {
	ps := NewPowerSpectrum()
	power := []float64{1, math.E, 0.01, 123.4}

	back := ps.FromLog(ps.LogPeriodogram(power))
	for i := range power {
		assert.InDeltaf(t, power[i], back[i], 1e-12*power[i], "bin %d", i)
	}

	assert.Equal(t, []float64{1}, ps.FromLog([]float64{0}))
}

func TestPowerSpectrum_NonPositiveBins(t *testing.T) {
	ps := NewPowerSpectrum()

	assert.Empty(t, ps.NonPositiveBins([]float64{1, 2, 3}))
	assert.Empty(t, ps.NonPositiveBins(nil))
	assert.Equal(t, []int{1, 3, 4}, ps.NonPositiveBins([]float64{1, 0, 2, -1, math.NaN()}))
}
