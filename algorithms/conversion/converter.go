// Package conversion converts between spectral-envelope representations:
// mel-generalized cepstrum to MGLSA filter coefficients and back, power
// spectrum to mel-cepstrum, and mel-cepstrum to power spectrum.
package conversion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/RyanBlaney/sonido-mcep/algorithms/cepstral"
	"github.com/RyanBlaney/sonido-mcep/algorithms/spectral"
	"github.com/RyanBlaney/sonido-mcep/logging"
)

// Converter applies the conversions with a fixed alpha and gamma.
// It holds no mutable state and is safe for concurrent use.
type Converter struct {
	config Config
	fft    *spectral.FFT
	power  *spectral.PowerSpectrum
	logger logging.Logger
}

// NewConverter creates a converter for the given parameters. A nil logger
// falls back to the global logger.
func NewConverter(config Config, logger logging.Logger) (*Converter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return newConverter(config, logger), nil
}

// NewDefaultConverter creates a converter with DefaultConfig
func NewDefaultConverter() *Converter {
	return newConverter(DefaultConfig(), nil)
}

func newConverter(config Config, logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.GetGlobalLogger()
	}

	return &Converter{
		config: config,
		fft:    spectral.NewFFT(),
		power:  spectral.NewPowerSpectrum(),
		logger: logger.WithFields(logging.Fields{
			"component": "cepstral_converter",
			"alpha":     config.Alpha,
			"gamma":     config.Gamma,
		}),
	}
}

// Config returns the converter's parameters
func (c *Converter) Config() Config {
	return c.config
}

// MGC2B converts a mel-generalized cepstrum to MGLSA filter coefficients of
// the same length. With gamma == 0 this is plain MC2B; otherwise the gain is
// normalized, stored as its natural log in b[0], and b[1:] is scaled by gamma.
func (c *Converter) MGC2B(mgc []float64) ([]float64, error) {
	if len(mgc) == 0 {
		return nil, fmt.Errorf("mgc2b: %w", cepstral.ErrEmptyInput)
	}

	b := cepstral.MC2B(mgc, c.config.Alpha)
	if c.config.Gamma == 0 {
		return b, nil
	}

	b = cepstral.GNorm(b, c.config.Gamma)

	if !(b[0] > 0) {
		c.logger.Warn("non-positive gain before log", logging.Fields{
			"function": "mgc2b",
			"gain":     b[0],
		})
	}

	b[0] = math.Log(b[0])
	floats.Scale(c.config.Gamma, b[1:])

	return b, nil
}

// B2MGC inverts MGC2B, recovering the mel-generalized cepstrum from MGLSA
// filter coefficients
func (c *Converter) B2MGC(b []float64) ([]float64, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("b2mgc: %w", cepstral.ErrEmptyInput)
	}

	if c.config.Gamma == 0 {
		return cepstral.B2MC(b, c.config.Alpha), nil
	}

	normalized := make([]float64, len(b))
	copy(normalized, b)
	normalized[0] = math.Exp(normalized[0])
	floats.Scale(1/c.config.Gamma, normalized[1:])

	return cepstral.B2MC(cepstral.IGNorm(normalized, c.config.Gamma), c.config.Alpha), nil
}

// SP2MC converts a one-sided power spectrum (fftlen/2+1 bins) to a
// mel-cepstrum of order+1 coefficients. The converter's gamma is not used.
//
// Bins must be strictly positive; zero or negative bins are logged and
// propagate as -Inf/NaN.
func (c *Converter) SP2MC(powerspec []float64, order int) ([]float64, error) {
	if bins := c.power.NonPositiveBins(powerspec); len(bins) > 0 {
		c.logger.Warn("non-positive power spectrum bins", logging.Fields{
			"function": "sp2mc",
			"bins":     len(bins),
			"first":    bins[0],
		})
	}

	// |X(ω)|² -> log|X(ω)|²
	logPeriodogram := c.power.LogPeriodogram(powerspec)

	// log|X(ω)|² -> c(m)
	ceps, err := c.fft.IRFFT(logPeriodogram)
	if err != nil {
		return nil, fmt.Errorf("sp2mc: inverse transform of log periodogram: %w", err)
	}
	ceps[0] /= 2

	// c(m) -> c~(m)
	mc, err := cepstral.Freqt(ceps, order, c.config.Alpha)
	if err != nil {
		return nil, fmt.Errorf("sp2mc: %w", err)
	}

	c.logger.Debug("converted power spectrum to mel-cepstrum", logging.Fields{
		"bins":  len(powerspec),
		"order": order,
	})

	return mc, nil
}

// MC2SP reconstructs the one-sided power spectrum (fftlen/2+1 bins) from a
// mel-cepstrum. fftlen must be even. The converter's gamma is not used.
func (c *Converter) MC2SP(mc []float64, fftlen int) ([]float64, error) {
	if fftlen < 2 || fftlen%2 != 0 {
		return nil, fmt.Errorf("mc2sp: fftlen %d: %w", fftlen, spectral.ErrInvalidFFTLength)
	}

	// c~(m) -> c(m)
	ceps, err := cepstral.Freqt(mc, fftlen/2, -c.config.Alpha)
	if err != nil {
		return nil, fmt.Errorf("mc2sp: %w", err)
	}
	ceps[0] *= 2

	symmetric := make([]float64, fftlen)
	symmetric[0] = ceps[0]
	for i := 1; i < len(ceps); i++ {
		symmetric[i] = ceps[i]
		symmetric[fftlen-i] = ceps[i]
	}

	// c(m) -> log|X(ω)|²
	logPower, err := c.fft.RFFT(symmetric)
	if err != nil {
		return nil, fmt.Errorf("mc2sp: %w", err)
	}

	c.logger.Debug("converted mel-cepstrum to power spectrum", logging.Fields{
		"order":  len(mc) - 1,
		"fftlen": fftlen,
	})

	// log|X(ω)|² -> |X(ω)|²
	return c.power.FromLog(logPower), nil
}

// MGC2B converts a mel-generalized cepstrum to MGLSA filter coefficients.
// The usual parameters are alpha = 0.35, gamma = 0.
//
// The package-level functions log through the global logger and skip
// Config.Validate, so an alpha with |alpha| >= 1 is used as given. Use
// NewConverter to have it rejected.
func MGC2B(mgc []float64, alpha, gamma float64) ([]float64, error) {
	return newConverter(Config{Alpha: alpha, Gamma: gamma}, nil).MGC2B(mgc)
}

// B2MGC is the inverse of MGC2B. alpha is not validated.
func B2MGC(b []float64, alpha, gamma float64) ([]float64, error) {
	return newConverter(Config{Alpha: alpha, Gamma: gamma}, nil).B2MGC(b)
}

// SP2MC converts a one-sided power spectrum to a mel-cepstrum of order+1
// coefficients. alpha is not validated.
func SP2MC(powerspec []float64, order int, alpha float64) ([]float64, error) {
	return newConverter(Config{Alpha: alpha}, nil).SP2MC(powerspec, order)
}

// MC2SP converts a mel-cepstrum to a one-sided power spectrum of fftlen/2+1
// bins. alpha is not validated.
func MC2SP(mc []float64, alpha float64, fftlen int) ([]float64, error) {
	return newConverter(Config{Alpha: alpha}, nil).MC2SP(mc, fftlen)
}
