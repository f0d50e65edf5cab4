package spectral

import (
	"errors"
	"fmt"

	"github.com/mjibson/go-dsp/fft"
)

var (
	// ErrEmptyInput is returned when a transform receives no samples
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidFFTLength is returned for FFT lengths that cannot describe a one-sided spectrum
	ErrInvalidFFTLength = errors.New("fft length must be even and at least 2")
)

// FFT wraps mjibson/go-dsp for the real-signal transforms used by the
// cepstral conversions
type FFT struct {
	// No state needed
}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the full complex FFT of a real signal
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	// mjibson/go-dsp handles all sizes, including non-power-of-2
	return fft.FFTReal(x)
}

// RFFT returns the real part of the one-sided spectrum of x (bins 0..n/2).
// x must have even length.
func (f *FFT) RFFT(x []float64) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n%2 != 0 {
		return nil, fmt.Errorf("rfft of length %d: %w", n, ErrInvalidFFTLength)
	}

	spectrum := f.Compute(x)

	out := make([]float64, n/2+1)
	for k := range out {
		out[k] = real(spectrum[k])
	}

	return out, nil
}

// IRFFT computes the inverse transform of a real-valued, one-sided spectrum of
// m bins, returning the real signal of length 2*(m-1). The spectrum is treated
// as Hermitian symmetric and the result is scaled by 1/n.
func (f *FFT) IRFFT(halfSpectrum []float64) ([]float64, error) {
	m := len(halfSpectrum)
	if m == 0 {
		return nil, ErrEmptyInput
	}

	n := 2 * (m - 1)
	if n < 2 {
		return nil, fmt.Errorf("irfft of %d bins: %w", m, ErrInvalidFFTLength)
	}

	full := make([]complex128, n)
	full[0] = complex(halfSpectrum[0], 0)
	for k := 1; k < m; k++ {
		full[k] = complex(halfSpectrum[k], 0)
		if k < m-1 {
			full[n-k] = full[k]
		}
	}

	// go-dsp's IFFT already divides by n
	signal := fft.IFFT(full)

	out := make([]float64, n)
	for i, v := range signal {
		out[i] = real(v)
	}

	return out, nil
}
