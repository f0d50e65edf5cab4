// Package cepstral implements the cepstral primitives used by speech
// spectral-envelope conversions: frequency warping (freqt), mel-cepstrum and
// MLSA filter coefficient conversion (mc2b, b2mc) and gain normalization
// under the generalized logarithm (gnorm, ignorm).
package cepstral

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when a cepstrum has no coefficients
	ErrEmptyInput = errors.New("empty cepstrum")

	// ErrNegativeOrder is returned when the requested output order is below zero
	ErrNegativeOrder = errors.New("order must be non-negative")
)

// Freqt re-expresses the cepstrum c under the all-pass warping constant alpha
// and returns order+1 coefficients. A positive alpha warps a linear-frequency
// cepstrum towards the mel scale; -alpha undoes it.
//
// The input is consumed from its highest quefrency down (an all-pass filter
// bank driven by the time-reversed sequence), so input longer than order+1 is
// folded in rather than truncated.
func Freqt(c []float64, order int, alpha float64) ([]float64, error) {
	if len(c) == 0 {
		return nil, ErrEmptyInput
	}
	if order < 0 {
		return nil, fmt.Errorf("freqt to order %d: %w", order, ErrNegativeOrder)
	}

	beta := 1 - alpha*alpha
	g := make([]float64, order+1)
	d := make([]float64, order+1)

	for i := len(c) - 1; i >= 0; i-- {
		copy(d, g)

		g[0] = c[i] + alpha*d[0]
		if order >= 1 {
			g[1] = beta*d[0] + alpha*d[1]
		}
		for j := 2; j <= order; j++ {
			g[j] = d[j-1] + alpha*(d[j]-g[j-1])
		}
	}

	return g, nil
}
