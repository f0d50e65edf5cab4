package cepstral

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// GNorm normalizes the gain of a generalized cepstrum. For gamma != 0 the
// gain is K = (1 + gamma*c[0])^(1/gamma) and the remaining coefficients are
// divided by 1 + gamma*c[0]. For gamma == 0 it reduces to K = exp(c[0]).
//
// When 1 + gamma*c[0] is negative, K is NaN.
func GNorm(c []float64, gamma float64) []float64 {
	out := make([]float64, len(c))
	if len(c) == 0 {
		return out
	}

	if gamma == 0 {
		copy(out[1:], c[1:])
		out[0] = math.Exp(c[0])
		return out
	}

	k := 1 + gamma*c[0]
	copy(out[1:], c[1:])
	floats.Scale(1/k, out[1:])
	out[0] = math.Pow(k, 1/gamma)

	return out
}

// IGNorm is the inverse of GNorm
func IGNorm(c []float64, gamma float64) []float64 {
	out := make([]float64, len(c))
	if len(c) == 0 {
		return out
	}

	if gamma == 0 {
		copy(out[1:], c[1:])
		out[0] = math.Log(c[0])
		return out
	}

	k := math.Pow(c[0], gamma)
	copy(out[1:], c[1:])
	floats.Scale(k, out[1:])
	out[0] = (k - 1) / gamma

	return out
}
