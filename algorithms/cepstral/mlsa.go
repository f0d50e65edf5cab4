package cepstral

// MC2B converts a mel-cepstrum to MLSA filter coefficients. The recursion
// runs from the last coefficient down: b[M] = mc[M], b[i] = mc[i] - alpha*b[i+1].
func MC2B(mc []float64, alpha float64) []float64 {
	b := make([]float64, len(mc))
	if len(mc) == 0 {
		return b
	}

	last := len(mc) - 1
	b[last] = mc[last]
	for i := last - 1; i >= 0; i-- {
		b[i] = mc[i] - alpha*b[i+1]
	}

	return b
}

// B2MC is the inverse of MC2B
func B2MC(b []float64, alpha float64) []float64 {
	mc := make([]float64, len(b))
	if len(b) == 0 {
		return mc
	}

	last := len(b) - 1
	mc[last] = b[last]
	for i := last - 1; i >= 0; i-- {
		mc[i] = b[i] + alpha*b[i+1]
	}

	return mc
}
