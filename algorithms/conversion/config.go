package conversion

import (
	"errors"
	"fmt"
)

// ErrInvalidAlpha is returned when the all-pass constant is outside (-1, 1)
var ErrInvalidAlpha = errors.New("alpha must be in (-1, 1)")

// Config holds the warping and generalized-log parameters shared by a Converter
type Config struct {
	Alpha float64 `json:"alpha"` // All-pass constant (default: 0.35)
	Gamma float64 `json:"gamma"` // Generalized log parameter, 0 selects the ordinary log (default: 0)
}

// DefaultConfig returns the usual parameters for 16kHz speech
func DefaultConfig() Config {
	return Config{
		Alpha: 0.35,
		Gamma: 0.0,
	}
}

// Validate checks that the all-pass warping is stable
func (c Config) Validate() error {
	if c.Alpha <= -1 || c.Alpha >= 1 {
		return fmt.Errorf("alpha %g: %w", c.Alpha, ErrInvalidAlpha)
	}
	return nil
}
