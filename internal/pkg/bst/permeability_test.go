package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermeabilityStatus(t *testing.T) {
	tests := map[string]string{
		"0.5":   PermeabilityVeryLow,
		"0":     PermeabilityVeryLow,
		"1":     PermeabilityLow,
		"4.99":  PermeabilityLow,
		"5":     PermeabilityMedium,
		"24.99": PermeabilityMedium,
		"25":    PermeabilityHigh,
		"50":    PermeabilityHigh,
		"100":   PermeabilityVeryHigh,
		"250":   PermeabilityVeryHigh,
		"12,5":  PermeabilityMedium,
		"abc":   PermeabilityUnknown,
		"":      PermeabilityUnknown,
	}

	for in, want := range tests {
		assert.Equal(t, want, PermeabilityStatus(in), "lugeon %q", in)
	}
}
