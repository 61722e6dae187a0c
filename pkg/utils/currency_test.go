package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		expected float64
	}{
		{
			name:     "VND is zero-decimal, amount stored as-is",
			amount:   250000,
			currency: "VND",
			expected: 250000,
		},
		{
			name:     "USD amounts arrive in cents",
			amount:   250000,
			currency: "USD",
			expected: 2500.00,
		},
		{
			name:     "JPY is zero-decimal",
			amount:   1500,
			currency: "JPY",
			expected: 1500,
		},
		{
			name:     "unknown currency defaults to cents",
			amount:   999,
			currency: "XTS",
			expected: 9.99,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FromMinorUnits(tt.amount, tt.currency))
		})
	}
}
