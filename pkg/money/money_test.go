package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{name: "round down", amount: 1.234, expected: 1.23},
		{name: "round up", amount: 5.678, expected: 5.68},
		{name: "already cents", amount: 2.5, expected: 2.5},
		{name: "negative", amount: -3.456, expected: -3.46},
		{name: "zero", amount: 0, expected: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, Round(tc.amount), 1e-9)
		})
	}
}

func TestFormatEuro(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "thousands separator", amount: 2500, expected: "€2,500.00"},
		{name: "cents padded", amount: 1700.5, expected: "€1,700.50"},
		{name: "small amount", amount: 99.99, expected: "€99.99"},
		{name: "millions", amount: 1234567.891, expected: "€1,234,567.89"},
		{name: "negative", amount: -50, expected: "€-50.00"},
		{name: "zero", amount: 0, expected: "€0.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatEuro(tc.amount))
		})
	}
}
