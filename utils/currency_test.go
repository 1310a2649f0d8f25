package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyMXN(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{80, "$80.00"},
		{1160, "$1,160.00"},
		{1160.5, "$1,160.50"},
		{1234567.89, "$1,234,567.89"},
		{-250, "-$250.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrencyMXN(tt.amount))
	}
}
