package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 3.14, RoundTo(3.14159, 2))
	assert.Equal(t, 18.559123, RoundTo(18.5591234, 6))
	assert.Equal(t, 2.0, RoundTo(1.995, 1))
	assert.Equal(t, -0.8, RoundTo(-0.79, 1))
}

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{12345678, "1,23,45,678"},
		{-1234567, "-12,34,567"},
		{1234.6, "1,235"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.in), "FormatINR(%v)", tc.in)
	}
}

func TestFormatCrore(t *testing.T) {
	assert.Equal(t, "1.25Cr", FormatCrore(12500000))
	assert.Equal(t, "0.50Cr", FormatCrore(5000000))
}
