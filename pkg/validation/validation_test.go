package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimAndValidate(t *testing.T) {
	v, ok := TrimAndValidate("  Rome ")
	assert.True(t, ok)
	assert.Equal(t, "Rome", v)

	_, ok = TrimAndValidate(" \t ")
	assert.False(t, ok)
	assert.False(t, IsNotEmpty(""))
}

func TestCoordinateRanges(t *testing.T) {
	assert.True(t, IsLatitude(-90))
	assert.True(t, IsLatitude(41.9))
	assert.False(t, IsLatitude(90.01))
	assert.True(t, IsLongitude(180))
	assert.False(t, IsLongitude(-180.5))
}

func TestParseCoordinate(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		ok       bool
	}{
		{"41.9", 41.9, true},
		{" -12.5 ", -12.5, true},
		{"0", 0, true},
		{"", 0, false},
		{"north", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := ParseCoordinate(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}
