package validation

import (
	"strconv"
	"strings"
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsLatitude reports whether v is a valid latitude in degrees
func IsLatitude(v float64) bool {
	return v >= -90 && v <= 90
}

// IsLongitude reports whether v is a valid longitude in degrees
func IsLongitude(v float64) bool {
	return v >= -180 && v <= 180
}

// ParseCoordinate parses a decimal degree value from a query string
func ParseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
