// Package validation provides small, pure input-bounding helpers shared by
// internal/config and the CLI's export windowing.
package validation

import (
	"strconv"
)

// ParseIntParam parses a string parameter to int
func ParseIntParam(param string, defaultValue int) int {
	if param == "" {
		return defaultValue
	}
	if val, err := strconv.Atoi(param); err == nil {
		return val
	}
	return defaultValue
}

// ValidateLimit ensures pagination limit is within bounds
func ValidateLimit(limit int) int {
	if limit <= 0 {
		return 50 // default
	}
	if limit > 100 {
		return 100 // max
	}
	return limit
}

// ValidateOffset ensures offset is not negative
func ValidateOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}

