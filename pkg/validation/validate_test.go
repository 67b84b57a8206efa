package validation

import (
	"testing"
)

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Valid limit", 25, 25},
		{"Zero limit returns default", 0, 50},
		{"Negative limit returns default", -10, 50},
		{"Over max returns max", 150, 100},
		{"Max limit", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateLimit(tt.limit)
			if got != tt.want {
				t.Errorf("ValidateLimit(%d) = %d, want %d", tt.limit, got, tt.want)
			}
		})
	}
}

func TestValidateOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{"Valid offset", 50, 50},
		{"Zero offset", 0, 0},
		{"Negative offset returns zero", -10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateOffset(tt.offset)
			if got != tt.want {
				t.Errorf("ValidateOffset(%d) = %d, want %d", tt.offset, got, tt.want)
			}
		})
	}
}

func TestParseIntParam(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		defaultValue int
		want         int
	}{
		{"Valid integer", "42", 0, 42},
		{"Empty string returns default", "", 10, 10},
		{"Invalid string returns default", "abc", 20, 20},
		{"Negative integer", "-5", 0, -5},
		{"Zero", "0", 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIntParam(tt.value, tt.defaultValue)
			if got != tt.want {
				t.Errorf("ParseIntParam(%q, %d) = %d, want %d", tt.value, tt.defaultValue, got, tt.want)
			}
		})
	}
}
