package errors

import (
	"strings"
	"unicode"
)

// Seat count limits enforced at the chart schema boundary. The geometry
// engine itself assumes callers respect these.
const (
	MinSeatCount = 1
	MaxSeatCount = 20
)

// MaxCornerSeats is the upper bound for the cornerSeats annotation on
// rectangular tables. A rectangle has four corners.
const MaxCornerSeats = 4

// ValidateChartName validates a chart or room name for safety.
// It rejects names that could be used for path traversal when the name
// is turned into an output filename.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidateChartName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidChart, "chart name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidChart, "chart name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidChart, "chart name contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidChart, "chart name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateSeatCount checks that a seat count is within the supported range.
func ValidateSeatCount(n int) error {
	if n < MinSeatCount || n > MaxSeatCount {
		return New(ErrCodeInvalidTable, "seat count must be between %d and %d, got %d", MinSeatCount, MaxSeatCount, n)
	}
	return nil
}

// ValidateCornerSeats checks that a corner seat count is within [0, 4].
func ValidateCornerSeats(n int) error {
	if n < 0 || n > MaxCornerSeats {
		return New(ErrCodeInvalidTable, "corner seats must be between 0 and %d, got %d", MaxCornerSeats, n)
	}
	return nil
}

// ValidateTableSize checks that table dimensions are strictly positive.
func ValidateTableSize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidTable, "table size must be positive, got %gx%g", width, height)
	}
	return nil
}
