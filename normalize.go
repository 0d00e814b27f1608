package sealedpii

import "strings"

// Normalizer transforms input strings into a canonical form before hashing
// or storing them.
//
// IMPORTANT: Use the SAME normalizer on both write and search.
// Mixing normalizers breaks lookups.
type Normalizer func(string) string

// NormalizeEmail normalizes email addresses for case-insensitive lookup.
// Applies: lowercase + trim whitespace.
//
// Example: " Alice@Example.COM " -> "alice@example.com"
var NormalizeEmail Normalizer = func(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeDigits keeps ASCII digits only.
// Used for bank account and routing numbers.
//
// Example: "123-456 78" -> "12345678"
var NormalizeDigits Normalizer = func(s string) string {
	var digits strings.Builder
	digits.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// NormalizeUpperTrim uppercases and trims whitespace.
// Used for license numbers and state codes inside encrypted records.
//
// Example: " ca-12345 " -> "CA-12345"
var NormalizeUpperTrim Normalizer = func(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeUpper uppercases without trimming.
// Used for the license search key.
var NormalizeUpper Normalizer = func(s string) string {
	return strings.ToUpper(s)
}

// NormalizeTrim normalizes by trimming leading and trailing whitespace only.
// Preserves case.
var NormalizeTrim Normalizer = func(s string) string {
	return strings.TrimSpace(s)
}
