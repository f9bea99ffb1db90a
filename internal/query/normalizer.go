// Package query decides whether raw user input may be sent to the quote server.
package query

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims raw input, collapses internal whitespace and applies NFC.
// The boolean is false for empty or whitespace-only input, which callers drop
// without a state change.
func Normalize(raw string) (string, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", false
	}
	return norm.NFC.String(strings.Join(fields, " ")), true
}

// Eligible reports whether raw would be submitted
func Eligible(raw string) bool {
	_, ok := Normalize(raw)
	return ok
}
