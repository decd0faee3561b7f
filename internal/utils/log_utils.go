// Package utils holds helpers shared across packages
package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxLogStringLength is the number of runes of an untrusted string kept in logs
const MaxLogStringLength = 200

// unprintable matches anything that is not a letter, number, punctuation, symbol or space
var unprintable = regexp.MustCompile(`[^\p{L}\p{N}\p{P}\p{S}\p{Z}]`)

// SanitizeLogString makes a string from the remote schedule or a request safe
// to log: control characters become spaces, unprintable runes are dropped and
// long input is cut at a rune boundary. Pass the result as a %s argument.
func SanitizeLogString(input string) string {
	if input == "" {
		return ""
	}

	truncated := false
	if utf8.RuneCountInString(input) > MaxLogStringLength {
		input = string([]rune(input)[:MaxLogStringLength])
		truncated = true
	}

	input = strings.ReplaceAll(input, "\r\n", "\n")
	sanitized := strings.Map(func(r rune) rune {
		if r == utf8.RuneError {
			return -1
		}
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, input)
	sanitized = unprintable.ReplaceAllString(sanitized, "")

	if truncated {
		sanitized += "... (truncated)"
	}
	return sanitized
}
