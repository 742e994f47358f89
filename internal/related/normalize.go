package related

import (
	"regexp"
	"strings"
)

var hyphenRun = regexp.MustCompile(`-{2,}`)

// Normalize canonicalizes a free-text tag: surrounding whitespace is
// trimmed, the result is lowercased, internal whitespace runs become a
// single hyphen and repeated hyphens collapse to one.
//
// Normalize is total and idempotent; the empty string maps to itself.
func Normalize(tag string) string {
	fields := strings.Fields(strings.ToLower(tag))
	if len(fields) == 0 {
		return ""
	}
	return hyphenRun.ReplaceAllString(strings.Join(fields, "-"), "-")
}

// NormalizeAll maps Normalize over tags, preserving order. A nil or
// empty input yields an empty, non-nil slice.
func NormalizeAll(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, Normalize(tag))
	}
	return out
}
