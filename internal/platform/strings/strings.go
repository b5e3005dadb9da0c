// Package strings provides small string and slice helpers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// FirstNonBlank returns the first argument with non whitespace content, or ""
func FirstNonBlank(vals ...string) string {
	for _, v := range vals {
		if std.TrimSpace(v) != "" {
			return std.TrimSpace(v)
		}
	}
	return ""
}

// Lower trims and lowercases s
func Lower(s string) string { return std.ToLower(std.TrimSpace(s)) }
