package header

import "regexp"

var (
	pragmaOnce  = regexp.MustCompile(`(?m)^\s*#pragma\s+once\b`)
	ifndefGuard = regexp.MustCompile(`(?m)^\s*#ifndef\s+(\w+)\s*\r?\n\s*#define\s+(\w+)`)
)

// HasGuard reports whether text already carries an include guard, either
// "#pragma once" or a matching #ifndef/#define pair.
func HasGuard(text string) bool {
	if pragmaOnce.MatchString(text) {
		return true
	}
	m := ifndefGuard.FindStringSubmatch(text)
	return m != nil && m[1] == m[2]
}
