// Package normalize trims and canonicalizes caller-supplied identifiers
// before they are stored or used in filters.
package normalize

import "strings"

// Account normalizes a target account handle: trimmed, lowercased.
func Account(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Day normalizes a scheduling slot label: trimmed, lowercased.
func Day(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Email normalizes an email address: trimmed, lowercased.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
