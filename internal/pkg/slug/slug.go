// Package slug derives URL slugs from portfolio titles.
package slug

import "strings"

// Make lowercases the title and collapses every run of whitespace into a
// single hyphen, so titles differing only in internal spacing map to the same
// slug. Leading and trailing whitespace produces no hyphen.
func Make(title string) string {
	fields := strings.Fields(strings.ToLower(title))
	return strings.Join(fields, "-")
}
