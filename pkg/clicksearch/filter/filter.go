// Package filter narrows a list of names to those matching a search query.
package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names returns the elements of source whose lowercase form contains the
// lowercase query, in their original order. An empty query matches every
// element. The result is always a new slice; source is never modified.
//
// Lowercasing uses the root locale, so the result does not depend on the
// host's language settings. Matching runs over the whole source on every
// call, which is fine for short static lists but will need an index or
// debouncing if the source grows large.
func Names(source []string, query string) []string {
	out := make([]string, 0, len(source))
	for _, name := range source {
		if Matches(name, query) {
			out = append(out, name)
		}
	}
	return out
}

// Matches reports whether name passes the filter for query.
func Matches(name, query string) bool {
	if query == "" {
		return true
	}
	lower := cases.Lower(language.Und)
	return strings.Contains(lower.String(name), lower.String(query))
}
