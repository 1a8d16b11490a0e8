// Package normalize canonicalizes free-text model and manufacturer
// strings for matching.
//
// Text is a projection: applying it twice yields the same result as
// applying it once. Variations widens recall by generating the surface
// forms real listings use for model numbers ("f150", "f-150", "f 150")
// so the reference index can be keyed by every spelling up front and
// lookups stay exact.
package normalize

import (
	"regexp"
	"strings"
)

var (
	separators    = regexp.MustCompile(`[\s\-_]+`)
	nonAlnumSpace = regexp.MustCompile(`[^a-z0-9\s]`)
	letterDigit   = regexp.MustCompile(`([a-z])(\d)`)
)

// Text canonicalizes s for lookup: lowercase, runs of whitespace,
// hyphens and underscores collapsed to a single space, everything
// outside [a-z0-9 ] stripped, spaces collapsed and trimmed.
// An empty or all-noise input yields "".
func Text(s string) string {
	s = strings.ToLower(s)
	s = separators.ReplaceAllString(s, " ")
	s = nonAlnumSpace.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// Variations produces the alternate surface forms of a model name:
// the input itself, the input with all separators removed, and
// versions with a hyphen or a space inserted at each letter-digit
// boundary. The result is deduplicated and keeps first-seen order.
func Variations(model string) []string {
	seen := make(map[string]struct{}, 4)
	out := make([]string, 0, 4)
	add := func(v string) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}

	add(model)
	add(separators.ReplaceAllString(model, ""))
	add(letterDigit.ReplaceAllString(model, "$1-$2"))
	add(letterDigit.ReplaceAllString(model, "$1 $2"))

	return out
}
