// Package match resolves free-text model strings against the
// reference catalog.
//
// An Index is built once per run: every known model is expanded into
// its spelling variations, normalized, and keyed for O(1) exact
// lookups plus deterministic longest-first scans. The Matcher then
// tries an ordered set of fallback strategies (exact, whole-word
// contains, manufacturer-prefix, starts-with) and memoizes the result
// per distinct raw input, so each distinct model string is resolved
// exactly once per run no matter how many rows share it.
package match
