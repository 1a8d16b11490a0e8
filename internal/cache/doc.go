// Package cache provides a small LRU used to memoize match results by
// raw input text. A dataset of tens of thousands of rows typically
// carries only hundreds to low thousands of distinct model strings, so
// each distinct string is resolved once and the cached result is
// broadcast to every row sharing it.
package cache
