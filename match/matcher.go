package match

import (
	"log/slog"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/dealpredict/carwash/internal/cache"
	"github.com/dealpredict/carwash/normalize"
)

// DefaultCacheSize bounds the memoization cache. Distinct model
// strings number in the hundreds to low thousands for datasets of tens
// of thousands of rows, so this is effectively "cache everything".
const DefaultCacheSize = 16384

// Result is the outcome of resolving one raw model string. The zero
// value means no match; callers leave the row untouched in that case.
type Result struct {
	Model        string
	Manufacturer string
}

// Matched reports whether a canonical pair was found.
func (r Result) Matched() bool { return r.Model != "" }

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithCacheSize sets the memoization cache capacity. Zero or negative
// means unbounded.
func WithCacheSize(n int) MatcherOption {
	return func(m *Matcher) { m.memo = cache.NewLRU[Result](n) }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) MatcherOption {
	return func(m *Matcher) { m.logger = l }
}

// Matcher resolves raw model strings to canonical (model, manufacturer)
// pairs. It is safe for concurrent use; concurrent calls with the same
// raw text are collapsed into a single resolution.
type Matcher struct {
	index  *Index
	memo   *cache.LRU[Result]
	group  singleflight.Group
	logger *slog.Logger
}

// NewMatcher creates a matcher over a prebuilt index. An empty index
// degrades the matcher to a no-op: every input resolves to the zero
// Result. This is logged once, loudly, because a silently empty
// catalog would otherwise look like a dataset with no recognizable
// models.
func NewMatcher(index *Index, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		index:  index,
		memo:   cache.NewLRU[Result](DefaultCacheSize),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.index.Empty() {
		m.logger.Warn("reference index is empty, model matching disabled")
	}
	return m
}

// CacheStats returns memoization hit and miss counters.
func (m *Matcher) CacheStats() (hits, misses int64) { return m.memo.Stats() }

// Resolve maps raw model text to its canonical pair, memoized by the
// raw text. Two rows with identical raw text always receive the same
// Result within a run.
func (m *Matcher) Resolve(raw string) Result {
	if m.index.Empty() {
		return Result{}
	}
	if r, ok := m.memo.Get(raw); ok {
		return r
	}
	v, _, _ := m.group.Do(raw, func() (any, error) {
		r := m.resolve(raw)
		m.memo.Set(raw, r)
		return r, nil
	})
	return v.(Result)
}

// resolve runs the fallback strategies in order; first success wins.
func (m *Matcher) resolve(raw string) Result {
	text := normalize.Text(raw)
	if text == "" {
		return Result{}
	}

	// Strategy 1: exact normalized match.
	if e, ok := m.index.exact[text]; ok {
		return Result{Model: e.Model, Manufacturer: e.Manufacturer}
	}

	// Strategy 2: whole-word contains scan, longest variation first.
	// Candidates per key are already length-sorted, so the top one is
	// the most specific.
	for _, variation := range m.index.scanOrder {
		if containsWord(text, variation) {
			top := m.index.contains[variation][0]
			return Result{Model: top.Model, Manufacturer: top.Manufacturer}
		}
	}

	// Strategy 3: manufacturer prefix. Drop the first word, assumed to
	// be a manufacturer token, and try the remainder as an exact key.
	if words := strings.Fields(text); len(words) >= 2 {
		remainder := strings.Join(words[1:], " ")
		if e, ok := m.index.exact[remainder]; ok {
			return Result{Model: e.Model, Manufacturer: e.Manufacturer}
		}
	}

	// Strategy 4: starts-with, longest variation first.
	for _, variation := range m.index.scanOrder {
		if strings.HasPrefix(text, variation+" ") {
			top := m.index.contains[variation][0]
			return Result{Model: top.Model, Manufacturer: top.Manufacturer}
		}
	}

	return Result{}
}

// containsWord reports whether sub occurs in text delimited by word
// boundaries. Normalized text only contains [a-z0-9 ], so a boundary
// is a space or the string edge.
func containsWord(text, sub string) bool {
	if sub == "" {
		return false
	}
	for i := 0; ; {
		j := strings.Index(text[i:], sub)
		if j < 0 {
			return false
		}
		j += i
		end := j + len(sub)
		startOK := j == 0 || !isAlnum(text[j-1])
		endOK := end == len(text) || !isAlnum(text[end])
		if startOK && endOK {
			return true
		}
		i = j + 1
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
