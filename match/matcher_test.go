package match

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealpredict/carwash/catalog"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	return BuildIndex(catalog.New(map[string][]string{
		"honda":  {"civic", "civic-type-r", "accord"},
		"toyota": {"camry", "corolla"},
		"ford":   {"f150", "escape"},
	}))
}

func TestResolveExact(t *testing.T) {
	m := NewMatcher(testIndex(t))

	r := m.Resolve("Civic")
	require.True(t, r.Matched())
	require.Equal(t, "civic", r.Model)
	require.Equal(t, "honda", r.Manufacturer)

	// Variation spelling resolves through the exact table too.
	r = m.Resolve("F-150")
	require.Equal(t, "f150", r.Model)
	require.Equal(t, "ford", r.Manufacturer)
}

func TestResolveContainsPrefersLongestVariation(t *testing.T) {
	m := NewMatcher(testIndex(t))

	r := m.Resolve("2015 honda civic type r sedan")
	require.Equal(t, "civic-type-r", r.Model)
	require.Equal(t, "honda", r.Manufacturer)
}

func TestResolveContainsWholeWordOnly(t *testing.T) {
	m := NewMatcher(testIndex(t))

	// "civics" must not match "civic" as a substring.
	r := m.Resolve("local civics class vehicle")
	require.False(t, r.Matched())
}

func TestResolveWithLeadingManufacturerWord(t *testing.T) {
	idx := BuildIndex(catalog.New(map[string][]string{
		"subaru": {"outback limited"},
	}))
	m := NewMatcher(idx)

	// An unknown leading word does not prevent resolution of the
	// remainder.
	r := m.Resolve("subieworld outback limited")
	require.Equal(t, "outback limited", r.Model)
	require.Equal(t, "subaru", r.Manufacturer)
}

func TestResolveNoMatch(t *testing.T) {
	m := NewMatcher(testIndex(t))

	r := m.Resolve("complete gibberish zzz")
	require.False(t, r.Matched())
	require.Empty(t, r.Model)
	require.Empty(t, r.Manufacturer)
}

func TestResolveEmptyInput(t *testing.T) {
	m := NewMatcher(testIndex(t))
	require.False(t, m.Resolve("").Matched())
	require.False(t, m.Resolve("!!!").Matched())
}

func TestResolveEmptyIndexIsNoop(t *testing.T) {
	m := NewMatcher(BuildIndex(nil))
	require.False(t, m.Resolve("civic").Matched())
}

func TestResolveMemoized(t *testing.T) {
	m := NewMatcher(testIndex(t))

	first := m.Resolve("2012 toyota camry le")
	second := m.Resolve("2012 toyota camry le")
	require.Equal(t, first, second)

	hits, misses := m.CacheStats()
	require.Equal(t, int64(1), hits)
	require.Equal(t, int64(1), misses)
}

func TestResolveConcurrent(t *testing.T) {
	m := NewMatcher(testIndex(t))

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.Resolve("honda accord ex-l")
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.Equal(t, "accord", r.Model)
		require.Equal(t, "honda", r.Manufacturer)
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text, sub string
		want      bool
	}{
		{"honda civic sedan", "civic", true},
		{"honda civic sedan", "honda civic", true},
		{"civic", "civic", true},
		{"civics", "civic", false},
		{"sivic civic", "civic", true},
		{"xcivic", "civic", false},
		{"", "civic", false},
		{"civic", "", false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, containsWord(tt.text, tt.sub), "%q in %q", tt.sub, tt.text)
	}
}
