package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealpredict/carwash/catalog"
)

func TestBuildIndexEmpty(t *testing.T) {
	require.True(t, BuildIndex(nil).Empty())
	require.True(t, BuildIndex(catalog.New(nil)).Empty())
}

func TestBuildIndexVariationKeys(t *testing.T) {
	c := catalog.New(map[string][]string{
		"ford": {"f150"},
	})
	idx := BuildIndex(c)

	for _, key := range []string{"f150", "f 150"} {
		e, ok := idx.Lookup(key)
		require.True(t, ok, "expected key %q", key)
		require.Equal(t, Entry{Model: "f150", Manufacturer: "ford"}, e)
	}
	// The hyphenated variation normalizes to "f 150" as well.
	require.Equal(t, 2, idx.Size())
}

func TestBuildIndexLastWriterWins(t *testing.T) {
	// Two manufacturers share the same model name. Build order is
	// sorted, so the alphabetically last manufacturer wins the exact
	// slot, deterministically.
	c := catalog.New(map[string][]string{
		"toyota": {"gt"},
		"nissan": {"gt"},
	})
	idx := BuildIndex(c)

	e, ok := idx.Lookup("gt")
	require.True(t, ok)
	require.Equal(t, "toyota", e.Manufacturer)
}

func TestBuildIndexScanOrderLongestFirst(t *testing.T) {
	c := catalog.New(map[string][]string{
		"honda": {"civic", "civic type r"},
	})
	idx := BuildIndex(c)

	for i := 1; i < len(idx.scanOrder); i++ {
		require.GreaterOrEqual(t, len(idx.scanOrder[i-1]), len(idx.scanOrder[i]))
	}
	require.Equal(t, "civic type r", idx.scanOrder[0])
}

func TestBuildIndexContainsCandidatesLengthSorted(t *testing.T) {
	// "accord" is a whole-word variation of itself only, but a shared
	// variation key must keep its candidates longest-model-first.
	c := catalog.New(map[string][]string{
		"a-corp": {"xr"},
		"b-corp": {"x-r"},
	})
	idx := BuildIndex(c)

	candidates := idx.contains["xr"]
	require.NotEmpty(t, candidates)
	for i := 1; i < len(candidates); i++ {
		require.GreaterOrEqual(t, len(candidates[i-1].Model), len(candidates[i].Model))
	}
}
