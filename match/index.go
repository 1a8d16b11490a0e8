package match

import (
	"sort"

	"github.com/dealpredict/carwash/catalog"
	"github.com/dealpredict/carwash/normalize"
)

// Entry is a canonical (model, manufacturer) pair from the catalog.
type Entry struct {
	Model        string
	Manufacturer string
}

// Index holds the lookup tables derived from a catalog. It is built
// once and read-only afterwards.
type Index struct {
	// exact maps a normalized variation to its canonical pair. When
	// two manufacturers share the same variation the last writer wins;
	// manufacturers and models are iterated in sorted order, so the
	// winner is the alphabetically last manufacturer and the outcome
	// is stable across runs.
	exact map[string]Entry

	// contains maps a normalized variation to its candidates, longest
	// model first.
	contains map[string][]Entry

	// scanOrder lists every normalized variation, longest first and
	// lexicographic within a length, for the contains and starts-with
	// scans.
	scanOrder []string
}

// BuildIndex derives the lookup tables from a catalog. A nil or empty
// catalog yields an empty index, which matches nothing.
func BuildIndex(c *catalog.Catalog) *Index {
	idx := &Index{
		exact:    make(map[string]Entry),
		contains: make(map[string][]Entry),
	}
	if c.Empty() {
		return idx
	}

	for _, manufacturer := range c.Manufacturers() {
		for _, model := range c.Models(manufacturer) {
			for _, variation := range normalize.Variations(model) {
				nv := normalize.Text(variation)
				if nv == "" {
					continue
				}
				e := Entry{Model: model, Manufacturer: manufacturer}
				idx.exact[nv] = e
				idx.contains[nv] = append(idx.contains[nv], e)
			}
		}
	}

	for key, candidates := range idx.contains {
		sort.SliceStable(candidates, func(i, j int) bool {
			return len(candidates[i].Model) > len(candidates[j].Model)
		})
		idx.contains[key] = candidates
		idx.scanOrder = append(idx.scanOrder, key)
	}
	sort.Slice(idx.scanOrder, func(i, j int) bool {
		a, b := idx.scanOrder[i], idx.scanOrder[j]
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})

	return idx
}

// Empty reports whether the index holds no variations.
func (idx *Index) Empty() bool { return idx == nil || len(idx.exact) == 0 }

// Size returns the number of distinct normalized variations.
func (idx *Index) Size() int {
	if idx == nil {
		return 0
	}
	return len(idx.exact)
}

// Lookup returns the exact-match entry for an already-normalized key.
func (idx *Index) Lookup(normalized string) (Entry, bool) {
	e, ok := idx.exact[normalized]
	return e, ok
}
