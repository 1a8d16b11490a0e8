package clean

import (
	"regexp"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/dealpredict/carwash/listing"
	"github.com/dealpredict/carwash/match"
)

// MaxModelLength is the longest model string considered a real model
// name rather than a pasted sales blurb.
const MaxModelLength = 40

var allDigits = regexp.MustCompile(`^\d+$`)

// RemoveNumericalModels drops rows whose model is all digits or longer
// than MaxModelLength characters. Blank models are kept; later steps
// decide their fate.
func RemoveNumericalModels() Step {
	return StepFunc{StepName: "remove_numerical_models", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "remove_numerical_models", RowsBefore: t.Len()}
		keep := roaring.New()
		for i := range t.Rows {
			v := listing.Value(t.Rows[i].Model)
			if v == "" || (!allDigits.MatchString(v) && len(v) <= MaxModelLength) {
				keep.Add(uint32(i))
			}
		}
		s.RowsDropped = t.Filter(keep)
		s.RowsAfter = t.Len()
		return s
	}}
}

// MatchModels canonicalizes model and manufacturer through the
// matcher. Rows that resolve get both fields rewritten to the
// catalog's canonical strings; rows that do not resolve are left
// untouched.
func MatchModels(m *match.Matcher) Step {
	return StepFunc{StepName: "match_models", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "match_models", RowsBefore: t.Len(), RowsAfter: t.Len()}
		for i := range t.Rows {
			r := &t.Rows[i]
			raw := listing.Value(r.Model)
			if raw == "" {
				continue
			}
			result := m.Resolve(raw)
			if !result.Matched() {
				continue
			}
			if listing.Value(r.Model) != result.Model {
				r.Model = listing.String(result.Model)
				s.ValuesChanged++
			}
			if listing.Value(r.Manufacturer) != result.Manufacturer {
				r.Manufacturer = listing.String(result.Manufacturer)
				s.ValuesChanged++
			}
		}
		return s
	}}
}

// ModelFrequency keeps only rows whose model value occurs at least
// minCount times. Rows with a blank model are kept.
func ModelFrequency(minCount int) Step {
	return StepFunc{StepName: "model_frequency", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "model_frequency", RowsBefore: t.Len()}
		counts := t.ValueCounts(func(r *listing.Record) *string { return r.Model })
		keep := roaring.New()
		for i := range t.Rows {
			v := listing.Value(t.Rows[i].Model)
			if v == "" || counts[v] >= minCount {
				keep.Add(uint32(i))
			}
		}
		s.RowsDropped = t.Filter(keep)
		s.RowsAfter = t.Len()
		return s
	}}
}
