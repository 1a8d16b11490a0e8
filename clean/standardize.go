package clean

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dealpredict/carwash/listing"
)

// StandardizeTransmission fills blank transmissions with "automatic"
// and folds every non-"manual" value into "automatic".
func StandardizeTransmission() Step {
	return StepFunc{StepName: "standardize_transmission", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "standardize_transmission", RowsBefore: t.Len(), RowsAfter: t.Len()}
		for i := range t.Rows {
			r := &t.Rows[i]
			v := listing.Value(r.Transmission)
			switch {
			case v == "":
				r.Transmission = listing.String("automatic")
				s.ValuesFilled++
			case strings.EqualFold(v, "manual"):
				if v != "manual" {
					r.Transmission = listing.String("manual")
					s.ValuesChanged++
				}
			case v != "automatic":
				r.Transmission = listing.String("automatic")
				s.ValuesChanged++
			}
		}
		return s
	}}
}

// StandardizeFuel folds every fuel value outside
// {diesel, hybrid, electric} into "gas", blanks included.
func StandardizeFuel() Step {
	keepAsIs := map[string]struct{}{"diesel": {}, "hybrid": {}, "electric": {}}
	return StepFunc{StepName: "standardize_fuel", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "standardize_fuel", RowsBefore: t.Len(), RowsAfter: t.Len()}
		for i := range t.Rows {
			r := &t.Rows[i]
			v := strings.ToLower(listing.Value(r.Fuel))
			if _, ok := keepAsIs[v]; ok {
				if *r.Fuel != v {
					r.Fuel = listing.String(v)
					s.ValuesChanged++
				}
				continue
			}
			if v == "" {
				r.Fuel = listing.String("gas")
				s.ValuesFilled++
			} else if v != "gas" {
				r.Fuel = listing.String("gas")
				s.ValuesChanged++
			} else if *r.Fuel != "gas" {
				r.Fuel = listing.String("gas")
				s.ValuesChanged++
			}
		}
		return s
	}}
}

// StandardizeManufacturer merges land rover spellings into the
// canonical "land-rover".
func StandardizeManufacturer() Step {
	return Replace(FieldManufacturer, map[string]string{
		"land rover": "land-rover",
		"rover":      "land-rover",
	})
}

var firstInt = regexp.MustCompile(`\d+`)

// NormalizeCylinders rewrites cylinder values of any spelling into
// "<N> cylinders"; values with no digits are left alone.
func NormalizeCylinders() Step {
	return StepFunc{StepName: "normalize_cylinders", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "normalize_cylinders", RowsBefore: t.Len(), RowsAfter: t.Len()}
		for i := range t.Rows {
			r := &t.Rows[i]
			v := listing.Value(r.Cylinders)
			if v == "" {
				continue
			}
			if m := firstInt.FindString(v); m != "" {
				canon := fmt.Sprintf("%s cylinders", m)
				if canon != v {
					r.Cylinders = listing.String(canon)
					s.ValuesChanged++
				}
			}
		}
		return s
	}}
}

// FillTypeFromModel fills blank body types with the modal type among
// rows sharing the same model. Ties break alphabetically so the fill
// is deterministic.
func FillTypeFromModel() Step {
	return StepFunc{StepName: "fill_type_from_model", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "fill_type_from_model", RowsBefore: t.Len(), RowsAfter: t.Len()}

		byModel := make(map[string]map[string]int)
		for i := range t.Rows {
			r := &t.Rows[i]
			model := listing.Value(r.Model)
			typ := listing.Value(r.Type)
			if model == "" || typ == "" {
				continue
			}
			if byModel[model] == nil {
				byModel[model] = make(map[string]int)
			}
			byModel[model][typ]++
		}

		modal := make(map[string]string, len(byModel))
		for model, counts := range byModel {
			modal[model] = modeOf(counts)
		}

		for i := range t.Rows {
			r := &t.Rows[i]
			if !listing.Blank(r.Type) {
				continue
			}
			if typ, ok := modal[listing.Value(r.Model)]; ok && typ != "" {
				r.Type = listing.String(typ)
				s.ValuesFilled++
			}
		}
		return s
	}}
}

// modeOf returns the most frequent key, breaking ties alphabetically.
func modeOf(counts map[string]int) string {
	best, bestN := "", 0
	for v, n := range counts {
		if n > bestN || (n == bestN && (best == "" || v < best)) {
			best, bestN = v, n
		}
	}
	return best
}
