package clean

import (
	"strings"

	"github.com/dealpredict/carwash/listing"
)

// ValidStates lists the postal abbreviations of the fifty US states
// plus the District of Columbia, lowercased.
var ValidStates = []string{
	"al", "ak", "az", "ar", "ca", "co", "ct", "de", "dc", "fl", "ga",
	"hi", "id", "il", "in", "ia", "ks", "ky", "la", "me", "md", "ma",
	"mi", "mn", "ms", "mo", "mt", "ne", "nv", "nh", "nj", "nm", "ny",
	"nc", "nd", "oh", "ok", "or", "pa", "ri", "sc", "sd", "tn", "tx",
	"ut", "vt", "va", "wa", "wv", "wi", "wy",
}

// censusDivisions maps each state abbreviation to its US census
// division.
var censusDivisions = map[string]string{
	"ct": "New England", "me": "New England", "ma": "New England",
	"nh": "New England", "ri": "New England", "vt": "New England",

	"nj": "Middle Atlantic", "ny": "Middle Atlantic", "pa": "Middle Atlantic",

	"il": "East North Central", "in": "East North Central",
	"mi": "East North Central", "oh": "East North Central",
	"wi": "East North Central",

	"ia": "West North Central", "ks": "West North Central",
	"mn": "West North Central", "mo": "West North Central",
	"ne": "West North Central", "nd": "West North Central",
	"sd": "West North Central",

	"de": "South Atlantic", "fl": "South Atlantic", "ga": "South Atlantic",
	"md": "South Atlantic", "nc": "South Atlantic", "sc": "South Atlantic",
	"va": "South Atlantic", "wv": "South Atlantic", "dc": "South Atlantic",

	"al": "East South Central", "ky": "East South Central",
	"ms": "East South Central", "tn": "East South Central",

	"ar": "West South Central", "la": "West South Central",
	"ok": "West South Central", "tx": "West South Central",

	"az": "Mountain", "co": "Mountain", "id": "Mountain", "mt": "Mountain",
	"nv": "Mountain", "nm": "Mountain", "ut": "Mountain", "wy": "Mountain",

	"ak": "Pacific", "ca": "Pacific", "hi": "Pacific", "or": "Pacific",
	"wa": "Pacific",
}

// ValidateState lowercases states and drops rows whose state is
// outside the US postal vocabulary. Rows without a state are kept;
// coordinates still locate them.
func ValidateState() Step {
	inner := Whitelist(FieldState, ValidStates, true)
	name := inner.Name()
	return StepFunc{StepName: name, Fn: func(t *listing.Table) Summary {
		changed := 0
		for i := range t.Rows {
			r := &t.Rows[i]
			v := listing.Value(r.State)
			if v == "" {
				continue
			}
			if lower := strings.ToLower(v); lower != v {
				r.State = listing.String(lower)
				changed++
			}
		}
		s := inner.Apply(t)
		s.ValuesChanged = changed
		return s
	}}
}

// AssignCensusRegion derives the census_region column from the state
// column. States without a known division get a blank region.
func AssignCensusRegion() Step {
	return StepFunc{StepName: "assign_census_region", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "assign_census_region", RowsBefore: t.Len(), RowsAfter: t.Len()}
		for i := range t.Rows {
			r := &t.Rows[i]
			division, ok := censusDivisions[strings.ToLower(listing.Value(r.State))]
			if !ok {
				if !listing.Blank(r.CensusRegion) {
					r.CensusRegion = nil
					s.ValuesChanged++
				}
				continue
			}
			if listing.Value(r.CensusRegion) != division {
				r.CensusRegion = listing.String(division)
				s.ValuesFilled++
			}
		}
		return s
	}}
}
