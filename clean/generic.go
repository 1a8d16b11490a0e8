package clean

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/dealpredict/carwash/listing"
)

// Whitelist drops rows whose field value is not in allowed. Values are
// compared case-insensitively; blanks are dropped unless keepBlank is
// set.
func Whitelist(field StringField, allowed []string, keepBlank bool) Step {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[strings.ToLower(v)] = struct{}{}
	}
	name := "validate_" + string(field.Col)
	return StepFunc{StepName: name, Fn: func(t *listing.Table) Summary {
		s := Summary{Step: name, RowsBefore: t.Len()}
		keep := roaring.New()
		for i := range t.Rows {
			v := listing.Value(field.Get(&t.Rows[i]))
			if v == "" {
				if keepBlank {
					keep.Add(uint32(i))
				}
				continue
			}
			if _, ok := set[strings.ToLower(v)]; ok {
				keep.Add(uint32(i))
			}
		}
		s.RowsDropped = t.Filter(keep)
		s.RowsAfter = t.Len()
		return s
	}}
}

// LowercaseThenWhitelist rewrites the field to lowercase before
// applying the whitelist, so "Sedan" both survives and comes out
// canonical.
func LowercaseThenWhitelist(field StringField, allowed []string) Step {
	inner := Whitelist(field, allowed, false)
	name := inner.Name()
	return StepFunc{StepName: name, Fn: func(t *listing.Table) Summary {
		changed := 0
		for i := range t.Rows {
			r := &t.Rows[i]
			v := listing.Value(field.Get(r))
			if v == "" {
				continue
			}
			if lower := strings.ToLower(v); lower != v {
				field.Set(r, listing.String(lower))
				changed++
			}
		}
		s := inner.Apply(t)
		s.ValuesChanged = changed
		return s
	}}
}

// DropBlank drops rows whose field is blank.
func DropBlank(field StringField) Step {
	name := "drop_blank_" + string(field.Col)
	return StepFunc{StepName: name, Fn: func(t *listing.Table) Summary {
		s := Summary{Step: name, RowsBefore: t.Len()}
		keep := roaring.New()
		for i := range t.Rows {
			if !listing.Blank(field.Get(&t.Rows[i])) {
				keep.Add(uint32(i))
			}
		}
		s.RowsDropped = t.Filter(keep)
		s.RowsAfter = t.Len()
		return s
	}}
}

// FillBlank fills blank field values with a constant.
func FillBlank(field StringField, value string) Step {
	name := "fill_" + string(field.Col)
	return StepFunc{StepName: name, Fn: func(t *listing.Table) Summary {
		s := Summary{Step: name, RowsBefore: t.Len(), RowsAfter: t.Len()}
		for i := range t.Rows {
			r := &t.Rows[i]
			if listing.Blank(field.Get(r)) {
				field.Set(r, listing.String(value))
				s.ValuesFilled++
			}
		}
		return s
	}}
}

// Replace rewrites field values according to mapping, matching
// case-insensitively on the trimmed value.
func Replace(field StringField, mapping map[string]string) Step {
	lower := make(map[string]string, len(mapping))
	for k, v := range mapping {
		lower[strings.ToLower(k)] = v
	}
	name := "replace_" + string(field.Col)
	return StepFunc{StepName: name, Fn: func(t *listing.Table) Summary {
		s := Summary{Step: name, RowsBefore: t.Len(), RowsAfter: t.Len()}
		for i := range t.Rows {
			r := &t.Rows[i]
			v := listing.Value(field.Get(r))
			if v == "" {
				continue
			}
			if repl, ok := lower[strings.ToLower(v)]; ok && repl != v {
				field.Set(r, listing.String(repl))
				s.ValuesChanged++
			}
		}
		return s
	}}
}
