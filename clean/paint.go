package clean

import (
	"github.com/dealpredict/carwash/listing"
)

// ValidPaintColors is the accepted paint color vocabulary.
var ValidPaintColors = []string{
	"white", "black", "silver", "blue", "red", "grey", "green",
	"brown", "custom", "orange", "yellow", "purple",
}

type paintKey struct {
	manufacturer string
	state        string
}

// FillPaintColor fills blank paint colors from observed frequencies,
// preferring the mode within the row's (manufacturer, state) group,
// then the manufacturer mode, then the overall mode. Rows that match
// no group with data keep a blank color.
func FillPaintColor() Step {
	return StepFunc{StepName: "fill_paint_color", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "fill_paint_color", RowsBefore: t.Len(), RowsAfter: t.Len()}

		byPair := make(map[paintKey]map[string]int)
		byMfr := make(map[string]map[string]int)
		overall := make(map[string]int)
		for i := range t.Rows {
			r := &t.Rows[i]
			color := listing.Value(r.PaintColor)
			if color == "" {
				continue
			}
			mfr := listing.Value(r.Manufacturer)
			state := listing.Value(r.State)
			key := paintKey{manufacturer: mfr, state: state}
			if byPair[key] == nil {
				byPair[key] = make(map[string]int)
			}
			byPair[key][color]++
			if byMfr[mfr] == nil {
				byMfr[mfr] = make(map[string]int)
			}
			byMfr[mfr][color]++
			overall[color]++
		}
		fallback := modeOf(overall)

		for i := range t.Rows {
			r := &t.Rows[i]
			if !listing.Blank(r.PaintColor) {
				continue
			}
			mfr := listing.Value(r.Manufacturer)
			state := listing.Value(r.State)

			color := ""
			if counts, ok := byPair[paintKey{manufacturer: mfr, state: state}]; ok {
				color = modeOf(counts)
			}
			if color == "" {
				if counts, ok := byMfr[mfr]; ok {
					color = modeOf(counts)
				}
			}
			if color == "" {
				color = fallback
			}
			if color != "" {
				r.PaintColor = listing.String(color)
				s.ValuesFilled++
			}
		}
		return s
	}}
}
