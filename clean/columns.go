package clean

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/dealpredict/carwash/listing"
)

// DefaultDropColumns are the raw-export columns not needed downstream.
// Cylinders is extracted into its own attribute first and then the raw
// column is cleared with the rest.
var DefaultDropColumns = []listing.Column{
	listing.ColURL,
	listing.ColImageURL,
	listing.ColCounty,
	listing.ColVIN,
	listing.ColSize,
	listing.ColCondition,
	listing.ColPostingDate,
	listing.ColCylinders,
}

// DropColumns blanks the given columns in every row.
func DropColumns(cols ...listing.Column) Step {
	if len(cols) == 0 {
		cols = DefaultDropColumns
	}
	return StepFunc{StepName: "drop_columns", Fn: func(t *listing.Table) Summary {
		for _, col := range cols {
			t.Clear(col)
		}
		return Summary{
			Step:          "drop_columns",
			RowsBefore:    t.Len(),
			RowsAfter:     t.Len(),
			ValuesChanged: len(cols),
		}
	}}
}

// DropSparseRows drops rows that are blank in more than maxMissing of
// the key attribute columns (model, manufacturer, price, year,
// odometer, fuel, transmission, title_status, state). Rows that sparse
// carry too little signal to repair.
func DropSparseRows(maxMissing int) Step {
	return StepFunc{StepName: "drop_sparse_rows", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "drop_sparse_rows", RowsBefore: t.Len()}
		keep := roaring.New()
		for i := range t.Rows {
			if missingKeyFields(&t.Rows[i]) <= maxMissing {
				keep.Add(uint32(i))
			}
		}
		s.RowsDropped = t.Filter(keep)
		s.RowsAfter = t.Len()
		return s
	}}
}

func missingKeyFields(r *listing.Record) int {
	n := 0
	for _, v := range []*string{
		r.Model, r.Manufacturer, r.Fuel, r.Transmission, r.TitleStatus, r.State,
	} {
		if listing.Blank(v) {
			n++
		}
	}
	if r.Price == nil {
		n++
	}
	if r.Year == nil {
		n++
	}
	if r.Odometer == nil {
		n++
	}
	return n
}
