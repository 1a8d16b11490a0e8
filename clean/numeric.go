package clean

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/dealpredict/carwash/listing"
)

// Default numeric bounds for US used vehicle listings.
const (
	MinPrice    = 500
	MaxPrice    = 300000
	MinYear     = 1990
	MaxOdometer = 500000.0

	MinLatitude  = 18.0
	MaxLatitude  = 72.0
	MinLongitude = -180.0
	MaxLongitude = -66.0
)

// PriceRange drops rows whose price is missing, non-positive, or
// outside [MinPrice, MaxPrice].
func PriceRange() Step {
	return StepFunc{StepName: "price_range", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "price_range", RowsBefore: t.Len()}
		keep := roaring.New()
		for i := range t.Rows {
			p := t.Rows[i].Price
			if p != nil && *p > 0 && *p >= MinPrice && *p <= MaxPrice {
				keep.Add(uint32(i))
			}
		}
		s.RowsDropped = t.Filter(keep)
		s.RowsAfter = t.Len()
		return s
	}}
}

// YearRange drops rows whose model year is missing or before MinYear.
func YearRange() Step {
	return StepFunc{StepName: "year_range", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "year_range", RowsBefore: t.Len()}
		keep := roaring.New()
		for i := range t.Rows {
			y := t.Rows[i].Year
			if y != nil && *y >= MinYear {
				keep.Add(uint32(i))
			}
		}
		s.RowsDropped = t.Filter(keep)
		s.RowsAfter = t.Len()
		return s
	}}
}

// OdometerRange drops rows whose odometer is missing, negative, or
// over MaxOdometer.
func OdometerRange() Step {
	return StepFunc{StepName: "odometer_range", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "odometer_range", RowsBefore: t.Len()}
		keep := roaring.New()
		for i := range t.Rows {
			o := t.Rows[i].Odometer
			if o != nil && *o >= 0 && *o <= MaxOdometer {
				keep.Add(uint32(i))
			}
		}
		s.RowsDropped = t.Filter(keep)
		s.RowsAfter = t.Len()
		return s
	}}
}

// USACoordinates drops rows whose coordinates fall outside the
// bounding box covering US territory. Rows missing both coordinates
// are kept; rows with only one coordinate are dropped.
func USACoordinates() Step {
	return StepFunc{StepName: "usa_coordinates", Fn: func(t *listing.Table) Summary {
		s := Summary{Step: "usa_coordinates", RowsBefore: t.Len()}
		keep := roaring.New()
		for i := range t.Rows {
			r := &t.Rows[i]
			if r.Lat == nil && r.Long == nil {
				keep.Add(uint32(i))
				continue
			}
			if r.Lat == nil || r.Long == nil {
				continue
			}
			if *r.Lat >= MinLatitude && *r.Lat <= MaxLatitude &&
				*r.Long >= MinLongitude && *r.Long <= MaxLongitude {
				keep.Add(uint32(i))
			}
		}
		s.RowsDropped = t.Filter(keep)
		s.RowsAfter = t.Len()
		return s
	}}
}
