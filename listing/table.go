package listing

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Column names a record field using the raw dataset header spelling.
type Column string

// Columns of the raw dataset, in header order.
const (
	ColID           Column = "id"
	ColURL          Column = "url"
	ColRegion       Column = "region"
	ColPrice        Column = "price"
	ColYear         Column = "year"
	ColManufacturer Column = "manufacturer"
	ColModel        Column = "model"
	ColCondition    Column = "condition"
	ColCylinders    Column = "cylinders"
	ColFuel         Column = "fuel"
	ColOdometer     Column = "odometer"
	ColTitleStatus  Column = "title_status"
	ColTransmission Column = "transmission"
	ColVIN          Column = "VIN"
	ColDrive        Column = "drive"
	ColSize         Column = "size"
	ColType         Column = "type"
	ColPaintColor   Column = "paint_color"
	ColImageURL     Column = "image_url"
	ColDescription  Column = "description"
	ColCounty       Column = "county"
	ColState        Column = "state"
	ColLat          Column = "lat"
	ColLong         Column = "long"
	ColPostingDate  Column = "posting_date"
	ColCensusRegion Column = "census_region"
)

// Columns returns the full column set in header order.
func Columns() []Column {
	return []Column{
		ColID, ColURL, ColRegion, ColPrice, ColYear, ColManufacturer,
		ColModel, ColCondition, ColCylinders, ColFuel, ColOdometer,
		ColTitleStatus, ColTransmission, ColVIN, ColDrive, ColSize,
		ColType, ColPaintColor, ColImageURL, ColDescription, ColCounty,
		ColState, ColLat, ColLong, ColPostingDate, ColCensusRegion,
	}
}

// Table is an ordered collection of listing records.
type Table struct {
	Rows []Record
}

// NewTable creates a table from rows.
func NewTable(rows ...Record) *Table {
	return &Table{Rows: rows}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Filter keeps only the rows whose positions are set in keep and
// returns the number of rows dropped. Row order is preserved.
func (t *Table) Filter(keep *roaring.Bitmap) int {
	before := len(t.Rows)
	rows := make([]Record, 0, keep.GetCardinality())
	it := keep.Iterator()
	for it.HasNext() {
		i := it.Next()
		if int(i) < before {
			rows = append(rows, t.Rows[i])
		}
	}
	t.Rows = rows
	return before - len(t.Rows)
}

// KeepAll returns a bitmap with every row position set. Steps start
// from this and unset the rows they reject.
func (t *Table) KeepAll() *roaring.Bitmap {
	bm := roaring.New()
	if len(t.Rows) > 0 {
		bm.AddRange(0, uint64(len(t.Rows)))
	}
	return bm
}

// Clear blanks the given column in every row. This is the typed
// equivalent of dropping an unused column from the raw export.
func (t *Table) Clear(col Column) {
	for i := range t.Rows {
		r := &t.Rows[i]
		switch col {
		case ColID:
			r.ID = nil
		case ColURL:
			r.URL = nil
		case ColRegion:
			r.Region = nil
		case ColPrice:
			r.Price = nil
		case ColYear:
			r.Year = nil
		case ColManufacturer:
			r.Manufacturer = nil
		case ColModel:
			r.Model = nil
		case ColCondition:
			r.Condition = nil
		case ColCylinders:
			r.Cylinders = nil
		case ColFuel:
			r.Fuel = nil
		case ColOdometer:
			r.Odometer = nil
		case ColTitleStatus:
			r.TitleStatus = nil
		case ColTransmission:
			r.Transmission = nil
		case ColVIN:
			r.VIN = nil
		case ColDrive:
			r.Drive = nil
		case ColSize:
			r.Size = nil
		case ColType:
			r.Type = nil
		case ColPaintColor:
			r.PaintColor = nil
		case ColImageURL:
			r.ImageURL = nil
		case ColDescription:
			r.Description = nil
		case ColCounty:
			r.County = nil
		case ColState:
			r.State = nil
		case ColLat:
			r.Lat = nil
		case ColLong:
			r.Long = nil
		case ColPostingDate:
			r.PostingDate = nil
		case ColCensusRegion:
			r.CensusRegion = nil
		}
	}
}

// ValueCounts tallies the non-blank values produced by get.
func (t *Table) ValueCounts(get func(*Record) *string) map[string]int {
	counts := make(map[string]int)
	for i := range t.Rows {
		if v := Value(get(&t.Rows[i])); v != "" {
			counts[v]++
		}
	}
	return counts
}
