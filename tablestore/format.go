package tablestore

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dealpredict/carwash/listing"
)

// Format encodes and decodes listing tables.
// Implementations must be safe for concurrent use.
type Format interface {
	Encode(t *listing.Table) ([]byte, error)
	Decode(data []byte) (*listing.Table, error)
	Name() string
}

// FormatByName returns a built-in format by its stable name.
func FormatByName(name string) (Format, bool) {
	switch name {
	case "csv":
		return CSV{}, true
	case "json":
		return JSON{}, true
	default:
		return nil, false
	}
}

// FormatFor selects a format from the object name extension.
func FormatFor(name string) (Format, bool) {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return nil, false
	}
	return FormatByName(name[i+1:])
}

// JSON encodes the table as a JSON array of records. Null fields are
// omitted.
type JSON struct{}

// Name returns the unique name of the format ("json").
func (JSON) Name() string { return "json" }

// Encode encodes the table rows to JSON.
func (JSON) Encode(t *listing.Table) ([]byte, error) {
	return json.Marshal(t.Rows)
}

// Decode decodes a JSON array of records into a table.
func (JSON) Decode(data []byte) (*listing.Table, error) {
	var rows []listing.Record
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	return &listing.Table{Rows: rows}, nil
}

// CSV encodes the table in the raw dataset's header layout. Missing
// values round-trip as empty cells; the literal "NaN" a pandas export
// produces decodes to a missing value too.
type CSV struct{}

// Name returns the unique name of the format ("csv").
func (CSV) Name() string { return "csv" }

// Encode writes a header row followed by one row per record.
func (CSV) Encode(t *listing.Table) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	cols := listing.Columns()
	header := make([]string, len(cols))
	for i, col := range cols {
		header[i] = string(col)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := make([]string, len(cols))
	for i := range t.Rows {
		r := &t.Rows[i]
		for j, col := range cols {
			row[j] = cellValue(r, col)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// Decode reads a header row and maps the remaining rows onto records.
// Unknown header columns are ignored; absent columns decode to missing
// values.
func (CSV) Decode(data []byte) (*listing.Table, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err == io.EOF {
		return &listing.Table{}, nil
	}
	if err != nil {
		return nil, err
	}

	colIdx := make(map[listing.Column]int, len(header))
	for i, h := range header {
		colIdx[listing.Column(strings.TrimSpace(h))] = i
	}

	t := &listing.Table{}
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		var rec listing.Record
		for col, i := range colIdx {
			if i >= len(row) {
				continue
			}
			if err := setCell(&rec, col, row[i]); err != nil {
				return nil, fmt.Errorf("line %d, column %s: %w", line, col, err)
			}
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

func cellValue(r *listing.Record, col listing.Column) string {
	switch col {
	case listing.ColPrice:
		return intCell(r.Price)
	case listing.ColYear:
		return intCell(r.Year)
	case listing.ColOdometer:
		return floatCell(r.Odometer)
	case listing.ColLat:
		return floatCell(r.Lat)
	case listing.ColLong:
		return floatCell(r.Long)
	default:
		return listing.Value(stringField(r, col))
	}
}

func setCell(r *listing.Record, col listing.Column, cell string) error {
	cell = strings.TrimSpace(cell)
	if cell == "" || strings.EqualFold(cell, "nan") {
		return nil
	}
	switch col {
	case listing.ColPrice:
		v, err := parseIntCell(cell)
		if err != nil {
			return err
		}
		r.Price = &v
	case listing.ColYear:
		v, err := parseIntCell(cell)
		if err != nil {
			return err
		}
		r.Year = &v
	case listing.ColOdometer:
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return err
		}
		r.Odometer = &v
	case listing.ColLat:
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return err
		}
		r.Lat = &v
	case listing.ColLong:
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return err
		}
		r.Long = &v
	default:
		if p := stringFieldPtr(r, col); p != nil {
			*p = listing.String(cell)
		}
	}
	return nil
}

// parseIntCell accepts both integer and float spellings; exports
// routinely widen integer columns with missing values to floats.
func parseIntCell(cell string) (int, error) {
	if v, err := strconv.Atoi(cell); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func intCell(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func floatCell(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func stringField(r *listing.Record, col listing.Column) *string {
	if p := stringFieldPtr(r, col); p != nil {
		return *p
	}
	return nil
}

func stringFieldPtr(r *listing.Record, col listing.Column) **string {
	switch col {
	case listing.ColID:
		return &r.ID
	case listing.ColURL:
		return &r.URL
	case listing.ColRegion:
		return &r.Region
	case listing.ColManufacturer:
		return &r.Manufacturer
	case listing.ColModel:
		return &r.Model
	case listing.ColCondition:
		return &r.Condition
	case listing.ColCylinders:
		return &r.Cylinders
	case listing.ColFuel:
		return &r.Fuel
	case listing.ColTitleStatus:
		return &r.TitleStatus
	case listing.ColTransmission:
		return &r.Transmission
	case listing.ColVIN:
		return &r.VIN
	case listing.ColDrive:
		return &r.Drive
	case listing.ColSize:
		return &r.Size
	case listing.ColType:
		return &r.Type
	case listing.ColPaintColor:
		return &r.PaintColor
	case listing.ColImageURL:
		return &r.ImageURL
	case listing.ColDescription:
		return &r.Description
	case listing.ColCounty:
		return &r.County
	case listing.ColState:
		return &r.State
	case listing.ColPostingDate:
		return &r.PostingDate
	case listing.ColCensusRegion:
		return &r.CensusRegion
	default:
		return nil
	}
}
