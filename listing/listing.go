package listing

import "strings"

// Record is one vehicle listing row. Nullable columns are pointers so a
// missing value is representable without sentinel strings or NaN floats.
type Record struct {
	ID           *string  `json:"id,omitempty"`
	URL          *string  `json:"url,omitempty"`
	Region       *string  `json:"region,omitempty"`
	Price        *int     `json:"price,omitempty"`
	Year         *int     `json:"year,omitempty"`
	Manufacturer *string  `json:"manufacturer,omitempty"`
	Model        *string  `json:"model,omitempty"`
	Condition    *string  `json:"condition,omitempty"`
	Cylinders    *string  `json:"cylinders,omitempty"`
	Fuel         *string  `json:"fuel,omitempty"`
	Odometer     *float64 `json:"odometer,omitempty"`
	TitleStatus  *string  `json:"title_status,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	VIN          *string  `json:"VIN,omitempty"`
	Drive        *string  `json:"drive,omitempty"`
	Size         *string  `json:"size,omitempty"`
	Type         *string  `json:"type,omitempty"`
	PaintColor   *string  `json:"paint_color,omitempty"`
	ImageURL     *string  `json:"image_url,omitempty"`
	Description  *string  `json:"description,omitempty"`
	County       *string  `json:"county,omitempty"`
	State        *string  `json:"state,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Long         *float64 `json:"long,omitempty"`
	PostingDate  *string  `json:"posting_date,omitempty"`
	CensusRegion *string  `json:"census_region,omitempty"`
}

// String returns a pointer to s. Convenience for building records.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Float returns a pointer to f.
func Float(f float64) *float64 { return &f }

// Blank reports whether an optional string value counts as missing.
// Upstream CSV exports leave behind empty cells and the literal "nan",
// so both are treated the same as a nil pointer.
func Blank(s *string) bool {
	if s == nil {
		return true
	}
	v := strings.TrimSpace(*s)
	return v == "" || strings.EqualFold(v, "nan")
}

// Value dereferences an optional string, returning "" when blank.
func Value(s *string) string {
	if Blank(s) {
		return ""
	}
	return strings.TrimSpace(*s)
}
