package extract

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dealpredict/carwash/catalog"
	"github.com/dealpredict/carwash/listing"
)

func newTestExtractor() *Extractor {
	return NewExtractor(catalog.DefaultManufacturers)
}

func TestParseYear(t *testing.T) {
	e := newTestExtractor()

	require.Equal(t, 2015, e.Parse("2015 toyota camry").Year)
	require.Equal(t, 1998, e.Parse("clean 1998 pickup").Year)
	require.Equal(t, 0, e.Parse("no year here").Year)
	// Not a standalone token.
	require.Equal(t, 0, e.Parse("part no 20159").Year)
}

func TestParseCylinders(t *testing.T) {
	e := newTestExtractor()

	require.Equal(t, "6 cylinders", e.Parse("v8 6cyl sedan").Cylinders)
	require.Equal(t, "8 cylinders", e.Parse("8 Cylinders RWD").Cylinders)
	require.Equal(t, "4 cylinders", e.Parse("4 Cylinder FWD").Cylinders)
	require.Equal(t, "4 cylinders", e.Parse("4-cyl turbo").Cylinders)
	require.Equal(t, "", e.Parse("no engine info").Cylinders)
}

func TestParseDrivePrecedence(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		in   string
		want string
	}{
		{"4wd fwd wagon", "4wd"}, // 4wd family wins regardless of order
		{"fwd 4x4", "4wd"},
		{"all wheel drive sedan", "4wd"},
		{"AWD luxury", "4wd"},
		{"rear-wheel-drive coupe", "rwd"},
		{"Sedan 4D", "4wd"},
		{"Coupe 2D", "rwd"},
		{"front wheel drive", "fwd"},
		{"FWD hatchback", "fwd"},
		{"nothing here", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, e.Parse(tt.in).Drive, "input %q", tt.in)
	}
}

func TestParseType(t *testing.T) {
	e := newTestExtractor()

	require.Equal(t, "SUV", e.Parse("bmw x5 suv awd").Type)
	require.Equal(t, "sedan", e.Parse("Camry Sedan").Type)
	require.Equal(t, "mini-van", e.Parse("honda odyssey minivan").Type)
	require.Equal(t, "mini-van", e.Parse("dodge mini-van").Type)
	require.Equal(t, "pickup", e.Parse("Ford F-150 Pickup Truck").Type)
	require.Equal(t, "", e.Parse("mystery vehicle").Type)
}

func TestParseManufacturer(t *testing.T) {
	e := newTestExtractor()

	require.Equal(t, "toyota", e.Parse("2015 Toyota Camry").Manufacturer)
	// Multi-word names are found with space or hyphen separators.
	require.Equal(t, "mercedes-benz", e.Parse("Mercedes Benz E350").Manufacturer)
	require.Equal(t, "mercedes-benz", e.Parse("mercedes-benz e350").Manufacturer)
	require.Equal(t, "land rover", e.Parse("Land Rover Discovery").Manufacturer)
	require.Equal(t, "", e.Parse("unknown brand xyz").Manufacturer)
}

func TestParseBlankInput(t *testing.T) {
	e := newTestExtractor()
	require.Equal(t, Fields{}, e.Parse(""))
	require.Equal(t, Fields{}, e.Parse("   "))
	require.Equal(t, Fields{}, e.Parse("nan"))
}

func TestApplyFillsOnlyBlanks(t *testing.T) {
	e := newTestExtractor()

	r := listing.Record{
		Model:        listing.String("Ford F-150 Pickup Truck 8 Cylinders RWD 2019"),
		Type:         listing.String("pickup"), // pre-existing, must survive
		Manufacturer: nil,
	}
	e.Apply(&r)

	require.Equal(t, "pickup", listing.Value(r.Type))
	require.Equal(t, "ford", listing.Value(r.Manufacturer))
	require.Equal(t, "rwd", listing.Value(r.Drive))
	require.Equal(t, "8 cylinders", listing.Value(r.Cylinders))
	require.NotNil(t, r.Year)
	require.Equal(t, 2019, *r.Year)
}

func TestApplyModelBeforeDescription(t *testing.T) {
	e := newTestExtractor()

	r := listing.Record{
		Model:       listing.String("2020 honda civic sedan"),
		Description: listing.String("was thinking of trading for a 1999 toyota suv"),
	}
	e.Apply(&r)

	// Values found in model win; description only fills what is left.
	require.Equal(t, "honda", listing.Value(r.Manufacturer))
	require.Equal(t, "sedan", listing.Value(r.Type))
	require.Equal(t, 2020, *r.Year)
}

func TestApplyIdempotent(t *testing.T) {
	e := newTestExtractor()

	r := listing.Record{
		Model:       listing.String("BMW X5 SUV AWD 6 Cylinders 2021"),
		Description: listing.String("great condition fwd? no: awd."),
	}
	e.Apply(&r)
	snapshot := r
	e.Apply(&r)

	require.Equal(t, snapshot, r)
}

func TestApplyBlankSources(t *testing.T) {
	e := newTestExtractor()

	r := listing.Record{Model: nil, Description: listing.String("nan")}
	e.Apply(&r)
	require.Equal(t, listing.Record{Model: nil, Description: listing.String("nan")}, r)
}
