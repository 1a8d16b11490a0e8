package tablestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealpredict/carwash/listing"
)

func sampleTable() *listing.Table {
	return listing.NewTable(
		listing.Record{
			ID:           listing.String("7316356412"),
			Manufacturer: listing.String("toyota"),
			Model:        listing.String("camry"),
			Price:        listing.Int(15000),
			Year:         listing.Int(2015),
			Odometer:     listing.Float(60123.5),
			Fuel:         listing.String("gas"),
			State:        listing.String("ca"),
			Lat:          listing.Float(34.05),
			Long:         listing.Float(-118.24),
		},
		listing.Record{
			Model: listing.String("f-150"),
		},
	)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := New(NewMemoryStore())

	for _, name := range []string{
		"vehicles.csv",
		"vehicles.json",
		"vehicles.csv.gz",
		"vehicles.json.zst",
		"vehicles.csv.lz4",
	} {
		t.Run(name, func(t *testing.T) {
			in := sampleTable()
			require.NoError(t, store.WriteTable(ctx, name, in))

			out, err := store.ReadTable(ctx, name)
			require.NoError(t, err)
			require.Equal(t, 2, out.Len())
			assert.Equal(t, "camry", listing.Value(out.Rows[0].Model))
			assert.Equal(t, 15000, *out.Rows[0].Price)
			assert.Equal(t, 60123.5, *out.Rows[0].Odometer)
			assert.Equal(t, -118.24, *out.Rows[0].Long)
			assert.Nil(t, out.Rows[1].Price)
			assert.Nil(t, out.Rows[1].Manufacturer)
		})
	}
}

func TestStoreUnknownFormat(t *testing.T) {
	store := New(NewMemoryStore())
	_, err := store.ReadTable(context.Background(), "vehicles.parquet")
	require.Error(t, err)
}

func TestStoreNotFound(t *testing.T) {
	store := New(NewMemoryStore())
	_, err := store.ReadTable(context.Background(), "missing.csv")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore(t *testing.T) {
	ctx := context.Background()
	objects := NewLocalStore(t.TempDir())
	store := New(objects)

	require.NoError(t, store.WriteTable(ctx, "out/vehicles.csv.gz", sampleTable()))

	names, err := objects.List(ctx, "out/")
	require.NoError(t, err)
	assert.Equal(t, []string{"out/vehicles.csv.gz"}, names)

	out, err := store.ReadTable(ctx, "out/vehicles.csv.gz")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())

	require.NoError(t, objects.Delete(ctx, "out/vehicles.csv.gz"))
	require.NoError(t, objects.Delete(ctx, "out/vehicles.csv.gz"))
	_, err = objects.Get(ctx, "out/vehicles.csv.gz")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCSVDecodeQuirks(t *testing.T) {
	data := []byte("model,price,odometer,unknown_column\ncamry,15000.0,NaN,x\n,,,\n")

	out, err := CSV{}.Decode(data)
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, "camry", listing.Value(out.Rows[0].Model))
	assert.Equal(t, 15000, *out.Rows[0].Price)
	assert.Nil(t, out.Rows[0].Odometer)
	assert.Nil(t, out.Rows[1].Model)
}

func TestCompressionFor(t *testing.T) {
	c, rest := CompressionFor("vehicles.csv.gz")
	assert.Equal(t, "gz", c.Name())
	assert.Equal(t, "vehicles.csv", rest)

	c, rest = CompressionFor("vehicles.csv")
	assert.Equal(t, "none", c.Name())
	assert.Equal(t, "vehicles.csv", rest)

	c, rest = CompressionFor("vehicles.json.zst")
	assert.Equal(t, "zst", c.Name())
	assert.Equal(t, "vehicles.json", rest)
}
