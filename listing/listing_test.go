package listing

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/require"
)

func TestBlank(t *testing.T) {
	require.True(t, Blank(nil))
	require.True(t, Blank(String("")))
	require.True(t, Blank(String("   ")))
	require.True(t, Blank(String("nan")))
	require.True(t, Blank(String("NaN")))
	require.False(t, Blank(String("toyota")))
	require.False(t, Blank(String(" 0 ")))
}

func TestValue(t *testing.T) {
	require.Equal(t, "", Value(nil))
	require.Equal(t, "", Value(String("nan")))
	require.Equal(t, "camry", Value(String("  camry ")))
}

func TestTableFilter(t *testing.T) {
	tbl := NewTable(
		Record{Model: String("civic")},
		Record{Model: String("camry")},
		Record{Model: String("f-150")},
	)

	keep := roaring.New()
	keep.Add(0)
	keep.Add(2)

	dropped := tbl.Filter(keep)
	require.Equal(t, 1, dropped)
	require.Equal(t, 2, tbl.Len())
	require.Equal(t, "civic", Value(tbl.Rows[0].Model))
	require.Equal(t, "f-150", Value(tbl.Rows[1].Model))
}

func TestTableKeepAll(t *testing.T) {
	tbl := NewTable(Record{}, Record{})
	bm := tbl.KeepAll()
	require.Equal(t, uint64(2), bm.GetCardinality())

	empty := NewTable()
	require.Equal(t, uint64(0), empty.KeepAll().GetCardinality())
}

func TestTableClear(t *testing.T) {
	tbl := NewTable(Record{
		URL:       String("http://example.com"),
		VIN:       String("1HGCM82633A004352"),
		Model:     String("accord"),
		Cylinders: String("4 cylinders"),
	})

	tbl.Clear(ColURL)
	tbl.Clear(ColVIN)
	tbl.Clear(ColCylinders)

	require.Nil(t, tbl.Rows[0].URL)
	require.Nil(t, tbl.Rows[0].VIN)
	require.Nil(t, tbl.Rows[0].Cylinders)
	require.Equal(t, "accord", Value(tbl.Rows[0].Model))
}

func TestValueCounts(t *testing.T) {
	tbl := NewTable(
		Record{Model: String("civic")},
		Record{Model: String("civic")},
		Record{Model: String("camry")},
		Record{Model: nil},
		Record{Model: String("nan")},
	)

	counts := tbl.ValueCounts(func(r *Record) *string { return r.Model })
	require.Equal(t, map[string]int{"civic": 2, "camry": 1}, counts)
}
