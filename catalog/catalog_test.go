package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNormalizes(t *testing.T) {
	c := New(map[string][]string{
		"Toyota": {"Camry", "camry", " Corolla ", ""},
		"HONDA":  {"Civic", "CR-V"},
		"":       {"ghost"},
	})

	require.Equal(t, []string{"honda", "toyota"}, c.Manufacturers())
	require.Equal(t, []string{"camry", "corolla"}, c.Models("toyota"))
	require.Equal(t, []string{"civic", "cr-v"}, c.Models("Honda"))
	require.Equal(t, 4, c.Len())
	require.False(t, c.Empty())
}

func TestEmpty(t *testing.T) {
	var nilCatalog *Catalog
	require.True(t, nilCatalog.Empty())
	require.True(t, New(nil).Empty())
}

func TestFromJSON(t *testing.T) {
	doc := `{"ford": ["F-150", "Escape"], "honda": ["civic"]}`
	c, err := FromJSON(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []string{"escape", "f-150"}, c.Models("ford"))
	require.Equal(t, 3, c.Len())

	_, err = FromJSON(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestFromCSV(t *testing.T) {
	doc := "model,manufacturer\ncamry,toyota\ncorolla,toyota\ncivic,honda\n"
	c, err := FromCSV(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []string{"camry", "corolla"}, c.Models("toyota"))

	_, err = FromCSV(strings.NewReader("a,b\n1,2\n"))
	require.ErrorIs(t, err, ErrMissingColumns)
}

func TestDriveRefFromCSV(t *testing.T) {
	doc := "model,drive\nCamry,FWD\nf-150,4wd\ncamry,rwd\n"
	ref, err := DriveRefFromCSV(strings.NewReader(doc))
	require.NoError(t, err)

	// First occurrence wins.
	v, ok := ref.Lookup("  CAMRY ")
	require.True(t, ok)
	require.Equal(t, "fwd", v)

	v, ok = ref.Lookup("f-150")
	require.True(t, ok)
	require.Equal(t, "4wd", v)

	_, ok = ref.Lookup("unknown")
	require.False(t, ok)

	_, err = DriveRefFromCSV(strings.NewReader("model,colour\nx,red\n"))
	require.ErrorIs(t, err, ErrMissingColumns)
}
