package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLRUGetSet(t *testing.T) {
	c := NewLRU[int](2)

	_, ok := c.Get("a")
	require.False(t, ok)

	c.Set("a", 1)
	c.Set("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	// "b" is now least recently used; inserting "c" evicts it.
	c.Set("c", 3)
	_, ok = c.Get("b")
	require.False(t, ok)

	v, ok = c.Get("c")
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, 2, c.Len())
}

func TestLRUUpdateExisting(t *testing.T) {
	c := NewLRU[string](2)
	c.Set("a", "one")
	c.Set("a", "uno")

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, "uno", v)
	require.Equal(t, 1, c.Len())
}

func TestLRUUnbounded(t *testing.T) {
	c := NewLRU[int](0)
	for i := 0; i < 1000; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	require.Equal(t, 1000, c.Len())
}

func TestLRUStats(t *testing.T) {
	c := NewLRU[int](10)
	c.Set("a", 1)
	c.Get("a")
	c.Get("a")
	c.Get("zzz")

	hits, misses := c.Stats()
	require.Equal(t, int64(2), hits)
	require.Equal(t, int64(1), misses)
}
