package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	c := New(4, 0)
	_, ok := c.Get("missing")
	require.False(t, ok)

	c.Set("k", []string{"a", "b"})
	v, ok := c.Get("k")
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, v)
}

func TestEviction(t *testing.T) {
	c := New(2, 0)
	c.Set("a", 1)
	c.Set("b", 2)
	// Touch "a" so "b" is the least recently used.
	_, _ = c.Get("a")
	c.Set("c", 3)

	_, ok := c.Get("b")
	require.False(t, ok)
	_, ok = c.Get("a")
	require.True(t, ok)
	_, ok = c.Get("c")
	require.True(t, ok)
}

func TestTTLExpiry(t *testing.T) {
	c := New(4, 10*time.Millisecond)
	c.Set("k", 1)
	_, ok := c.Get("k")
	require.True(t, ok)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.Get("k")
	require.False(t, ok)
}

func TestZeroTTLNeverExpires(t *testing.T) {
	c := New(4, 0)
	c.Set("k", 1)
	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get("k")
	require.True(t, ok)
}

func TestPurge(t *testing.T) {
	c := New(8, 0)
	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	require.Equal(t, 5, c.Len())

	c.Purge()
	require.Equal(t, 0, c.Len())
	_, ok := c.Get("k0")
	require.False(t, ok)

	c.Set("k0", 0)
	require.Equal(t, 1, c.Len())
}
