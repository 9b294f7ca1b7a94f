package counter

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("empty counter", func(t *testing.T) {
		c := New[int]()
		assert.Empty(t, c)
	})

	t.Run("counts duplicates", func(t *testing.T) {
		c := New(1, 2, 3, 1, 2, 3, 1, 2, 3)

		assert.Len(t, c, 3)
		assert.Equal(t, 3, c.Get(2))
	})

	t.Run("string values", func(t *testing.T) {
		c := New("a", "b", "a")

		assert.Equal(t, 2, c.Get("a"))
		assert.Equal(t, 1, c.Get("b"))
	})
}

func TestCollect(t *testing.T) {
	t.Run("from a sequence", func(t *testing.T) {
		c := Collect(slices.Values([]string{"x", "y", "x"}))

		assert.Equal(t, 2, c.Get("x"))
		assert.Equal(t, 1, c.Get("y"))
	})

	t.Run("empty sequence", func(t *testing.T) {
		c := Collect(slices.Values([]string(nil)))
		assert.Empty(t, c)
	})
}

func TestCounter_Add(t *testing.T) {
	t.Run("single value", func(t *testing.T) {
		c := New[string]()
		c.Add("a")
		c.Add("a")

		assert.Equal(t, 2, c.Get("a"))
	})

	t.Run("multiple values", func(t *testing.T) {
		c := New[int]()
		c.Add(1, 2, 2)

		assert.Equal(t, 1, c.Get(1))
		assert.Equal(t, 2, c.Get(2))
	})

	t.Run("no values is a no-op", func(t *testing.T) {
		c := New(1)
		c.Add()

		assert.Len(t, c, 1)
	})
}

func TestCounter_AddCount(t *testing.T) {
	t.Run("bulk increment", func(t *testing.T) {
		c := New[string]()
		c.AddCount("a", 5)

		assert.Equal(t, 5, c.Get("a"))
	})

	t.Run("decrement below zero deletes the value", func(t *testing.T) {
		c := New("a", "a")
		c.AddCount("a", -3)

		assert.NotContains(t, c, "a")
		assert.Zero(t, c.Get("a"))
	})

	t.Run("decrement to exactly zero deletes the value", func(t *testing.T) {
		c := New("a")
		c.AddCount("a", -1)

		assert.NotContains(t, c, "a")
	})
}

func TestCounter_Get(t *testing.T) {
	c := New("a", "a", "b")

	assert.Equal(t, 2, c.Get("a"))
	assert.Zero(t, c.Get("missing"))
}

func TestCounter_Total(t *testing.T) {
	t.Run("empty counter", func(t *testing.T) {
		assert.Zero(t, New[int]().Total())
	})

	t.Run("sums all counts", func(t *testing.T) {
		c := New(1, 1, 2, 3, 3, 3)
		assert.Equal(t, 6, c.Total())
	})
}

func TestCounter_Merge(t *testing.T) {
	t.Run("adds counts from the other counter", func(t *testing.T) {
		c := New("a", "b")
		other := New("b", "c")

		c.Merge(other)

		assert.Equal(t, 1, c.Get("a"))
		assert.Equal(t, 2, c.Get("b"))
		assert.Equal(t, 1, c.Get("c"))
	})

	t.Run("other counter is untouched", func(t *testing.T) {
		c := New("a")
		other := New("a")

		c.Merge(other)

		assert.Equal(t, 1, other.Get("a"))
	})
}

func TestCounter_Subtract(t *testing.T) {
	t.Run("removes matching counts", func(t *testing.T) {
		c := New("a", "a", "a", "b")
		c.Subtract(New("a"))

		assert.Equal(t, 2, c.Get("a"))
		assert.Equal(t, 1, c.Get("b"))
	})

	t.Run("values dropping to zero disappear", func(t *testing.T) {
		c := New("a", "b")
		c.Subtract(New("a", "a", "b"))

		assert.Empty(t, c)
	})

	t.Run("values only in other are ignored", func(t *testing.T) {
		c := New("a")
		c.Subtract(New("z"))

		assert.Equal(t, 1, c.Get("a"))
		assert.NotContains(t, c, "z")
	})
}

func TestCounter_MostCommon(t *testing.T) {
	t.Run("empty counter", func(t *testing.T) {
		assert.Empty(t, New[int]().MostCommon())
	})

	t.Run("orders by descending count", func(t *testing.T) {
		c := Collect(slices.Values(strings.Split("abcdaa", "")))

		mc := c.MostCommon()

		require.Len(t, mc, 4)
		assert.Equal(t, Entry[string]{Value: "a", Count: 3}, mc[0])
		for i := 1; i < len(mc); i++ {
			assert.LessOrEqual(t, mc[i].Count, mc[i-1].Count)
		}
	})
}

func TestCounter_ToIter(t *testing.T) {
	c := New("a", "a", "b")

	got := make(map[string]int)
	for val, n := range c.ToIter() {
		got[val] = n
	}

	assert.Equal(t, map[string]int{"a": 2, "b": 1}, got)
}
