package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constructors that cannot fail on the given fixture values.

func closed(t *testing.T, lo, up int) Interval[int] {
	t.Helper()
	iv, err := Closed(lo, up)
	require.NoError(t, err)
	return iv
}

func open(t *testing.T, lo, up int) Interval[int] {
	t.Helper()
	iv, err := Open(lo, up)
	require.NoError(t, err)
	return iv
}

func lowerClosed(t *testing.T, lo, up int) Interval[int] {
	t.Helper()
	iv, err := LowerClosed(lo, up)
	require.NoError(t, err)
	return iv
}

func upperClosed(t *testing.T, lo, up int) Interval[int] {
	t.Helper()
	iv, err := UpperClosed(lo, up)
	require.NoError(t, err)
	return iv
}

func TestConstructors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		iv := Empty[int]()

		assert.True(t, iv.IsEmpty())
		assert.False(t, iv.IsSingle())

		_, ok := iv.Lower()
		assert.False(t, ok)
		_, ok = iv.Upper()
		assert.False(t, ok)
	})

	t.Run("single", func(t *testing.T) {
		iv := Single(5)

		assert.False(t, iv.IsEmpty())
		assert.True(t, iv.IsSingle())

		lower, upper, ok := iv.Bounds()
		require.True(t, ok)
		assert.Equal(t, Bound[int]{Value: 5, Closed: true}, lower)
		assert.Equal(t, Bound[int]{Value: 5, Closed: true}, upper)
	})

	t.Run("closed", func(t *testing.T) {
		iv := closed(t, 3, 5)

		lower, upper, ok := iv.Bounds()
		require.True(t, ok)
		assert.True(t, lower.Closed)
		assert.True(t, upper.Closed)
		assert.Equal(t, 3, lower.Value)
		assert.Equal(t, 5, upper.Value)
	})

	t.Run("open", func(t *testing.T) {
		iv := open(t, 3, 5)

		lower, upper, ok := iv.Bounds()
		require.True(t, ok)
		assert.False(t, lower.Closed)
		assert.False(t, upper.Closed)
	})

	t.Run("lower closed", func(t *testing.T) {
		iv := lowerClosed(t, 3, 5)

		lower, upper, ok := iv.Bounds()
		require.True(t, ok)
		assert.True(t, lower.Closed)
		assert.False(t, upper.Closed)
	})

	t.Run("upper closed", func(t *testing.T) {
		iv := upperClosed(t, 3, 5)

		lower, upper, ok := iv.Bounds()
		require.True(t, ok)
		assert.False(t, lower.Closed)
		assert.True(t, upper.Closed)
	})

	t.Run("reversed bounds", func(t *testing.T) {
		_, err := Closed(5, 4)
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})

	t.Run("degenerate point with open endpoint", func(t *testing.T) {
		_, err := LowerClosed(5, 5)
		assert.ErrorIs(t, err, ErrInvalidBounds)

		_, err = UpperClosed(5, 5)
		assert.ErrorIs(t, err, ErrInvalidBounds)

		_, err = Open(5, 5)
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})

	t.Run("degenerate closed point is valid", func(t *testing.T) {
		iv := closed(t, 5, 5)
		assert.True(t, iv.IsSingle())
	})

	t.Run("from bounds", func(t *testing.T) {
		iv, err := FromBounds(Bound[int]{Value: 1, Closed: true}, Bound[int]{Value: 2})

		require.NoError(t, err)
		assert.Equal(t, lowerClosed(t, 1, 2), iv)
	})
}

func TestInterval_Merge(t *testing.T) {
	t.Run("overlapping closed intervals", func(t *testing.T) {
		got, err := closed(t, 3, 4).Merge(closed(t, 4, 5))

		require.NoError(t, err)
		assert.Equal(t, closed(t, 3, 5), got)
	})

	t.Run("touching via one closed endpoint", func(t *testing.T) {
		got, err := open(t, 3, 4).Merge(closed(t, 4, 5))
		require.NoError(t, err)
		assert.Equal(t, upperClosed(t, 3, 5), got)

		got, err = closed(t, 3, 4).Merge(open(t, 4, 5))
		require.NoError(t, err)
		assert.Equal(t, lowerClosed(t, 3, 5), got)
	})

	t.Run("touching open endpoints are disjoint", func(t *testing.T) {
		_, err := open(t, 3, 4).Merge(open(t, 4, 5))
		assert.ErrorIs(t, err, ErrDisjointIntervals)
	})

	t.Run("separated intervals are disjoint", func(t *testing.T) {
		_, err := closed(t, 1, 2).Merge(closed(t, 4, 5))
		assert.ErrorIs(t, err, ErrDisjointIntervals)
	})

	t.Run("empty is neutral", func(t *testing.T) {
		iv := open(t, 3, 5)

		got, err := iv.Merge(Empty[int]())
		require.NoError(t, err)
		assert.Equal(t, iv, got)

		got, err = Empty[int]().Merge(iv)
		require.NoError(t, err)
		assert.Equal(t, iv, got)
	})

	t.Run("contained interval changes nothing", func(t *testing.T) {
		got, err := closed(t, 1, 9).Merge(open(t, 3, 4))

		require.NoError(t, err)
		assert.Equal(t, closed(t, 1, 9), got)
	})
}

func TestInterval_Span(t *testing.T) {
	t.Run("bridges separated intervals", func(t *testing.T) {
		got := closed(t, 3, 5).Span(closed(t, 7, 9))
		assert.Equal(t, closed(t, 3, 9), got)
	})

	t.Run("prefers the closed endpoint on equal values", func(t *testing.T) {
		got := open(t, 3, 5).Span(closed(t, 3, 5))
		assert.Equal(t, closed(t, 3, 5), got)
	})

	t.Run("empty is neutral", func(t *testing.T) {
		iv := open(t, 3, 5)

		assert.Equal(t, iv, iv.Span(Empty[int]()))
		assert.Equal(t, iv, Empty[int]().Span(iv))
	})

	t.Run("span with itself", func(t *testing.T) {
		iv := open(t, 3, 5)
		assert.Equal(t, iv, iv.Span(iv))
	})
}

func TestInterval_Intersect(t *testing.T) {
	t.Run("partial overlap", func(t *testing.T) {
		got := open(t, 3, 9).Intersect(closed(t, 1, 8))
		assert.Equal(t, upperClosed(t, 3, 8), got)
	})

	t.Run("nested interval wins", func(t *testing.T) {
		got := upperClosed(t, 3, 8).Intersect(lowerClosed(t, 4, 7))
		assert.Equal(t, lowerClosed(t, 4, 7), got)
	})

	t.Run("with itself", func(t *testing.T) {
		iv := lowerClosed(t, 4, 7)
		assert.Equal(t, iv, iv.Intersect(iv))
	})

	t.Run("disjoint intervals yield empty", func(t *testing.T) {
		got := closed(t, 1, 2).Intersect(closed(t, 4, 5))
		assert.True(t, got.IsEmpty())
	})

	t.Run("empty absorbs", func(t *testing.T) {
		iv := lowerClosed(t, 4, 7)

		assert.True(t, iv.Intersect(Empty[int]()).IsEmpty())
		assert.True(t, Empty[int]().Intersect(iv).IsEmpty())
	})
}

func TestInterval_String(t *testing.T) {
	for _, tc := range []struct {
		iv   Interval[int]
		want string
	}{
		{iv: Empty[int](), want: "Ø"},
		{iv: Single(5), want: "[5,5]"},
		{iv: closed(t, 3, 5), want: "[3,5]"},
		{iv: open(t, 3, 5), want: "(3,5)"},
		{iv: lowerClosed(t, 3, 5), want: "[3,5)"},
		{iv: upperClosed(t, 3, 5), want: "(3,5]"},
	} {
		assert.Equal(t, tc.want, tc.iv.String())
	}
}
