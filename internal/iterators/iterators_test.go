package iterators

import (
	"fmt"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

// values iterates over the given elements and counts Close calls.
type values[T any] struct {
	data   []T
	closed int
}

func newValues[T any](data ...T) *values[T] {
	return &values[T]{data: data}
}

func (v *values[T]) Next(t *T) bool {
	if len(v.data) == 0 {
		return false
	}
	*t, v.data = v.data[0], v.data[1:]
	return true
}

func (v *values[T]) Err() error { return nil }

func (v *values[T]) Close() error {
	v.closed++
	return nil
}

func TestEmptyIterator(t *testing.T) {
	a := require.New(t)
	ei := Empty[int]()

	a.NoError(ForEach[int](ei, func(int) error {
		a.Fail("Must not be called")
		return nil
	}))

	d := 42
	a.False(ei.Next(&d))
	a.Equal(42, d)
	a.NoError(ei.Err())
	a.NoError(ei.Close())
}

func TestForEach(t *testing.T) {
	for i, data := range [][]int{
		{},
		{1},
		{1, 2, 3},
		{1, 2, 3, 4, 5, 6, 7, 8},
	} {
		t.Run(fmt.Sprintf("Test%d", i+1), func(t *testing.T) {
			a := require.New(t)
			it := newValues(data...)

			got := make([]int, 0, len(data))
			a.NoError(ForEach[int](it, func(v int) error {
				got = append(got, v)
				return nil
			}))
			a.Equal(data, got)

			var d int
			a.False(it.Next(&d))
			a.False(it.Next(&d))
		})
	}
}

func TestForEachError(t *testing.T) {
	testErr := errors.New("test")
	var got []int
	err := ForEach[int](newValues(1, 2, 3), func(v int) error {
		got = append(got, v)
		if v == 2 {
			return testErr
		}
		return nil
	})
	require.ErrorIs(t, err, testErr)
	require.Equal(t, []int{1, 2}, got)
}

func TestCollect(t *testing.T) {
	got, err := Collect[int](newValues(3, 2, 1))
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, got)

	got, err = Collect[int](Empty[int]())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSeq(t *testing.T) {
	a := require.New(t)
	it := newValues(1, 2, 3, 4)

	var got []int
	for v := range Seq[int](it) {
		got = append(got, v)
		if v == 2 {
			break
		}
	}
	a.Equal([]int{1, 2}, got)

	// Seq does not rewind.
	rest, err := Collect[int](it)
	a.NoError(err)
	a.Equal([]int{3, 4}, rest)
}

func TestLimit(t *testing.T) {
	for _, tt := range []struct {
		limit int
		want  []int
	}{
		{-1, []int{1, 2, 3}},
		{0, nil},
		{2, []int{1, 2}},
		{5, []int{1, 2, 3}},
	} {
		t.Run(fmt.Sprintf("Limit%d", tt.limit), func(t *testing.T) {
			a := require.New(t)
			src := newValues(1, 2, 3)
			li := Limit[int](src, tt.limit)
			got, err := Collect(li)
			a.NoError(err)
			a.Equal(tt.want, got)
			a.NoError(li.Close())
			a.Equal(1, src.closed)
		})
	}
}
