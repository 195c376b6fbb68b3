// Package iterators defines the single-pass iterator contract and helpers
// to drive, bridge and cut iterators.
package iterators

import "iter"

// Iterator is a single-pass iterator interface.
type Iterator[T any] interface {
	// Next returns true, if there is element and fills t.
	Next(t *T) bool
	// Err returns an error caused during iteration, if any.
	Err() error
	// Close closes iterator.
	Close() error
}

// ForEach calls given callback for each iterator element.
//
// NOTE: ForEach does not close iterator.
func ForEach[T any](i Iterator[T], cb func(T) error) error {
	var t T
	for i.Next(&t) {
		if err := cb(t); err != nil {
			return err
		}
	}
	return i.Err()
}

// Collect reads all remaining elements of the iterator.
//
// NOTE: Collect does not close iterator.
func Collect[T any](i Iterator[T]) ([]T, error) {
	var out []T
	if err := ForEach(i, func(t T) error {
		out = append(out, t)
		return nil
	}); err != nil {
		return out, err
	}
	return out, nil
}

// Seq returns a range-over-func view of the iterator.
//
// The sequence is single-use like the iterator itself. Iteration errors are
// available through [Iterator.Err] after the loop.
func Seq[T any](i Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var t T
		for i.Next(&t) {
			if !yield(t) {
				return
			}
		}
	}
}

var _ Iterator[any] = Empty[any]()

// EmptyIterator is an iterator without elements.
//
// It holds no state, so a single value may be shared by any number of
// callers.
type EmptyIterator[T any] struct{}

// Empty returns an iterator without elements.
func Empty[T any]() EmptyIterator[T] { return EmptyIterator[T]{} }

// Next always returns false and leaves t untouched.
func (EmptyIterator[T]) Next(*T) bool { return false }

// Err always returns nil.
func (EmptyIterator[T]) Err() error { return nil }

// Close is a no-op.
func (EmptyIterator[T]) Close() error { return nil }

var _ Iterator[any] = (*LimitIterator[any])(nil)

// LimitIterator stops after a fixed number of elements.
type LimitIterator[T any] struct {
	iter Iterator[T]
	left int
}

// Limit creates new LimitIterator returning at most n elements of i.
//
// Negative n means no limit.
func Limit[T any](i Iterator[T], n int) Iterator[T] {
	if n < 0 {
		return i
	}
	return &LimitIterator[T]{iter: i, left: n}
}

// Next returns true, if there is element and fills t.
func (i *LimitIterator[T]) Next(t *T) bool {
	if i.left <= 0 {
		return false
	}
	if !i.iter.Next(t) {
		return false
	}
	i.left--
	return true
}

// Err returns an error caused during iteration, if any.
func (i *LimitIterator[T]) Err() error {
	return i.iter.Err()
}

// Close closes underlying iterator.
func (i *LimitIterator[T]) Close() error {
	return i.iter.Close()
}
