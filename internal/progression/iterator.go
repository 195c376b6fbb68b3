package progression

import (
	"time"

	"github.com/go-faster/timeprog/internal/chrono"
	"github.com/go-faster/timeprog/internal/iterators"
)

var _ iterators.Iterator[time.Time] = (*Iterator[time.Time])(nil)

// Iterator is a single-pass iterator over progression elements.
//
// Iterator is not safe for concurrent use. Use [Progression.Iterator] to
// get an independent iterator for each traversal.
type Iterator[T chrono.Instant[T]] struct {
	final   T
	next    T
	hasNext bool
	step    time.Duration
}

func newIterator[T chrono.Instant[T]](first, last T, step time.Duration) *Iterator[T] {
	var hasNext bool
	switch {
	case step > 0:
		hasNext = first.Compare(last) <= 0
	case step < 0:
		hasNext = first.Compare(last) >= 0
	}
	next := last
	if hasNext {
		next = first
	}
	return &Iterator[T]{
		final:   last,
		next:    next,
		hasNext: hasNext,
		step:    step,
	}
}

// HasNext reports whether Advance would return an element.
func (i *Iterator[T]) HasNext() bool {
	return i.hasNext
}

// Advance returns the next element and moves the iterator forward.
//
// Returns [ErrExhausted] if there are no elements left.
func (i *Iterator[T]) Advance() (T, error) {
	value := i.next
	if value.Equal(i.final) {
		if !i.hasNext {
			var zero T
			return zero, ErrExhausted
		}
		// Never step past the final element, it may be the last
		// representable instant.
		i.hasNext = false
	} else {
		i.next = i.next.Add(i.step)
	}
	return value, nil
}

// Next returns true, if there is element and fills t.
func (i *Iterator[T]) Next(t *T) bool {
	if !i.hasNext {
		return false
	}
	v, err := i.Advance()
	if err != nil {
		return false
	}
	*t = v
	return true
}

// Err always returns nil, progression iteration never fails.
func (i *Iterator[T]) Err() error {
	return nil
}

// Close is a no-op.
func (i *Iterator[T]) Close() error {
	return nil
}
