// Package progression implements bounded arithmetic progressions of instants.
package progression

import (
	"encoding/binary"
	"fmt"
	"iter"
	"math"
	"time"

	"github.com/go-faster/errors"
	"github.com/zeebo/xxh3"

	"github.com/go-faster/timeprog/internal/chrono"
	"github.com/go-faster/timeprog/internal/iterators"
)

// Progression is an immutable sequence of instants from First to Last
// inclusive, evenly spaced by Step.
//
// The zero value is an empty progression.
type Progression[T chrono.Instant[T]] struct {
	first T
	last  T
	step  time.Duration
}

type (
	// TimeProgression is a progression of [time.Time].
	TimeProgression = Progression[time.Time]
	// TimestampProgression is a progression of OTLP timestamps.
	TimestampProgression = Progression[chrono.Timestamp]
)

// FromClosedRange creates new progression from start to endInclusive by step.
//
// The last element is the farthest instant reachable from start by whole
// steps that does not pass endInclusive. Returns [ErrInvalidArgument] if
// step is zero or its magnitude overflows.
//
// If endInclusive lies behind start in the direction of step, the
// progression is empty and its last element is endInclusive.
func FromClosedRange[T chrono.Instant[T]](start, endInclusive T, step time.Duration) (Progression[T], error) {
	switch step {
	case 0:
		return Progression[T]{}, errors.Wrap(ErrInvalidArgument, "step is zero")
	case math.MinInt64:
		return Progression[T]{}, errors.Wrapf(ErrInvalidArgument, "step %s overflows", step)
	}
	start, endInclusive = wall(start), wall(endInclusive)
	if c := start.Compare(endInclusive); (step > 0 && c > 0) || (step < 0 && c < 0) {
		// Solving here may wrap around instants with modular arithmetic,
		// like Timestamp.
		return Progression[T]{
			first: start,
			last:  endInclusive,
			step:  step,
		}, nil
	}
	last, err := LastElement(start, endInclusive, step)
	if err != nil {
		return Progression[T]{}, errors.Wrap(err, "last element")
	}
	return Progression[T]{
		first: start,
		last:  last,
		step:  step,
	}, nil
}

// wall strips the monotonic clock reading of instants that carry one, like
// [time.Time], so that equality of elements depends only on the instant.
func wall[T chrono.Instant[T]](t T) T {
	if r, ok := any(t).(interface{ Round(time.Duration) T }); ok {
		return r.Round(0)
	}
	return t
}

// First returns the first element of the progression.
func (p Progression[T]) First() T { return p.first }

// Last returns the last element of the progression.
func (p Progression[T]) Last() T { return p.last }

// Step returns the progression step.
func (p Progression[T]) Step() time.Duration { return p.step }

// IsEmpty reports whether the progression has no elements.
func (p Progression[T]) IsEmpty() bool {
	switch {
	case p.step > 0:
		return p.first.Compare(p.last) > 0
	case p.step < 0:
		return p.first.Compare(p.last) < 0
	default:
		return true
	}
}

// Equal reports whether p and other are the same progression.
//
// All empty progressions are equal to each other. Non-empty progressions are
// equal when their first, last and step are. Elements never carry a monotonic
// clock reading, so [time.Time] elements compare by instant only.
func (p Progression[T]) Equal(other Progression[T]) bool {
	if p.IsEmpty() || other.IsEmpty() {
		return p.IsEmpty() && other.IsEmpty()
	}
	return p.first.Equal(other.first) &&
		p.last.Equal(other.last) &&
		p.step == other.step
}

// Key is a comparable identity of a progression, suitable as a map key.
//
// Keys of equal progressions are equal. Empty progressions have zero Key.
type Key struct {
	FirstMilli int64
	FirstNanos int64
	LastMilli  int64
	LastNanos  int64
	Step       time.Duration
}

// Key returns the identity of the progression.
func (p Progression[T]) Key() Key {
	if p.IsEmpty() {
		return Key{}
	}
	return Key{
		FirstMilli: p.first.UnixMilli(),
		FirstNanos: chrono.SubMilli(p.first),
		LastMilli:  p.last.UnixMilli(),
		LastNanos:  chrono.SubMilli(p.last),
		Step:       p.step,
	}
}

// Hash returns hash of the progression, consistent with [Progression.Equal].
func (p Progression[T]) Hash() uint64 {
	k := p.Key()
	var buf [5 * 8]byte
	binary.LittleEndian.PutUint64(buf[0:], uint64(k.FirstMilli))
	binary.LittleEndian.PutUint64(buf[8:], uint64(k.FirstNanos))
	binary.LittleEndian.PutUint64(buf[16:], uint64(k.LastMilli))
	binary.LittleEndian.PutUint64(buf[24:], uint64(k.LastNanos))
	binary.LittleEndian.PutUint64(buf[32:], uint64(k.Step))
	return xxh3.Hash(buf[:])
}

func (p Progression[T]) String() string {
	if p.step > 0 {
		return fmt.Sprintf("%s..%s step %s", p.first, p.last, p.step)
	}
	return fmt.Sprintf("%s downTo %s step %s", p.first, p.last, -p.step)
}

// Iterator returns new iterator over the progression elements.
func (p Progression[T]) Iterator() *Iterator[T] {
	return newIterator(p.first, p.last, p.step)
}

// Values returns the progression elements as a storage-style iterator.
//
// Empty progressions share the stateless [iterators.Empty] iterator.
func (p Progression[T]) Values() iterators.Iterator[T] {
	if p.IsEmpty() {
		return iterators.Empty[T]()
	}
	return p.Iterator()
}

// All returns a sequence over the progression elements.
//
// Each call to the sequence starts a new traversal.
func (p Progression[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for t := range iterators.Seq[T](p.Iterator()) {
			if !yield(t) {
				return
			}
		}
	}
}
