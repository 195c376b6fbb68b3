package chrono

import (
	"fmt"
	"time"
)

// Interval is a closed interval of instants.
type Interval[T Instant[T]] struct {
	Start T
	End   T
}

// Between creates new interval from start to end.
func Between[T Instant[T]](start, end T) Interval[T] {
	return Interval[T]{Start: start, End: end}
}

// IsEmpty returns true if End is before Start.
func (i Interval[T]) IsEmpty() bool {
	return i.End.Compare(i.Start) < 0
}

// Contains returns true if t is within the interval, bounds included.
func (i Interval[T]) Contains(t T) bool {
	return i.Start.Compare(t) <= 0 && t.Compare(i.End) <= 0
}

// Duration returns End - Start.
func (i Interval[T]) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Days returns the number of whole standard (24h) days in the interval.
func (i Interval[T]) Days() int64 {
	return int64(i.Duration() / (24 * time.Hour))
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%s, %s]", i.Start, i.End)
}
