// Package chrono defines the time point capabilities progressions are built on.
package chrono

import "time"

// Instant is a point on a time line.
//
// [time.Time] satisfies Instant[time.Time].
type Instant[T any] interface {
	// Add returns the instant shifted by d. Negative d moves backwards.
	Add(d time.Duration) T
	// Sub returns the duration between the instant and u.
	Sub(u T) time.Duration
	// Compare returns -1, 0 or +1 if the instant is before, equal to or after u.
	Compare(u T) int
	// Equal reports whether both instants represent the same time point.
	Equal(u T) bool
	// UnixMilli returns the number of milliseconds elapsed since the UNIX epoch.
	//
	// The result is floored: instants before the epoch with a sub-millisecond
	// part map to the preceding millisecond.
	UnixMilli() int64
	// Nanosecond returns the nanosecond offset within the second, in [0, 1e9).
	Nanosecond() int
	String() string
}

var (
	_ Instant[time.Time] = time.Time{}
	_ Instant[Timestamp] = Timestamp(0)
)

// SubMilli returns the nanosecond offset of t within its millisecond.
func SubMilli[T Instant[T]](t T) int64 {
	return int64(t.Nanosecond() % int(time.Millisecond))
}
