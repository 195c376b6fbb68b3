package chrono

import (
	"cmp"
	"time"

	"go.opentelemetry.io/collector/pdata/pcommon"
)

// Timestamp is a time specified as UNIX Epoch time in nanoseconds since
// 1970-01-01 00:00:00 +0000 UTC, as used by OTLP.
//
// Arithmetic wraps around like the underlying unsigned representation.
type Timestamp pcommon.Timestamp

// NewTimestampFromTime creates new Timestamp from time.Time.
func NewTimestampFromTime(t time.Time) Timestamp {
	return Timestamp(pcommon.NewTimestampFromTime(t))
}

// AsTime converts Timestamp to time.Time in UTC.
func (ts Timestamp) AsTime() time.Time {
	return pcommon.Timestamp(ts).AsTime()
}

// Add returns ts+d.
func (ts Timestamp) Add(d time.Duration) Timestamp {
	return Timestamp(uint64(ts) + uint64(d))
}

// Sub returns ts-u.
func (ts Timestamp) Sub(u Timestamp) time.Duration {
	return time.Duration(uint64(ts) - uint64(u))
}

// Compare compares ts and u.
func (ts Timestamp) Compare(u Timestamp) int {
	return cmp.Compare(ts, u)
}

// Equal reports whether ts and u are the same time point.
func (ts Timestamp) Equal(u Timestamp) bool {
	return ts == u
}

// UnixMilli returns the number of milliseconds since the UNIX epoch.
func (ts Timestamp) UnixMilli() int64 {
	return int64(uint64(ts) / uint64(time.Millisecond))
}

// Nanosecond returns the nanosecond offset within the second.
func (ts Timestamp) Nanosecond() int {
	return int(uint64(ts) % uint64(time.Second))
}

func (ts Timestamp) String() string {
	return pcommon.Timestamp(ts).String()
}
