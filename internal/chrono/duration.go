package chrono

import (
	"cmp"
	"slices"
	"time"
)

// CompareDurations compares durations by their signed magnitude.
func CompareDurations(a, b time.Duration) int {
	return cmp.Compare(a, b)
}

// SortDurations sorts durations in ascending order in place.
func SortDurations(ds []time.Duration) {
	slices.SortFunc(ds, CompareDurations)
}

// MinDuration returns the smallest duration of ds.
//
// Returns false if ds is empty.
func MinDuration(ds []time.Duration) (time.Duration, bool) {
	if len(ds) == 0 {
		return 0, false
	}
	return slices.MinFunc(ds, CompareDurations), true
}

// MaxDuration returns the largest duration of ds.
//
// Returns false if ds is empty.
func MaxDuration(ds []time.Duration) (time.Duration, bool) {
	if len(ds) == 0 {
		return 0, false
	}
	return slices.MaxFunc(ds, CompareDurations), true
}
