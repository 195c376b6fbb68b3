package requirex

import (
	"cmp"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(string, ...any) { r.failed = true }

func (r *recorder) FailNow() {}

func TestUnique(t *testing.T) {
	var r recorder
	Unique(&r, []int{1, 2, 3})
	require.False(t, r.failed)

	Unique(&r, []int{1, 2, 1})
	require.True(t, r.failed)
}

func TestSorted(t *testing.T) {
	var r recorder
	Sorted(&r, []int{1, 2, 2, 3})
	require.False(t, r.failed)

	Sorted(&r, []int{2, 1})
	require.True(t, r.failed)
}

func TestStrictlyMonotonic(t *testing.T) {
	now := time.Now()
	for _, tt := range []struct {
		values     []time.Time
		descending bool
		fail       bool
	}{
		{nil, false, false},
		{[]time.Time{now}, true, false},
		{[]time.Time{now, now.Add(time.Second)}, false, false},
		{[]time.Time{now, now.Add(time.Second)}, true, true},
		{[]time.Time{now.Add(time.Second), now}, true, false},
		{[]time.Time{now, now}, false, true},
	} {
		t.Run(fmt.Sprintf("%d/%t", len(tt.values), tt.descending), func(t *testing.T) {
			var r recorder
			StrictlyMonotonic(&r, tt.values, time.Time.Compare, tt.descending)
			require.Equal(t, tt.fail, r.failed)
		})
	}

	var r recorder
	StrictlyMonotonic(&r, []int{3, 2, 1}, cmp.Compare[int], true)
	require.False(t, r.failed)
}
