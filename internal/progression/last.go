package progression

import (
	"math"
	"time"

	"github.com/go-faster/errors"

	"github.com/go-faster/timeprog/internal/chrono"
	"github.com/go-faster/timeprog/internal/modulo"
)

// LastElement calculates the final element of a bounded arithmetic
// progression, i.e. the last element of the progression which is in the
// range from start to end in case of a positive step, or from end to start
// in case of a negative step.
//
// No validation of the bounds is performed. The result is only meaningful if
// either step > 0 and start <= end, or step < 0 and start >= end. For other
// bounds instants with modular arithmetic, like [chrono.Timestamp], may wrap
// around; [FromClosedRange] does not call LastElement for them.
func LastElement[T chrono.Instant[T]](start, end T, step time.Duration) (T, error) {
	switch {
	case step > 0:
		c := int64(step)
		d := modulo.DifferenceModulo(residue(end, c), residue(start, c), c)
		return end.Add(-time.Duration(d)), nil
	case step < 0:
		if step == math.MinInt64 {
			var zero T
			return zero, errors.Wrapf(ErrInvalidArgument, "step %s overflows", step)
		}
		c := -int64(step)
		d := modulo.DifferenceModulo(residue(start, c), residue(end, c), c)
		return end.Add(time.Duration(d)), nil
	default:
		var zero T
		return zero, errors.Wrap(ErrInvalidArgument, "step is zero")
	}
}

// residue returns the nanosecond epoch offset of t modulo c.
func residue[T chrono.Instant[T]](t T, c int64) int64 {
	return modulo.Residue(t.UnixMilli(), chrono.SubMilli(t), c)
}
