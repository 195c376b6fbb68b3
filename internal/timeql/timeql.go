// Package timeql provides utilities to parse durations and timestamps in
// *QL notation.
package timeql

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/prometheus/common/model"
)

// ParseDuration parses Prometheus or Go duration.
func ParseDuration(s string) (time.Duration, error) {
	d, err := model.ParseDuration(s)
	if err == nil {
		return time.Duration(d), nil
	}
	err1 := err

	d2, err := time.ParseDuration(s)
	if err == nil {
		return d2, nil
	}
	return 0, err1
}

// ParseStep parses signed progression step.
//
// Accepts durations supported by [ParseDuration] and plain numbers of
// seconds. A leading '-' denotes a descending step.
func ParseStep(s string) (time.Duration, error) {
	value, negative := strings.CutPrefix(strings.TrimSpace(s), "-")
	if value == "" {
		return 0, errors.New("empty step")
	}

	var d time.Duration
	if !strings.ContainsAny(value, "nuµmshdwy") {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "parse step %q", s)
		}
		d = time.Duration(f * float64(time.Second))
	} else {
		v, err := ParseDuration(value)
		if err != nil {
			return 0, errors.Wrapf(err, "parse step %q", s)
		}
		d = v
	}
	if negative {
		d = -d
	}
	return d, nil
}

// ParseTimestamp parses timestamp.
//
// Empty value returns def. Accepts UNIX seconds (with optional fraction),
// UNIX nanoseconds and RFC3339.
func ParseTimestamp(value string, def time.Time) (time.Time, error) {
	if value == "" {
		return def, nil
	}

	if strings.Contains(value, ".") {
		if t, err := strconv.ParseFloat(value, 64); err == nil {
			s, ns := math.Modf(t)
			ns = math.Round(ns*1000) / 1000
			return time.Unix(int64(s), int64(ns*float64(time.Second))), nil
		}
	}
	nanos, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		ts, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return time.Time{}, errors.Wrapf(err, "parse timestamp %q", value)
		}
		return ts, nil
	}
	if len(value) <= 10 {
		return time.Unix(nanos, 0), nil
	}
	return time.Unix(0, nanos), nil
}

// DefaultStep returns step that splits range from start to end into about
// 250 points, but not less than one second.
//
// The step points from start towards end.
func DefaultStep(start, end time.Time) time.Duration {
	seconds := math.Max(
		math.Floor(end.Sub(start).Abs().Seconds()/250),
		1,
	)
	step := time.Duration(seconds) * time.Second
	if end.Before(start) {
		return -step
	}
	return step
}
