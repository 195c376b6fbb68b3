package main

import (
	"strings"
	"time"

	"github.com/go-faster/errors"

	"github.com/go-faster/timeprog/internal/timeql"
)

const (
	typeTime = "time"
	typeOTLP = "otlp"

	outputText = "text"
	outputJSON = "json"
)

// parseTimeRange parses optional parameters and returns time range
//
// Default values:
//
//   - end = now
//   - start = end.Add(-since)
func parseTimeRange(
	now time.Time,
	startValue string,
	endValue string,
	sinceValue string,
) (start, end time.Time, err error) {
	since, err := timeql.ParseDuration(sinceValue)
	if err != nil {
		return start, end, errors.Wrapf(err, "parse since %q", sinceValue)
	}

	end, err = timeql.ParseTimestamp(endValue, now)
	if err != nil {
		return start, end, errors.Wrap(err, "parse end")
	}

	start, err = timeql.ParseTimestamp(startValue, end.Add(-since))
	if err != nil {
		return start, end, errors.Wrap(err, "parse start")
	}
	return start, end, nil
}

func parseStep(value string, start, end time.Time) (time.Duration, error) {
	if value == "" {
		return timeql.DefaultStep(start, end), nil
	}
	return timeql.ParseStep(value)
}

// Direction of iteration.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

var directionMap = func() map[string]Direction {
	m := map[string]Direction{}
	for _, s := range []struct {
		dir    Direction
		values []string
	}{
		{
			DirectionBackward,
			[]string{"desc", "descending", "down"},
		},
		{
			DirectionForward,
			[]string{"asc", "ascending", "up"},
		},
	} {
		m[string(s.dir)] = s.dir
		for _, v := range s.values {
			m[v] = s.dir
		}
	}
	return m
}()

func parseDirection(s string) (Direction, error) {
	orig := s
	s = strings.ToLower(s)

	d, ok := directionMap[s]
	if !ok {
		return "", errors.Errorf("unexpected direction %q", orig)
	}
	return d, nil
}

// bounds returns progression bounds and step for given direction.
//
// Backward direction iterates from end to start, reversing the step.
func (d Direction) bounds(start, end time.Time, step time.Duration) (first, last time.Time, _ time.Duration) {
	if d == DirectionBackward {
		return end, start, -step
	}
	return start, end, step
}

func parseChoice(kind, s string, choices ...string) (string, error) {
	for _, c := range choices {
		if strings.EqualFold(s, c) {
			return c, nil
		}
	}
	return "", errors.Errorf("unexpected %s %q, expected one of %q", kind, s, choices)
}
