package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	a := require.New(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	start, end, err := parseTimeRange(now, "", "", "6h")
	a.NoError(err)
	a.True(end.Equal(now))
	a.True(start.Equal(now.Add(-6 * time.Hour)))

	start, end, err = parseTimeRange(now, "", "2024-01-02T00:00:00Z", "1d")
	a.NoError(err)
	a.True(end.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)))
	a.True(start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	start, _, err = parseTimeRange(now, "1704067200", "", "6h")
	a.NoError(err)
	a.True(start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	_, _, err = parseTimeRange(now, "", "", "")
	a.Error(err)
	_, _, err = parseTimeRange(now, "", "tomorrow", "6h")
	a.Error(err)
}

func TestParseStep(t *testing.T) {
	a := require.New(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	step, err := parseStep("", start, start.Add(250*time.Minute))
	a.NoError(err)
	a.Equal(time.Minute, step)

	step, err = parseStep("-2h", start, start)
	a.NoError(err)
	a.Equal(-2*time.Hour, step)
}

func TestParseDirection(t *testing.T) {
	for _, tt := range []struct {
		input   string
		want    Direction
		wantErr bool
	}{
		{"asc", DirectionForward, false},
		{"ASC", DirectionForward, false},
		{"forward", DirectionForward, false},
		{"up", DirectionForward, false},
		{"desc", DirectionBackward, false},
		{"Descending", DirectionBackward, false},
		{"backward", DirectionBackward, false},
		{"", "", true},
		{"sideways", "", true},
	} {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseDirection(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDirectionBounds(t *testing.T) {
	a := require.New(t)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	first, last, step := DirectionForward.bounds(start, end, time.Minute)
	a.Equal(start, first)
	a.Equal(end, last)
	a.Equal(time.Minute, step)

	first, last, step = DirectionBackward.bounds(start, end, time.Minute)
	a.Equal(end, first)
	a.Equal(start, last)
	a.Equal(-time.Minute, step)
}

func TestParseChoice(t *testing.T) {
	got, err := parseChoice("type", "OTLP", typeTime, typeOTLP)
	require.NoError(t, err)
	require.Equal(t, typeOTLP, got)

	_, err = parseChoice("type", "unix", typeTime, typeOTLP)
	require.Error(t, err)
}
