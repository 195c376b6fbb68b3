package cliversion

import (
	"runtime"
	"runtime/debug"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testModule = "github.com/go-faster/timeprog"

func TestFromBuildInfo(t *testing.T) {
	settings := []debug.BuildSetting{
		{Key: "vcs.revision", Value: "abc123"},
		{Key: "vcs.modified", Value: "true"},
		{Key: "vcs.time", Value: "2024-01-15T09:30:00Z"},
	}
	for _, tt := range []struct {
		name string
		bi   *debug.BuildInfo
		want Info
	}{
		{
			"Main",
			&debug.BuildInfo{
				GoVersion: "go1.23.4",
				Main:      debug.Module{Path: testModule, Version: "v0.1.0"},
				Settings:  settings,
			},
			Info{
				Version:   "v0.1.0",
				GoVersion: "go1.23.4",
				Commit:    "abc123",
				Modified:  true,
				Time:      time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			},
		},
		{
			"Dependency",
			&debug.BuildInfo{
				GoVersion: "go1.23.4",
				Main:      debug.Module{Path: "example.com/app"},
				Deps: []*debug.Module{
					{Path: "example.com/other", Version: "v1.0.0"},
					{Path: testModule, Version: "v0.2.0"},
				},
				Settings: settings,
			},
			Info{
				Version:   "v0.2.0",
				GoVersion: "go1.23.4",
			},
		},
		{
			"Missing",
			&debug.BuildInfo{
				GoVersion: "go1.23.4",
				Main:      debug.Module{Path: "example.com/app"},
			},
			Info{GoVersion: "go1.23.4"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got := fromBuildInfo(testModule, tt.bi)
			require.Equal(t, tt.want.Version, got.Version)
			require.Equal(t, tt.want.GoVersion, got.GoVersion)
			require.Equal(t, tt.want.Commit, got.Commit)
			require.Equal(t, tt.want.Modified, got.Modified)
			require.True(t, tt.want.Time.Equal(got.Time), "got %s", got.Time)
		})
	}
}

func TestInfoString(t *testing.T) {
	const osArch = " " + runtime.GOOS + "/" + runtime.GOARCH
	for _, tt := range []struct {
		info Info
		want string
	}{
		{Info{}, "version unknown"},
		{Info{Version: "(devel)", GoVersion: "go1.23.4"}, "version unknown (built with go1.23.4)"},
		{Info{Version: "v0.1.0", Commit: "abc123"}, "version v0.1.0-abc123"},
		{
			Info{
				Version:   "v0.1.0",
				GoVersion: "go1.23.4",
				Commit:    "abc123",
				Modified:  true,
				Time:      time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC),
			},
			"version v0.1.0-abc123+dirty (built with go1.23.4 at 2024-01-15T09:30:00Z)",
		},
	} {
		t.Run(tt.want, func(t *testing.T) {
			require.Equal(t, tt.want+osArch, tt.info.String())
		})
	}
}

func TestGet(t *testing.T) {
	info, ok := Get(testModule)
	if !ok {
		t.Skip("Build info is not available")
	}
	require.NotEmpty(t, info.GoVersion)
}
