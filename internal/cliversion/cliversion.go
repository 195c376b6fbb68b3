// Package cliversion provides the version of the binary.
package cliversion

import (
	"runtime"
	"runtime/debug"
	"strings"
	"time"
)

// Info is the build information.
type Info struct {
	// Version is the version of the module.
	Version string
	// GoVersion is the version of the Go that produced this binary.
	GoVersion string

	// Commit is the VCS revision the binary was built from.
	Commit string
	// Modified reports whether the working tree had local changes.
	Modified bool
	// Time is the commit time.
	Time time.Time
}

// Get returns the build information of the module at modulePath.
//
// The module may be either the main module or a dependency of the binary.
// VCS details are only reported for the main module.
func Get(modulePath string) (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}
	return fromBuildInfo(modulePath, bi), true
}

func fromBuildInfo(modulePath string, bi *debug.BuildInfo) (info Info) {
	info.GoVersion = bi.GoVersion

	if bi.Main.Path == modulePath {
		info.Version = bi.Main.Version
	} else {
		for _, m := range bi.Deps {
			if m != nil && m.Path == modulePath {
				info.Version = m.Version
				break
			}
		}
		return info
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		case "vcs.time":
			if t, err := time.Parse(time.RFC3339Nano, s.Value); err == nil {
				info.Time = t
			}
		}
	}
	return info
}

// String returns string representation of the build information.
//
// Format: version <version>[-<commit>][+dirty] [(built with <go>[ at <time>])] <os>/<arch>.
func (i Info) String() string {
	var s strings.Builder
	s.WriteString("version ")
	switch v := i.Version; v {
	case "", "(devel)":
		s.WriteString("unknown")
	default:
		s.WriteString(v)
	}
	if commit := i.Commit; commit != "" {
		s.WriteByte('-')
		s.WriteString(commit)
	}
	if i.Modified {
		s.WriteString("+dirty")
	}

	if t, v := i.Time, i.GoVersion; v != "" || !t.IsZero() {
		s.WriteString(" (built")
		if v != "" {
			s.WriteString(" with ")
			s.WriteString(v)
		}
		if !t.IsZero() {
			s.WriteString(" at ")
			s.WriteString(t.UTC().Format(time.RFC3339))
		}
		s.WriteByte(')')
	}
	s.WriteString(" " + runtime.GOOS + "/" + runtime.GOARCH)
	return s.String()
}
