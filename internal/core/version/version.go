// Package version reports build information for the binary
package version

import (
	"runtime/debug"
	"sync"
)

// BuildInfo holds version information about the build
type BuildInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
}

// Set via -ldflags "-X 'findstrings/internal/core/version.version=v0.1.0'
// -X 'findstrings/internal/core/version.commit=abcd' -X 'findstrings/internal/core/version.date=2025-09-02'"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	infoOnce sync.Once
	info     BuildInfo
)

// Info returns the build information. Commit and date fall back to the VCS
// stamp embedded by the go tool when not set through ldflags
func Info() BuildInfo {
	infoOnce.Do(func() {
		info = BuildInfo{Name: "findstrings", Version: version, Commit: commit, Date: date}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.Commit == "none":
				info.Commit = s.Value
			case s.Key == "vcs.time" && info.Date == "unknown":
				info.Date = s.Value
			}
		}
	})
	return info
}

// String renders "findstrings dev (none, unknown)"
func (b BuildInfo) String() string {
	return b.Name + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}
