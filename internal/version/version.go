// Package version exposes the build metadata stamped into the binary.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X .../internal/version.Version=x.y.z"
// (and likewise Commit and Date). A plain `go build` leaves the defaults.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns just the version number, for cobra's --version flag.
func Short() string {
	return Version
}

// String returns the full human-readable version line.
func String() string {
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if Commit == "unknown" || Date == "unknown" {
		return fmt.Sprintf("chromatone version %s (%s, %s)", Version, runtime.Version(), platform)
	}
	commit := Commit
	if len(commit) > 8 {
		commit = commit[:8]
	}
	return fmt.Sprintf("chromatone version %s (commit: %s, built: %s, %s, %s)",
		Version, commit, Date, runtime.Version(), platform)
}
