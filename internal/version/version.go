// Package version provides build-time version information.
package version

import "fmt"

// Set via -ldflags at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String formats the build info for -version output.
func String() string {
	return fmt.Sprintf("focushub %s (commit %s, built %s)", Version, Commit, BuildDate)
}
