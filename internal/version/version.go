// Package version records build information for the resistor-scan binary.
package version

import "fmt"

// Stamped at link time, e.g.
// -ldflags "-X resistor-scan/internal/version.GitCommit=$(git rev-parse --short HEAD)".
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String returns the version, extended with commit and build time when the
// binary was built with them stamped in.
func String() string {
	if GitCommit == "unknown" && BuildTime == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
