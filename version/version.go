// Package version holds build-time version information.
// Values are injected via -ldflags at release time.
package version

var (
	// GitRelease is the release tag (e.g. v0.1.0).
	GitRelease = "dev"

	// GitCommit is the short commit hash.
	GitCommit = "unknown"
)
