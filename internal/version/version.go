// Package version provides build-time version information.
package version

// Tool is the short name used in logs and export metadata.
const Tool = "mushroom-segmenter"

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version
	Version = "1.0.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)
