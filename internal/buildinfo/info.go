// Package buildinfo carries version metadata stamped into the rentbook binary.
package buildinfo

// Set via -ldflags "-X github.com/cleared-dev/rentbook/internal/buildinfo.Version=..." at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
