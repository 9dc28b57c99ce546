// Package version holds build metadata, set at link time via
// -ldflags "-X github.com/rook-computer/epdui/internal/version.Version=...".
package version

var (
	Version = "dev"
	Commit  = "unknown"
)
