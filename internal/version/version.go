package version

// Version is the current version of argo-data.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/rxtech-lab/argo-data/internal/version.Version=1.2.3"
// The value "main" indicates a development build.
var Version = "v0.4.0"

// FormatVersion is the layout version of the data directory written by this build.
// Bump the minor version when columns are added, the major version when files
// written by an older build can no longer be read.
const FormatVersion = "1.1.0"

// GetVersion returns the current version of the tool.
func GetVersion() string {
	return Version
}
