// Package version reports the build version shared by every binary.
package version

import "runtime/debug"

const defaultVersion = "dev"

// Version information (set by GoReleaser)
var (
	Version = defaultVersion
	Commit  = "none"
	Date    = "unknown"
)

var readBuildInfo = debug.ReadBuildInfo

// String returns the release version. A binary installed with `go install`
// has no ldflags, so the module version from the build info is used instead.
func String() string {
	if Version != defaultVersion {
		return Version
	}

	info, ok := readBuildInfo()
	if !ok || info == nil {
		return Version
	}

	if info.Main.Version == "" || info.Main.Version == "(devel)" {
		return Version
	}

	return info.Main.Version
}

// Long includes the commit and build date when they were stamped
func Long() string {
	v := String()
	if Commit == "none" {
		return v
	}
	return v + " (commit: " + Commit + ", built: " + Date + ")"
}
