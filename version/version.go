// Package version reports the version of the fretwav build.
package version

import "runtime/debug"

// Version can be set at build time, taking precedence over the build info:
// go build -ldflags "-X github.com/vsariola/fretwav/version.Version=$(git describe --dirty)"
var Version string

const devel = "(devel)"

// VersionOrHash is the version printed by fretwav -v.
var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	info, _ := debug.ReadBuildInfo()
	return FromBuildInfo(info)
}()

// FromBuildInfo picks the most specific version in the build info: the module
// version when built with go install pkg@version, otherwise the short VCS
// revision, marked -dirty for builds from a modified tree.
func FromBuildInfo(info *debug.BuildInfo) string {
	if info == nil {
		return devel
	}
	if v := info.Main.Version; v != "" && v != devel {
		return v
	}
	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return devel
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if modified {
		revision += "-dirty"
	}
	return revision
}
