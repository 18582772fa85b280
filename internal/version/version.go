// Package version reports the build of the brnflip binary.
//
// Release builds set the variables below with -ldflags, for example:
//
//	go build -ldflags "-X github.com/robert-malhotra/go-brnflip/internal/version.Commit=$(git rev-parse --short HEAD)"
//
// Otherwise the VCS stamp recorded by the Go toolchain is used.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the semantic version, set manually for releases.
	Version = "0.1.0-dev"

	// Commit is the short git SHA of the build.
	Commit = ""

	// Dirty is "true" when the tree had uncommitted changes.
	Dirty = ""
)

func stamp() (commit string, dirty bool) {
	commit, dirty = Commit, Dirty == "true"
	if commit != "" {
		return commit, dirty
	}
	commit = "unknown"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, dirty
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 12 {
				commit = commit[:12]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return commit, dirty
}

// Info returns the one-line form printed by --version.
func Info() string {
	commit, dirty := stamp()
	suffix := ""
	if dirty {
		suffix = "-dirty"
	}
	return fmt.Sprintf("brnflip %s (%s%s)", Version, commit, suffix)
}

// Full adds the Go toolchain and platform. native names the host byte
// order, which decides what "this" and "other" targets mean.
func Full(native string) string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s (%s)",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH, native)
}
