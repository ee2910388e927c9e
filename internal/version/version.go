// Package version reports which build of colornom is running.
//
// Release builds inject Version, Commit and Date with ldflags. Builds made
// with plain "go install" or "go build" fall back to the module and VCS
// information embedded by the toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

var (
	// Version is set with -ldflags "-X github.com/jmylchreest/colornom/internal/version.Version=x.y.z".
	Version = "dev"

	// Commit is set with -ldflags "-X github.com/jmylchreest/colornom/internal/version.Commit=$(git rev-parse HEAD)".
	Commit = unknown

	// Date is set with -ldflags "-X github.com/jmylchreest/colornom/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)".
	Date = unknown
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

type buildInfo struct {
	version string
	commit  string
	date    string
	dirty   bool
}

// current merges the ldflags values with the toolchain's build info.
// Injected values always win.
func current() buildInfo {
	bi := buildInfo{version: Version, commit: Commit, date: Date}

	info, ok := readBuildInfo()
	if !ok || info == nil {
		return bi
	}

	if bi.version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		bi.version = info.Main.Version
	}

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.commit == unknown {
				bi.commit = s.Value
			}
		case "vcs.time":
			if bi.date == unknown {
				bi.date = s.Value
			}
		case "vcs.modified":
			bi.dirty = s.Value == "true"
		}
	}

	return bi
}

// String returns a human-readable version string.
func String() string {
	bi := current()
	platform := runtime.GOOS + "/" + runtime.GOARCH

	if bi.commit == unknown || bi.date == unknown {
		return fmt.Sprintf("colornom version %s (%s, %s)", bi.version, runtime.Version(), platform)
	}

	commit := shortCommit(bi.commit)
	if bi.dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("colornom version %s (commit: %s, built: %s, %s, %s)",
		bi.version, commit, bi.date, runtime.Version(), platform)
}

// Short returns the bare version, as shown by --version's metadata and the User-Agent.
func Short() string {
	return current().version
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
