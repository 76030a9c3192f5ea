package config

import (
	"fmt"
	"runtime/debug"
)

// Build metadata set with -ldflags, for example:
//
//	go build -ldflags "-X wnspush/internal/config.version=1.2.3 \
//	    -X wnspush/internal/config.commit=$(git rev-parse --short HEAD) \
//	    -X wnspush/internal/config.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// NewBuildInfo returns the linker-injected metadata. Values left at their
// defaults are filled from the module and VCS data the Go toolchain embeds
// (go install, or go build inside a git checkout).
func NewBuildInfo() BuildInfo {
	info := BuildInfo{Version: version, Commit: commit, BuildTime: buildTime}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "none" && s.Value != "" {
				info.Commit = shortRevision(s.Value)
			}
		case "vcs.time":
			if info.BuildTime == "unknown" && s.Value != "" {
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

// String formats the metadata as "VERSION (COMMIT, built BUILDTIME)".
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (%s, built %s)", b.Version, b.Commit, b.BuildTime)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
