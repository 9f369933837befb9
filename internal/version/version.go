package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags "-X bennypowers.dev/swatchnorm/internal/version.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// readBuildInfo is swapped out in tests
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the ldflags version, else the module version from
// build info, else "dev".
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "dev"
}

// String renders the version line printed by `swatchnorm version`
func String() string {
	var extra []string
	if GitCommit != "unknown" && GitCommit != "" {
		commit := GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		extra = append(extra, "commit "+commit)
	}
	if BuildTime != "unknown" && BuildTime != "" {
		extra = append(extra, "built "+BuildTime)
	}

	line := "swatchnorm " + GetVersion()
	if len(extra) > 0 {
		line += fmt.Sprintf(" (%s)", strings.Join(extra, ", "))
	}
	return line
}
