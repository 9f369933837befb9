package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVars(t *testing.T, version, commit, built string) {
	t.Helper()
	origVersion, origCommit, origBuilt, origRead := Version, GitCommit, BuildTime, readBuildInfo
	t.Cleanup(func() {
		Version, GitCommit, BuildTime, readBuildInfo = origVersion, origCommit, origBuilt, origRead
	})
	Version, GitCommit, BuildTime = version, commit, built
}

func TestGetVersion(t *testing.T) {
	t.Run("ldflags win", func(t *testing.T) {
		withVars(t, "v1.2.3", "unknown", "unknown")
		assert.Equal(t, "v1.2.3", GetVersion())
	})

	t.Run("module version from build info", func(t *testing.T) {
		withVars(t, "dev", "unknown", "unknown")
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: "v0.4.0"}}, true
		}
		assert.Equal(t, "v0.4.0", GetVersion())
	})

	t.Run("devel build", func(t *testing.T) {
		withVars(t, "dev", "unknown", "unknown")
		readBuildInfo = func() (*debug.BuildInfo, bool) {
			return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
		}
		assert.Equal(t, "dev", GetVersion())
	})

	t.Run("no build info", func(t *testing.T) {
		withVars(t, "dev", "unknown", "unknown")
		readBuildInfo = func() (*debug.BuildInfo, bool) { return nil, false }
		assert.Equal(t, "dev", GetVersion())
	})
}

func TestString(t *testing.T) {
	t.Run("bare version", func(t *testing.T) {
		withVars(t, "v1.2.3", "unknown", "unknown")
		assert.Equal(t, "swatchnorm v1.2.3", String())
	})

	t.Run("commit is shortened", func(t *testing.T) {
		withVars(t, "v1.2.3", "abc1234567", "2026-01-01T00:00:00Z")
		assert.Equal(t, "swatchnorm v1.2.3 (commit abc1234, built 2026-01-01T00:00:00Z)", String())
	})
}
