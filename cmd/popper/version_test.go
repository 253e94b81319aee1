package main

import (
	"bytes"
	"encoding/json"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/require"
)

func stampBuild(t *testing.T, v, c, d string) {
	t.Helper()

	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = v, c, d
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	stampBuild(t, "1.2.3", "abcdef1", "2026-10-03")

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	output := buf.String()
	require.Contains(t, output, "popper 1.2.3\n")
	require.Contains(t, output, "commit: abcdef1")
	require.Contains(t, output, "built: 2026-10-03")
	require.Contains(t, output, runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCommandJSON(t *testing.T) {
	stampBuild(t, "0.4.0", "", "")

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"version", "--json"})
	require.NoError(t, root.Execute())

	var info buildInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	require.Equal(t, "0.4.0", info.Version)
	require.NotEmpty(t, info.Commit)
	require.NotEmpty(t, info.Go)
}

func TestResolveBuildInfoFallsBackToModuleData(t *testing.T) {
	stampBuild(t, "", "", "")

	stamped := &debug.BuildInfo{
		GoVersion: "go1.25.1",
		Main:      debug.Module{Path: "github.com/alexisbeaulieu97/popper", Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	info := resolveBuildInfo(func() (*debug.BuildInfo, bool) { return stamped, true })
	require.Equal(t, "v0.3.1", info.Version)
	require.Equal(t, "0123456789ab", info.Commit)
	require.Equal(t, "2026-10-01T12:00:00Z", info.Date)
	require.True(t, info.Modified)
	require.Equal(t, "go1.25.1", info.Go)

	stamped.Main.Version = "(devel)"
	stamped.Settings = nil
	info = resolveBuildInfo(func() (*debug.BuildInfo, bool) { return stamped, true })
	require.Equal(t, buildInfo{Version: "dev", Commit: "none", Date: "unknown", Go: "go1.25.1", Platform: runtime.GOOS + "/" + runtime.GOARCH}, info)

	none := resolveBuildInfo(func() (*debug.BuildInfo, bool) { return nil, false })
	require.Equal(t, "dev", none.Version)
	require.Equal(t, runtime.Version(), none.Go)
}

func TestResolveBuildInfoPrefersLinkerValues(t *testing.T) {
	stampBuild(t, "1.0.0", "feedbee", "2026-09-30")

	info := resolveBuildInfo(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main:     debug.Module{Version: "v9.9.9"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "deadbeef"}},
		}, true
	})
	require.Equal(t, "1.0.0", info.Version)
	require.Equal(t, "feedbee", info.Commit)
	require.Equal(t, "2026-09-30", info.Date)
}
