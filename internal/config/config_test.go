package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectHost(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("SYNAP_TEST_VAR", "value")

	h := DetectHost()
	assert.Equal(t, home, h.Home)
	assert.Equal(t, filepath.Join(home, ".config"), h.ConfigDir)
	assert.Equal(t, os.Getpid(), h.PID)
	assert.Equal(t, DefaultProcDir, h.ProcRoot)
	assert.Equal(t, MeminfoPath, h.MeminfoPath)
	assert.Equal(t, OSReleasePaths, h.OSReleasePaths)

	v, ok := h.Getenv("SYNAP_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestDetectHost_XDGConfigHome(t *testing.T) {
	home := t.TempDir()
	xdg := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", xdg)

	h := DetectHost()
	assert.Equal(t, xdg, h.ConfigDir)
	assert.Equal(t, filepath.Join(xdg, AppName), h.AppDir())
}

func TestDetectHost_RelativeXDGIgnored(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "relative/dir")

	h := DetectHost()
	assert.Equal(t, filepath.Join(home, ".config"), h.ConfigDir)
}

func TestHost_GetenvEmptyIsPresent(t *testing.T) {
	h := &Host{Env: map[string]string{"KDE_FULL_SESSION": ""}}

	v, ok := h.Getenv("KDE_FULL_SESSION")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = h.Getenv("MISSING")
	assert.False(t, ok)
}

func TestHost_ExpandHome(t *testing.T) {
	h := &Host{Home: "/home/alice"}

	assert.Equal(t, "/home/alice/x.tmpl", h.ExpandHome("~/x.tmpl"))
	assert.Equal(t, "/home/alice", h.ExpandHome("~"))
	assert.Equal(t, "/etc/x", h.ExpandHome("/etc/x"))
	assert.Equal(t, "~other/x", h.ExpandHome("~other/x"))

	empty := &Host{}
	assert.Equal(t, "~/x", empty.ExpandHome("~/x"))
}

func TestHost_AppDirWithoutConfigDir(t *testing.T) {
	h := &Host{}
	assert.Equal(t, "", h.AppDir())
	assert.Equal(t, "", DefaultSettingsPath(h))
}

func TestHost_Logf(t *testing.T) {
	h := &Host{}
	assert.NotPanics(t, func() { h.Logf("no sink %d", 1) })

	var got string
	h.Debugf = func(format string, args ...any) { got = format }
	h.Logf("probe %s", "memory")
	assert.Equal(t, "probe %s", got)
}

func TestHost_ApplyAndSkips(t *testing.T) {
	h := &Host{}
	h.Apply(nil)
	assert.False(t, h.Skips("apt"))

	h.Apply(&Settings{
		Version:             "1.0",
		ExtraTerminals:      []string{"wezterm-gui"},
		SkipPackageManagers: []string{"apt", "dnf"},
	})
	assert.Equal(t, []string{"wezterm-gui"}, h.ExtraTerminals)
	assert.True(t, h.Skips("apt"))
	assert.True(t, h.Skips("dnf"))
	assert.False(t, h.Skips("pacman"))
}
