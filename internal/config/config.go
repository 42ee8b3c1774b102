package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	AppName        = "synap"
	DefaultProcDir = "/proc"
	MeminfoPath    = "/proc/meminfo"
)

// OSReleasePaths lists the os-release descriptors in lookup order.
var OSReleasePaths = []string{"/usr/lib/os-release", "/etc/os-release"}

// PackageManagers are the managers whose installed-package counts are probed.
var PackageManagers = []string{"dpkg", "pacman", "snap", "flatpak", "apt", "dnf"}

// Config carries command-line options for a single run.
type Config struct {
	Version      string
	TemplatePath string
	SettingsPath string
	FromSnapshot string
	NoColor      bool
	Debug        bool
	Progress     bool

	Host     *Host
	Settings *Settings
}

// Host is the resolved view of the invoking environment that the collector
// reads from. Everything the probes need from global process state is
// captured here once.
type Host struct {
	Home           string
	ConfigDir      string
	WorkDir        string
	Env            map[string]string
	PID            int
	ProcRoot       string
	OSReleasePaths []string
	MeminfoPath    string

	ExtraTerminals      []string
	SkipPackageManagers []string

	Debugf func(format string, args ...any)
}

// DetectHost snapshots the current process environment.
func DetectHost() *Host {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	return &Host{
		Home:           home,
		ConfigDir:      configDir(home, env),
		WorkDir:        wd,
		Env:            env,
		PID:            os.Getpid(),
		ProcRoot:       DefaultProcDir,
		OSReleasePaths: append([]string(nil), OSReleasePaths...),
		MeminfoPath:    MeminfoPath,
	}
}

func configDir(home string, env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" && filepath.IsAbs(xdg) {
		return xdg
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, ".config")
}

// Getenv reports a variable from the captured environment. A variable that
// is set to the empty string is still present.
func (h *Host) Getenv(key string) (string, bool) {
	v, ok := h.Env[key]
	return v, ok
}

// AppDir is the per-user synap directory under the config dir.
func (h *Host) AppDir() string {
	if h.ConfigDir == "" {
		return ""
	}
	return filepath.Join(h.ConfigDir, AppName)
}

// ExpandHome resolves a leading "~/" against the host's home directory.
func (h *Host) ExpandHome(path string) string {
	if h.Home == "" {
		return path
	}
	if path == "~" {
		return h.Home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(h.Home, path[2:])
	}
	return path
}

func (h *Host) Logf(format string, args ...any) {
	if h.Debugf != nil {
		h.Debugf(format, args...)
	}
}

// Apply merges the settings file into the host view.
func (h *Host) Apply(s *Settings) {
	if s == nil {
		return
	}
	h.ExtraTerminals = append(h.ExtraTerminals, s.ExtraTerminals...)
	h.SkipPackageManagers = append(h.SkipPackageManagers, s.SkipPackageManagers...)
}

// Skips reports whether the settings disabled a package manager.
func (h *Host) Skips(manager string) bool {
	for _, m := range h.SkipPackageManagers {
		if m == manager {
			return true
		}
	}
	return false
}
