package snapshot

import (
	"path/filepath"
	"testing"

	"github.com/openbootdotdev/synap/internal/config"
	"github.com/openbootdotdev/synap/testutil"
)

const testMeminfo = `MemTotal:       16384000 kB
MemFree:         1024000 kB
MemAvailable:    8192000 kB
Buffers:          204800 kB
SwapTotal:       2097152 kB
SwapFree:        1048576 kB
HugePages_Total:       0
`

const testOSRelease = `NAME="Arch Linux"
PRETTY_NAME="Arch Linux"
ID=arch
BUILD_ID=rolling
ANSI_COLOR="38;2;23;147;209"
HOME_URL="https://archlinux.org/"
`

// newTestHost returns a host rooted in a temp dir with no files written.
func newTestHost(t *testing.T) *config.Host {
	t.Helper()
	root := t.TempDir()
	home := filepath.Join(root, "home")
	return &config.Host{
		Home:           home,
		ConfigDir:      filepath.Join(home, ".config"),
		WorkDir:        root,
		Env:            map[string]string{},
		PID:            4242,
		ProcRoot:       filepath.Join(root, "proc"),
		OSReleasePaths: []string{filepath.Join(root, "usr-lib-os-release"), filepath.Join(root, "etc-os-release")},
		MeminfoPath:    filepath.Join(root, "meminfo"),
	}
}

// populateHost writes the mandatory files and fake commands.
func populateHost(t *testing.T, h *config.Host) string {
	t.Helper()
	testutil.WriteFile(t, h.MeminfoPath, testMeminfo)
	testutil.WriteFile(t, h.OSReleasePaths[0], testOSRelease)
	bin := testutil.IsolatedPath(t)
	testutil.FakeHostCommands(t, bin, "box", "alice")
	return bin
}
