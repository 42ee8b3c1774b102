package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/openbootdotdev/synap/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindTerminal_MatchesMiddleOfChain(t *testing.T) {
	proc := t.TempDir()
	testutil.FakeProcess(t, proc, 300, 200, "zsh")
	testutil.FakeProcess(t, proc, 200, 100, "kitty")
	testutil.FakeProcess(t, proc, 100, 1, "systemd")

	name, ok := FindTerminal(proc, 300, KnownTerminals)
	assert.True(t, ok)
	assert.Equal(t, "kitty", name)
}

func TestFindTerminal_StartingProcessCanMatch(t *testing.T) {
	proc := t.TempDir()
	testutil.FakeProcess(t, proc, 50, 1, "xterm")

	name, ok := FindTerminal(proc, 50, KnownTerminals)
	assert.True(t, ok)
	assert.Equal(t, "xterm", name)
}

func TestFindTerminal_NoMatchBeforeChainEnds(t *testing.T) {
	proc := t.TempDir()
	testutil.FakeProcess(t, proc, 300, 200, "bash")
	testutil.FakeProcess(t, proc, 200, 100, "sshd")
	testutil.FakeProcess(t, proc, 100, 1, "systemd")

	name, ok := FindTerminal(proc, 300, KnownTerminals)
	assert.False(t, ok)
	assert.Equal(t, "", name)
}

func TestFindTerminal_StopsAtZeroParent(t *testing.T) {
	proc := t.TempDir()
	testutil.FakeProcess(t, proc, 1, 0, "init")

	_, ok := FindTerminal(proc, 1, KnownTerminals)
	assert.False(t, ok)
}

func TestFindTerminal_UnparsableStat(t *testing.T) {
	proc := t.TempDir()
	testutil.FakeProcess(t, proc, 300, 200, "bash")
	testutil.FakeProcess(t, proc, 200, 1, "konsole")
	testutil.WriteFile(t, filepath.Join(proc, "300", "stat"), "300 (bash) S notanumber\n")

	_, ok := FindTerminal(proc, 300, KnownTerminals)
	assert.False(t, ok)
}

func TestFindTerminal_MissingStat(t *testing.T) {
	proc := t.TempDir()
	testutil.FakeProcess(t, proc, 300, 200, "bash")
	testutil.FakeProcess(t, proc, 200, 1, "konsole")
	require.NoError(t, os.Remove(filepath.Join(proc, "300", "stat")))

	_, ok := FindTerminal(proc, 300, KnownTerminals)
	assert.False(t, ok)
}

func TestFindTerminal_CycleIsBounded(t *testing.T) {
	proc := t.TempDir()
	testutil.FakeProcess(t, proc, 10, 20, "bash")
	testutil.FakeProcess(t, proc, 20, 10, "bash")

	_, ok := FindTerminal(proc, 10, KnownTerminals)
	assert.False(t, ok)
}

func TestFindTerminal_CommWithSpacesAndParens(t *testing.T) {
	proc := t.TempDir()
	testutil.FakeProcess(t, proc, 300, 200, "tmux: server")
	testutil.WriteFile(t, filepath.Join(proc, "300", "stat"), "300 (weird (name) x) S 200 300 300 0\n")
	testutil.FakeProcess(t, proc, 200, 1, "alacritty")

	name, ok := FindTerminal(proc, 300, KnownTerminals)
	assert.True(t, ok)
	assert.Equal(t, "alacritty", name)
}

func TestCaptureTerminal_ExtraTerminals(t *testing.T) {
	h := newTestHost(t)
	testutil.FakeProcess(t, h.ProcRoot, h.PID, 77, "synap")
	testutil.FakeProcess(t, h.ProcRoot, 77, 1, "wezterm-gui")

	assert.Equal(t, Unknown, CaptureTerminal(h))

	h.ExtraTerminals = []string{"wezterm-gui"}
	assert.Equal(t, "wezterm-gui", CaptureTerminal(h))
}

func TestParseStatPPID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		ppid    int
		wantErr bool
	}{
		{"regular", "1234 (bash) S 1000 1234 1234 34816", 1000, false},
		{"comm with spaces", "1234 (Web Content) S 999 1234", 999, false},
		{"no parens", "1234 bash S 1000", 0, true},
		{"too short", "1234 (bash) S", 0, true},
		{"non numeric", "1234 (bash) S abc", 0, true},
		{"zero parent", "1 (systemd) S 0 1 1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ppid, err := parseStatPPID(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.ppid, ppid)
		})
	}
}
