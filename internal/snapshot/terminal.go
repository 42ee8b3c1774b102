package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/openbootdotdev/synap/internal/config"
)

// maxAncestorDepth bounds the walk up the process tree.
const maxAncestorDepth = 128

// KnownTerminals are the command names recognised as terminal emulators.
var KnownTerminals = []string{
	"gnome-terminal",
	"xterm",
	"konsole",
	"alacritty",
	"tilix",
	"urxvt",
	"terminator",
	"xfce4-terminal",
	"kitty",
	"lxterminal",
	"st",
	"mate-terminal",
	"deepin-terminal",
}

// CaptureTerminal walks from the current process towards the root of the
// process tree and returns the first ancestor that is a known terminal.
func CaptureTerminal(h *config.Host) string {
	known := append(slices.Clone(KnownTerminals), h.ExtraTerminals...)
	if name, ok := FindTerminal(h.ProcRoot, h.PID, known); ok {
		return name
	}
	return Unknown
}

// FindTerminal reports the first process in the ancestor chain of pid whose
// command name is in known. The walk stops when a comm or stat file cannot be
// read or parsed, or after maxAncestorDepth steps.
func FindTerminal(procRoot string, pid int, known []string) (string, bool) {
	for depth := 0; depth < maxAncestorDepth; depth++ {
		name, err := readComm(procRoot, pid)
		if err != nil {
			return "", false
		}
		if slices.Contains(known, name) {
			return name, true
		}

		ppid, err := readParentPID(procRoot, pid)
		if err != nil {
			return "", false
		}
		pid = ppid
	}
	return "", false
}

func readComm(procRoot string, pid int) (string, error) {
	data, err := os.ReadFile(filepath.Join(procRoot, strconv.Itoa(pid), "comm"))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func readParentPID(procRoot string, pid int) (int, error) {
	data, err := os.ReadFile(filepath.Join(procRoot, strconv.Itoa(pid), "stat"))
	if err != nil {
		return 0, err
	}
	return parseStatPPID(string(data))
}

// parseStatPPID extracts the parent pid from a /proc/<pid>/stat line:
// "pid (comm) state ppid ...". comm may contain spaces and parens, so the
// fields are taken after the last ')'.
func parseStatPPID(content string) (int, error) {
	closeIdx := strings.LastIndex(content, ")")
	if closeIdx < 0 {
		return 0, errors.New("bad stat format")
	}
	rest := strings.Fields(content[closeIdx+1:])
	if len(rest) < 2 {
		return 0, errors.New("stat too short")
	}
	ppid, err := strconv.Atoi(rest[1])
	if err != nil {
		return 0, fmt.Errorf("parse ppid: %w", err)
	}
	if ppid <= 0 {
		return 0, errors.New("no parent process")
	}
	return ppid, nil
}
