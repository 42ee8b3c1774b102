package system

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/term"
)

var archNames = map[string]string{
	"amd64":   "x86_64",
	"386":     "x86",
	"arm64":   "aarch64",
	"ppc64le": "powerpc64le",
	"ppc64":   "powerpc64",
	"loong64": "loongarch64",
}

// Architecture reports the CPU architecture in kernel naming (x86_64,
// aarch64), falling back to the Go name.
func Architecture() string {
	if name, ok := archNames[runtime.GOARCH]; ok {
		return name
	}
	return runtime.GOARCH
}

func IsLinux() bool {
	return runtime.GOOS == "linux"
}

func IsInstalled(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Output runs a command and returns its raw stdout. A missing binary or a
// non-zero exit status is reported as an error.
func Output(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Line runs a command and returns its stdout with trailing newlines removed.
func Line(name string, args ...string) (string, error) {
	out, err := Output(name, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\r\n"), nil
}

func RunCommandSilent(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	output, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(output)), err
}

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
