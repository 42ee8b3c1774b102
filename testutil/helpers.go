package testutil

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func BuildTestBinary(t *testing.T) string {
	tmpDir := t.TempDir()

	binaryPath := filepath.Join(tmpDir, "synap")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/synap")

	projectRoot := findProjectRoot(t)
	cmd.Dir = projectRoot

	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build test binary: %v\n%s", err, out)
	}

	return binaryPath
}

func findProjectRoot(t *testing.T) string {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			t.Fatalf("could not find project root (go.mod)")
		}
		wd = parent
	}
}

// IsolatedPath points PATH at a fresh empty directory so only fake commands
// written with FakeCommand can be found. Scripts must use /bin/sh builtins.
func IsolatedPath(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("PATH", dir)
	return dir
}

// FakeCommand writes an executable shell script named name into dir.
func FakeCommand(t *testing.T, dir, name, body string) {
	t.Helper()
	script := "#!/bin/sh\n" + body
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(script), 0755))
}

// FakeHostCommands installs the mandatory identity and kernel commands.
func FakeHostCommands(t *testing.T, dir, hostname, username string) {
	t.Helper()
	FakeCommand(t, dir, "hostname", fmt.Sprintf("echo %s\n", hostname))
	FakeCommand(t, dir, "whoami", fmt.Sprintf("echo %s\n", username))
	FakeCommand(t, dir, "uname", "if [ \"$1\" = \"-r\" ]; then\n"+
		"  echo 6.9.1-test\n"+
		"  exit 0\n"+
		"fi\n"+
		"echo Linux\n")
}

// FakeProcess writes /proc/<pid>/comm and /proc/<pid>/stat under procRoot.
func FakeProcess(t *testing.T, procRoot string, pid, ppid int, comm string) {
	t.Helper()
	dir := filepath.Join(procRoot, fmt.Sprint(pid))
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "comm"), []byte(comm+"\n"), 0644))
	stat := fmt.Sprintf("%d (%s) S %d %d %d 0 -1 4194560 0 0 0 0 0 0 0 0 20 0 1 0 0 0 0\n", pid, comm, ppid, pid, pid)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "stat"), []byte(stat), 0644))
}

func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
