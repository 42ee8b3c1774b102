package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := Output
	Output = &buf
	t.Cleanup(func() { Output = old })
	return &buf
}

func TestGreenContainsText(t *testing.T) {
	result := Green("hello")
	assert.Contains(t, result, "hello")
}

func TestYellowContainsText(t *testing.T) {
	result := Yellow("warning")
	assert.Contains(t, result, "warning")
}

func TestRedContainsText(t *testing.T) {
	result := Red("error")
	assert.Contains(t, result, "error")
}

func TestCyanContainsText(t *testing.T) {
	result := Cyan("info")
	assert.Contains(t, result, "info")
}

func TestColorFunctionsEmptyStringDoNotPanic(t *testing.T) {
	assert.NotPanics(t, func() { Green("") })
	assert.NotPanics(t, func() { Yellow("") })
	assert.NotPanics(t, func() { Red("") })
	assert.NotPanics(t, func() { Cyan("") })
	assert.NotPanics(t, func() { Key("") })
}

func TestMessagesGoToOutput(t *testing.T) {
	buf := captureOutput(t)

	Error("required host data unavailable")
	Warn("careful")
	Success("done")
	Info("indented")
	Muted("quiet")
	Header("Doctor")

	out := buf.String()
	assert.Contains(t, out, "✗ required host data unavailable")
	assert.Contains(t, out, "⚠ careful")
	assert.Contains(t, out, "✓ done")
	assert.Contains(t, out, "  indented")
	assert.Contains(t, out, "quiet")
	assert.Contains(t, out, "=== Doctor ===")
}

func TestDebugf(t *testing.T) {
	buf := captureOutput(t)

	Debugf("%s not found on PATH", "pacman")
	assert.Contains(t, buf.String(), "debug: pacman not found on PATH")
}
