package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Output receives every status line. stdout is reserved for rendered output.
var Output io.Writer = os.Stderr

var (
	accent    = lipgloss.Color("#22c55e")
	subtle    = lipgloss.Color("#666666")
	highlight = lipgloss.Color("#60a5fa")
	warning   = lipgloss.Color("#eab308")
	danger    = lipgloss.Color("#ef4444")
	info      = lipgloss.Color("#06b6d4")

	titleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			MarginBottom(1)

	successStyle = lipgloss.NewStyle().
			Foreground(accent)

	errorStyle = lipgloss.NewStyle().
			Foreground(danger)

	mutedStyle = lipgloss.NewStyle().
			Foreground(subtle)

	keyStyle = lipgloss.NewStyle().
			Foreground(highlight)

	greenStyle  = lipgloss.NewStyle().Foreground(accent)
	yellowStyle = lipgloss.NewStyle().Foreground(warning)
	redStyle    = lipgloss.NewStyle().Foreground(danger)
	cyanStyle   = lipgloss.NewStyle().Foreground(info)
)

func Green(text string) string {
	return greenStyle.Render(text)
}

func Yellow(text string) string {
	return yellowStyle.Render(text)
}

func Red(text string) string {
	return redStyle.Render(text)
}

func Cyan(text string) string {
	return cyanStyle.Render(text)
}

func Key(text string) string {
	return keyStyle.Render(text)
}

func Header(text string) {
	fmt.Fprintln(Output, titleStyle.Render("=== "+text+" ==="))
}

func Success(text string) {
	fmt.Fprintln(Output, successStyle.Render("✓ "+text))
}

func Error(text string) {
	fmt.Fprintln(Output, errorStyle.Render("✗ "+text))
}

func Info(text string) {
	fmt.Fprintln(Output, "  "+text)
}

func Muted(text string) {
	fmt.Fprintln(Output, mutedStyle.Render(text))
}

func Warn(text string) {
	fmt.Fprintln(Output, yellowStyle.Render("⚠ "+text))
}

// Debugf prints a muted diagnostic line. Used as the collector debug hook.
func Debugf(format string, args ...any) {
	Muted("debug: " + fmt.Sprintf(format, args...))
}

func Confirm(question string, defaultVal bool) (bool, error) {
	var result bool = defaultVal

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&result),
		),
	)

	err := form.Run()
	return result, err
}

func SelectOption(title string, options []string) (string, error) {
	var selected string

	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&selected),
		),
	)

	err := form.Run()
	return selected, err
}
