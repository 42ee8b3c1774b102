package ui

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// VisibleWidth is the display width of s ignoring ANSI color codes.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansiRegex.ReplaceAllString(s, ""))
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// Columns aligns two-column rows on the widest first cell.
func Columns(rows [][2]string) []string {
	width := 0
	for _, r := range rows {
		if w := VisibleWidth(r[0]); w > width {
			width = w
		}
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = strings.TrimRight(PadRight(r[0], width)+"  "+r[1], " ")
	}
	return lines
}
