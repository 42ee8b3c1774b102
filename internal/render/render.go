// Package render turns a host snapshot into display text by substituting
// {{name}} placeholders in a template.
package render

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/openbootdotdev/synap/internal/snapshot"
)

// placeholderRe matches {{name}} where name contains no braces.
var placeholderRe = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

// Options adjusts rendering.
type Options struct {
	// NoColor maps every style placeholder to the empty string.
	NoColor bool
}

// Render substitutes every known placeholder in tmpl. Unknown placeholders
// are left verbatim. Substituted values are never scanned again.
func Render(tmpl string, snap *snapshot.Snapshot) string {
	return RenderWith(tmpl, snap, Options{})
}

// RenderWith is Render with options applied to the style table.
func RenderWith(tmpl string, snap *snapshot.Snapshot, opts Options) string {
	return Substitute(tmpl, Values(snap, opts))
}

// Values merges the snapshot fields with the style table.
func Values(snap *snapshot.Snapshot, opts Options) map[string]string {
	values := Fields(snap)
	for k, v := range Styles() {
		if opts.NoColor {
			v = ""
		}
		values[k] = v
	}
	return values
}

// Substitute replaces {{key}} with values[key] in a single pass.
func Substitute(tmpl string, values map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(tmpl, func(m string) string {
		if v, ok := values[m[2:len(m)-2]]; ok {
			return v
		}
		return m
	})
}

// Placeholders returns the distinct placeholder names in tmpl, in order of
// first appearance.
func Placeholders(tmpl string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(tmpl, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Keys returns every placeholder name Render understands, sorted.
func Keys() []string {
	keys := FieldNames()
	for k := range Styles() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func text(s string) string {
	return strings.ReplaceAll(s, "\n", "")
}

func integer[T int | int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}
