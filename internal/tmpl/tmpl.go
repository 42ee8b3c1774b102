// Package tmpl locates the display template: an explicit path, the first
// existing candidate file, or the embedded default.
package tmpl

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openbootdotdev/synap/internal/config"
)

const FileName = "synap.tmpl"

//go:embed data/default.tmpl
var defaultTemplate string

// Source describes where a template was loaded from.
type Source struct {
	Path     string // empty for the embedded default
	Embedded bool
}

func (s Source) String() string {
	if s.Embedded {
		return "embedded default"
	}
	return s.Path
}

func Default() string {
	return defaultTemplate
}

// CandidatePaths lists the template search order: the home directory, the
// synap config directory, then the working directory.
func CandidatePaths(h *config.Host) []string {
	var paths []string
	if h.Home != "" {
		paths = append(paths, filepath.Join(h.Home, FileName))
	}
	if dir := h.AppDir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "template.tmpl"))
	}
	if h.WorkDir != "" {
		paths = append(paths, filepath.Join(h.WorkDir, FileName))
	}
	return paths
}

// Load returns the template text. A non-empty explicit path must exist;
// otherwise the first candidate that is a regular file wins, falling back
// to the embedded default.
func Load(h *config.Host, explicit string) (string, Source, error) {
	if explicit != "" {
		path := h.ExpandHome(explicit)
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", Source{}, fmt.Errorf("template not found: %s", path)
			}
			return "", Source{}, fmt.Errorf("failed to read template: %w", err)
		}
		return string(data), Source{Path: path}, nil
	}

	for _, path := range CandidatePaths(h) {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", Source{}, fmt.Errorf("failed to read template %s: %w", path, err)
		}
		return string(data), Source{Path: path}, nil
	}

	return defaultTemplate, Source{Embedded: true}, nil
}

// Write stores content at path, creating parent directories.
func Write(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create template directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}
	return nil
}

func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
