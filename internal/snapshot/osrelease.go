package snapshot

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/openbootdotdev/synap/internal/config"
)

// ParseOSRelease builds a key/value lookup from an os-release descriptor.
// Values have surrounding quotes removed; lines without '=' are ignored.
func ParseOSRelease(content string) map[string]string {
	data := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		data[key] = strings.Trim(value, `"'`)
	}
	return data
}

// CaptureOSRelease reads the first available os-release descriptor. Missing
// keys become empty strings; a missing descriptor is fatal.
func CaptureOSRelease(h *config.Host) (OSRelease, error) {
	content, err := readFirst(h.OSReleasePaths)
	if err != nil {
		return OSRelease{}, required("os-release", err)
	}

	data := ParseOSRelease(content)
	return OSRelease{
		Name:       data["NAME"],
		PrettyName: data["PRETTY_NAME"],
		Version:    data["VERSION"],
		ID:         data["ID"],
		IDLike:     data["ID_LIKE"],
	}, nil
}

func readFirst(paths []string) (string, error) {
	if len(paths) == 0 {
		return "", errors.New("no path configured")
	}
	var errs []error
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err == nil {
			return string(data), nil
		}
		errs = append(errs, err)
	}
	return "", fmt.Errorf("no readable file: %w", errors.Join(errs...))
}
