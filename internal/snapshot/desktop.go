package snapshot

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/openbootdotdev/synap/internal/config"
	"github.com/openbootdotdev/synap/internal/system"
)

var desktopEnvVars = []string{
	"XDG_CURRENT_DESKTOP",
	"DESKTOP_SESSION",
	"GNOME_DESKTOP_SESSION_ID",
	"KDE_FULL_SESSION",
}

// CaptureDesktop resolves the desktop environment, toolkit themes and shell.
// Each field falls back to Unknown independently. Terminal is left for
// CaptureTerminal.
func CaptureDesktop(h *config.Host) DesktopSnapshot {
	return DesktopSnapshot{
		Environment: CaptureDesktopEnvironment(h),
		GTKTheme:    CaptureGTKTheme(h),
		QTTheme:     CaptureQTTheme(h),
		Shell:       CaptureShell(h),
	}
}

// CaptureDesktopEnvironment returns the first desktop variable that is set.
func CaptureDesktopEnvironment(h *config.Host) string {
	for _, name := range desktopEnvVars {
		if v, ok := h.Getenv(name); ok {
			return v
		}
	}
	return Unknown
}

// CaptureShell returns $SHELL, or Unknown when it is not set.
func CaptureShell(h *config.Host) string {
	if v, ok := h.Getenv("SHELL"); ok {
		return v
	}
	return Unknown
}

// CaptureGTKTheme asks gsettings first, then falls back to the GTK3 and GTK2
// settings files.
func CaptureGTKTheme(h *config.Host) string {
	out, err := system.Output("gsettings", "get", "org.gnome.desktop.interface", "gtk-theme")
	if err == nil {
		if theme := strings.ReplaceAll(strings.TrimSpace(out), "'", ""); theme != "" {
			return theme
		}
		h.Logf("gsettings returned an empty gtk-theme")
	} else {
		h.Logf("gsettings unavailable: %v", err)
	}

	if h.ConfigDir != "" {
		if theme, ok := scanSetting(filepath.Join(h.ConfigDir, "gtk-3.0", "settings.ini"), "gtk-theme-name"); ok {
			return theme
		}
	}
	if h.Home != "" {
		if theme, ok := scanSetting(filepath.Join(h.Home, ".gtkrc-2.0"), "gtk-theme-name"); ok {
			return theme
		}
	}

	return Unknown
}

// CaptureQTTheme reads the qt5ct style, then the KDE widget style.
func CaptureQTTheme(h *config.Host) string {
	if h.ConfigDir == "" {
		return Unknown
	}
	if theme, ok := scanSetting(filepath.Join(h.ConfigDir, "qt5ct", "qt5ct.conf"), "style="); ok {
		return theme
	}
	if theme, ok := scanSetting(filepath.Join(h.ConfigDir, "kdeglobals"), "widgetStyle="); ok {
		return theme
	}
	return Unknown
}

// scanSetting returns the text between the first and second '=' of the first line that
// contains key and has a non-empty value.
func scanSetting(path, key string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.Contains(line, key) {
			continue
		}
		parts := strings.Split(line, "=")
		if len(parts) < 2 {
			continue
		}
		if v := strings.TrimSpace(parts[1]); v != "" {
			return v, true
		}
	}
	return "", false
}
