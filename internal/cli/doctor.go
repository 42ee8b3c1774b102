package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/openbootdotdev/synap/internal/config"
	"github.com/openbootdotdev/synap/internal/snapshot"
	"github.com/openbootdotdev/synap/internal/system"
	"github.com/openbootdotdev/synap/internal/tmpl"
	"github.com/openbootdotdev/synap/internal/ui"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check which host sources synap can read",
	Long: `Run diagnostic checks on the sources synap probes.

Checks performed:
- Required commands (hostname, whoami, uname)
- Required files (os-release, meminfo)
- Process info for terminal detection
- Desktop settings query tool
- Package managers
- Settings file and template in use`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.OutOrStdout(), cfg.Host)
	},
}

type checkResult struct {
	name    string
	status  string
	message string
}

func runDoctor(out io.Writer, h *config.Host) error {
	ui.Header("synap doctor")

	var results []checkResult
	var issues int

	results = append(results, checkPlatform()...)
	results = append(results, checkRequiredCommands()...)
	results = append(results, checkRequiredFiles(h)...)
	results = append(results, checkProcessInfo(h)...)
	results = append(results, checkDesktopTools()...)
	results = append(results, checkPackageManagers(h)...)
	results = append(results, checkUserFiles(h)...)

	for _, r := range results {
		switch r.status {
		case "ok":
			if r.message != "" {
				fmt.Fprintf(out, "  %s %s: %s\n", ui.Green("✓"), r.name, r.message)
			} else {
				fmt.Fprintf(out, "  %s %s\n", ui.Green("✓"), r.name)
			}
		case "warn":
			fmt.Fprintf(out, "  %s %s: %s\n", ui.Yellow("!"), r.name, r.message)
			issues++
		case "error":
			fmt.Fprintf(out, "  %s %s: %s\n", ui.Red("✗"), r.name, r.message)
			issues++
		case "info":
			fmt.Fprintf(out, "  %s %s: %s\n", ui.Cyan("i"), r.name, r.message)
		}
	}

	fmt.Fprintln(out)
	if issues == 0 {
		ui.Success("All checks passed! synap can read every required source.")
	} else {
		ui.Warn(fmt.Sprintf("Found %d issue(s). Rendering fails while a required source is missing.", issues))
	}

	return nil
}

func checkPlatform() []checkResult {
	if !isLinux() {
		return []checkResult{{
			name:    "Platform",
			status:  "warn",
			message: "not Linux, synap exits without output",
		}}
	}
	return []checkResult{{name: "Platform", status: "ok", message: "linux/" + system.Architecture()}}
}

func checkRequiredCommands() []checkResult {
	var results []checkResult
	for _, name := range []string{"hostname", "whoami", "uname"} {
		if !system.IsInstalled(name) {
			results = append(results, checkResult{
				name:    name,
				status:  "error",
				message: "not found on PATH (required)",
			})
			continue
		}
		results = append(results, checkResult{name: name, status: "ok"})
	}

	if system.IsInstalled("uname") {
		if release, err := system.RunCommandSilent("uname", "-r"); err == nil && release != "" {
			results = append(results, checkResult{name: "Kernel", status: "info", message: release})
		}
	}
	return results
}

func checkRequiredFiles(h *config.Host) []checkResult {
	var results []checkResult

	osRelease := ""
	for _, p := range h.OSReleasePaths {
		if fileReadable(p) {
			osRelease = p
			break
		}
	}
	if osRelease == "" {
		results = append(results, checkResult{
			name:    "os-release",
			status:  "error",
			message: "none of the os-release files are readable (required)",
		})
	} else {
		results = append(results, checkResult{name: "os-release", status: "ok", message: osRelease})
	}

	if fileReadable(h.MeminfoPath) {
		results = append(results, checkResult{name: "meminfo", status: "ok", message: h.MeminfoPath})
	} else {
		results = append(results, checkResult{
			name:    "meminfo",
			status:  "error",
			message: h.MeminfoPath + " is not readable (required)",
		})
	}

	return results
}

func checkProcessInfo(h *config.Host) []checkResult {
	comm := filepath.Join(h.ProcRoot, strconv.Itoa(h.PID), "comm")
	if !fileReadable(comm) {
		return []checkResult{{
			name:    "Process info",
			status:  "warn",
			message: "cannot read " + comm + ", terminal will be Unknown",
		}}
	}
	return []checkResult{{name: "Process info", status: "ok"}}
}

func checkDesktopTools() []checkResult {
	if !system.IsInstalled("gsettings") {
		return []checkResult{{
			name:    "gsettings",
			status:  "info",
			message: "not installed, GTK theme is read from settings files",
		}}
	}
	return []checkResult{{name: "gsettings", status: "ok"}}
}

func checkPackageManagers(h *config.Host) []checkResult {
	var results []checkResult
	for _, m := range config.PackageManagers {
		switch {
		case h.Skips(m):
			results = append(results, checkResult{name: m, status: "info", message: "skipped by config"})
		case system.IsInstalled(snapshot.PackageCommand(m)):
			results = append(results, checkResult{name: m, status: "ok"})
		default:
			results = append(results, checkResult{
				name:    m,
				status:  "info",
				message: snapshot.PackageCommand(m) + " not installed, counted as 0",
			})
		}
	}
	return results
}

func checkUserFiles(h *config.Host) []checkResult {
	var results []checkResult

	settings := config.DefaultSettingsPath(h)
	if cfg.SettingsPath != "" {
		settings = h.ExpandHome(cfg.SettingsPath)
	}
	if cfg.Settings != nil {
		results = append(results, checkResult{name: "Config", status: "info", message: settings})
	} else {
		results = append(results, checkResult{name: "Config", status: "info", message: "none, using defaults"})
	}

	_, src, err := tmpl.Load(h, cfg.TemplatePath)
	if err != nil {
		results = append(results, checkResult{name: "Template", status: "error", message: err.Error()})
	} else {
		results = append(results, checkResult{name: "Template", status: "info", message: src.String()})
	}

	return results
}

func fileReadable(path string) bool {
	if path == "" {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
