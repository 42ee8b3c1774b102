package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/openbootdotdev/synap/internal/config"
	"github.com/openbootdotdev/synap/internal/render"
	"github.com/openbootdotdev/synap/internal/snapshot"
	"github.com/openbootdotdev/synap/internal/system"
	"github.com/openbootdotdev/synap/internal/tmpl"
	"github.com/openbootdotdev/synap/internal/ui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	cfg     = &config.Config{}

	// replaced in tests
	detectHost = config.DetectHost
	isLinux    = system.IsLinux
)

// Command annotations read by the root PersistentPreRunE.
const (
	// skips host detection and the settings file
	annotationStandalone = "synap.standalone"
	// probes the host, so does nothing on other platforms
	annotationLinuxOnly = "synap.linux-only"
)

var rootCmd = &cobra.Command{
	Use:   "synap",
	Short: "Print a templated summary of this Linux host",
	Long: `synap - system information at a glance

Collects host facts (identity, OS release, kernel, memory, desktop, themes,
shell, terminal and installed package counts) and prints them through a
{{placeholder}} template.`,
	Example: `  # Render with the first template found (or the built-in one)
  synap

  # Render a specific template without colors
  synap -t ~/work.tmpl --no-color

  # Render a snapshot captured earlier
  synap snapshot --save && synap --from ~/.config/synap/snapshot.json

  # Find typos in a template
  synap check ~/synap.tmpl`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Annotations:   map[string]string{annotationLinuxOnly: "true"},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[annotationStandalone] == "true" {
			return nil
		}
		if cmd.Annotations[annotationLinuxOnly] == "true" && !isLinux() {
			return nil
		}
		return prepare()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().SortFlags = false

	rootCmd.PersistentFlags().StringVarP(&cfg.TemplatePath, "template", "t", "", "template file (skips the candidate search)")
	rootCmd.PersistentFlags().StringVar(&cfg.SettingsPath, "config", "", "settings file (default <config dir>/synap/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", false, "render style placeholders as empty text")
	rootCmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", false, "report degraded probes on stderr")
	rootCmd.PersistentFlags().BoolVar(&cfg.Progress, "progress", false, "show probe progress on stderr")

	rootCmd.Flags().StringVar(&cfg.FromSnapshot, "from", "", "render a saved snapshot instead of probing the host")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(placeholdersCmd)
	rootCmd.AddCommand(doctorCmd)

	rootCmd.SetUsageTemplate(usageTemplate)
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{annotationStandalone: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "synap v%s\n", version)
	},
}

// prepare resolves the host view and merges the settings file into cfg.
func prepare() error {
	cfg.Version = version
	cfg.Host = detectHost()
	h := cfg.Host
	if cfg.Debug {
		h.Debugf = ui.Debugf
	}

	path := config.DefaultSettingsPath(h)
	if cfg.SettingsPath != "" {
		path = h.ExpandHome(cfg.SettingsPath)
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config not found: %s", path)
		}
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return err
	}
	cfg.Settings = settings
	h.Apply(settings)

	if v, _ := h.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
	if !settings.ColorEnabled() {
		cfg.NoColor = true
	}
	if cfg.TemplatePath == "" && settings != nil {
		cfg.TemplatePath = settings.Template
	}

	return nil
}

func runRender(out io.Writer) error {
	if !isLinux() {
		return nil
	}

	snap, err := loadSnapshot()
	if err != nil {
		return err
	}

	text, src, err := tmpl.Load(cfg.Host, cfg.TemplatePath)
	if err != nil {
		return err
	}
	cfg.Host.Logf("template: %s", src)

	fmt.Fprint(out, render.RenderWith(text, snap, render.Options{NoColor: cfg.NoColor}))
	return nil
}

// loadSnapshot reads the --from file when given, otherwise probes the host.
func loadSnapshot() (*snapshot.Snapshot, error) {
	if cfg.FromSnapshot != "" {
		return snapshot.LoadFile(cfg.Host.ExpandHome(cfg.FromSnapshot))
	}
	return captureHost()
}

func captureHost() (*snapshot.Snapshot, error) {
	if !cfg.Progress {
		return snapshot.Capture(cfg.Host)
	}

	progress := ui.NewScanProgress(snapshot.StepNames())
	snap, err := snapshot.CaptureWithProgress(cfg.Host, progress.Update)
	progress.Finish()
	return snap, err
}

const usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}

Template placeholders:
  Run "synap placeholders" for the full list.
`

func Execute() error {
	return rootCmd.Execute()
}
