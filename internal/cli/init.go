package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/openbootdotdev/synap/internal/system"
	"github.com/openbootdotdev/synap/internal/tmpl"
	"github.com/openbootdotdev/synap/internal/ui"
	"github.com/spf13/cobra"
)

var (
	initForce bool

	interactive = func() bool { return system.IsTerminal(os.Stdin) }
)

var errInitCancelled = errors.New("init cancelled")

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the built-in template to a file you can edit",
	Long: `Copy the built-in template to one of the locations synap searches, so it
can be customized.

Without a path you are asked to pick a location on a terminal; otherwise the
first candidate ($HOME/synap.tmpl) is used. Existing files are only replaced
after confirmation, or with --force.`,
	Example: `  synap init
  synap init ~/.config/synap/template.tmpl --force`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := initTarget(args)
		if err != nil {
			if errors.Is(err, errInitCancelled) {
				return nil
			}
			return err
		}

		if tmpl.Exists(path) && !initForce {
			if !interactive() {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			ok, err := ui.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path), false)
			if err != nil {
				return fmt.Errorf("confirm: %w", err)
			}
			if !ok {
				ui.Muted("Left the existing template untouched.")
				return nil
			}
		}

		if err := tmpl.Write(path, tmpl.Default()); err != nil {
			return err
		}
		ui.Success(fmt.Sprintf("Template written to %s", path))
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing template")
}

func initTarget(args []string) (string, error) {
	if len(args) > 0 {
		return cfg.Host.ExpandHome(args[0]), nil
	}

	candidates := tmpl.CandidatePaths(cfg.Host)
	if len(candidates) == 0 {
		return "", fmt.Errorf("no template location available: home and config directories are unknown")
	}
	if !interactive() {
		return candidates[0], nil
	}

	selected, err := ui.SelectOption("Where should the template go?", candidates)
	if err != nil {
		return "", errInitCancelled
	}
	return selected, nil
}
