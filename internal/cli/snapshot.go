package cli

import (
	"encoding/json"
	"fmt"

	"github.com/openbootdotdev/synap/internal/snapshot"
	"github.com/openbootdotdev/synap/internal/ui"
	"github.com/spf13/cobra"
)

var snapshotSave bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture host facts as JSON",
	Long: `Probe the host once and print the snapshot as indented JSON.

With --save the snapshot is also written to <config dir>/synap/snapshot.json,
which "synap --from" can render later without probing again.`,
	Example: `  synap snapshot > host.json
  synap snapshot --save`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationLinuxOnly: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isLinux() {
			return nil
		}

		snap, err := captureHost()
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))

		if !snapshotSave {
			return nil
		}

		path := snapshot.LocalPath(cfg.Host)
		if err := snapshot.SaveLocal(path, snap); err != nil {
			return err
		}
		ui.Success(fmt.Sprintf("Snapshot saved to %s", path))
		ui.Info(fmt.Sprintf("Render it later with: synap --from %s", path))
		return nil
	},
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotSave, "save", false, "also write the snapshot to the synap config directory")
}
