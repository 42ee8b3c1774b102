package cli

import (
	"fmt"
	"strconv"

	"github.com/openbootdotdev/synap/internal/render"
	"github.com/openbootdotdev/synap/internal/ui"
	"github.com/spf13/cobra"
)

var placeholdersValues bool

var placeholdersCmd = &cobra.Command{
	Use:   "placeholders",
	Short: "List the placeholders a template can use",
	Long: `List every {{placeholder}} synap substitutes: host fields and style
escapes. With --values the host is probed and the current value of each field
is shown next to it; like rendering, that prints nothing on other platforms.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := make(map[string]bool)
		for _, k := range render.FieldNames() {
			fields[k] = true
		}

		var values map[string]string
		if placeholdersValues {
			if !isLinux() {
				return nil
			}
			snap, err := captureHost()
			if err != nil {
				return err
			}
			values = render.Values(snap, render.Options{})
		}

		keys := render.Keys()
		rows := make([][2]string, 0, len(keys))
		for _, k := range keys {
			desc := "style"
			if fields[k] {
				desc = "field"
			}
			if values != nil {
				if fields[k] {
					desc = values[k]
				} else {
					desc = strconv.Quote(values[k])
				}
			}
			rows = append(rows, [2]string{"{{" + k + "}}", desc})
		}

		out := cmd.OutOrStdout()
		for _, line := range ui.Columns(rows) {
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	placeholdersCmd.Flags().BoolVar(&placeholdersValues, "values", false, "probe the host and show current values")
}
