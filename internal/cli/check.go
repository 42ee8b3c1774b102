package cli

import (
	"fmt"
	"os"

	"github.com/openbootdotdev/synap/internal/render"
	"github.com/openbootdotdev/synap/internal/tmpl"
	"github.com/openbootdotdev/synap/internal/ui"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Report unknown placeholders in a template",
	Long: `List every {{placeholder}} a template uses and flag the ones synap does not
know, with a suggestion for likely typos. Unknown placeholders are printed
verbatim when rendering, so this is the quickest way to spot them.

Without a file the template synap would render with is checked.`,
	Example: `  synap check
  synap check ~/synap.tmpl`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, name, err := checkSource(args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		names := render.Placeholders(text)
		known := render.Keys()
		knownSet := make(map[string]bool, len(known))
		for _, k := range known {
			knownSet[k] = true
		}

		fmt.Fprintf(out, "%s\n", name)
		if len(names) == 0 {
			fmt.Fprintf(out, "  no placeholders\n")
			return nil
		}

		var unknown int
		for _, n := range names {
			if knownSet[n] {
				fmt.Fprintf(out, "  %s {{%s}}\n", ui.Green("✓"), n)
				continue
			}
			unknown++
			if s := suggest(n, known); s != "" {
				fmt.Fprintf(out, "  %s {{%s}}: unknown, did you mean {{%s}}?\n", ui.Red("✗"), n, s)
			} else {
				fmt.Fprintf(out, "  %s {{%s}}: unknown\n", ui.Red("✗"), n)
			}
		}

		if unknown > 0 {
			return fmt.Errorf("%d unknown placeholder(s) in %s", unknown, name)
		}
		ui.Success(fmt.Sprintf("All %d placeholders are known", len(names)))
		return nil
	},
}

func checkSource(args []string) (string, string, error) {
	if len(args) > 0 {
		path := cfg.Host.ExpandHome(args[0])
		data, err := os.ReadFile(path)
		if err != nil {
			return "", "", fmt.Errorf("failed to read template: %w", err)
		}
		return string(data), path, nil
	}

	text, src, err := tmpl.Load(cfg.Host, cfg.TemplatePath)
	if err != nil {
		return "", "", err
	}
	return text, src.String(), nil
}

// suggest returns the closest known key by fuzzy score, or "".
func suggest(name string, known []string) string {
	matches := fuzzy.Find(name, known)
	if len(matches) > 0 {
		return matches[0].Str
	}
	// a typo with an extra letter is not a subsequence of the key; try the
	// other direction before giving up
	for _, k := range known {
		if len(fuzzy.Find(k, []string{name})) > 0 {
			return k
		}
	}
	return ""
}
