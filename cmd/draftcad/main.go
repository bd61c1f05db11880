// Command draftcad is the host harness for the draft engine: it loads
// a document JSON, regenerates section drawings, checks grid
// consistency across plan drawings, and exports drawings to DXF.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/draftworks/draft"
	"github.com/draftworks/draft/config"
)

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:           "draftcad",
		Short:         "Tools for drafting documents",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				draft.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		NewSectionsCommand(),
		NewGridsCommand(),
		NewExportCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// configFor loads the project config next to the document file,
// falling back to defaults when none exists.
func configFor(docPath string) (*config.Config, error) {
	cfg, err := config.LoadFromDir(filepath.Dir(docPath))
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return cfg, nil
}
