package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftworks/draft/document"
	"github.com/draftworks/draft/section"
)

// NewSectionsCommand creates the sections command.
func NewSectionsCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "sections <document.json>",
		Short: "Regenerate all section drawings",
		Long: `Recompute the derived content of every section drawing from the
current plan drawings, storeys and callouts, replacing the previously
derived shapes. Section drawings without a callout are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSections(cmd, args[0], out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of in place")
	cmd.Flags().Bool("dimensions", false, "generate gridline dimensions (overrides config)")
	return cmd
}

func runSections(cmd *cobra.Command, docPath, out string) error {
	doc, err := document.Load(docPath)
	if err != nil {
		return err
	}
	cfg, err := configFor(docPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dimensions := cfg.Dimensioning
	if cmd.Flags().Changed("dimensions") {
		dimensions, _ = cmd.Flags().GetBool("dimensions")
	}
	opts := []section.Option{
		section.WithDimensions(dimensions),
		section.WithNumberFormat(cfg.NumberFormat()),
	}

	regenerated := 0
	for _, dr := range doc.SectionDrawings() {
		res, ok := section.Compute(doc, dr.ID, opts...)
		if !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "skipping %q: no callout targets it\n", dr.Name)
			continue
		}
		doc.ReplaceDerived(dr.ID, res.Shapes())
		dr.Bounds = res.Bounds
		dr.Refs = res.Refs
		regenerated++
	}

	if out == "" {
		out = docPath
	}
	if err := doc.Save(out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "regenerated %d section drawing(s)\n", regenerated)
	return nil
}
