package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftworks/draft/document"
	"github.com/draftworks/draft/grid"
)

// NewGridsCommand creates the grids command.
func NewGridsCommand() *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "grids <document.json>",
		Short: "Check gridline consistency across plan drawings",
		Long: `Verify that every project grid identity has geometrically identical
gridline instances in all plan drawings. With --repair, diverging
instances are rewritten from their identity's canonical representative
and the document is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGrids(cmd, args[0], repair)
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "rewrite diverging gridlines from their representative")
	return cmd
}

func runGrids(cmd *cobra.Command, docPath string, repair bool) error {
	doc, err := document.Load(docPath)
	if err != nil {
		return err
	}

	inconsistencies := grid.Check(doc)
	if len(inconsistencies) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "all project gridlines consistent")
		return nil
	}

	for _, inc := range inconsistencies {
		drawing := "?"
		if dr, ok := doc.DrawingByID(inc.Member.Drawing); ok {
			drawing = dr.Name
		}
		fmt.Fprintf(cmd.OutOrStdout(), "grid %q diverges in drawing %q (shape %s)\n",
			inc.Representative.Label, drawing, inc.Member.ID)
	}

	if !repair {
		return fmt.Errorf("%d inconsistent gridline(s)", len(inconsistencies))
	}

	for _, u := range grid.Repair(doc) {
		u.Apply()
	}
	if err := doc.Save(docPath); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "repaired %d gridline(s)\n", len(inconsistencies))
	return nil
}
