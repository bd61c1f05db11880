package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftworks/draft/document"
	"github.com/draftworks/draft/export"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var drawingName string
	var out string

	cmd := &cobra.Command{
		Use:   "export <document.json>",
		Short: "Export a drawing to DXF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args[0], drawingName, out)
		},
	}

	cmd.Flags().StringVarP(&drawingName, "drawing", "d", "", "name of the drawing to export (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output DXF file (required)")
	_ = cmd.MarkFlagRequired("drawing")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func runExport(cmd *cobra.Command, docPath, drawingName, out string) error {
	doc, err := document.Load(docPath)
	if err != nil {
		return err
	}

	dr, ok := doc.DrawingByName(drawingName)
	if !ok {
		return fmt.Errorf("no drawing named %q", drawingName)
	}
	if err := export.DXF(doc, dr.ID, out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "exported %q to %s\n", dr.Name, out)
	return nil
}
