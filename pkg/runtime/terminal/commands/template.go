package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/seg-tools/sso-atlas/pkg/models/api"

	"github.com/spf13/cobra"
)

type TemplateCmd struct {
	outputPath string
	year       int
}

func NewTemplateCmd() *cobra.Command {
	tc := &TemplateCmd{}
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write an empty twelve-month input file to fill in",
		RunE:  tc.run,
	}

	cmd.Flags().StringVar(&tc.outputPath, "output", "sso-records.json", "Path of the file to write")
	cmd.Flags().IntVar(&tc.year, "year", time.Now().Year(), "Reporting year")

	return cmd
}

func (tc *TemplateCmd) run(cmd *cobra.Command, args []string) error {
	batch := api.RecordBatch{Year: tc.year}
	for m := 1; m <= 12; m++ {
		batch.Months = append(batch.Months, api.MonthRecord{Month: m})
	}

	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode template: %w", err)
	}

	if err := os.WriteFile(tc.outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	cmd.Printf("Wrote %s\n", tc.outputPath)
	return nil
}
