package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/seg-tools/sso-atlas/pkg/adapters"
	"github.com/seg-tools/sso-atlas/pkg/models/api"
	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/seg-tools/sso-atlas/pkg/runtime/terminal/export"
	"github.com/seg-tools/sso-atlas/pkg/services/report"
	"github.com/seg-tools/sso-atlas/pkg/services/sample"

	"github.com/spf13/cobra"
)

type DemoCmd struct {
	seed       int64
	year       int
	outputPath string
	reporter   *export.Reporter
}

func NewDemoCmd(reporter *export.Reporter) *cobra.Command {
	dc := &DemoCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Evaluate a synthetic year of activity data",
		RunE:  dc.run,
	}

	cmd.Flags().Int64Var(&dc.seed, "seed", 42, "Seed for the generated batch")
	cmd.Flags().IntVar(&dc.year, "year", time.Now().Year(), "Reporting year")
	cmd.Flags().StringVar(&dc.outputPath, "output", "", "Write the generated batch to this file instead of evaluating it")

	return cmd
}

func (dc *DemoCmd) run(cmd *cobra.Command, args []string) error {
	generated := sample.NewGenerator(dc.seed).Year(dc.year)

	if dc.outputPath != "" {
		return dc.writeBatch(cmd, generated)
	}

	manager, err := report.NewManager(domain.DefaultConfig())
	if err != nil {
		return err
	}

	summary, vres, err := manager.Evaluate(generated)
	if err != nil {
		return fmt.Errorf("failed to evaluate generated batch: %w", err)
	}

	return dc.reporter.Handle(&summary, vres)
}

func (dc *DemoCmd) writeBatch(cmd *cobra.Command, generated []domain.RawRecord) error {
	batch := api.RecordBatch{Year: dc.year}
	for _, rec := range generated {
		batch.Months = append(batch.Months, adapters.MapRawRecordDomainToApi(rec))
	}

	data, err := json.MarshalIndent(batch, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode batch: %w", err)
	}
	if err := os.WriteFile(dc.outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write batch: %w", err)
	}

	cmd.Printf("Wrote %s\n", dc.outputPath)
	return nil
}
