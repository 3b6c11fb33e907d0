package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/seg-tools/sso-atlas/pkg/adapters"
	"github.com/seg-tools/sso-atlas/pkg/models/api"
	"github.com/seg-tools/sso-atlas/pkg/runtime/terminal/export"
	"github.com/seg-tools/sso-atlas/pkg/services/config"
	"github.com/seg-tools/sso-atlas/pkg/services/report"

	"github.com/spf13/cobra"
)

type EvaluateCmd struct {
	inputPath  string
	configPath string
	reporter   *export.Reporter
}

func NewEvaluateCmd(reporter *export.Reporter) *cobra.Command {
	ec := &EvaluateCmd{reporter: reporter}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Compute indicators and compliance for a record batch",
		RunE:  ec.run,
	}

	cmd.Flags().StringVar(&ec.inputPath, "input", "", "Path to the JSON record batch")
	cmd.Flags().StringVar(&ec.configPath, "config", "", "Path to the YAML goals file (defaults apply when omitted)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ec *EvaluateCmd) run(cmd *cobra.Command, args []string) error {
	batch, err := readBatch(ec.inputPath)
	if err != nil {
		return err
	}

	cfg, err := config.Load(ec.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	manager, err := report.NewManager(cfg)
	if err != nil {
		return err
	}

	summary, vres, err := manager.Evaluate(adapters.MapRecordBatchApiToDomain(batch))
	if err != nil {
		return fmt.Errorf("failed to evaluate batch: %w", err)
	}

	return ec.reporter.Handle(&summary, vres)
}

func readBatch(path string) (api.RecordBatch, error) {
	var batch api.RecordBatch

	data, err := os.ReadFile(path)
	if err != nil {
		return batch, fmt.Errorf("failed to read input file: %w", err)
	}
	if err := json.Unmarshal(data, &batch); err != nil {
		return batch, fmt.Errorf("failed to parse input file: %w", err)
	}
	if len(batch.Months) == 0 {
		return batch, fmt.Errorf("input file %q has no months", path)
	}
	return batch, nil
}
