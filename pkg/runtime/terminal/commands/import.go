package commands

import (
	"fmt"

	"github.com/seg-tools/sso-atlas/pkg/adapters"
	"github.com/seg-tools/sso-atlas/pkg/store/sqlite"
	"github.com/seg-tools/sso-atlas/pkg/store/sqlite/records"

	"github.com/spf13/cobra"
)

type ImportCmd struct {
	inputPath string
	dbPath    string
	replace   bool
}

func NewImportCmd() *cobra.Command {
	ic := &ImportCmd{}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Store a record batch in the local archive",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.inputPath, "input", "", "Path to the JSON record batch")
	cmd.Flags().StringVar(&ic.dbPath, "db", "sso-atlas.db", "Path to the archive database")
	cmd.Flags().BoolVar(&ic.replace, "replace", false, "Replace the year if it is already stored")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ic *ImportCmd) run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	batch, err := readBatch(ic.inputPath)
	if err != nil {
		return err
	}

	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ic.dbPath})
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	defer db.Close()

	store, err := records.NewStore(db)
	if err != nil {
		return err
	}

	if ic.replace {
		if err := store.DeleteYear(ctx, batch.Year); err != nil {
			return err
		}
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txCtx := sqlite.WithTransaction(ctx, tx)
	if err := store.Add(txCtx, adapters.MapRecordBatchApiToDomain(batch)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to store batch: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	cmd.Printf("Stored %d months for year %d in %s\n", len(batch.Months), batch.Year, ic.dbPath)
	return nil
}
