package summary

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
)

// Store caches computed summaries by their input hash, so identical
// (records, configuration) pairs are never evaluated twice.
type Store interface {
	Put(ctx context.Context, sum domain.AnnualSummary) error
	Get(ctx context.Context, inputHash string) (*domain.AnnualSummary, error)
}

type summaryStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &summaryStore{db: db}, nil
}

func (s *summaryStore) Put(ctx context.Context, sum domain.AnnualSummary) error {
	if sum.InputHash == "" {
		return fmt.Errorf("summary has no input hash")
	}

	payload, err := json.Marshal(sum)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}

	query := `
		INSERT INTO summary_cache (input_hash, year, payload) VALUES (?, ?, ?)
		ON CONFLICT (input_hash) DO NOTHING
	`
	if _, err := s.db.ExecContext(ctx, query, sum.InputHash, sum.Year, payload); err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}
	return nil
}

func (s *summaryStore) Get(ctx context.Context, inputHash string) (*domain.AnnualSummary, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM summary_cache WHERE input_hash = ?`, inputHash).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get summary: %w", err)
	}

	var sum domain.AnnualSummary
	if err := json.Unmarshal(payload, &sum); err != nil {
		return nil, fmt.Errorf("unmarshal summary payload: %w", err)
	}
	return &sum, nil
}
