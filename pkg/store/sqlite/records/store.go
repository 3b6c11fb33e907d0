package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/seg-tools/sso-atlas/pkg/models/domain"
	"github.com/seg-tools/sso-atlas/pkg/models/store"
	"github.com/seg-tools/sso-atlas/pkg/store/sqlite"
)

// Store archives raw record batches per reporting year. Add refuses to
// overwrite an existing period; re-importing a corrected period requires
// deleting the year first.
type Store interface {
	Add(ctx context.Context, records []domain.RawRecord) error
	GetYear(ctx context.Context, year int) ([]domain.RawRecord, error)
	ListYears(ctx context.Context) ([]int, error)
	DeleteYear(ctx context.Context, year int) error
}

type recordStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &recordStore{db: db}, nil
}

func (s *recordStore) Add(ctx context.Context, records []domain.RawRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx := sqlite.GetTransaction(ctx)
	query := `INSERT INTO activity_records (year, month, payload) VALUES (?, ?, ?)`

	var stmt *sql.Stmt
	var err error
	if tx == nil {
		stmt, err = s.db.PrepareContext(ctx, query)
	} else {
		stmt, err = tx.PrepareContext(ctx, query)
	}
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		payload, err := json.Marshal(store.FromDomain(rec))
		if err != nil {
			return fmt.Errorf("marshal record %s: %w", rec.Period, err)
		}
		if _, err := stmt.ExecContext(ctx, rec.Period.Year, int(rec.Period.Month), payload); err != nil {
			return fmt.Errorf("insert record %s: %w", rec.Period, err)
		}
	}
	return nil
}

func (s *recordStore) GetYear(ctx context.Context, year int) ([]domain.RawRecord, error) {
	query := `
		SELECT month, payload
		FROM activity_records
		WHERE year = ?
		ORDER BY month
	`
	rows, err := s.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("query records for %d: %w", year, err)
	}
	defer rows.Close()

	var records []domain.RawRecord
	for rows.Next() {
		var month int
		var payload []byte
		if err := rows.Scan(&month, &payload); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}

		var rec store.ActivityRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("unmarshal record payload: %w", err)
		}
		records = append(records, rec.ToDomain(year, time.Month(month)))
	}
	return records, rows.Err()
}

func (s *recordStore) ListYears(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT year FROM activity_records ORDER BY year`)
	if err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		years = append(years, year)
	}
	return years, rows.Err()
}

func (s *recordStore) DeleteYear(ctx context.Context, year int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM activity_records WHERE year = ?`, year); err != nil {
		return fmt.Errorf("delete records for %d: %w", year, err)
	}
	return nil
}
