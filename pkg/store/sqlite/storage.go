package sqlite

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

const activityRecordsSchema = `
	CREATE TABLE IF NOT EXISTS activity_records (
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		payload TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (year, month)
	);
`

const summaryCacheSchema = `
	CREATE TABLE IF NOT EXISTS summary_cache (
		input_hash TEXT PRIMARY KEY,
		year INTEGER NOT NULL,
		payload TEXT NOT NULL,
		computed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);
`

var bootQueries = []string{
	activityRecordsSchema,
	summaryCacheSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens (or creates) the archive database and runs the boot DDL.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, err
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
