package database

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/noah-isme/park-maintenance-api/pkg/config"
)

// NewSQLite opens a file backed SQLite catalog, used for local runs of the
// planner without a PostgreSQL server.
func NewSQLite(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", cfg.SQLitePath)
	if err != nil {
		return nil, err
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY on the job table.
	cfg.MaxOpenConns = 1
	cfg.MaxIdleConns = 1
	return configure(db, cfg)
}
