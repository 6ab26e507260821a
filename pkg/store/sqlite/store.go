package sqlite

import (
	"database/sql"
	"fmt"
)

// Store implements the stats.Directory query operations over SQLite,
// plus ingestion helpers so the database can be populated. Reads
// hydrate related collections (project donations, association
// projects) so the engine receives complete entities.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &Store{db: db}, nil
}
