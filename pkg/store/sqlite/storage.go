package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const usersSchema = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
`

const associationsSchema = `
	CREATE TABLE IF NOT EXISTS associations (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		validated INTEGER NOT NULL DEFAULT 0,
		validated_at TEXT NULL,
		created_at TEXT NOT NULL
	);
`

const projectsSchema = `
	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		association_id TEXT NOT NULL REFERENCES associations(id),
		requested_amount REAL NOT NULL,
		collected_amount REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		start_date TEXT NOT NULL,
		end_date TEXT NULL,
		created_at TEXT NOT NULL
	);
`

const donationsSchema = `
	CREATE TABLE IF NOT EXISTS donations (
		id TEXT PRIMARY KEY,
		amount REAL NOT NULL,
		status TEXT NOT NULL,
		date TEXT NOT NULL,
		anonymous INTEGER NOT NULL DEFAULT 0,
		message TEXT NOT NULL DEFAULT '',
		donor_id TEXT NOT NULL,
		donor_name TEXT NOT NULL DEFAULT '',
		project_id TEXT NOT NULL REFERENCES projects(id)
	);
`

const transactionsSchema = `
	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT PRIMARY KEY,
		donation_id TEXT NOT NULL REFERENCES donations(id),
		amount REAL NOT NULL,
		fee REAL NOT NULL DEFAULT 0,
		status TEXT NOT NULL,
		ts TEXT NOT NULL
	);
`

var bootQueries = []string{
	usersSchema,
	associationsSchema,
	projectsSchema,
	donationsSchema,
	transactionsSchema,
}

type Settings struct {
	DbPath string
}

// NewDB opens the SQLite database at the given path (":memory:" for an
// ephemeral one) and boots the schema.
func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			db.Close()
			return nil, fmt.Errorf("boot schema: %w", err)
		}
	}

	return db, nil
}

// Timestamps are stored as RFC3339 UTC text so lexicographic SQL
// comparisons order the same way the times do.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp %q: %w", s, err)
	}
	return t, nil
}

func formatNullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

func parseNullableTime(s sql.NullString) (*time.Time, error) {
	if !s.Valid {
		return nil, nil
	}
	t, err := parseTime(s.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
