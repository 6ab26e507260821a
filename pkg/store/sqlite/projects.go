package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/give-tools/donation-atlas/pkg/adapters"
	"github.com/give-tools/donation-atlas/pkg/models/domain"
	"github.com/give-tools/donation-atlas/pkg/models/store"
)

const projectColumns = "id, title, association_id, requested_amount, collected_amount, status, start_date, end_date, created_at"

func (s *Store) ListProjects(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error) {
	query := "SELECT " + projectColumns + " FROM projects WHERE 1=1"
	var args []any

	if f.Status != nil {
		query += " AND status = ?"
		args = append(args, string(*f.Status))
	}
	if f.AssociationID != "" {
		query += " AND association_id = ?"
		args = append(args, f.AssociationID)
	}
	if f.CreatedFrom != nil {
		query += " AND created_at >= ?"
		args = append(args, formatTime(*f.CreatedFrom))
	}
	if f.CreatedTo != nil {
		query += " AND created_at < ?"
		args = append(args, formatTime(*f.CreatedTo))
	}
	query += " ORDER BY created_at"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	var records []store.ProjectRecord
	for rows.Next() {
		rec, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	projects := make([]domain.Project, 0, len(records))
	for _, rec := range records {
		p, err := s.hydrateProject(ctx, rec)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (s *Store) GetProject(ctx context.Context, id string) (domain.Project, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+projectColumns+" FROM projects WHERE id = ?", id)
	rec, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Project{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Project{}, err
	}
	return s.hydrateProject(ctx, rec)
}

// AddProject inserts a project, minting an id when none is supplied,
// and returns the id. The Donations field is ignored; donations are
// ingested separately.
func (s *Store) AddProject(ctx context.Context, p domain.Project) (string, error) {
	rec := adapters.MapProjectDomainToStore(p)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, rec.AssociationID, rec.RequestedAmount, rec.CollectedAmount,
		rec.Status, formatTime(rec.StartDate), formatNullableTime(rec.EndDate), formatTime(rec.CreatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("insert project: %w", err)
	}
	return rec.ID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (store.ProjectRecord, error) {
	var rec store.ProjectRecord
	var startDate, createdAt string
	var endDate sql.NullString

	err := row.Scan(
		&rec.ID, &rec.Title, &rec.AssociationID, &rec.RequestedAmount, &rec.CollectedAmount,
		&rec.Status, &startDate, &endDate, &createdAt,
	)
	if err != nil {
		return rec, err
	}

	if rec.StartDate, err = parseTime(startDate); err != nil {
		return rec, err
	}
	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return rec, err
	}
	if rec.EndDate, err = parseNullableTime(endDate); err != nil {
		return rec, err
	}
	return rec, nil
}

func (s *Store) hydrateProject(ctx context.Context, rec store.ProjectRecord) (domain.Project, error) {
	donations, err := s.ListDonations(ctx, domain.DonationFilter{ProjectID: rec.ID})
	if err != nil {
		return domain.Project{}, fmt.Errorf("hydrate project %s: %w", rec.ID, err)
	}
	return adapters.MapProjectStoreToDomain(rec, donations), nil
}
