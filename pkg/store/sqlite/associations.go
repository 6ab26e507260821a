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

const associationColumns = "id, name, validated, validated_at, created_at"

func (s *Store) ListAssociations(ctx context.Context, f domain.AssociationFilter) ([]domain.Association, error) {
	query := "SELECT " + associationColumns + " FROM associations WHERE 1=1"
	var args []any

	if f.Validated != nil {
		query += " AND validated = ?"
		args = append(args, *f.Validated)
	}
	if f.ValidatedSince != nil {
		query += " AND validated_at IS NOT NULL AND validated_at >= ?"
		args = append(args, formatTime(*f.ValidatedSince))
	}
	query += " ORDER BY created_at"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query associations: %w", err)
	}
	defer rows.Close()

	var records []store.AssociationRecord
	for rows.Next() {
		rec, err := scanAssociation(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	associations := make([]domain.Association, 0, len(records))
	for _, rec := range records {
		a, err := s.hydrateAssociation(ctx, rec)
		if err != nil {
			return nil, err
		}
		associations = append(associations, a)
	}
	return associations, nil
}

func (s *Store) GetAssociation(ctx context.Context, id string) (domain.Association, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+associationColumns+" FROM associations WHERE id = ?", id)
	rec, err := scanAssociation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Association{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Association{}, err
	}
	return s.hydrateAssociation(ctx, rec)
}

// AddAssociation inserts an association, minting an id when none is
// supplied, and returns the id. The Projects field is ignored;
// projects are ingested separately.
func (s *Store) AddAssociation(ctx context.Context, a domain.Association) (string, error) {
	rec := adapters.MapAssociationDomainToStore(a)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO associations (`+associationColumns+`)
		VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Validated, formatNullableTime(rec.ValidatedAt), formatTime(rec.CreatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("insert association: %w", err)
	}
	return rec.ID, nil
}

func scanAssociation(row rowScanner) (store.AssociationRecord, error) {
	var rec store.AssociationRecord
	var validatedAt sql.NullString
	var createdAt string

	err := row.Scan(&rec.ID, &rec.Name, &rec.Validated, &validatedAt, &createdAt)
	if err != nil {
		return rec, err
	}

	if rec.CreatedAt, err = parseTime(createdAt); err != nil {
		return rec, err
	}
	if rec.ValidatedAt, err = parseNullableTime(validatedAt); err != nil {
		return rec, err
	}
	return rec, nil
}

func (s *Store) hydrateAssociation(ctx context.Context, rec store.AssociationRecord) (domain.Association, error) {
	projects, err := s.ListProjects(ctx, domain.ProjectFilter{AssociationID: rec.ID})
	if err != nil {
		return domain.Association{}, fmt.Errorf("hydrate association %s: %w", rec.ID, err)
	}
	return adapters.MapAssociationStoreToDomain(rec, projects), nil
}
