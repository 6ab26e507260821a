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

// RoleDonor is the role donors carry in the users table.
const RoleDonor = "donor"

func (s *Store) CountUsersByRole(ctx context.Context, role string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users WHERE role = ?", role).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return count, nil
}

func (s *Store) GetDonor(ctx context.Context, id string) (domain.Donor, error) {
	var rec store.UserRecord
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name FROM users WHERE id = ? AND role = ?", id, RoleDonor,
	).Scan(&rec.ID, &rec.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Donor{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Donor{}, fmt.Errorf("get donor: %w", err)
	}
	return adapters.MapUserStoreToDonor(rec), nil
}

// AddUser inserts a user, minting an id when none is supplied, and
// returns the id.
func (s *Store) AddUser(ctx context.Context, rec store.UserRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, name, role, created_at)
		VALUES (?, ?, ?, ?)`,
		rec.ID, rec.Name, rec.Role, formatTime(rec.CreatedAt),
	)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	return rec.ID, nil
}
