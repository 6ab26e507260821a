package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/give-tools/donation-atlas/pkg/adapters"
	"github.com/give-tools/donation-atlas/pkg/models/domain"
	"github.com/give-tools/donation-atlas/pkg/models/store"
)

const donationColumns = "id, amount, status, date, anonymous, message, donor_id, donor_name, project_id"

func (s *Store) ListDonations(ctx context.Context, f domain.DonationFilter) ([]domain.Donation, error) {
	query := "SELECT " + donationColumns + " FROM donations WHERE 1=1"
	var args []any

	if f.Status != nil {
		query += " AND status = ?"
		args = append(args, string(*f.Status))
	}
	if f.From != nil {
		query += " AND date >= ?"
		args = append(args, formatTime(*f.From))
	}
	if f.To != nil {
		query += " AND date <= ?"
		args = append(args, formatTime(*f.To))
	}
	if f.DonorID != "" {
		query += " AND donor_id = ?"
		args = append(args, f.DonorID)
	}
	if f.ProjectID != "" {
		query += " AND project_id = ?"
		args = append(args, f.ProjectID)
	}
	query += " ORDER BY date"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query donations: %w", err)
	}
	defer rows.Close()

	var donations []domain.Donation
	for rows.Next() {
		var rec store.DonationRecord
		var date string
		err := rows.Scan(
			&rec.ID, &rec.Amount, &rec.Status, &date,
			&rec.Anonymous, &rec.Message, &rec.DonorID, &rec.DonorName, &rec.ProjectID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		if rec.Date, err = parseTime(date); err != nil {
			return nil, err
		}
		donations = append(donations, adapters.MapDonationStoreToDomain(rec))
	}
	return donations, rows.Err()
}

// AddDonation inserts a donation, minting an id when none is supplied,
// and returns the id.
func (s *Store) AddDonation(ctx context.Context, d domain.Donation) (string, error) {
	rec := adapters.MapDonationDomainToStore(d)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO donations (`+donationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Amount, rec.Status, formatTime(rec.Date),
		rec.Anonymous, rec.Message, rec.DonorID, rec.DonorName, rec.ProjectID,
	)
	if err != nil {
		return "", fmt.Errorf("insert donation: %w", err)
	}
	return rec.ID, nil
}
