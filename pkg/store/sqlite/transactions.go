package sqlite

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/give-tools/donation-atlas/pkg/adapters"
	"github.com/give-tools/donation-atlas/pkg/models/domain"
	"github.com/give-tools/donation-atlas/pkg/models/store"
)

const transactionColumns = "id, donation_id, amount, fee, status, ts"

func (s *Store) ListTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error) {
	query := "SELECT " + transactionColumns + " FROM transactions WHERE 1=1"
	var args []any

	if f.Status != nil {
		query += " AND status = ?"
		args = append(args, string(*f.Status))
	}
	if f.From != nil {
		query += " AND ts >= ?"
		args = append(args, formatTime(*f.From))
	}
	if f.To != nil {
		query += " AND ts < ?"
		args = append(args, formatTime(*f.To))
	}
	query += " ORDER BY ts"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var rec store.TransactionRecord
		var ts string
		err := rows.Scan(&rec.ID, &rec.DonationID, &rec.Amount, &rec.Fee, &rec.Status, &ts)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		if rec.Timestamp, err = parseTime(ts); err != nil {
			return nil, err
		}
		transactions = append(transactions, adapters.MapTransactionStoreToDomain(rec))
	}
	return transactions, rows.Err()
}

// AddTransaction inserts a transaction, minting an id when none is
// supplied, and returns the id.
func (s *Store) AddTransaction(ctx context.Context, t domain.Transaction) (string, error) {
	rec := adapters.MapTransactionDomainToStore(t)
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.DonationID, rec.Amount, rec.Fee, rec.Status, formatTime(rec.Timestamp),
	)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}
	return rec.ID, nil
}
