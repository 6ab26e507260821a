package sqlite

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/give-tools/donation-atlas/pkg/models/domain"
)

// Query-shape tests: verify the dynamic WHERE building binds the right
// clauses and arguments without touching a real database.

func TestListDonations_QueryShape(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	s, err := NewStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	validated := domain.DonationValidated
	from := date(2024, 6, 1)
	to := date(2024, 6, 30)

	query := regexp.QuoteMeta(
		"SELECT " + donationColumns + " FROM donations WHERE 1=1" +
			" AND status = ? AND date >= ? AND date <= ? AND project_id = ? ORDER BY date")
	cols := []string{"id", "amount", "status", "date", "anonymous", "message", "donor_id", "donor_name", "project_id"}
	rows := sqlmock.NewRows(cols).
		AddRow("d1", 150.0, "validated", "2024-06-10T00:00:00Z", false, "", "u1", "Marie", "p1")

	mock.ExpectQuery(query).
		WithArgs("validated", "2024-06-01T00:00:00Z", "2024-06-30T00:00:00Z", "p1").
		WillReturnRows(rows)

	donations, err := s.ListDonations(context.Background(), domain.DonationFilter{
		Status:    &validated,
		From:      &from,
		To:        &to,
		ProjectID: "p1",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(donations) != 1 {
		t.Fatalf("expected 1 donation, got %d", len(donations))
	}
	if donations[0].Date != date(2024, 6, 10) {
		t.Errorf("unexpected parsed date: %v", donations[0].Date)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestListTransactions_QueryShape(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	s, err := NewStore(db)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	from := date(2024, 6, 1)
	to := date(2024, 7, 1)

	query := regexp.QuoteMeta(
		"SELECT " + transactionColumns + " FROM transactions WHERE 1=1" +
			" AND ts >= ? AND ts < ? ORDER BY ts")
	rows := sqlmock.NewRows([]string{"id", "donation_id", "amount", "fee", "status", "ts"}).
		AddRow("t1", "d1", 150.0, 4.0, "succeeded", "2024-06-10T15:00:00Z")

	mock.ExpectQuery(query).
		WithArgs("2024-06-01T00:00:00Z", "2024-07-01T00:00:00Z").
		WillReturnRows(rows)

	transactions, err := s.ListTransactions(context.Background(), domain.TransactionFilter{From: &from, To: &to})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(transactions))
	}
	if transactions[0].Status != domain.TransactionSucceeded {
		t.Errorf("unexpected status: %v", transactions[0].Status)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
