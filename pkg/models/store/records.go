package store

import "time"

// Flat row shapes for the SQLite directory. Statuses are kept as plain
// strings at this level; the adapters map them to domain types.

type DonationRecord struct {
	ID        string
	Amount    float64
	Status    string
	Date      time.Time
	Anonymous bool
	Message   string
	DonorID   string
	DonorName string
	ProjectID string
}

type ProjectRecord struct {
	ID              string
	Title           string
	AssociationID   string
	RequestedAmount float64
	CollectedAmount float64
	Status          string
	StartDate       time.Time
	EndDate         *time.Time
	CreatedAt       time.Time
}

type AssociationRecord struct {
	ID          string
	Name        string
	Validated   bool
	ValidatedAt *time.Time
	CreatedAt   time.Time
}

type TransactionRecord struct {
	ID         string
	DonationID string
	Amount     float64
	Fee        float64
	Status     string
	Timestamp  time.Time
}

type UserRecord struct {
	ID        string
	Name      string
	Role      string
	CreatedAt time.Time
}
