package domain

import "time"

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionSucceeded TransactionStatus = "succeeded"
	TransactionFailed    TransactionStatus = "failed"
	TransactionCancelled TransactionStatus = "cancelled"
)

// Transaction is the settlement record linked one-to-one to a donation.
// Used for financial and success-rate metrics only.
type Transaction struct {
	ID         string
	DonationID string
	Amount     float64
	Fee        float64
	Status     TransactionStatus
	Timestamp  time.Time
}
