package domain

import "time"

type DonationStatus string

const (
	DonationPending   DonationStatus = "pending"
	DonationValidated DonationStatus = "validated"
	DonationRefused   DonationStatus = "refused"
	DonationCancelled DonationStatus = "cancelled"
	DonationRefunded  DonationStatus = "refunded"
)

// Donation is a single contribution from a donor to a project.
// Status transitions belong to the donation workflow; the reporting
// engine only reads the current value.
type Donation struct {
	ID        string
	Amount    float64 // > 0
	Status    DonationStatus
	Date      time.Time
	Anonymous bool
	Message   string
	DonorID   string
	DonorName string // display name, masked in reports when Anonymous
	ProjectID string
}

// Validated reports whether the donation counts toward collected amounts.
func (d Donation) Validated() bool {
	return d.Status == DonationValidated
}
