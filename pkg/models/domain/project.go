package domain

import "time"

type ProjectStatus string

const (
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
	ProjectSuspended  ProjectStatus = "suspended"
	ProjectDraft      ProjectStatus = "draft"
)

// Project is a fundraising campaign owned by an association.
// CollectedAmount is maintained by the donation-confirmation workflow,
// never recomputed here.
type Project struct {
	ID              string
	Title           string
	AssociationID   string
	RequestedAmount float64 // > 0
	CollectedAmount float64
	Status          ProjectStatus
	StartDate       time.Time
	EndDate         *time.Time
	CreatedAt       time.Time
	Donations       []Donation
}

// Overdue reports whether the project passed its end date without completing.
func (p Project) Overdue(now time.Time) bool {
	return p.Status == ProjectInProgress && p.EndDate != nil && p.EndDate.Before(now)
}
