package domain

import "time"

// Association owns and runs projects. Only validated associations are
// counted as active in aggregate reports.
type Association struct {
	ID          string
	Name        string
	Validated   bool
	ValidatedAt *time.Time
	CreatedAt   time.Time
	Projects    []Project
}

// Donor is the lookup target for per-donor reports. Donations reference
// donors by id; the profile aggregates over those references.
type Donor struct {
	ID   string
	Name string
}
