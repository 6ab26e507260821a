package domain

import "time"

// DonationFilter narrows donation listings. Nil/zero fields are ignored.
// From and To bound the donation date, both inclusive.
type DonationFilter struct {
	Status    *DonationStatus
	From      *time.Time
	To        *time.Time
	DonorID   string
	ProjectID string
}

func (f DonationFilter) Match(d Donation) bool {
	if f.Status != nil && d.Status != *f.Status {
		return false
	}
	if f.From != nil && d.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && d.Date.After(*f.To) {
		return false
	}
	if f.DonorID != "" && d.DonorID != f.DonorID {
		return false
	}
	if f.ProjectID != "" && d.ProjectID != f.ProjectID {
		return false
	}
	return true
}

// ProjectFilter narrows project listings by status, owner, or creation
// window. CreatedAt is a timestamp, so CreatedFrom is inclusive and
// CreatedTo is exclusive.
type ProjectFilter struct {
	Status        *ProjectStatus
	AssociationID string
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
}

func (f ProjectFilter) Match(p Project) bool {
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	if f.AssociationID != "" && p.AssociationID != f.AssociationID {
		return false
	}
	if f.CreatedFrom != nil && p.CreatedAt.Before(*f.CreatedFrom) {
		return false
	}
	if f.CreatedTo != nil && !p.CreatedAt.Before(*f.CreatedTo) {
		return false
	}
	return true
}

// AssociationFilter narrows association listings. ValidatedSince keeps
// associations whose validation timestamp is on or after the threshold.
type AssociationFilter struct {
	Validated      *bool
	ValidatedSince *time.Time
}

func (f AssociationFilter) Match(a Association) bool {
	if f.Validated != nil && a.Validated != *f.Validated {
		return false
	}
	if f.ValidatedSince != nil {
		if a.ValidatedAt == nil || a.ValidatedAt.Before(*f.ValidatedSince) {
			return false
		}
	}
	return true
}

// TransactionFilter narrows transaction listings. From is inclusive,
// To is exclusive, matching how timestamp windows are derived from
// end-inclusive date periods.
type TransactionFilter struct {
	Status *TransactionStatus
	From   *time.Time
	To     *time.Time
}

func (f TransactionFilter) Match(t Transaction) bool {
	if f.Status != nil && t.Status != *f.Status {
		return false
	}
	if f.From != nil && t.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && !t.Timestamp.Before(*f.To) {
		return false
	}
	return true
}
