package adapters

import (
	"github.com/give-tools/donation-atlas/pkg/models/domain"
	"github.com/give-tools/donation-atlas/pkg/models/store"
)

func MapDonationStoreToDomain(r store.DonationRecord) domain.Donation {
	return domain.Donation{
		ID:        r.ID,
		Amount:    r.Amount,
		Status:    domain.DonationStatus(r.Status),
		Date:      r.Date,
		Anonymous: r.Anonymous,
		Message:   r.Message,
		DonorID:   r.DonorID,
		DonorName: r.DonorName,
		ProjectID: r.ProjectID,
	}
}

func MapDonationDomainToStore(d domain.Donation) store.DonationRecord {
	return store.DonationRecord{
		ID:        d.ID,
		Amount:    d.Amount,
		Status:    string(d.Status),
		Date:      d.Date,
		Anonymous: d.Anonymous,
		Message:   d.Message,
		DonorID:   d.DonorID,
		DonorName: d.DonorName,
		ProjectID: d.ProjectID,
	}
}

func MapProjectStoreToDomain(r store.ProjectRecord, donations []domain.Donation) domain.Project {
	return domain.Project{
		ID:              r.ID,
		Title:           r.Title,
		AssociationID:   r.AssociationID,
		RequestedAmount: r.RequestedAmount,
		CollectedAmount: r.CollectedAmount,
		Status:          domain.ProjectStatus(r.Status),
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		CreatedAt:       r.CreatedAt,
		Donations:       donations,
	}
}

func MapProjectDomainToStore(p domain.Project) store.ProjectRecord {
	return store.ProjectRecord{
		ID:              p.ID,
		Title:           p.Title,
		AssociationID:   p.AssociationID,
		RequestedAmount: p.RequestedAmount,
		CollectedAmount: p.CollectedAmount,
		Status:          string(p.Status),
		StartDate:       p.StartDate,
		EndDate:         p.EndDate,
		CreatedAt:       p.CreatedAt,
	}
}

func MapAssociationStoreToDomain(r store.AssociationRecord, projects []domain.Project) domain.Association {
	return domain.Association{
		ID:          r.ID,
		Name:        r.Name,
		Validated:   r.Validated,
		ValidatedAt: r.ValidatedAt,
		CreatedAt:   r.CreatedAt,
		Projects:    projects,
	}
}

func MapAssociationDomainToStore(a domain.Association) store.AssociationRecord {
	return store.AssociationRecord{
		ID:          a.ID,
		Name:        a.Name,
		Validated:   a.Validated,
		ValidatedAt: a.ValidatedAt,
		CreatedAt:   a.CreatedAt,
	}
}

func MapTransactionStoreToDomain(r store.TransactionRecord) domain.Transaction {
	return domain.Transaction{
		ID:         r.ID,
		DonationID: r.DonationID,
		Amount:     r.Amount,
		Fee:        r.Fee,
		Status:     domain.TransactionStatus(r.Status),
		Timestamp:  r.Timestamp,
	}
}

func MapTransactionDomainToStore(t domain.Transaction) store.TransactionRecord {
	return store.TransactionRecord{
		ID:         t.ID,
		DonationID: t.DonationID,
		Amount:     t.Amount,
		Fee:        t.Fee,
		Status:     string(t.Status),
		Timestamp:  t.Timestamp,
	}
}

func MapUserStoreToDonor(r store.UserRecord) domain.Donor {
	return domain.Donor{
		ID:   r.ID,
		Name: r.Name,
	}
}
