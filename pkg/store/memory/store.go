package memory

import (
	"context"

	"github.com/give-tools/donation-atlas/pkg/models/domain"
)

// User is the minimal account shape the directory needs: donors are
// users carrying the donor role.
type User struct {
	ID   string
	Name string
	Role string
}

// Store is an in-memory directory over already-materialized
// collections. Reads hydrate project donations and association
// projects on the fly and keep insertion order, so results are
// deterministic. Seed everything before serving reads; the store does
// no locking of its own.
type Store struct {
	donations    []domain.Donation
	projects     []domain.Project
	associations []domain.Association
	transactions []domain.Transaction
	users        []User
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AddDonations(donations ...domain.Donation) {
	s.donations = append(s.donations, donations...)
}

// AddProjects registers projects; their Donations field is ignored,
// hydration always goes through the donation collection.
func (s *Store) AddProjects(projects ...domain.Project) {
	for _, p := range projects {
		p.Donations = nil
		s.projects = append(s.projects, p)
	}
}

func (s *Store) AddAssociations(associations ...domain.Association) {
	for _, a := range associations {
		a.Projects = nil
		s.associations = append(s.associations, a)
	}
}

func (s *Store) AddTransactions(transactions ...domain.Transaction) {
	s.transactions = append(s.transactions, transactions...)
}

func (s *Store) AddUsers(users ...User) {
	s.users = append(s.users, users...)
}

func (s *Store) ListDonations(_ context.Context, f domain.DonationFilter) ([]domain.Donation, error) {
	var out []domain.Donation
	for _, d := range s.donations {
		if f.Match(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) ListProjects(_ context.Context, f domain.ProjectFilter) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range s.projects {
		if f.Match(p) {
			out = append(out, s.hydrateProject(p))
		}
	}
	return out, nil
}

func (s *Store) ListAssociations(_ context.Context, f domain.AssociationFilter) ([]domain.Association, error) {
	var out []domain.Association
	for _, a := range s.associations {
		if f.Match(a) {
			out = append(out, s.hydrateAssociation(a))
		}
	}
	return out, nil
}

func (s *Store) ListTransactions(_ context.Context, f domain.TransactionFilter) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, t := range s.transactions {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) CountUsersByRole(_ context.Context, role string) (int, error) {
	n := 0
	for _, u := range s.users {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

func (s *Store) GetDonor(_ context.Context, id string) (domain.Donor, error) {
	for _, u := range s.users {
		if u.ID == id && u.Role == "donor" {
			return domain.Donor{ID: u.ID, Name: u.Name}, nil
		}
	}
	return domain.Donor{}, domain.ErrNotFound
}

func (s *Store) GetProject(_ context.Context, id string) (domain.Project, error) {
	for _, p := range s.projects {
		if p.ID == id {
			return s.hydrateProject(p), nil
		}
	}
	return domain.Project{}, domain.ErrNotFound
}

func (s *Store) GetAssociation(_ context.Context, id string) (domain.Association, error) {
	for _, a := range s.associations {
		if a.ID == id {
			return s.hydrateAssociation(a), nil
		}
	}
	return domain.Association{}, domain.ErrNotFound
}

func (s *Store) hydrateProject(p domain.Project) domain.Project {
	p.Donations = nil
	for _, d := range s.donations {
		if d.ProjectID == p.ID {
			p.Donations = append(p.Donations, d)
		}
	}
	return p
}

func (s *Store) hydrateAssociation(a domain.Association) domain.Association {
	a.Projects = nil
	for _, p := range s.projects {
		if p.AssociationID == a.ID {
			a.Projects = append(a.Projects, s.hydrateProject(p))
		}
	}
	return a
}
