package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/give-tools/donation-atlas/pkg/models/domain"
)

const dashboardActivityDays = 30

// GlobalDashboard assembles the platform-wide report: general counts,
// financial totals, a 30-day activity window with its evolution, the
// alert counters, and the project leaderboard.
func (s *Service) GlobalDashboard(ctx context.Context) (domain.StatBundle, error) {
	now := s.now()

	donations, err := s.dir.ListDonations(ctx, domain.DonationFilter{})
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	projects, err := s.dir.ListProjects(ctx, domain.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	associations, err := s.dir.ListAssociations(ctx, domain.AssociationFilter{})
	if err != nil {
		return nil, fmt.Errorf("list associations: %w", err)
	}
	transactions, err := s.dir.ListTransactions(ctx, domain.TransactionFilter{})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	donorCount, err := s.dir.CountUsersByRole(ctx, "donor")
	if err != nil {
		return nil, fmt.Errorf("count donors: %w", err)
	}

	validated := func(d domain.Donation) bool { return d.Validated() }
	amount := func(d domain.Donation) float64 { return d.Amount }

	validatedCount := CountBy(donations, validated)
	totalCollected := SumBy(donations, validated, amount)

	activity, err := s.PeriodStats(ctx, domain.LastNDays(now, dashboardActivityDays))
	if err != nil {
		return nil, err
	}

	top := TopN(projects, s.cfg.TopProjectCount, func(p domain.Project) float64 {
		return p.CollectedAmount
	})
	topProjects := make([]domain.StatBundle, 0, len(top))
	for _, p := range top {
		topProjects = append(topProjects, domain.StatBundle{
			"titre":           p.Title,
			"montantCollecte": p.CollectedAmount,
			"progres":         Round2(SafeRatio(p.CollectedAmount, p.RequestedAmount)),
		})
	}

	return domain.StatBundle{
		"general": domain.StatBundle{
			"totalDons":         len(donations),
			"totalProjets":      len(projects),
			"totalAssociations": len(associations),
			"associationsValidees": CountBy(associations, func(a domain.Association) bool {
				return a.Validated
			}),
			"totalDonateurs": donorCount,
		},
		"finances": domain.StatBundle{
			"montantTotalCollecte": totalCollected,
			"montantMoyenParDon":   SafeAverage(totalCollected, validatedCount),
			"fraisTotaux": SumBy(transactions, func(t domain.Transaction) bool {
				return t.Status == domain.TransactionSucceeded
			}, func(t domain.Transaction) float64 {
				return t.Fee
			}),
			"donsImportants": CountBy(donations, func(d domain.Donation) bool {
				return d.Validated() && d.Amount >= s.cfg.LargeDonationAmount
			}),
		},
		"activite": activity,
		"alertes": domain.StatBundle{
			"projetsEnRetard": CountBy(projects, func(p domain.Project) bool {
				return p.Overdue(now)
			}),
			"projetsPresqueFinances": CountBy(projects, func(p domain.Project) bool {
				return p.Status == domain.ProjectInProgress &&
					SafeRatio(p.CollectedAmount, p.RequestedAmount) >= s.cfg.NearGoalPercent
			}),
			"associationsEnAttente": CountBy(associations, func(a domain.Association) bool {
				return !a.Validated
			}),
			"transactionsEchouees": CountBy(transactions, func(t domain.Transaction) bool {
				return t.Status == domain.TransactionFailed
			}),
			"donsEnAttente": CountBy(donations, func(d domain.Donation) bool {
				return d.Status == domain.DonationPending
			}),
		},
		"topProjets": topProjects,
	}, nil
}

// MonthlyReport compares the calendar month containing ref with the
// month before it and counts the month's new projects and newly
// validated associations.
func (s *Service) MonthlyReport(ctx context.Context, ref time.Time) (domain.StatBundle, error) {
	current := domain.MonthPeriod(ref)
	previous := domain.MonthPeriod(current.Start.AddDate(0, 0, -1))

	currentStats, err := s.PeriodStats(ctx, current)
	if err != nil {
		return nil, err
	}
	previousStats, err := s.PeriodStats(ctx, previous)
	if err != nil {
		return nil, err
	}

	monthEnd := current.ExclusiveEnd()
	newProjects, err := s.dir.ListProjects(ctx, domain.ProjectFilter{
		CreatedFrom: &current.Start,
		CreatedTo:   &monthEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("list new projects: %w", err)
	}

	newAssociations, err := s.dir.ListAssociations(ctx, domain.AssociationFilter{
		ValidatedSince: &current.Start,
	})
	if err != nil {
		return nil, fmt.Errorf("list new associations: %w", err)
	}
	inMonth := CountBy(newAssociations, func(a domain.Association) bool {
		return a.ValidatedAt != nil && a.ValidatedAt.Before(monthEnd)
	})

	return domain.StatBundle{
		"moisCourant":           currentStats,
		"moisPrecedent":         previousStats,
		"nouveauxProjets":       len(newProjects),
		"nouvellesAssociations": inMonth,
	}, nil
}

// AssociationReport profiles one association, optionally merged with a
// window comparison. A missing id surfaces as domain.ErrNotFound.
func (s *Service) AssociationReport(ctx context.Context, id string, window *domain.Period) (domain.StatBundle, error) {
	assoc, err := s.dir.GetAssociation(ctx, id)
	if err != nil {
		return nil, err
	}
	bundle := AssociationProfile(assoc)
	return s.withPeriod(ctx, bundle, window)
}

// DonorReport profiles one donor over the donor's full donation history.
func (s *Service) DonorReport(ctx context.Context, id string, window *domain.Period) (domain.StatBundle, error) {
	donor, err := s.dir.GetDonor(ctx, id)
	if err != nil {
		return nil, err
	}

	donations, err := s.dir.ListDonations(ctx, domain.DonationFilter{DonorID: donor.ID})
	if err != nil {
		return nil, fmt.Errorf("list donor donations: %w", err)
	}

	projects, err := s.dir.ListProjects(ctx, domain.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projectsByID := make(map[string]domain.Project, len(projects))
	for _, p := range projects {
		projectsByID[p.ID] = p
	}

	bundle := DonorProfile(donor, donations, projectsByID)
	return s.withPeriod(ctx, bundle, window)
}

// ProjectReport profiles one project.
func (s *Service) ProjectReport(ctx context.Context, id string, window *domain.Period) (domain.StatBundle, error) {
	project, err := s.dir.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	bundle := ProjectProfile(project, s.now())
	return s.withPeriod(ctx, bundle, window)
}

func (s *Service) withPeriod(ctx context.Context, bundle domain.StatBundle, window *domain.Period) (domain.StatBundle, error) {
	if window == nil {
		return bundle, nil
	}
	period, err := s.PeriodStats(ctx, *window)
	if err != nil {
		return nil, err
	}
	return bundle.Merge(domain.StatBundle{"periode": period}), nil
}
