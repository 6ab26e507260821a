package stats

import "github.com/give-tools/donation-atlas/pkg/models/domain"

// AssociationProfile builds the statistics bundle for one association
// from its hydrated projects (each project carrying its donations).
func AssociationProfile(assoc domain.Association) domain.StatBundle {
	projects := assoc.Projects

	collected := SumBy(projects, keepAll[domain.Project], func(p domain.Project) float64 {
		return p.CollectedAmount
	})
	requested := SumBy(projects, keepAll[domain.Project], func(p domain.Project) float64 {
		return p.RequestedAmount
	})

	var donations []domain.Donation
	for _, p := range projects {
		donations = append(donations, p.Donations...)
	}

	bundle := domain.StatBundle{
		"nombreProjets": len(projects),
		"nombreProjetsEnCours": CountBy(projects, func(p domain.Project) bool {
			return p.Status == domain.ProjectInProgress
		}),
		"nombreProjetsTermines": CountBy(projects, func(p domain.Project) bool {
			return p.Status == domain.ProjectCompleted
		}),
		"montantTotalCollecte": collected,
		"montantTotalDemande":  requested,
		"tauxReussite":         Round2(SafeRatio(collected, requested)),
		"totalDons":            len(donations),
		"nombreDonateursDistincts": DistinctCount(donations, func(d domain.Donation) string {
			return d.DonorID
		}),
	}

	if best, ok := bestProject(projects); ok {
		bundle["meilleurProjet"] = domain.StatBundle{
			"titre":           best.Title,
			"montantCollecte": best.CollectedAmount,
			"progres":         Round2(SafeRatio(best.CollectedAmount, best.RequestedAmount)),
		}
	}

	return bundle
}

// bestProject picks the max-collected project, earliest creation date
// winning ties.
func bestProject(projects []domain.Project) (domain.Project, bool) {
	if len(projects) == 0 {
		return domain.Project{}, false
	}
	best := projects[0]
	for _, p := range projects[1:] {
		if p.CollectedAmount > best.CollectedAmount ||
			(p.CollectedAmount == best.CollectedAmount && p.CreatedAt.Before(best.CreatedAt)) {
			best = p
		}
	}
	return best, true
}

func keepAll[T any](T) bool { return true }
