package stats

import (
	"github.com/give-tools/donation-atlas/pkg/models/domain"
)

type DonorLevel string

const (
	LevelPlatinum DonorLevel = "Platinum"
	LevelGold     DonorLevel = "Gold"
	LevelSilver   DonorLevel = "Silver"
	LevelBronze   DonorLevel = "Bronze"
	LevelNew      DonorLevel = "New"
)

// donorLevel classifies a donor from validated totals. Thresholds are
// evaluated top-down, first match wins, which keeps the classification
// monotonic in both amount and count.
func donorLevel(validatedAmount float64, validatedCount int) DonorLevel {
	switch {
	case validatedAmount >= 5000 || validatedCount >= 20:
		return LevelPlatinum
	case validatedAmount >= 2000 || validatedCount >= 10:
		return LevelGold
	case validatedAmount >= 500 || validatedCount >= 5:
		return LevelSilver
	case validatedCount >= 1:
		return LevelBronze
	default:
		return LevelNew
	}
}

// DonorProfile builds the statistics bundle for one donor from the
// donor's donations. projectsByID resolves donation project references
// to their owning associations; entries may be missing for projects
// the caller could not load, those donations then count no association.
func DonorProfile(donor domain.Donor, donations []domain.Donation, projectsByID map[string]domain.Project) domain.StatBundle {
	validated := func(d domain.Donation) bool { return d.Validated() }
	amount := func(d domain.Donation) float64 { return d.Amount }

	validatedCount := CountBy(donations, validated)
	totalValidated := SumBy(donations, validated, amount)

	bundle := domain.StatBundle{
		"nombreDons":        len(donations),
		"nombreDonsValides": validatedCount,
		"nombreDonsEnAttente": CountBy(donations, func(d domain.Donation) bool {
			return d.Status == domain.DonationPending
		}),
		"montantTotalDonne":  totalValidated,
		"montantMoyenParDon": SafeAverage(totalValidated, validatedCount),
		"niveauDonateur":     string(donorLevel(totalValidated, validatedCount)),
	}

	var validatedDons []domain.Donation
	for _, d := range donations {
		if d.Validated() {
			validatedDons = append(validatedDons, d)
		}
	}

	bundle["nombreProjetsSoutenus"] = DistinctCount(validatedDons, func(d domain.Donation) string {
		return d.ProjectID
	})

	associations := make(map[string]struct{})
	for _, d := range validatedDons {
		if p, ok := projectsByID[d.ProjectID]; ok {
			associations[p.AssociationID] = struct{}{}
		}
	}
	bundle["nombreAssociationsSoutenues"] = len(associations)

	if best, ok := largestDonation(validatedDons); ok {
		entry := domain.StatBundle{
			"montant": best.Amount,
			"date":    best.Date,
		}
		if p, ok := projectsByID[best.ProjectID]; ok {
			entry["projet"] = p.Title
		}
		bundle["plusGrandDon"] = entry
	}

	// First/last span every donation regardless of status.
	if len(donations) > 0 {
		first, last := donations[0].Date, donations[0].Date
		for _, d := range donations[1:] {
			if d.Date.Before(first) {
				first = d.Date
			}
			if d.Date.After(last) {
				last = d.Date
			}
		}
		bundle["premierDon"] = first
		bundle["dernierDon"] = last
	}

	return bundle
}

// largestDonation picks the max-amount donation, earliest date winning
// ties. Returns false when the slice is empty.
func largestDonation(donations []domain.Donation) (domain.Donation, bool) {
	if len(donations) == 0 {
		return domain.Donation{}, false
	}
	best := donations[0]
	for _, d := range donations[1:] {
		if d.Amount > best.Amount || (d.Amount == best.Amount && d.Date.Before(best.Date)) {
			best = d
		}
	}
	return best, true
}
