package stats

import (
	"math"
	"time"

	"github.com/give-tools/donation-atlas/pkg/models/domain"
)

// anonymousDisplayName replaces the donor name whenever a donation is
// flagged anonymous. The flag is per donation and is never unmasked.
const anonymousDisplayName = "Anonyme"

var monthNames = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// ProjectProfile builds the statistics bundle for one project from its
// hydrated donations. now anchors the elapsed-time percentage and the
// trailing 12-month breakdown.
func ProjectProfile(p domain.Project, now time.Time) domain.StatBundle {
	bundle := domain.StatBundle{
		"montantDemande":  p.RequestedAmount,
		"montantCollecte": p.CollectedAmount,
		"progres":         Round2(SafeRatio(p.CollectedAmount, p.RequestedAmount)),
		"montantRestant":  math.Max(0, p.RequestedAmount-p.CollectedAmount),
		"nombreDons":      len(p.Donations),
		"nombreDonateursDistincts": DistinctCount(p.Donations, func(d domain.Donation) string {
			return d.DonorID
		}),
		"montantMoyenParDon": SafeAverage(p.CollectedAmount, len(p.Donations)),
		"nombreDonsAvecMessage": CountBy(p.Donations, func(d domain.Donation) bool {
			return d.Message != ""
		}),
	}

	if !p.StartDate.IsZero() && p.EndDate != nil {
		totalDays := p.EndDate.Sub(p.StartDate).Hours() / 24
		elapsedDays := now.Sub(p.StartDate).Hours() / 24
		bundle["tempsEcoulePourcent"] = Round2(math.Min(100, SafeRatio(elapsedDays, totalDays)))
	}

	var validated []domain.Donation
	for _, d := range p.Donations {
		if d.Validated() {
			validated = append(validated, d)
		}
	}

	if best, ok := largestDonation(validated); ok {
		name := best.DonorName
		if best.Anonymous {
			name = anonymousDisplayName
		}
		bundle["plusGrandDon"] = domain.StatBundle{
			"montant":  best.Amount,
			"donateur": name,
			"date":     best.Date,
		}
	}

	bundle["historiqueMensuel"] = monthlyHistory(validated, now)

	return bundle
}

// monthlyHistory sums validated amounts per calendar month for the 12
// months ending with now's month, oldest first.
func monthlyHistory(validated []domain.Donation, now time.Time) []domain.StatBundle {
	history := make([]domain.StatBundle, 0, 12)
	for i := 11; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		nextMonth := monthStart.AddDate(0, 1, 0)

		total := SumBy(validated, func(d domain.Donation) bool {
			return !d.Date.Before(monthStart) && d.Date.Before(nextMonth)
		}, func(d domain.Donation) float64 {
			return d.Amount
		})

		history = append(history, domain.StatBundle{
			"mois":    monthNames[monthStart.Month()-1],
			"montant": total,
		})
	}
	return history
}
