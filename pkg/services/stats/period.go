package stats

import (
	"context"
	"fmt"

	"github.com/give-tools/donation-atlas/pkg/models/domain"
)

// periodTotals is the raw aggregate of one window. The previous-window
// comparison reads only the validated amount out of it, which keeps the
// lookback bounded to a single extra level.
type periodTotals struct {
	donationCount   int
	validatedAmount float64
	txCount         int
	txAmount        float64
	newAssociations int
}

func (s *Service) collectPeriod(ctx context.Context, p domain.Period) (periodTotals, error) {
	var totals periodTotals

	donations, err := s.dir.ListDonations(ctx, domain.DonationFilter{From: &p.Start, To: &p.End})
	if err != nil {
		return totals, fmt.Errorf("list donations for period: %w", err)
	}
	totals.donationCount = len(donations)
	totals.validatedAmount = SumBy(donations, func(d domain.Donation) bool {
		return d.Validated()
	}, func(d domain.Donation) float64 {
		return d.Amount
	})

	// Transactions carry timestamps, so the upper bound is the start of
	// the day after the window end.
	txEnd := p.ExclusiveEnd()
	transactions, err := s.dir.ListTransactions(ctx, domain.TransactionFilter{From: &p.Start, To: &txEnd})
	if err != nil {
		return totals, fmt.Errorf("list transactions for period: %w", err)
	}
	totals.txCount = len(transactions)
	totals.txAmount = SumBy(transactions, func(t domain.Transaction) bool {
		return t.Status == domain.TransactionSucceeded
	}, func(t domain.Transaction) float64 {
		return t.Amount
	})

	associations, err := s.dir.ListAssociations(ctx, domain.AssociationFilter{ValidatedSince: &p.Start})
	if err != nil {
		return totals, fmt.Errorf("list associations for period: %w", err)
	}
	totals.newAssociations = CountBy(associations, func(a domain.Association) bool {
		return a.ValidatedAt != nil && a.ValidatedAt.Before(txEnd)
	})

	return totals, nil
}

// PeriodStats aggregates one date window and compares its validated
// amount against the immediately preceding window of equal length.
// The comparison is an explicit two-step computation, not recursion:
// collectPeriod runs once per window and the previous result
// contributes nothing but its amount.
func (s *Service) PeriodStats(ctx context.Context, p domain.Period) (domain.StatBundle, error) {
	current, err := s.collectPeriod(ctx, p)
	if err != nil {
		return nil, err
	}

	previous, err := s.collectPeriod(ctx, p.Previous())
	if err != nil {
		return nil, err
	}

	return domain.StatBundle{
		"periode": domain.StatBundle{
			"debut":       p.Start,
			"fin":         p.End,
			"nombreJours": p.Days(),
		},
		"nombreDons":            current.donationCount,
		"montantTotal":          current.validatedAmount,
		"nombreTransactions":    current.txCount,
		"montantTransactions":   current.txAmount,
		"nouvellesAssociations": current.newAssociations,
		"evolutionMontant":      Round2(EvolutionPercent(current.validatedAmount, previous.validatedAmount)),
	}, nil
}
