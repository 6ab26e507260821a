package stats

import (
	"context"
	"time"

	"github.com/give-tools/donation-atlas/pkg/models/domain"
)

// Directory is the set of query operations the engine consumes. The
// engine never writes through it; all mutation (confirming a donation,
// validating an association) happens in the collaborator before a
// report is requested. Implementations live in pkg/store.
type Directory interface {
	ListDonations(ctx context.Context, f domain.DonationFilter) ([]domain.Donation, error)
	ListProjects(ctx context.Context, f domain.ProjectFilter) ([]domain.Project, error)
	ListAssociations(ctx context.Context, f domain.AssociationFilter) ([]domain.Association, error)
	ListTransactions(ctx context.Context, f domain.TransactionFilter) ([]domain.Transaction, error)
	CountUsersByRole(ctx context.Context, role string) (int, error)
	GetDonor(ctx context.Context, id string) (domain.Donor, error)
	GetProject(ctx context.Context, id string) (domain.Project, error)
	GetAssociation(ctx context.Context, id string) (domain.Association, error)
}

// Config carries the report thresholds the platform treats as tunable.
type Config struct {
	// NearGoalPercent marks an in-progress project as almost funded.
	NearGoalPercent float64
	// LargeDonationAmount is the floor for the large-donation counter.
	LargeDonationAmount float64
	// TopProjectCount is the leaderboard length on the global dashboard.
	TopProjectCount int
}

func DefaultConfig() Config {
	return Config{
		NearGoalPercent:     90,
		LargeDonationAmount: 1000,
		TopProjectCount:     5,
	}
}

// Service composes reports from Directory queries. It is stateless:
// every call re-derives its result from fresh collections, nothing is
// cached, so concurrent report requests need no coordination.
type Service struct {
	dir Directory
	cfg Config
	now func() time.Time
}

func NewService(dir Directory, cfg Config) *Service {
	def := DefaultConfig()
	if cfg.NearGoalPercent <= 0 {
		cfg.NearGoalPercent = def.NearGoalPercent
	}
	if cfg.LargeDonationAmount <= 0 {
		cfg.LargeDonationAmount = def.LargeDonationAmount
	}
	if cfg.TopProjectCount <= 0 {
		cfg.TopProjectCount = def.TopProjectCount
	}
	return &Service{
		dir: dir,
		cfg: cfg,
		now: time.Now,
	}
}
