package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/give-tools/donation-atlas/pkg/models/domain"
	"github.com/give-tools/donation-atlas/pkg/models/store"
)

type fixture struct {
	db    *sql.DB
	store *Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := NewDB(Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seed(t *testing.T, f *fixture) {
	ctx := context.Background()

	_, err := f.store.AddUser(ctx, store.UserRecord{ID: "u1", Name: "Marie", Role: RoleDonor, CreatedAt: date(2024, 1, 1)})
	require.NoError(t, err)
	_, err = f.store.AddUser(ctx, store.UserRecord{ID: "u2", Name: "Admin", Role: "admin", CreatedAt: date(2024, 1, 1)})
	require.NoError(t, err)

	validatedAt := date(2024, 6, 3)
	_, err = f.store.AddAssociation(ctx, domain.Association{
		ID: "a1", Name: "Les Restos", Validated: true, ValidatedAt: &validatedAt, CreatedAt: date(2024, 1, 1),
	})
	require.NoError(t, err)
	_, err = f.store.AddAssociation(ctx, domain.Association{
		ID: "a2", Name: "En Attente", CreatedAt: date(2024, 5, 1),
	})
	require.NoError(t, err)

	_, err = f.store.AddProject(ctx, domain.Project{
		ID: "p1", Title: "Puits au Sahel", AssociationID: "a1",
		RequestedAmount: 1000, CollectedAmount: 250,
		Status: domain.ProjectInProgress, StartDate: date(2024, 2, 1), CreatedAt: date(2024, 2, 1),
	})
	require.NoError(t, err)

	_, err = f.store.AddDonation(ctx, domain.Donation{
		ID: "d1", Amount: 150, Status: domain.DonationValidated, Date: date(2024, 5, 10),
		DonorID: "u1", DonorName: "Marie", ProjectID: "p1",
	})
	require.NoError(t, err)
	_, err = f.store.AddDonation(ctx, domain.Donation{
		ID: "d2", Amount: 100, Status: domain.DonationPending, Date: date(2024, 6, 10),
		DonorID: "u1", DonorName: "Marie", ProjectID: "p1", Message: "Bon courage",
	})
	require.NoError(t, err)

	_, err = f.store.AddTransaction(ctx, domain.Transaction{
		ID: "t1", DonationID: "d1", Amount: 150, Fee: 4, Status: domain.TransactionSucceeded,
		Timestamp: date(2024, 5, 10).Add(15 * time.Hour),
	})
	require.NoError(t, err)
}

func TestStore_ListDonations(t *testing.T) {
	f := setupFixture(t)
	seed(t, f)
	ctx := context.Background()

	t.Run("unfiltered", func(t *testing.T) {
		donations, err := f.store.ListDonations(ctx, domain.DonationFilter{})
		require.NoError(t, err)
		assert.Len(t, donations, 2)
	})

	t.Run("by status", func(t *testing.T) {
		validated := domain.DonationValidated
		donations, err := f.store.ListDonations(ctx, domain.DonationFilter{Status: &validated})
		require.NoError(t, err)
		require.Len(t, donations, 1)
		assert.Equal(t, "d1", donations[0].ID)
		assert.Equal(t, 150.0, donations[0].Amount)
		assert.Equal(t, date(2024, 5, 10), donations[0].Date)
	})

	t.Run("by date window", func(t *testing.T) {
		from, to := date(2024, 6, 1), date(2024, 6, 30)
		donations, err := f.store.ListDonations(ctx, domain.DonationFilter{From: &from, To: &to})
		require.NoError(t, err)
		require.Len(t, donations, 1)
		assert.Equal(t, "d2", donations[0].ID)
	})

	t.Run("by donor", func(t *testing.T) {
		donations, err := f.store.ListDonations(ctx, domain.DonationFilter{DonorID: "u1"})
		require.NoError(t, err)
		assert.Len(t, donations, 2)
	})
}

func TestStore_GetProjectHydratesDonations(t *testing.T) {
	f := setupFixture(t)
	seed(t, f)

	project, err := f.store.GetProject(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "Puits au Sahel", project.Title)
	assert.Equal(t, domain.ProjectInProgress, project.Status)
	require.Len(t, project.Donations, 2)
	assert.Equal(t, "Bon courage", project.Donations[1].Message)
}

func TestStore_GetProject_NotFound(t *testing.T) {
	f := setupFixture(t)

	_, err := f.store.GetProject(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_GetAssociationHydratesProjects(t *testing.T) {
	f := setupFixture(t)
	seed(t, f)

	assoc, err := f.store.GetAssociation(context.Background(), "a1")
	require.NoError(t, err)

	assert.True(t, assoc.Validated)
	require.NotNil(t, assoc.ValidatedAt)
	assert.Equal(t, date(2024, 6, 3), *assoc.ValidatedAt)
	require.Len(t, assoc.Projects, 1)
	assert.Len(t, assoc.Projects[0].Donations, 2)
}

func TestStore_ListAssociations(t *testing.T) {
	f := setupFixture(t)
	seed(t, f)
	ctx := context.Background()

	t.Run("validated only", func(t *testing.T) {
		validated := true
		associations, err := f.store.ListAssociations(ctx, domain.AssociationFilter{Validated: &validated})
		require.NoError(t, err)
		require.Len(t, associations, 1)
		assert.Equal(t, "a1", associations[0].ID)
	})

	t.Run("validated since", func(t *testing.T) {
		since := date(2024, 6, 1)
		associations, err := f.store.ListAssociations(ctx, domain.AssociationFilter{ValidatedSince: &since})
		require.NoError(t, err)
		assert.Len(t, associations, 1)

		later := date(2024, 6, 4)
		associations, err = f.store.ListAssociations(ctx, domain.AssociationFilter{ValidatedSince: &later})
		require.NoError(t, err)
		assert.Empty(t, associations)
	})
}

func TestStore_ListTransactions_WindowIsHalfOpen(t *testing.T) {
	f := setupFixture(t)
	seed(t, f)
	ctx := context.Background()

	// t1 sits at 15:00 on 2024-05-10; a window ending exclusively at
	// the next midnight includes it, one ending at that day's midnight
	// does not.
	from := date(2024, 5, 10)
	to := date(2024, 5, 11)
	transactions, err := f.store.ListTransactions(ctx, domain.TransactionFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Len(t, transactions, 1)

	to = date(2024, 5, 10)
	transactions, err = f.store.ListTransactions(ctx, domain.TransactionFilter{From: &from, To: &to})
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestStore_Users(t *testing.T) {
	f := setupFixture(t)
	seed(t, f)
	ctx := context.Background()

	count, err := f.store.CountUsersByRole(ctx, RoleDonor)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	donor, err := f.store.GetDonor(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Marie", donor.Name)

	// Non-donor users are not donors.
	_, err = f.store.GetDonor(ctx, "u2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_AddMintsIDs(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	id, err := f.store.AddAssociation(ctx, domain.Association{Name: "Sans ID", CreatedAt: date(2024, 1, 1)})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	assoc, err := f.store.GetAssociation(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Sans ID", assoc.Name)
}
