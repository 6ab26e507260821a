package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/give-tools/donation-atlas/pkg/models/domain"
	"github.com/give-tools/donation-atlas/pkg/services/stats"
	"github.com/give-tools/donation-atlas/pkg/store/memory"
)

// End-to-end over the real engine and an in-memory directory.
func setupTestServer(t *testing.T) *httptest.Server {
	store := memory.NewStore()

	validatedAt := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	store.AddAssociations(domain.Association{
		ID: "a1", Name: "Les Restos", Validated: true, ValidatedAt: &validatedAt,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	store.AddProjects(domain.Project{
		ID: "p1", Title: "Puits au Sahel", AssociationID: "a1",
		RequestedAmount: 1000, CollectedAmount: 250,
		Status:    domain.ProjectInProgress,
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	store.AddDonations(domain.Donation{
		ID: "d1", Amount: 250, Status: domain.DonationValidated,
		Date:    time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		DonorID: "u1", DonorName: "Marie", ProjectID: "p1",
	})
	store.AddUsers(memory.User{ID: "u1", Name: "Marie", Role: "donor"})

	logger := zerolog.New(zerolog.NewTestWriter(t))
	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Reports: stats.NewService(store, stats.Config{}),
			Logger:  logger,
		},
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func getBundle(t *testing.T, url string) (int, map[string]any) {
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}

	var bundle map[string]any
	require.NoError(t, json.Unmarshal(body, &bundle))
	return resp.StatusCode, bundle
}

func TestWebAPI_Endpoints(t *testing.T) {
	server := setupTestServer(t)

	t.Run("dashboard", func(t *testing.T) {
		status, bundle := getBundle(t, server.URL+"/api/v1/dashboard")
		require.Equal(t, http.StatusOK, status)

		general, ok := bundle["general"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), general["totalDons"])
		assert.Equal(t, float64(1), general["totalProjets"])
	})

	t.Run("association stats", func(t *testing.T) {
		status, bundle := getBundle(t, server.URL+"/api/v1/associations/a1/stats")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(1), bundle["nombreProjets"])
		assert.Equal(t, float64(250), bundle["montantTotalCollecte"])
	})

	t.Run("project stats", func(t *testing.T) {
		status, bundle := getBundle(t, server.URL+"/api/v1/projects/p1/stats")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(25), bundle["progres"])
	})

	t.Run("donor stats with window", func(t *testing.T) {
		status, bundle := getBundle(t, server.URL+"/api/v1/donors/u1/stats?from=2024-05-01&to=2024-05-31")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, float64(250), bundle["montantTotalDonne"])
		assert.Contains(t, bundle, "periode")
	})

	t.Run("unknown association", func(t *testing.T) {
		status, _ := getBundle(t, server.URL+"/api/v1/associations/missing/stats")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("bad window", func(t *testing.T) {
		status, _ := getBundle(t, server.URL+"/api/v1/projects/p1/stats?from=junk&to=2024-06-01")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}
