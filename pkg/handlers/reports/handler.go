package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/give-tools/donation-atlas/pkg/models/domain"
)

const dateLayout = "2006-01-02"

// Service is the reporting surface the handlers expose. Implemented by
// stats.Service.
type Service interface {
	GlobalDashboard(ctx context.Context) (domain.StatBundle, error)
	MonthlyReport(ctx context.Context, ref time.Time) (domain.StatBundle, error)
	AssociationReport(ctx context.Context, id string, window *domain.Period) (domain.StatBundle, error)
	DonorReport(ctx context.Context, id string, window *domain.Period) (domain.StatBundle, error)
	ProjectReport(ctx context.Context, id string, window *domain.Period) (domain.StatBundle, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	dashboard, err := h.svc.GlobalDashboard(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, dashboard)
}

func (h *Handler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ref := time.Now()
	yearParam := r.URL.Query().Get("year")
	monthParam := r.URL.Query().Get("month")
	if yearParam != "" || monthParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			writeBadRequest(w, r, "invalid year")
			return
		}
		month, err := strconv.Atoi(monthParam)
		if err != nil || month < 1 || month > 12 {
			writeBadRequest(w, r, "invalid month")
			return
		}
		ref = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	}

	report, err := h.svc.MonthlyReport(ctx, ref)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, report)
}

func (h *Handler) GetAssociationStats(w http.ResponseWriter, r *http.Request) {
	h.entityStats(w, r, h.svc.AssociationReport)
}

func (h *Handler) GetDonorStats(w http.ResponseWriter, r *http.Request) {
	h.entityStats(w, r, h.svc.DonorReport)
}

func (h *Handler) GetProjectStats(w http.ResponseWriter, r *http.Request) {
	h.entityStats(w, r, h.svc.ProjectReport)
}

func (h *Handler) entityStats(
	w http.ResponseWriter,
	r *http.Request,
	report func(context.Context, string, *domain.Period) (domain.StatBundle, error),
) {
	id := chi.URLParam(r, "id")

	window, err := parseWindow(r)
	if err != nil {
		writeBadRequest(w, r, err.Error())
		return
	}

	bundle, err := report(r.Context(), id, window)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, bundle)
}

// parseWindow reads the optional from/to query parameters. Both must be
// present to form a window.
func parseWindow(r *http.Request) (*domain.Period, error) {
	fromParam := r.URL.Query().Get("from")
	toParam := r.URL.Query().Get("to")
	if fromParam == "" && toParam == "" {
		return nil, nil
	}

	from, err := time.Parse(dateLayout, fromParam)
	if err != nil {
		return nil, errors.New("invalid from date, expected YYYY-MM-DD")
	}
	to, err := time.Parse(dateLayout, toParam)
	if err != nil {
		return nil, errors.New("invalid to date, expected YYYY-MM-DD")
	}
	if to.Before(from) {
		return nil, errors.New("window end precedes its start")
	}
	return &domain.Period{Start: from, End: to}, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, payload any) {
	logger := zerolog.Ctx(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg("failed to encode report")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	if errors.Is(err, domain.ErrNotFound) {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	logger.Error().
		Err(err).
		Str("path", r.URL.Path).
		Msg("report computation failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	zerolog.Ctx(r.Context()).Warn().
		Str("path", r.URL.Path).
		Msg(msg)
	http.Error(w, msg, http.StatusBadRequest)
}
