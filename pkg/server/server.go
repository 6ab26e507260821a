package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	handlers "github.com/give-tools/donation-atlas/pkg/handlers/reports"
	donationatlasmiddleware "github.com/give-tools/donation-atlas/pkg/server/middleware"
)

type Dependencies struct {
	Reports handlers.Service
	Logger  zerolog.Logger
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

// ConfigureRouter mounts the reporting API.
func ConfigureRouter(config Config) *chi.Mux {
	reportsHandler := handlers.NewHandler(config.Dependencies.Reports)

	router := chi.NewRouter()
	router.Use(donationatlasmiddleware.Logger(&config.Dependencies.Logger))
	router.Use(middleware.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", reportsHandler.GetDashboard)
		r.Get("/reports/monthly", reportsHandler.GetMonthlyReport)
		r.Get("/associations/{id}/stats", reportsHandler.GetAssociationStats)
		r.Get("/donors/{id}/stats", reportsHandler.GetDonorStats)
		r.Get("/projects/{id}/stats", reportsHandler.GetProjectStats)
	})

	return router
}

type WebAPI struct {
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewWebAPI(config Config) *WebAPI {
	logger := config.Dependencies.Logger
	timeout := config.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	return &WebAPI{
		logger:          &logger,
		shutdownTimeout: timeout,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: ConfigureRouter(config),
		},
	}
}

// Start serves until the listener fails or a termination signal
// arrives, then drains outstanding requests.
func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
