package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/soccerstatsqc/league-dashboard/internal/config"
	"github.com/soccerstatsqc/league-dashboard/internal/interfaces/httpapi"
	"github.com/soccerstatsqc/league-dashboard/internal/platform/logging"
	"github.com/soccerstatsqc/league-dashboard/internal/usecase"
)

// NewHTTPServer wires the match store, the service and the router. The
// returned cleanup releases the store and must be called after shutdown.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	service, cleanup, err := NewMatchService(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	handler := httpapi.NewHandler(service, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

// NewMatchService builds the service over the configured store. It is shared
// by the API server and the command line tool.
func NewMatchService(ctx context.Context, cfg config.Config, logger *logging.Logger) (*usecase.MatchService, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repo, cleanup, err := OpenMatchRepository(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return usecase.NewMatchService(repo, cfg.Timeline, cfg.TimelineWorkers, logger), cleanup, nil
}
