package app

import (
	"fmt"
	"net/http"

	"github.com/openfpl/live/external/fplapi"
	"github.com/openfpl/live/internal/config"
	"github.com/openfpl/live/internal/interfaces/httpapi"
	"github.com/openfpl/live/internal/platform/cache"
	"github.com/openfpl/live/internal/platform/logging"
	"github.com/openfpl/live/internal/platform/resilience"
	"github.com/openfpl/live/internal/usecase"
)

// NewHTTPServer wires the upstream client, the cache gateway and
// every service behind the HTTP router.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	source := fplapi.NewClient(fplapi.ClientConfig{
		BaseURL:    cfg.FPLBaseURL,
		Timeout:    cfg.FPLTimeout,
		MaxRetries: cfg.FPLMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FPLCircuitEnabled,
			FailureThreshold: cfg.FPLCircuitFailureCount,
			OpenTimeout:      cfg.FPLCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FPLCircuitHalfOpenMaxReq,
		},
	})

	gateway := cache.NewGateway(logger)

	teamSvc := usecase.NewTeamService(source, gateway, logger)
	gameweekSvc := usecase.NewGameweekService(source, gateway, logger)
	bonusSvc := usecase.NewBonusService(source, gateway, logger)
	matchupSvc := usecase.NewMatchupService(teamSvc, logger)
	leagueSvc := usecase.NewLeagueService(source, gateway, teamSvc, gameweekSvc, logger, cfg.LeagueWorkers)
	playerSvc := usecase.NewPlayerService(source, gateway, logger)

	handler := httpapi.NewHandler(teamSvc, bonusSvc, matchupSvc, leagueSvc, playerSvc, gameweekSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
