package httpapi

import (
	"net/http"

	"github.com/openfpl/live/internal/platform/logging"
)

// NewRouter wires every route behind the shared middleware chain:
// tracing, request logging, CORS and panic recovery.
func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerDomainRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/v1/gameweeks/current", handler.GetCurrentGameweek)
	mux.HandleFunc("GET /api/v1/gameweeks/{gw}/bonus", handler.GetGameweekBonus)
	mux.HandleFunc("GET /api/v1/entries/{entryID}/gameweeks/{gw}/score", handler.GetTeamGameweekScore)
	mux.HandleFunc("GET /api/v1/matchup", handler.GetMatchup)
	mux.HandleFunc("GET /api/v1/players/{playerID}", handler.GetPlayerDetail)
	mux.HandleFunc("GET /api/v1/leagues/classic/{leagueID}", handler.GetClassicLeague)
	mux.HandleFunc("GET /api/v1/leagues/h2h/{leagueID}", handler.GetH2HLeague)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
