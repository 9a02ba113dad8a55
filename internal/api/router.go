package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gatherly/server/internal/api/handlers"
	"github.com/gatherly/server/internal/api/middleware"
	"github.com/gatherly/server/internal/auth"
	"github.com/gatherly/server/internal/config"
	"github.com/gatherly/server/internal/domain/events"
	"github.com/gatherly/server/internal/domain/sessions"
	"github.com/gatherly/server/internal/metrics"
	"github.com/gatherly/server/internal/storage/postgres"
)

// RouterDeps carries the wired dependencies the router mounts. The serve
// command owns their lifecycles.
type RouterDeps struct {
	Config     config.Config
	Logger     zerolog.Logger
	Pool       *pgxpool.Pool
	JWTManager *auth.JWTManager
	Version    string
}

func NewRouter(deps RouterDeps) http.Handler {
	repo := postgres.NewRepository(deps.Pool)

	eventsService := events.NewService(repo.Events(), deps.Logger)
	sessionsService := sessions.NewService(repo.Sessions(), deps.Logger)

	env := deps.Config.Environment
	eventsHandler := handlers.NewEventsHandler(eventsService, env)
	sessionsHandler := handlers.NewSessionsHandler(sessionsService, env)
	healthHandler := handlers.NewHealthHandler(deps.Pool, deps.Version)

	authRequired := middleware.JWTAuth(deps.JWTManager, env)
	rateLimited := middleware.RateLimit(deps.Config.RateLimit)
	// Rate limiting runs after auth so buckets key on user identity.
	protected := func(h http.Handler) http.Handler {
		return authRequired(rateLimited(h))
	}

	mux := http.NewServeMux()
	mux.Handle("/healthz", http.HandlerFunc(healthHandler.Healthz))
	mux.Handle("/readyz", http.HandlerFunc(healthHandler.Readyz))
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	mux.Handle("/api/v1/events", protected(methodMux(map[string]http.Handler{
		http.MethodGet:    http.HandlerFunc(eventsHandler.List),
		http.MethodPost:   http.HandlerFunc(eventsHandler.Create),
		http.MethodPut:    http.HandlerFunc(eventsHandler.Update),
		http.MethodDelete: http.HandlerFunc(eventsHandler.Delete),
	})))
	mux.Handle("/api/v1/events/{id}", protected(methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(eventsHandler.Get),
	})))
	mux.Handle("/api/v1/events/register", protected(methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(eventsHandler.Register),
	})))
	mux.Handle("/api/v1/events/unregister", protected(methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(eventsHandler.Unregister),
	})))
	mux.Handle("/api/v1/events/participants", protected(methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(eventsHandler.Participants),
	})))

	mux.Handle("/api/v1/sessions", protected(methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(sessionsHandler.List),
	})))
	mux.Handle("/api/v1/sessions/{id}", protected(methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(sessionsHandler.Get),
	})))
	mux.Handle("/api/v1/sessions/book", protected(methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(sessionsHandler.Book),
	})))
	mux.Handle("/api/v1/sessions/cancel", protected(methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(sessionsHandler.Cancel),
	})))

	var handler http.Handler = mux
	handler = middleware.RequestSizeLimit(middleware.DefaultMaxBodyBytes)(handler)
	handler = metrics.HTTPMiddleware(handler)
	if deps.Config.Tracing.Enabled {
		handler = middleware.Tracing(handler)
	}
	handler = middleware.RequestLogging(deps.Logger)(handler)
	handler = middleware.CorrelationID(deps.Logger)(handler)
	return handler
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
