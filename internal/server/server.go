package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/SideQuest_Go/internal/auth"
	"github.com/osse101/SideQuest_Go/internal/daily"
	"github.com/osse101/SideQuest_Go/internal/database"
	"github.com/osse101/SideQuest_Go/internal/export"
	"github.com/osse101/SideQuest_Go/internal/handler"
	"github.com/osse101/SideQuest_Go/internal/logger"
	"github.com/osse101/SideQuest_Go/internal/metrics"
	"github.com/osse101/SideQuest_Go/internal/quest"
	"github.com/osse101/SideQuest_Go/internal/settings"
	"github.com/osse101/SideQuest_Go/internal/sse"
	"github.com/osse101/SideQuest_Go/internal/stats"
)

// Options configure the HTTP server
type Options struct {
	Port           int
	Version        string
	TrustedProxies []string
	// SecureCookies marks the session cookie Secure.
	SecureCookies bool
}

// Services are the collaborators the routes dispatch to
type Services struct {
	DB       database.Pool
	Auth     auth.Service
	Quests   quest.Service
	Daily    daily.Service
	Stats    stats.Service
	Settings settings.Service
	Export   export.Service
	SSEHub   *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the route tree
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	authHandler := handler.NewAuthHandler(svc.Auth, opts.SecureCookies)
	questHandler := handler.NewQuestHandler(svc.Quests)
	dailyHandler := handler.NewDailyHandler(svc.Daily)
	statsHandler := handler.NewStatsHandler(svc.Stats)
	settingsHandler := handler.NewSettingsHandler(svc.Settings)

	requireAuth := AuthMiddleware(svc.Auth, opts.TrustedProxies, detector)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.HandleSignup)
			r.Post("/login", authHandler.HandleLogin)
			r.With(requireAuth).Get("/user", authHandler.HandleMe)
			r.With(requireAuth).Post("/logout", authHandler.HandleLogout)
		})

		r.Route("/quests", func(r chi.Router) {
			r.Get("/defaults", questHandler.HandleDefaults)

			r.Group(func(r chi.Router) {
				r.Use(requireAuth)
				r.Get("/", questHandler.HandleList)
				r.Post("/", questHandler.HandleCreate)
				r.Post("/bulk", questHandler.HandleCreateBulk)
				r.Post("/bulk-delete", questHandler.HandleDeleteBulk)
				r.Post("/bulk-archive", questHandler.HandleArchiveBulk)
				r.Patch("/{id}", questHandler.HandleUpdate)
				r.Delete("/{id}", questHandler.HandleDelete)
				r.Post("/{id}/archive", questHandler.HandleArchive)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Route("/daily", func(r chi.Router) {
				r.Get("/", dailyHandler.HandleGetToday)
				r.Post("/reroll", dailyHandler.HandleReroll)
				r.Post("/{id}/complete", dailyHandler.HandleSetCompletion)
			})

			r.Get("/stats", statsHandler.HandleGetStats)
			r.Get("/achievements", statsHandler.HandleGetAchievements)
			r.Get("/export", handler.HandleExport(svc.Export))

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", settingsHandler.HandleGet)
				r.Patch("/", settingsHandler.HandleUpdate)
				r.Post("/complete-onboarding", settingsHandler.HandleCompleteOnboarding)
			})

			if svc.SSEHub != nil {
				r.Get("/events", sse.Handler(svc.SSEHub))
			}
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range QuietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
