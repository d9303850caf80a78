package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/foundry90/docs"
	"github.com/osse101/foundry90/internal/database"
	"github.com/osse101/foundry90/internal/eventlog"
	"github.com/osse101/foundry90/internal/handler"
	"github.com/osse101/foundry90/internal/ledger"
	"github.com/osse101/foundry90/internal/logger"
	"github.com/osse101/foundry90/internal/metrics"
	"github.com/osse101/foundry90/internal/progress"
)

// Config holds the HTTP surface settings
type Config struct {
	Port               int
	APIKey             string
	TrustedProxies     []string
	RateLimitPerMinute int
	Version            string
}

// Services are the domain services exposed over HTTP. EventLog may be nil.
type Services struct {
	Progress progress.Service
	Ledger   ledger.Service
	EventLog eventlog.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(cfg Config, dbPool database.Pool, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, dbPool, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the full middleware stack and route table
func NewRouter(cfg Config, dbPool database.Pool, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	limiter := NewUserRateLimiter(cfg.RateLimitPerMinute, DefaultRateLimitKeys)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(cfg.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(limiter, cfg.TrustedProxies))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))
	r.Get("/version", handler.HandleVersion(cfg.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	progressHandler := handler.NewProgressHandler(svc.Progress)
	tokenHandler := handler.NewTokenHandler(svc.Ledger)
	adminHandler := handler.NewAdminHandler(svc.Progress, svc.Ledger, svc.EventLog)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/progress", func(r chi.Router) {
			r.Get("/", progressHandler.HandleGetProgress)
			r.Post("/start", progressHandler.HandleStartJourney)
			r.Post("/complete", progressHandler.HandleCompleteDay)
			r.Post("/end-day", progressHandler.HandleEndDay)
			r.Get("/can-advance", progressHandler.HandleCanAdvance)
			r.Post("/draft", progressHandler.HandleSaveDraft)
			r.Get("/days/{day}", progressHandler.HandleGetDay)
		})

		r.Get("/achievements", progressHandler.HandleGetAchievements)

		r.Route("/tokens", func(r chi.Router) {
			r.Post("/award", tokenHandler.HandleAward)
			r.Post("/spend", tokenHandler.HandleSpend)
			r.Get("/balances", tokenHandler.HandleGetBalances)
			r.Get("/transactions", tokenHandler.HandleGetTransactions)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/progress/clear-lock", adminHandler.HandleClearLock)
			r.Get("/tokens/verify", adminHandler.HandleVerifyBalances)
			r.Get("/events", adminHandler.HandleGetEvents)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

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
		statusCode:     http.StatusOK, // default status
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health checks and scrapes
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Reuse an upstream request id so traces line up across services
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
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
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
