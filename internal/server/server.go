// Package server wires the HTTP routes, middleware and lifecycle around the
// game service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/MuForge_Go/internal/game"
	"github.com/osse101/MuForge_Go/internal/handler"
	"github.com/osse101/MuForge_Go/internal/logger"
	"github.com/osse101/MuForge_Go/internal/metrics"
)

// Options configures the HTTP surface
type Options struct {
	Port               int
	Version            string
	TrustedProxies     []string
	RateLimitPerWindow int
	MaxRequestBytes    int64
}

type Server struct {
	httpServer *http.Server
	draining   atomic.Bool
}

// NewServer creates a new Server instance
func NewServer(opts Options, gameService game.Service) *Server {
	s := &Server{}
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector(opts.RateLimitPerWindow)

	r.Use(chimiddleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(s))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	// Game routes
	r.Get("/api/ping", handler.HandlePing())
	r.Post("/start", handler.HandleStart(gameService))
	r.Get("/state", handler.HandleGetState(gameService))
	r.Post("/command", handler.HandleCommand(gameService))
	r.Post("/heal", handler.HandleHeal(gameService))
	r.Post("/search", handler.HandleSearch(gameService))
	r.Post("/adventure", handler.HandleAdventure(gameService))
	r.Post("/attack", handler.HandleAttack(gameService))
	r.Post("/loot/claim", handler.HandleClaimLoot(gameService))
	r.Post("/unlock", handler.HandleUnlock(gameService))

	r.Route("/shop", func(r chi.Router) {
		r.Post("/buy", handler.HandleShopBuy(gameService))
		r.Get("/prices", handler.HandleShopPrices(gameService))
	})

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           r,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// CheckHealth reports not-ready once shutdown has begun
func (s *Server) CheckHealth(_ context.Context) error {
	if s.draining.Load() {
		return errors.New(handler.MsgShuttingDown)
	}
	return nil
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

		// Skip logging for probes and scrapes
		for _, prefix := range QuietPaths {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if isSensitiveHeader(k) {
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

func isSensitiveHeader(name string) bool {
	for _, h := range SensitiveHeaders {
		if strings.EqualFold(name, h) {
			return true
		}
	}
	return false
}

// Start starts the server. It returns nil after a graceful Stop.
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop marks the server not-ready and shuts it down gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.draining.Store(true)
	return s.httpServer.Shutdown(ctx)
}
