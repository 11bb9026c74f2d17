// Package server exposes the active theme over http
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/cors"

	"shade/internal/app/errors"
	"shade/internal/app/theme"
	"shade/internal/config"
	"shade/internal/config/logger"
)

//go:generate mockgen -source=server.go -destination=server_mock.go -package=server

// Server is the http theme service
type Server interface {
	Start() error
	Shutdown(ctx context.Context) error
	Handler() http.Handler
	Addr() string
}

type server struct {
	cfg        config.Server
	store      theme.Store
	log        logger.Logger
	metrics    *metrics
	router     chi.Router
	httpServer *http.Server
	listener   net.Listener
	mu         sync.Mutex
}

// NewServer builds the router, nothing listens until Start
func NewServer(cfg *config.Config, store theme.Store, log logger.Logger) Server {
	s := &server{
		cfg:     cfg.Server,
		store:   store,
		log:     log.WithComponent("SERVER"),
		metrics: newMetrics(),
	}

	s.router = s.setupRouter()
	s.httpServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.router,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return s
}

func (s *server) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggingMiddleware)
	r.Use(middleware.Recoverer)

	if s.cfg.EnableCORS {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: s.cfg.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}).Handler)
	}

	r.Get("/health", s.handleHealth)
	r.Get("/theme.css", s.handleStylesheet)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/palette", s.handlePalette)
		r.Get("/colors", s.handleGetColors)
		r.Post("/colors", s.handleUpdateColors)
		r.Delete("/colors", s.handleRevertColors)
	})

	if s.cfg.Metrics {
		r.Method(http.MethodGet, "/metrics", s.metrics.handler())
	}

	return r
}

// loggingMiddleware logs each request and records its metrics
func (s *server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			elapsed := time.Since(start)
			route := routePattern(r)

			s.metrics.requests.WithLabelValues(route, fmt.Sprint(ww.Status())).Inc()
			s.metrics.duration.WithLabelValues(route).Observe(elapsed.Seconds())

			s.log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration", elapsed).
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		}()

		next.ServeHTTP(ww, r)
	})
}

// requestID keeps a caller supplied X-Request-ID or assigns a uuid, and echoes it back
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(middleware.RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(middleware.RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}

	return "unmatched"
}

// Start binds the listener and serves in the background
func (s *server) Start() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrServerStart, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("Serving theme")

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
		}
	}()

	return nil
}

// Shutdown drains connections within the configured shutdown timeout
func (s *server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down")

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

// Handler returns the router
func (s *server) Handler() http.Handler {
	return s.router
}

// Addr returns the bound address once started, the configured one before
func (s *server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.httpServer.Addr
}
