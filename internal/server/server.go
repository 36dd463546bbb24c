// SPDX-License-Identifier: MIT
// Package server exposes the analysis engine over HTTP.
//
// Routes (gorilla/mux):
//
//	GET  /healthz
//	GET  /metrics
//	POST /v1/analyze?mode=
//	POST /v1/connectivity?k=&mode=
//	POST /v1/classify?mode=
//	POST /v1/low-connectivity
//	GET  /v1/families/{name}?n=&m=&k=&p=&q=&seed=&mode=
//	POST /v1/network/report?mode=
//
// Every request owns the graph it builds; handlers share only the logger,
// the metrics and the rate limiter.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/zagreb/internal/config"
)

// Server wires the router, middleware and handlers.
type Server struct {
	cfg      config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics
	limiter  *rateLimiter
	router   *mux.Router
}

// New builds a Server. A nil logger is replaced by zap.NewNop.
func New(cfg config.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	reg := prometheus.NewRegistry()
	s := &Server{
		cfg:      cfg,
		log:      log,
		registry: reg,
		metrics:  newMetrics(reg),
		limiter:  newRateLimiter(cfg.Server.RateQPS, cfg.Server.RateBurst, cfg.Server.RateIdleTTL),
		router:   mux.NewRouter(),
	}
	s.routes()

	return s
}

func (s *Server) routes() {
	r := s.router
	r.Use(s.requestID, s.observe, s.rateLimit)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	v1 := r.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/analyze", s.handleAnalyze).Methods(http.MethodPost)
	v1.HandleFunc("/connectivity", s.handleConnectivity).Methods(http.MethodPost)
	v1.HandleFunc("/classify", s.handleClassify).Methods(http.MethodPost)
	v1.HandleFunc("/low-connectivity", s.handleLowConnectivity).Methods(http.MethodPost)
	v1.HandleFunc("/families/{name}", s.handleFamily).Methods(http.MethodGet)
	v1.HandleFunc("/network/report", s.handleNetworkReport).Methods(http.MethodPost)
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves on cfg.Server.Addr until ctx is cancelled, then shuts down
// gracefully within cfg.Server.ShutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}

	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		ErrorLog:     zap.NewStdLog(s.log),
	}

	g, gctx := errgroup.WithContext(ctx)
	if s.limiter != nil {
		g.Go(func() error {
			s.limiter.janitor(gctx, s.log)
			return nil
		})
	}
	g.Go(func() error {
		s.log.Info("http server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
		defer cancel()
		s.log.Info("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
