// Package server serves the dashboard over HTTP: a JSON API, a websocket per mounted view and
// the embedded web shell.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"crimedash/internal/config"
	"crimedash/internal/live"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Server is the dashboard HTTP server.
type Server struct {
	cfg      *config.AppConfig
	live     *live.Updater
	limiter  *clientLimiter
	assets   *assetHandler
	upgrader websocket.Upgrader
	handler  http.Handler
	apiDoc   *openapi3.T

	ctx  context.Context
	stop context.CancelFunc
}

// New builds a server from cfg. The REST endpoints share one live updater; every websocket
// view gets its own.
func New(cfg *config.AppConfig) (*Server, error) {
	assets, err := newAssetHandler(cfg.MinifyAssets)
	if err != nil {
		return nil, err
	}
	apiDoc, err := loadAPIDoc()
	if err != nil {
		return nil, err
	}

	ctx, stop := context.WithCancel(context.Background())
	s := &Server{
		cfg: cfg,
		live: live.NewUpdater(live.Options{
			Interval:     cfg.LiveInterval,
			RefreshDelay: cfg.RefreshDelay,
			OnTick:       func(live.Snapshot) { liveTicks.Inc() },
		}),
		limiter: newClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustedProxies),
		assets:  assets,
		apiDoc:  apiDoc,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		ctx:  ctx,
		stop: stop,
	}

	if cfg.AutoRefresh {
		if err := s.live.SetAutoRefresh(true); err != nil {
			stop()
			return nil, err
		}
	}

	s.handler = requestIDMiddleware(
		recoveryMiddleware(
			loggingMiddleware(
				s.limiter.middleware(s.routes()))))
	return s, nil
}

// Handler returns the full middleware chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close unmounts every websocket view and stops the shared updater.
func (s *Server) Close() error {
	s.stop()
	return s.live.Close()
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", ln.Addr().String()).Msg("Dashboard server listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Dashboard server shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		return errors.Join(err, s.Close())
	})
	return g.Wait()
}
