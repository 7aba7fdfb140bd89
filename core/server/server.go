package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"

	"secure-app-server/core/loader"
	"secure-app-server/core/metrics"
	"secure-app-server/core/middleware/rayid"
	"secure-app-server/core/middleware/requestlog"
	"secure-app-server/core/middleware/secure"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Server is the HTTPS front of the application.
type Server struct {
	app       *fiber.App
	cfg       Config
	addr      string
	tlsConfig *tls.Config
	logger    *zap.Logger

	mu       sync.Mutex
	listener net.Listener
}

// New builds the fiber app, its middleware chain and the enabled feature routes.
// Nothing is bound until Listen or Run is called.
func New(cfg Config, addr string, tlsConfig *tls.Config, m *metrics.Metrics, features *loader.Manager, logger *zap.Logger) (*Server, error) {
	cfg = cfg.WithDefaults()

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We will log our own startup message
		ReadTimeout:           cfg.ReadTimeout,
		IdleTimeout:           cfg.IdleTimeout,
		Concurrency:           cfg.MaxConnections,
		ErrorHandler:          ErrorHandler,
	})

	for _, handler := range Middleware(logger, m) {
		app.Use(handler)
	}

	if err := features.LoadAll(app); err != nil {
		return nil, err
	}

	return &Server{
		app:       app,
		cfg:       cfg,
		addr:      addr,
		tlsConfig: tlsConfig,
		logger:    logger,
	}, nil
}

// Middleware returns the global chain in application order: request id,
// access log, compression, security headers, CORS, then metrics closest to
// the routes.
func Middleware(logger *zap.Logger, m *metrics.Metrics) []fiber.Handler {
	return []fiber.Handler{
		rayid.New(),
		requestlog.New(logger),
		compress.New(compress.Config{Level: compress.LevelDefault}),
		secure.Headers(),
		secure.CORS(),
		m.Middleware(),
	}
}

// ErrorHandler answers with the status of a *fiber.Error. Other errors
// become a bare 500 so internal messages never reach clients.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		err = fiber.ErrInternalServerError
	}
	return fiber.DefaultErrorHandler(c, err)
}

// App exposes the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen binds the configured address and returns a TLS-terminating listener.
func (s *Server) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", s.addr, err)
	}
	tlsLn := NewListener(ln, s.tlsConfig, s.cfg.HandshakeTimeout, s.logger)

	s.mu.Lock()
	s.listener = tlsLn
	s.mu.Unlock()

	return tlsLn, nil
}

// Serve runs the accept loop on ln until Shutdown.
func (s *Server) Serve(ln net.Listener) error {
	return s.app.Listener(ln)
}

// Shutdown stops accepting and waits up to ShutdownTimeout for open connections.
// The bound listener is closed first, so a Serve that has not started yet
// returns as soon as it does.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	if ln != nil {
		if err := ln.Close(); err != nil {
			return fmt.Errorf("failed to close listener: %w", err)
		}
	}
	return s.app.ShutdownWithTimeout(s.cfg.ShutdownTimeout)
}

// Run binds, logs the endpoints and serves until ctx is cancelled.
// A bind failure is returned before anything is served.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}

	s.LogEndpoints(ln.Addr().String())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.Serve(ln)
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("Shutting down server...")
		return s.Shutdown()
	})

	return g.Wait()
}

// LogEndpoints writes the base URL and every GET route.
func (s *Server) LogEndpoints(addr string) {
	baseURL := "https://" + addr
	s.logger.Info("Server running", zap.String("url", baseURL))
	for _, path := range s.Endpoints() {
		s.logger.Info("Endpoint available", zap.String("method", fiber.MethodGet), zap.String("url", baseURL+path))
	}
}

// Endpoints lists the registered GET paths in registration order.
func (s *Server) Endpoints() []string {
	var paths []string
	seen := make(map[string]bool)
	for _, route := range s.app.GetRoutes(true) {
		if route.Method != fiber.MethodGet || seen[route.Path] {
			continue
		}
		seen[route.Path] = true
		paths = append(paths, strings.TrimSuffix(route.Path, "*"))
	}
	return paths
}
