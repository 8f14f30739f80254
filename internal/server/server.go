// Package server exposes the assistant over HTTP: session lifecycle, stage
// navigation, record updates, address lookup, signature capture and the two
// render targets.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	theme "github.com/goliatone/go-theme"
	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"

	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/lookup"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/render"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/renderers/preview"
	"github.com/floriansagenschneider-netizen/bolz-kuendigungsassistent/pkg/renderers/print"
)

// Option customises the server configuration.
type Option func(*Server)

// WithLogger injects a configured logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithLookupClient injects the address search client.
func WithLookupClient(client *lookup.Client) Option {
	return func(s *Server) {
		if client != nil {
			s.lookup = client
		}
	}
}

// WithRegistry replaces the default renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(s *Server) {
		if registry != nil {
			s.registry = registry
		}
	}
}

// WithTheme sets the theme passed to the preview target.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(s *Server) {
		s.theme = cfg
	}
}

// Server wires the wizard, lookup client and renderers behind a mux router.
type Server struct {
	logger   *log.Logger
	store    *sessionStore
	lookup   *lookup.Client
	registry *render.Registry
	theme    *theme.RendererConfig
	policy   *bluemonday.Policy
	router   *mux.Router
}

// New constructs a server. Without options it uses a default lookup client
// and a registry holding the preview and print targets.
func New(options ...Option) (*Server, error) {
	s := &Server{
		logger: log.New(os.Stderr),
		store:  newSessionStore(),
		lookup: lookup.NewClient(),
		policy: bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.registry == nil {
		registry := render.NewRegistry()

		previewRenderer, err := preview.New()
		if err != nil {
			return nil, err
		}
		if err := registry.Register(previewRenderer); err != nil {
			return nil, err
		}

		printRenderer, err := print.New()
		if err != nil {
			return nil, err
		}
		if err := registry.Register(printRenderer); err != nil {
			return nil, err
		}
		s.registry = registry
	}

	s.router = s.routes()
	return s, nil
}

// Handler returns the HTTP handler, for embedding and for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is cancelled, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/sessions", s.handleCreateSession).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}", s.handleGetSession).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods(http.MethodDelete)

	r.HandleFunc("/sessions/{id}/customer", s.handleUpdateCustomer).Methods(http.MethodPut)
	r.HandleFunc("/sessions/{id}/disposer", s.handleUpdateDisposer).Methods(http.MethodPut)

	r.HandleFunc("/sessions/{id}/advance", s.handleAdvance).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}/back", s.handleBack).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}/goto", s.handleGoTo).Methods(http.MethodPost)

	r.HandleFunc("/sessions/{id}/lookup/customer", s.handleLookupCustomer).Methods(http.MethodPost)
	r.HandleFunc("/sessions/{id}/lookup/disposer", s.handleLookupDisposer).Methods(http.MethodPost)

	r.HandleFunc("/sessions/{id}/signature", s.handleSignature).Methods(http.MethodPost)

	r.HandleFunc("/sessions/{id}/preview", s.handleRender("preview")).Methods(http.MethodGet)
	r.HandleFunc("/sessions/{id}/document", s.handleRender("print")).Methods(http.MethodGet)

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
