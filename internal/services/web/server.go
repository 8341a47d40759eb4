// Package web serves the medical term lookup page.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/oakleafmed/medterm/internal/glossary"
	"github.com/oakleafmed/medterm/internal/platform/timeouts"
	"github.com/oakleafmed/medterm/internal/services/web/routepath"
	"github.com/oakleafmed/medterm/internal/services/web/static"
)

// Config defines the inputs for the web service.
type Config struct {
	HTTPAddr string
	// GlossaryBaseURL is the root of the terminology backend.
	GlossaryBaseURL string
	// LookupTimeout bounds one backend call. Defaults to timeouts.Lookup.
	LookupTimeout time.Duration
}

// Server hosts the lookup page over HTTP.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	lookups    *lookupService
}

// NewServer builds a web server from config.
func NewServer(cfg Config) (*Server, error) {
	baseURL := strings.TrimSpace(cfg.GlossaryBaseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("glossary base url is required")
	}
	gateway := glossary.New(glossary.Config{
		BaseURL: baseURL,
		Timeout: cfg.LookupTimeout,
	})
	return newServer(cfg.HTTPAddr, gateway)
}

// NewHandler builds the web service's HTTP handler around the provided
// gateway. It exists so tests can exercise routing without a real backend.
func NewHandler(gateway LookupGateway) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, newLookupService(gateway))
	return mux
}

func newServer(httpAddr string, gateway LookupGateway) (*Server, error) {
	httpAddr = strings.TrimSpace(httpAddr)
	if httpAddr == "" {
		return nil, fmt.Errorf("http addr is required")
	}
	if gateway == nil {
		return nil, fmt.Errorf("lookup gateway is required")
	}

	lookups := newLookupService(gateway)
	mux := http.NewServeMux()
	registerRoutes(mux, lookups)

	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           mux,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		lookups: lookups,
	}, nil
}

func registerRoutes(mux *http.ServeMux, lookups *lookupService) {
	s := &Server{lookups: lookups}
	mux.HandleFunc("GET "+routepath.Root, s.handleLookupPage)
	mux.HandleFunc("POST "+routepath.Lookup, s.handleLookupSubmit)
	mux.HandleFunc("GET "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.Handle("GET "+routepath.StaticPrefix,
		http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.Files)))
}

// ListenAndServe runs the HTTP server until the context ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
