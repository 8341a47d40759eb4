// Package app wires the terminology function service together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/oakleafmed/medterm/internal/platform/timeouts"
	"github.com/oakleafmed/medterm/internal/services/terminology/api/httpapi"
	"github.com/oakleafmed/medterm/internal/services/terminology/generator"
	"github.com/oakleafmed/medterm/internal/services/terminology/storage"
	"github.com/oakleafmed/medterm/internal/services/terminology/storage/sqlite"
)

// Config defines the inputs for the terminology service.
type Config struct {
	HTTPAddr string
	// DBPath locates the usage-event store. Empty disables usage recording.
	DBPath string
	// OpenAIResponsesURL overrides the provider endpoint, mainly for tests.
	OpenAIResponsesURL string
	OpenAIAPIKey       string
	Model              string
}

// Server hosts the terminology HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      *sqlite.Store
}

// NewServer builds a terminology server from config.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, fmt.Errorf("http addr is required")
	}

	var store *sqlite.Store
	var usage storage.UsageStore
	if strings.TrimSpace(cfg.DBPath) != "" {
		opened, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open usage store: %w", err)
		}
		store = opened
		usage = opened
	}

	gen := generator.NewOpenAI(generator.OpenAIConfig{
		ResponsesURL: cfg.OpenAIResponsesURL,
		APIKey:       cfg.OpenAIAPIKey,
		Model:        cfg.Model,
	})

	mux := http.NewServeMux()
	httpapi.New(gen, usage, cfg.Model).Register(mux)

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	return &Server{
		httpAddr:   httpAddr,
		httpServer: httpServer,
		store:      store,
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("terminology server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("terminology function listening on %s", s.httpAddr)
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

// Close releases storage resources held by the server.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close usage store: %v", err)
		}
	}
}
