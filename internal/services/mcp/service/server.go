// Package service hosts the MCP server for terminology lookups.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/oakleafmed/medterm/internal/glossary"
	"github.com/oakleafmed/medterm/internal/services/mcp/domain"
)

const (
	serverName    = "medterm"
	serverVersion = "0.1.0"
)

// Config configures the MCP server.
type Config struct {
	// GlossaryBaseURL is the root of the terminology backend.
	GlossaryBaseURL string
}

// Server hosts the MCP server over stdio.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server that resolves terms through the
// terminology backend function.
func New(cfg Config) (*Server, error) {
	baseURL := strings.TrimSpace(cfg.GlossaryBaseURL)
	if baseURL == "" {
		return nil, fmt.Errorf("glossary base url is required")
	}
	return newServer(glossary.New(glossary.Config{BaseURL: baseURL}))
}

func newServer(explainer domain.TermExplainer) (*Server, error) {
	if explainer == nil {
		return nil, errors.New("term explainer is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(mcpServer, domain.ExplainTermTool(), domain.ExplainTermHandler(explainer))

	return &Server{mcpServer: mcpServer}, nil
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil || s.mcpServer == nil {
		return errors.New("mcp server is not initialized")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, &mcp.StdioTransport{})
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	return err
}
