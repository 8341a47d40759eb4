// Package mcp parses MCP command flags and launches the stdio server.
package mcp

import (
	"context"
	"flag"

	platformcmd "github.com/oakleafmed/medterm/internal/platform/cmd"
	"github.com/oakleafmed/medterm/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	GlossaryBaseURL string `env:"MEDTERM_GLOSSARY_BASE_URL" envDefault:"http://localhost:8090"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.GlossaryBaseURL, "glossary-base-url", cfg.GlossaryBaseURL, "terminology backend base URL")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter on stdio.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		srv, err := service.New(service.Config{GlossaryBaseURL: cfg.GlossaryBaseURL})
		if err != nil {
			return err
		}
		return srv.Serve(ctx)
	})
}
