// Package web parses web command flags and launches the lookup page service.
package web

import (
	"context"
	"flag"
	"time"

	platformcmd "github.com/oakleafmed/medterm/internal/platform/cmd"
	"github.com/oakleafmed/medterm/internal/services/web"
)

// Config holds web command configuration.
type Config struct {
	Addr            string        `env:"MEDTERM_WEB_ADDR"           envDefault:"localhost:8080"`
	GlossaryBaseURL string        `env:"MEDTERM_GLOSSARY_BASE_URL"  envDefault:"http://localhost:8090"`
	LookupTimeout   time.Duration `env:"MEDTERM_LOOKUP_TIMEOUT"     envDefault:"30s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "web server address")
	fs.StringVar(&cfg.GlossaryBaseURL, "glossary-base-url", cfg.GlossaryBaseURL, "terminology backend base URL")
	fs.DurationVar(&cfg.LookupTimeout, "lookup-timeout", cfg.LookupTimeout, "per-lookup backend timeout")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web service.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		srv, err := web.NewServer(web.Config{
			HTTPAddr:        cfg.Addr,
			GlossaryBaseURL: cfg.GlossaryBaseURL,
			LookupTimeout:   cfg.LookupTimeout,
		})
		if err != nil {
			return err
		}
		return srv.ListenAndServe(ctx)
	})
}
