// Package terminology parses terminology command flags and launches the
// backend function service.
package terminology

import (
	"context"
	"flag"

	platformcmd "github.com/oakleafmed/medterm/internal/platform/cmd"
	"github.com/oakleafmed/medterm/internal/services/terminology/app"
)

// Config holds terminology command configuration.
type Config struct {
	Addr         string `env:"MEDTERM_TERMINOLOGY_ADDR" envDefault:"localhost:8090"`
	DBPath       string `env:"MEDTERM_TERMINOLOGY_DB"   envDefault:"medterm-terminology.db"`
	OpenAIAPIKey string `env:"MEDTERM_OPENAI_API_KEY"`
	Model        string `env:"MEDTERM_OPENAI_MODEL"     envDefault:"gpt-4o-mini"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "terminology server address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "usage store path (empty disables usage recording)")
	fs.StringVar(&cfg.Model, "model", cfg.Model, "generation model")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the terminology function service.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceTerminology, func(ctx context.Context) error {
		srv, err := app.NewServer(app.Config{
			HTTPAddr:     cfg.Addr,
			DBPath:       cfg.DBPath,
			OpenAIAPIKey: cfg.OpenAIAPIKey,
			Model:        cfg.Model,
		})
		if err != nil {
			return err
		}
		defer srv.Close()
		return srv.ListenAndServe(ctx)
	})
}
