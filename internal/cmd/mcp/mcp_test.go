package mcp

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GlossaryBaseURL != "http://localhost:8090" {
		t.Fatalf("expected default glossary base url, got %q", cfg.GlossaryBaseURL)
	}
}

func TestParseConfigFlagOverride(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-glossary-base-url", "http://backend:7000"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.GlossaryBaseURL != "http://backend:7000" {
		t.Fatalf("expected flag glossary base url, got %q", cfg.GlossaryBaseURL)
	}
}
