// Package main wires the terminology function service process lifecycle.
//
// It reads config from flags/env and serves term explanations until shutdown.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	terminologycmd "github.com/oakleafmed/medterm/internal/cmd/terminology"
)

func main() {
	cfg, err := terminologycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[TERMINOLOGY] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := terminologycmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
