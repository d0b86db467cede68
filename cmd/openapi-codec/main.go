// Package main provides the entry point for the OpenAPI codec CLI.
package main

import (
	"os"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/openapi-codec/internal/cli"
	"github.com/GabrielNunesIT/openapi-codec/internal/config"
)

func main() {
	// Logs go to stderr so that encoded output can be piped from stdout.
	log := logger.NewConsoleLogger(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Errorf("Error loading configuration: %v", err)
		os.Exit(1)
	}

	app := cli.New(log, cfg)
	if err := app.Execute(); err != nil {
		log.Errorf("Error: %v", err)
		os.Exit(1)
	}
}
