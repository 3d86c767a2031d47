// Package main implements the entry point for the recipe-ai API server, which
// suggests meals for a list of ingredients and produces cooking instructions
// using the Gemini API.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
)

// main is the entry point for the recipe-ai server.
// It loads configuration, sets up logging, wires dependencies and serves HTTP
// until interrupted.
func main() {
	if err := run(context.Background()); err != nil {
		log.Printf("recipe-ai server: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, logger, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
