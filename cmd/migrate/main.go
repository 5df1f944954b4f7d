package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"parking-settlement/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

type migrateConfig struct {
	DB     config.DBConfig
	DevURL string `envconfig:"ATLAS_DEV_URL" default:"docker://postgres/17/dev"`
	Schema string `envconfig:"ATLAS_SCHEMA_FILE" default:"file://migrations/001_initial_schema.sql"`
}

// migrate applies the declarative schema with the atlas CLI, which must be on PATH.
func main() {
	dryRun := flag.Bool("dry-run", false, "print the planned changes without applying them")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var cfg migrateConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", "atlas")
	if err != nil {
		logger.Error("failed to init atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := client.SchemaApply(ctx, &atlasexec.SchemaApplyParams{
		URL:         cfg.DB.BuildDSN(),
		To:          cfg.Schema,
		DevURL:      cfg.DevURL,
		DryRun:      *dryRun,
		AutoApprove: true,
	})
	if err != nil {
		logger.Error("schema apply failed", "error", err)
		os.Exit(1)
	}

	for _, stmt := range res.Changes.Pending {
		logger.Info("pending", "sql", stmt)
	}
	logger.Info("schema applied", "statements", len(res.Changes.Applied), "dry_run", *dryRun)
}
