// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tollington/choirseed/internal/config"
	"github.com/tollington/choirseed/internal/fetch"
	"github.com/tollington/choirseed/internal/sanity"
	"github.com/tollington/choirseed/internal/seeder"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "choirseed - Tollington Gospel Choir content seeder\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Commands:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  content     Seed categories, authors, and blog posts\n")
		_, _ = fmt.Fprintf(os.Stderr, "  events      Seed choir events\n")
		_, _ = fmt.Fprintf(os.Stderr, "  settings    Create or update the site settings document\n")
		_, _ = fmt.Fprintf(os.Stderr, "  check       Report what the content store holds (read-only)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  all         Run content, events, and settings in order\n")
		_, _ = fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  SANITY_TOKEN                Write token (required for all commands except check)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHOIR_SANITY_PROJECT_ID     Content store project id (default: 5cnyv1t8)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHOIR_SANITY_DATASET        Dataset name (default: production)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHOIR_SANITY_API_VERSION    API version date (default: 2023-05-03)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHOIR_LOG_LEVEL             Log level: debug|info|warn|error (default: info)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHOIR_HTTP_TIMEOUT          HTTP request timeout in seconds (default: 30)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  CHOIR_RATE_LIMIT            API requests per second (default: 10)\n")
	}

	flag.Parse()

	// Handle -h/-help flag
	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	// Handle -v/-version flag
	if *showVersion {
		_, _ = fmt.Printf("choirseed %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	command := flag.Arg(0)
	if command == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(command); err != nil {
		slog.Error("seeding failed", "command", command, "error", err)
		os.Exit(1)
	}
}

func run(command string) error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Every command except the read-only check writes to the store.
	if command != "check" && !cfg.HasToken() {
		_, _ = fmt.Fprintln(os.Stderr, "SANITY_TOKEN is not set; get a write token from the project's API settings and export it, e.g.:")
		_, _ = fmt.Fprintln(os.Stderr, "  export SANITY_TOKEN=sk...")
		return fmt.Errorf("command %q requires a write token", command)
	}

	logger.Info("starting choirseed",
		"version", appVersion,
		"command", command,
		"project", cfg.ProjectID,
		"dataset", cfg.Dataset)

	client := sanity.New(cfg, logger)
	fetcher := fetch.NewHTTPFetcher(time.Duration(cfg.HTTPTimeout) * time.Second)
	s := seeder.New(client, fetcher, logger)

	ctx := context.Background()

	switch command {
	case "content":
		return s.SeedContent(ctx)
	case "events":
		return s.SeedEvents(ctx)
	case "settings":
		return s.InitSiteSettings(ctx)
	case "check":
		return s.Check(ctx)
	case "all":
		if err := s.SeedContent(ctx); err != nil {
			return err
		}
		if err := s.SeedEvents(ctx); err != nil {
			return err
		}
		return s.InitSiteSettings(ctx)
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}
