package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/campusradar/radar-sync/app/artifact"
	"github.com/campusradar/radar-sync/app/cfg"
	"github.com/campusradar/radar-sync/app/config"
	"github.com/campusradar/radar-sync/app/database"
	"github.com/campusradar/radar-sync/app/engage"
	"github.com/campusradar/radar-sync/app/events"
	"github.com/campusradar/radar-sync/app/geocode"
	"github.com/campusradar/radar-sync/app/llm"
	"github.com/campusradar/radar-sync/app/pipeline"
)

func main() {
	// A local .env is a convenience for development; in deployment the
	// credentials come from the process environment.
	_ = godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting campus radar sync", "version", appCfg.Version)

	campus, err := config.Load(appCfg.CampusConfig)
	if err != nil {
		slog.Error("Failed to load campus configuration", "path", appCfg.CampusConfig, "error", err)
		os.Exit(1)
	}

	loc, err := time.LoadLocation(campus.Campus.Timezone)
	if err != nil {
		slog.Error("Failed to load campus timezone", "timezone", campus.Campus.Timezone, "error", err)
		os.Exit(1)
	}

	slog.Info("Campus source configured",
		"campus", campus.Campus.Name,
		"timezone", campus.Campus.Timezone,
		"discovery_url", campus.Discovery.URL,
		"take", campus.Discovery.Take)

	httpClient := &http.Client{Timeout: time.Duration(appCfg.HTTPTimeout) * time.Second}
	// Enrichment carries the whole batch through a language model; it gets
	// a far longer deadline than the per-call discovery and geocode requests.
	llmClient := &http.Client{Timeout: time.Duration(appCfg.LLMTimeout) * time.Second}

	fetcher := engage.NewClient(httpClient, campus.Discovery.URL, appCfg.UserAgent)
	normalizer := events.NewNormalizer(loc, campus.Images.CDNTemplate, campus.Images.FallbackURL)
	sanitizer := events.NewSanitizer()
	enricher := llm.NewClient(llmClient, appCfg.LLMBaseURL, appCfg.LLMAPIKey, appCfg.LLMModel, appCfg.LLMMaxTokens)
	locator := geocode.NewClient(httpClient, geocode.DefaultEndpoint, appCfg.MapsAPIKey, campus.Campus.Name)
	resolver := geocode.NewResolver(locator, appCfg.WorkerCount, time.Duration(appCfg.GeocodeTimeout)*time.Second)
	finalizer := events.NewFinalizer(time.Now(), loc)
	writer := artifact.NewWriter(appCfg.OutputPath)

	var archiver pipeline.RunArchiver
	if appCfg.ArchiveDBPath != "" {
		db, err := database.NewConnection(appCfg.ArchiveDBPath)
		if err != nil {
			slog.Warn("Run archive unavailable, continuing without it", "error", err)
		} else {
			defer db.Close()
			version, dirty, err := database.RunMigrations(db)
			if err != nil {
				slog.Warn("Failed to migrate run archive, continuing without it", "error", err)
			} else {
				slog.Debug("Run archive ready", "schema_version", version, "dirty", dirty)
				archiver = database.NewRunRepository(db)
			}
		}
	}

	runner := pipeline.NewRunner(fetcher, normalizer, sanitizer, enricher,
		resolver, finalizer, writer, archiver, campus.Discovery.Take)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil {
		slog.Error("Sync run failed", "error", err)
		os.Exit(1)
	}
}
