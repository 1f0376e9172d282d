// Package pipeline wires the stages of a single sync run: fetch, normalize,
// sanitize, enrich, geocode, finalize, write, archive.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/campusradar/radar-sync/app/database"
	"github.com/campusradar/radar-sync/app/events"
)

type Runner struct {
	fetcher    SourceFetcher
	normalizer *events.Normalizer
	sanitizer  *events.Sanitizer
	enricher   CopyEnricher
	resolver   GeoResolver
	finalizer  *events.Finalizer
	writer     ArtifactWriter
	archiver   RunArchiver // nil disables archiving
	take       int

	// now is swappable for tests.
	now func() time.Time
}

func NewRunner(fetcher SourceFetcher, normalizer *events.Normalizer, sanitizer *events.Sanitizer,
	enricher CopyEnricher, resolver GeoResolver, finalizer *events.Finalizer,
	writer ArtifactWriter, archiver RunArchiver, take int) *Runner {
	return &Runner{
		fetcher:    fetcher,
		normalizer: normalizer,
		sanitizer:  sanitizer,
		enricher:   enricher,
		resolver:   resolver,
		finalizer:  finalizer,
		writer:     writer,
		archiver:   archiver,
		take:       take,
		now:        time.Now,
	}
}

// Run executes one full pipeline pass. Fetch and enrichment failures abort
// the run with no artifact written; geocoding failures degrade to null
// coordinates per event.
func (r *Runner) Run(ctx context.Context) error {
	started := r.now()

	raw, err := r.fetcher.FetchUpcoming(ctx, r.take, started)
	if err != nil {
		return fmt.Errorf("source fetch failed: %w", err)
	}
	slog.Debug("Fetched raw events", "count", len(raw))

	normalized := r.normalizer.Run(raw)
	dropped := len(raw) - len(normalized)

	var finals []events.FinalEvent
	geocoded := 0

	if len(normalized) > 0 {
		sanitized := r.sanitizer.Run(normalized)

		enriched, err := r.enricher.EnrichEvents(ctx, sanitized)
		if err != nil {
			return fmt.Errorf("copy enrichment failed: %w", err)
		}

		labels := make([]string, len(enriched))
		for i, ev := range enriched {
			labels[i] = ev.LocationName
		}
		coords := r.resolver.Run(ctx, labels)

		finals = make([]events.FinalEvent, len(enriched))
		for i, ev := range enriched {
			finals[i] = events.FinalEvent{EnrichedEvent: ev}
			if coords[i] != nil {
				lat, lng := coords[i].Latitude, coords[i].Longitude
				finals[i].Latitude = &lat
				finals[i].Longitude = &lng
				geocoded++
			}
		}

		finals = r.finalizer.Run(finals)
	}

	if err := r.writer.Write(finals); err != nil {
		return fmt.Errorf("artifact write failed: %w", err)
	}

	onMap := 0
	for _, ev := range finals {
		if ev.ShowOnMap {
			onMap++
		}
	}

	finished := r.now()

	if r.archiver != nil {
		summary := database.RunSummary{
			StartedAt:     started,
			FinishedAt:    finished,
			FetchedCount:  len(raw),
			DroppedCount:  dropped,
			GeocodedCount: geocoded,
			OutputPath:    r.writer.Path(),
		}
		if err := r.archiver.RecordRun(summary, finals); err != nil {
			slog.Warn("Failed to archive run", "error", err)
		}
	}

	slog.Info("Sync run completed",
		"duration", finished.Sub(started).String(),
		"fetched", len(raw),
		"dropped", dropped,
		"geocoded", geocoded,
		"on_map", onMap,
		"today", r.finalizer.TodayLabel(),
		"output", r.writer.Path())

	return nil
}
