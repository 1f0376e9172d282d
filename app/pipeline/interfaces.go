package pipeline

import (
	"context"
	"time"

	"github.com/campusradar/radar-sync/app/database"
	"github.com/campusradar/radar-sync/app/events"
	"github.com/campusradar/radar-sync/app/geocode"
)

// SourceFetcher retrieves raw records from the event-discovery service.
type SourceFetcher interface {
	FetchUpcoming(ctx context.Context, take int, endsAfter time.Time) ([]events.RawEvent, error)
}

// CopyEnricher rewrites the prose fields of a normalized batch. The
// implementation is expected to validate the round-trip contract and return
// an error on any violation.
type CopyEnricher interface {
	EnrichEvents(ctx context.Context, batch []events.NormalizedEvent) ([]events.EnrichedEvent, error)
}

// GeoResolver resolves location labels to coordinates, indexed by input
// position, nil where the lookup failed.
type GeoResolver interface {
	Run(ctx context.Context, labels []string) []*geocode.Coordinates
}

// ArtifactWriter persists the final event set for the front end.
type ArtifactWriter interface {
	Write(finals []events.FinalEvent) error
	Path() string
}

// RunArchiver stores a completed run in the local history. Archiving is
// best-effort; a failure is logged, never fatal.
type RunArchiver interface {
	RecordRun(summary database.RunSummary, finals []events.FinalEvent) error
}
