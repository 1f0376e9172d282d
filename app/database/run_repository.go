package database

import (
	"fmt"
	"time"

	"github.com/campusradar/radar-sync/app/events"
)

// RunSummary captures the counters of a completed pipeline run.
type RunSummary struct {
	StartedAt     time.Time
	FinishedAt    time.Time
	FetchedCount  int
	DroppedCount  int
	GeocodedCount int
	OutputPath    string
}

// RunRepository archives completed runs and their final event sets.
type RunRepository struct {
	db *DB
}

func NewRunRepository(db *DB) *RunRepository {
	return &RunRepository{db: db}
}

// RecordRun stores a run summary together with its final events in one
// transaction.
func (r *RunRepository) RecordRun(summary RunSummary, finals []events.FinalEvent) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO runs (
			started_at, finished_at, fetched_count, dropped_count,
			geocoded_count, output_path
		) VALUES (?, ?, ?, ?, ?, ?)
	`, summary.StartedAt.UTC(), summary.FinishedAt.UTC(), summary.FetchedCount,
		summary.DroppedCount, summary.GeocodedCount, summary.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get run ID: %w", err)
	}

	for _, ev := range finals {
		_, err := tx.Exec(`
			INSERT INTO run_events (
				run_id, event_name, cool_factor, description, location_name,
				event_time, image_url, latitude, longitude, show_on_map
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, runID, ev.EventName, ev.CoolFactor, ev.Description, ev.LocationName,
			ev.Time, ev.ImageURL, ev.Latitude, ev.Longitude, ev.ShowOnMap)
		if err != nil {
			return fmt.Errorf("failed to insert run event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit run: %w", err)
	}

	return nil
}

// GetRunCount returns the number of archived runs.
func (r *RunRepository) GetRunCount() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count runs: %w", err)
	}
	return count, nil
}

// GetRunEventCount returns the number of events archived for a run.
func (r *RunRepository) GetRunEventCount(runID int64) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM run_events WHERE run_id = ?`, runID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count run events: %w", err)
	}
	return count, nil
}
