// Package artifact serializes the final event set for the map front end.
package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/campusradar/radar-sync/app/events"
)

type Writer struct {
	path string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

type document struct {
	Events []events.FinalEvent `json:"events"`
}

// Write serializes the events as {"events": [...]}, pretty-printed, to the
// configured path. The document is written to a temporary file in the same
// directory and renamed into place, so a crash mid-write never leaves the
// front end with a truncated artifact.
func (w *Writer) Write(finals []events.FinalEvent) error {
	if finals == nil {
		finals = []events.FinalEvent{}
	}

	data, err := json.MarshalIndent(document{Events: finals}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".events-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), w.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to move artifact into place: %w", err)
	}

	return nil
}

func (w *Writer) Path() string {
	return w.path
}
