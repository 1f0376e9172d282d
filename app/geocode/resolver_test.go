package geocode

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

// stubLocator resolves labels from a fixed map; unknown labels error.
type stubLocator struct {
	mu      sync.Mutex
	known   map[string]Coordinates
	calls   []string
	maxSeen int
	active  int
}

func (s *stubLocator) Lookup(ctx context.Context, label string) (*Coordinates, error) {
	s.mu.Lock()
	s.calls = append(s.calls, label)
	s.active++
	if s.active > s.maxSeen {
		s.maxSeen = s.active
	}
	s.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	s.mu.Lock()
	s.active--
	s.mu.Unlock()

	if label == "error-hall" {
		return nil, fmt.Errorf("service unavailable")
	}
	coords, ok := s.known[label]
	if !ok {
		return nil, nil
	}
	return &coords, nil
}

func TestResolver_Run_ResultsIndexedByInputPosition(t *testing.T) {
	locator := &stubLocator{known: map[string]Coordinates{
		"A": {Latitude: 1, Longitude: -1},
		"B": {Latitude: 2, Longitude: -2},
		"C": {Latitude: 3, Longitude: -3},
	}}
	resolver := NewResolver(locator, 3, time.Second)

	results := resolver.Run(context.Background(), []string{"C", "A", "B"})

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for i, want := range []float64{3, 1, 2} {
		if results[i] == nil {
			t.Fatalf("Expected coordinates at index %d, got nil", i)
		}
		if results[i].Latitude != want {
			t.Errorf("Expected latitude %f at index %d, got %f", want, i, results[i].Latitude)
		}
	}
}

func TestResolver_Run_FailureIsolation(t *testing.T) {
	locator := &stubLocator{known: map[string]Coordinates{
		"Student Union": {Latitude: 36.1086, Longitude: -115.1447},
	}}
	resolver := NewResolver(locator, 2, time.Second)

	results := resolver.Run(context.Background(), []string{"Student Union", "error-hall", "Nowhere Hall"})

	if results[0] == nil {
		t.Error("Successful lookup should not be affected by failures in the batch")
	}
	if results[1] != nil {
		t.Errorf("Errored lookup should yield nil coordinates, got %+v", results[1])
	}
	if results[2] != nil {
		t.Errorf("Empty lookup should yield nil coordinates, got %+v", results[2])
	}
}

func TestResolver_Run_BoundedConcurrency(t *testing.T) {
	locator := &stubLocator{known: map[string]Coordinates{}}
	resolver := NewResolver(locator, 2, time.Second)

	labels := make([]string, 10)
	for i := range labels {
		labels[i] = fmt.Sprintf("building-%d", i)
	}

	resolver.Run(context.Background(), labels)

	if len(locator.calls) != 10 {
		t.Errorf("Expected 10 lookups, got %d", len(locator.calls))
	}
	if locator.maxSeen > 2 {
		t.Errorf("Expected at most 2 concurrent lookups, saw %d", locator.maxSeen)
	}
}

func TestResolver_Run_EmptyBatch(t *testing.T) {
	locator := &stubLocator{}
	resolver := NewResolver(locator, 4, time.Second)

	results := resolver.Run(context.Background(), nil)

	if len(results) != 0 {
		t.Errorf("Expected empty results for empty batch, got %d", len(results))
	}
	if len(locator.calls) != 0 {
		t.Errorf("Expected no lookups for empty batch, got %d", len(locator.calls))
	}
}

func TestResolver_Run_CancelledContext(t *testing.T) {
	locator := &stubLocator{known: map[string]Coordinates{}}
	resolver := NewResolver(locator, 1, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := resolver.Run(ctx, []string{"A", "B", "C"})

	// Cancellation must not panic or block; remaining slots stay nil.
	if len(results) != 3 {
		t.Errorf("Expected 3 result slots, got %d", len(results))
	}
}
