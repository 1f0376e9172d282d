package geocode

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Locator is the single-lookup contract the resolver fans out over.
type Locator interface {
	Lookup(ctx context.Context, label string) (*Coordinates, error)
}

// Resolver runs independent lookups concurrently. Workers pull indexes from
// a channel and each writes only its own slot of the preallocated result
// slice, so no locking is needed. A failed or timed-out lookup leaves its
// slot nil and never affects the rest of the batch.
type Resolver struct {
	locator     Locator
	workerCount int
	timeout     time.Duration
}

func NewResolver(locator Locator, workerCount int, timeout time.Duration) *Resolver {
	if workerCount < 1 {
		workerCount = 1
	}
	return &Resolver{
		locator:     locator,
		workerCount: workerCount,
		timeout:     timeout,
	}
}

// Run resolves every label and returns coordinates indexed by input
// position, nil where the lookup failed or found nothing.
func (r *Resolver) Run(ctx context.Context, labels []string) []*Coordinates {
	results := make([]*Coordinates, len(labels))
	if len(labels) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	workerCount := r.workerCount
	if workerCount > len(labels) {
		workerCount = len(labels)
	}

	for w := 0; w < workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.lookup(ctx, labels[i])
			}
		}()
	}

	for i := range labels {
		select {
		case jobs <- i:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return results
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (r *Resolver) lookup(ctx context.Context, label string) *Coordinates {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	coords, err := r.locator.Lookup(callCtx, label)
	if err != nil {
		slog.Warn("Geocode lookup failed", "label", label, "error", err)
		return nil
	}
	if coords == nil {
		slog.Debug("Geocode lookup found no places", "label", label)
		return nil
	}
	return coords
}
