package events

import (
	"fmt"
)

// ValidateEnrichment checks the enrichment round-trip contract: the service
// must return exactly one record per input record, with eventName and time
// echoed byte-for-byte at the same position. Reordering counts as a
// violation; a conforming enricher has no reason to reorder, and positional
// matching stays unambiguous when two events share a name.
func ValidateEnrichment(in []NormalizedEvent, out []EnrichedEvent) error {
	if len(out) != len(in) {
		return fmt.Errorf("enrichment returned %d events, expected %d", len(out), len(in))
	}

	for i := range in {
		if out[i].EventName != in[i].EventName {
			return fmt.Errorf("enrichment altered eventName at index %d: got %q, expected %q", i, out[i].EventName, in[i].EventName)
		}
		if out[i].Time != in[i].Time {
			return fmt.Errorf("enrichment altered time at index %d (%q): got %q, expected %q", i, in[i].EventName, out[i].Time, in[i].Time)
		}
	}

	return nil
}
