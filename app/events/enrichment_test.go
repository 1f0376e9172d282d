package events

import (
	"testing"
)

func enrichmentInput() []NormalizedEvent {
	return []NormalizedEvent{
		{EventName: "CS Night", Time: "Feb 19 at 5:00 PM"},
		{EventName: "Career Fair", Time: "Feb 20 at 10:00 AM"},
	}
}

func TestValidateEnrichment_ConformingOutput(t *testing.T) {
	out := []EnrichedEvent{
		{EventName: "CS Night", Time: "Feb 19 at 5:00 PM", CoolFactor: "Free Pizza!"},
		{EventName: "Career Fair", Time: "Feb 20 at 10:00 AM", CoolFactor: "Meet Recruiters"},
	}

	if err := ValidateEnrichment(enrichmentInput(), out); err != nil {
		t.Errorf("Conforming output should validate, got error: %v", err)
	}
}

func TestValidateEnrichment_DroppedRecord(t *testing.T) {
	out := []EnrichedEvent{
		{EventName: "CS Night", Time: "Feb 19 at 5:00 PM"},
	}

	if err := ValidateEnrichment(enrichmentInput(), out); err == nil {
		t.Error("Expected error when the enricher drops a record")
	}
}

func TestValidateEnrichment_AddedRecord(t *testing.T) {
	out := []EnrichedEvent{
		{EventName: "CS Night", Time: "Feb 19 at 5:00 PM"},
		{EventName: "Career Fair", Time: "Feb 20 at 10:00 AM"},
		{EventName: "Hallucinated Gala", Time: "Feb 21 at 8:00 PM"},
	}

	if err := ValidateEnrichment(enrichmentInput(), out); err == nil {
		t.Error("Expected error when the enricher invents a record")
	}
}

func TestValidateEnrichment_ReorderedRecords(t *testing.T) {
	out := []EnrichedEvent{
		{EventName: "Career Fair", Time: "Feb 20 at 10:00 AM"},
		{EventName: "CS Night", Time: "Feb 19 at 5:00 PM"},
	}

	if err := ValidateEnrichment(enrichmentInput(), out); err == nil {
		t.Error("Expected error when the enricher reorders records")
	}
}

func TestValidateEnrichment_AlteredTime(t *testing.T) {
	out := []EnrichedEvent{
		{EventName: "CS Night", Time: "Feb 19 at 5:01 PM"},
		{EventName: "Career Fair", Time: "Feb 20 at 10:00 AM"},
	}

	if err := ValidateEnrichment(enrichmentInput(), out); err == nil {
		t.Error("Expected error when the enricher rewrites a time string")
	}
}

func TestValidateEnrichment_EmptyBatch(t *testing.T) {
	if err := ValidateEnrichment(nil, nil); err != nil {
		t.Errorf("Empty batch should validate, got error: %v", err)
	}
}
