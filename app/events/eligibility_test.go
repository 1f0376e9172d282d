package events

import (
	"testing"
	"time"
)

func TestFinalizer_ShowOnMap_TodayMatches(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2024, 2, 20, 10, 0, 0, 0, loc)
	finalizer := NewFinalizer(now, loc)

	if finalizer.TodayLabel() != "Feb 20" {
		t.Errorf("Expected today label 'Feb 20', got '%s'", finalizer.TodayLabel())
	}
	if !finalizer.ShowOnMap("Feb 20 at 5:00 PM") {
		t.Error("Event on Feb 20 should be eligible when today is Feb 20")
	}
}

func TestFinalizer_ShowOnMap_OtherDayDoesNotMatch(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2024, 2, 21, 10, 0, 0, 0, loc)
	finalizer := NewFinalizer(now, loc)

	if finalizer.ShowOnMap("Feb 20 at 5:00 PM") {
		t.Error("Event on Feb 20 should not be eligible when today is Feb 21")
	}
}

func TestFinalizer_TodayLabel_UsesCampusLocalDay(t *testing.T) {
	loc := testLocation(t)
	// 2024-02-20T00:00:00Z is still Feb 19 in Pacific time.
	now := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	finalizer := NewFinalizer(now, loc)

	if finalizer.TodayLabel() != "Feb 19" {
		t.Errorf("Expected today label 'Feb 19', got '%s'", finalizer.TodayLabel())
	}
	if finalizer.ShowOnMap("Feb 20 at 5:00 PM") {
		t.Error("Event on Feb 20 should not be eligible while it is still Feb 19 on campus")
	}
}

func TestFinalizer_Run_OverridesEnrichmentFlag(t *testing.T) {
	loc := testLocation(t)
	now := time.Date(2024, 2, 20, 10, 0, 0, 0, loc)
	finalizer := NewFinalizer(now, loc)

	events := []FinalEvent{
		{EnrichedEvent: EnrichedEvent{EventName: "Today", Time: "Feb 20 at 5:00 PM"}, ShowOnMap: false},
		{EnrichedEvent: EnrichedEvent{EventName: "Tomorrow", Time: "Feb 21 at 5:00 PM"}, ShowOnMap: true},
	}

	result := finalizer.Run(events)

	if !result[0].ShowOnMap {
		t.Error("Today's event should be flagged for the map regardless of its prior value")
	}
	if result[1].ShowOnMap {
		t.Error("Tomorrow's event should not be flagged for the map regardless of its prior value")
	}
}
