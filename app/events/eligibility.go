package events

import (
	"strings"
	"time"
)

// todayLayout matches the date portion of displayLayout.
const todayLayout = "Jan 2"

// Finalizer recomputes map eligibility after enrichment. The flag is a pure
// function of the formatted time string and the campus-local "today" label,
// so calendar correctness never depends on the text-generation service.
type Finalizer struct {
	todayLabel string
}

func NewFinalizer(now time.Time, loc *time.Location) *Finalizer {
	return &Finalizer{
		todayLabel: now.In(loc).Format(todayLayout),
	}
}

func (f *Finalizer) TodayLabel() string {
	return f.todayLabel
}

// Run overwrites ShowOnMap on every event. Whatever the enrichment stage
// produced for the flag is discarded.
func (f *Finalizer) Run(events []FinalEvent) []FinalEvent {
	for i := range events {
		events[i].ShowOnMap = f.ShowOnMap(events[i].Time)
	}
	return events
}

func (f *Finalizer) ShowOnMap(timeLabel string) bool {
	return strings.Contains(timeLabel, f.todayLabel)
}
