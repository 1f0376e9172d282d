package events

import (
	"fmt"
	"log/slog"
	"time"
)

// startsOnLayout matches the discovery API's timestamp after truncation to
// 19 characters, which drops sub-second and timezone suffixes.
const startsOnLayout = "2006-01-02T15:04:05"

// displayLayout formats campus-local civil time. Go's "2" and "3" verbs
// suppress the leading zero on the day and hour without touching minutes.
const displayLayout = "Jan 2 at 3:04 PM"

// Normalizer converts raw discovery records into the canonical intermediate
// representation. It is deterministic and side-effect free.
type Normalizer struct {
	loc         *time.Location
	cdnTemplate string
	fallbackURL string
}

func NewNormalizer(loc *time.Location, cdnTemplate, fallbackURL string) *Normalizer {
	return &Normalizer{
		loc:         loc,
		cdnTemplate: cdnTemplate,
		fallbackURL: fallbackURL,
	}
}

// Run maps each raw event to a normalized one, preserving input order.
// Records whose startsOn cannot be parsed are dropped; the output is never
// longer than the input.
func (n *Normalizer) Run(raw []RawEvent) []NormalizedEvent {
	normalized := make([]NormalizedEvent, 0, len(raw))
	for _, ev := range raw {
		startsOn, err := n.parseStartsOn(ev.StartsOn)
		if err != nil {
			slog.Debug("Dropping event with unparseable startsOn", "event", ev.Name, "starts_on", ev.StartsOn, "error", err)
			continue
		}

		normalized = append(normalized, NormalizedEvent{
			EventName:    ev.Name,
			Description:  ev.Description,
			LocationName: ev.Location,
			Time:         n.formatLocal(startsOn),
			ImageURL:     n.resolveImageURL(ev.ImagePath),
		})
	}
	return normalized
}

func (n *Normalizer) parseStartsOn(value string) (time.Time, error) {
	if len(value) < len(startsOnLayout) {
		return time.Time{}, fmt.Errorf("timestamp too short: %q", value)
	}
	t, err := time.ParseInLocation(startsOnLayout, value[:len(startsOnLayout)], time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp: %w", err)
	}
	return t, nil
}

func (n *Normalizer) formatLocal(t time.Time) string {
	return t.In(n.loc).Format(displayLayout)
}

func (n *Normalizer) resolveImageURL(imagePath string) string {
	if imagePath == "" {
		return n.fallbackURL
	}
	return fmt.Sprintf(n.cdnTemplate, imagePath)
}
