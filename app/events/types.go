package events

// RawEvent is an unprocessed record as returned by the event-discovery
// service. The producer guarantees nothing: every field may be absent.
type RawEvent struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	StartsOn    string `json:"startsOn"`
	ImagePath   string `json:"imagePath"`
}

// NormalizedEvent is the canonical intermediate representation. Time is a
// display string in campus-local civil time ("Jan 2 at 3:04 PM") and
// ImageURL is always populated, falling back to the configured default.
type NormalizedEvent struct {
	EventName    string `json:"eventName"`
	Description  string `json:"description"`
	LocationName string `json:"locationName"`
	Time         string `json:"time"`
	ImageURL     string `json:"imageUrl"`
}

// EnrichedEvent is a NormalizedEvent after copy enrichment: Description and
// LocationName are rewritten, CoolFactor is new. EventName and Time must be
// echoed unchanged; ValidateEnrichment enforces that.
type EnrichedEvent struct {
	EventName    string `json:"eventName"`
	Description  string `json:"description"`
	LocationName string `json:"locationName"`
	Time         string `json:"time"`
	ImageURL     string `json:"imageUrl"`
	CoolFactor   string `json:"coolFactor"`
}

// FinalEvent is the shape written to the artifact. Latitude and Longitude
// are pointers so a failed lookup serializes as JSON null.
type FinalEvent struct {
	EnrichedEvent
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	ShowOnMap bool     `json:"showOnMap"`
}
