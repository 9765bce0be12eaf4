package mapview

import "github.com/mapyourmemory/memorymap/models"

// Projection selects the map surface. Switching is presentation-only and
// never refetches pins.
type Projection string

const (
	ProjectionMercator Projection = "mercator"
	ProjectionGlobe    Projection = "globe"
)

// DefaultMarkerColor is used for pins whose memory has no prompt (and so no
// category color).
const DefaultMarkerColor = "#007AFF"

// State is the whole map view model. It is treated as immutable: Reduce
// returns a fresh State and rendering is a pure function of it.
type State struct {
	Pins       []models.MemoryRecord
	Filter     string
	Projection Projection
}

func NewState() State {
	return State{
		Pins:       []models.MemoryRecord{},
		Projection: ProjectionMercator,
	}
}

// Event is a map view state transition request.
type Event interface {
	isEvent()
}

// PinsLoaded replaces the pin set after the initial fetch.
type PinsLoaded struct {
	Pins []models.MemoryRecord
}

// PinAdded prepends one pin after a successful create. The pin is the
// server's joined response, so it renders identically to a listed one.
type PinAdded struct {
	Pin models.MemoryRecord
}

// FilterChanged sets the free-text filter; empty text matches everything.
type FilterChanged struct {
	Text string
}

// ProjectionChanged toggles flat vs globe.
type ProjectionChanged struct {
	Projection Projection
}

func (PinsLoaded) isEvent()        {}
func (PinAdded) isEvent()          {}
func (FilterChanged) isEvent()     {}
func (ProjectionChanged) isEvent() {}
