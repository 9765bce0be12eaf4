package mapview

import (
	"strings"

	"github.com/mapyourmemory/memorymap/models"
)

// Marker is one rendered map pin.
type Marker struct {
	Longitude float64
	Latitude  float64
	Color     string
	Popup     Popup
}

// Popup holds the content shown when a marker is opened.
type Popup struct {
	MediaURL    string
	Name        string
	Place       string
	Description string
	Date        string
	PromptText  string
}

// Markers projects the state to the visible marker set: pins matching the
// filter, skipping pins without coordinates. Same state in, same markers
// out — redraws are idempotent.
func Markers(s State, apiBaseURL string) []Marker {
	markers := []Marker{}
	for _, pin := range s.Pins {
		if !matchesFilter(pin, s.Filter) {
			continue
		}
		if pin.Latitude == nil || pin.Longitude == nil {
			continue
		}
		color := DefaultMarkerColor
		if pin.CategoryColor != nil && *pin.CategoryColor != "" {
			color = *pin.CategoryColor
		}
		markers = append(markers, Marker{
			Longitude: *pin.Longitude,
			Latitude:  *pin.Latitude,
			Color:     color,
			Popup: Popup{
				MediaURL:    apiBaseURL + pin.FileURL,
				Name:        pin.MemoryName,
				Place:       pin.Place,
				Description: deref(pin.Description),
				Date:        pin.MemoryDate.Format("Jan 2, 2006"),
				PromptText:  deref(pin.PromptText),
			},
		})
	}
	return markers
}

// matchesFilter reports whether the filter substring appears in the pin's
// name, description, or prompt text, case-insensitively.
func matchesFilter(pin models.MemoryRecord, filter string) bool {
	if filter == "" {
		return true
	}
	ft := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(pin.MemoryName), ft) ||
		strings.Contains(strings.ToLower(deref(pin.Description)), ft) ||
		strings.Contains(strings.ToLower(deref(pin.PromptText)), ft)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
