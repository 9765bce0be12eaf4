package mapview

import "github.com/mapyourmemory/memorymap/models"

// Reduce applies one event and returns the next state. The input state is
// never mutated; pin slices are copied so callers can hold old states safely.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case PinsLoaded:
		next := s
		next.Pins = append([]models.MemoryRecord{}, e.Pins...)
		return next
	case PinAdded:
		next := s
		pins := make([]models.MemoryRecord, 0, len(s.Pins)+1)
		pins = append(pins, e.Pin)
		pins = append(pins, s.Pins...)
		next.Pins = pins
		return next
	case FilterChanged:
		next := s
		next.Filter = e.Text
		return next
	case ProjectionChanged:
		next := s
		next.Projection = e.Projection
		return next
	default:
		return s
	}
}
