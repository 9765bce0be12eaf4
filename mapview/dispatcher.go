package mapview

import "sync"

// Dispatcher owns the current state and delivers every transition to
// subscribers. Rendering code subscribes instead of being called directly,
// so the model is testable without a live map widget.
type Dispatcher struct {
	mu    sync.Mutex
	state State
	subs  []func(State)
}

func NewDispatcher(initial State) *Dispatcher {
	return &Dispatcher{state: initial}
}

// Subscribe registers a callback invoked with each new state. Not safe to
// call concurrently with Dispatch from the same subscriber.
func (d *Dispatcher) Subscribe(fn func(State)) {
	d.mu.Lock()
	d.subs = append(d.subs, fn)
	d.mu.Unlock()
}

// Dispatch applies the event and notifies subscribers with the new state.
// Transitions are serialized; subscribers run in dispatch order.
func (d *Dispatcher) Dispatch(ev Event) State {
	d.mu.Lock()
	d.state = Reduce(d.state, ev)
	next := d.state
	subs := append([]func(State){}, d.subs...)
	d.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// State returns the current state.
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}
