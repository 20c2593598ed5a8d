package eventlog

import (
	"github.com/rs/zerolog"
)

// Pipeline fans events out to registered listeners. Listeners are invoked
// synchronously in registration order; a panicking listener is recovered and
// logged so that one failing sink never interrupts the emitting pipeline or
// the remaining listeners.
type Pipeline struct {
	listeners []Listener
	log       zerolog.Logger
}

// NewPipeline creates an empty Pipeline reporting listener failures to log.
func NewPipeline(log zerolog.Logger) *Pipeline {
	return &Pipeline{log: log}
}

// Register adds a listener to the pipeline. Not safe for concurrent use with
// event emission; the host registers all listeners before dispatching events.
func (p *Pipeline) Register(listener Listener) {
	p.listeners = append(p.listeners, listener)
}

// EmitUserEvent delivers a user event to every listener.
func (p *Pipeline) EmitUserEvent(event UserEvent) {
	for _, listener := range p.listeners {
		p.dispatch(func() { listener.OnUserEvent(event) })
	}
}

// EmitAdminEvent delivers an admin event to every listener.
func (p *Pipeline) EmitAdminEvent(event AdminEvent) {
	for _, listener := range p.listeners {
		p.dispatch(func() { listener.OnAdminEvent(event) })
	}
}

// Close closes every listener.
func (p *Pipeline) Close() {
	for _, listener := range p.listeners {
		p.dispatch(listener.Close)
	}
}

func (p *Pipeline) dispatch(callback func()) {
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("Event listener panicked")
		}
	}()
	callback()
}
