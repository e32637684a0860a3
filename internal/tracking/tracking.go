// Package tracking is the analytics boundary. Handlers describe what happened
// as events; where they end up is the Tracker's business.
package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EventName is the closed set of events the site emits.
type EventName string

const (
	EventPageView            EventName = "page_view"
	EventCalculatorSubmitted EventName = "calculator_submitted"
	EventCalculatorResult    EventName = "calculator_result"
	EventCalculatorError     EventName = "calculator_error"
	EventLoadEstimated       EventName = "load_estimated"
	EventPresetViewed        EventName = "preset_viewed"
	EventCTAClick            EventName = "cta_click"
)

// Known reports whether n is one of the declared event names.
func (n EventName) Known() bool {
	switch n {
	case EventPageView, EventCalculatorSubmitted, EventCalculatorResult, EventCalculatorError,
		EventLoadEstimated, EventPresetViewed, EventCTAClick:
		return true
	}
	return false
}

// ClientSide reports whether n may be reported by the browser. Calculator
// events are emitted by the server only.
func (n EventName) ClientSide() bool {
	return n == EventPageView || n == EventCTAClick
}

type Event struct {
	ID         uuid.UUID      `json:"id"`
	Name       EventName      `json:"name"`
	Time       time.Time      `json:"time"`
	Properties map[string]any `json:"properties,omitempty"`
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(name EventName, props map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Name:       name,
		Time:       time.Now().UTC(),
		Properties: props,
	}
}

// Tracker is the canonical tracking capability. Track must not block on I/O
// the caller cares about and must never fail the request.
type Tracker interface {
	Track(ctx context.Context, ev Event)
}

// Nop discards events.
type Nop struct{}

func (Nop) Track(context.Context, Event) {}

// LogTracker writes events as structured log lines.
type LogTracker struct {
	logger zerolog.Logger
	// Static properties merged into every event (site URL, environment).
	base map[string]any
}

func NewLogTracker(logger zerolog.Logger, base map[string]any) *LogTracker {
	return &LogTracker{logger: logger, base: base}
}

func (t *LogTracker) Track(ctx context.Context, ev Event) {
	logger := t.logger
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		logger = *l
	}
	e := logger.Info().
		Str("event_id", ev.ID.String()).
		Str("event", string(ev.Name)).
		Time("event_time", ev.Time)
	if !ev.Name.Known() {
		e = e.Bool("unknown_event", true)
	}
	props := make(map[string]any, len(t.base)+len(ev.Properties))
	for k, v := range t.base {
		props[k] = v
	}
	for k, v := range ev.Properties {
		props[k] = v
	}
	e.Fields(map[string]any{"properties": props}).Msg("track")
}

// Recorder keeps events in memory. Useful in tests and local previews.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Track(_ context.Context, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Names lists recorded event names in order.
func (r *Recorder) Names() []EventName {
	evs := r.Events()
	out := make([]EventName, len(evs))
	for i, ev := range evs {
		out[i] = ev.Name
	}
	return out
}
