package tracking

import (
	"context"
	"strings"
)

// LegacyAnalytics accepts the older category/action/label call shape and
// forwards it to a Tracker. It keeps no state of its own.
type LegacyAnalytics struct {
	Tracker Tracker
}

// legacyActions maps old action strings onto current event names.
var legacyActions = map[string]EventName{
	"calculate":       EventCalculatorSubmitted,
	"calculate_click": EventCalculatorSubmitted,
	"result":          EventCalculatorResult,
	"result_shown":    EventCalculatorResult,
	"error":           EventCalculatorError,
	"bill_estimate":   EventLoadEstimated,
	"country_select":  EventPresetViewed,
	"cta":             EventCTAClick,
	"cta_click":       EventCTAClick,
	"pageview":        EventPageView,
	"page_view":       EventPageView,
}

// LegacyEventName maps a legacy action onto an event name. ok is false when
// the action is neither a legacy alias nor a declared event name.
func LegacyEventName(action string) (EventName, bool) {
	key := strings.ToLower(strings.TrimSpace(action))
	if name, ok := legacyActions[key]; ok {
		return name, true
	}
	name := EventName(key)
	return name, name.Known()
}

// LogEvent is the legacy entry point. Unmapped actions are forwarded under
// their own name.
func (l LegacyAnalytics) LogEvent(ctx context.Context, category, action, label string, value float64) {
	if l.Tracker == nil {
		return
	}
	name, _ := LegacyEventName(action)
	props := map[string]any{"category": category}
	if label != "" {
		props["label"] = label
	}
	if value != 0 {
		props["value"] = value
	}
	l.Tracker.Track(ctx, NewEvent(name, props))
}

// TrackPageView is the legacy page view helper.
func (l LegacyAnalytics) TrackPageView(ctx context.Context, path string) {
	if l.Tracker == nil {
		return
	}
	l.Tracker.Track(ctx, NewEvent(EventPageView, map[string]any{"path": path}))
}
