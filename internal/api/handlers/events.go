package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/api/models"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/tracking"

	"github.com/gin-gonic/gin"
)

// EventHandler accepts analytics events reported by the browser.
type EventHandler struct {
	tracker tracking.Tracker
	legacy  tracking.LegacyAnalytics
}

// NewEventHandler creates a new event handler. A nil tracker discards events.
func NewEventHandler(tracker tracking.Tracker) *EventHandler {
	if tracker == nil {
		tracker = tracking.Nop{}
	}
	return &EventHandler{tracker: tracker, legacy: tracking.LegacyAnalytics{Tracker: tracker}}
}

// Track handles POST /api/v1/events
// Only client-side events are accepted; calculator events come from the server.
func (h *EventHandler) Track(c *gin.Context) {
	var req models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	switch {
	case req.Action != "":
		name, ok := tracking.LegacyEventName(req.Action)
		if !ok || !name.ClientSide() {
			unknownEvent(c, req.Action)
			return
		}
		if name == tracking.EventPageView && req.Path != "" {
			h.legacy.TrackPageView(ctx, req.Path)
		} else {
			h.legacy.LogEvent(ctx, req.Category, req.Action, req.Label, req.Value)
		}
		c.JSON(http.StatusAccepted, models.EventResponse{Accepted: string(name)})

	case req.Name != "":
		name := tracking.EventName(strings.ToLower(strings.TrimSpace(req.Name)))
		if !name.ClientSide() {
			unknownEvent(c, req.Name)
			return
		}
		props := make(map[string]any, len(req.Properties)+1)
		for k, v := range req.Properties {
			props[k] = v
		}
		if req.Path != "" {
			props["path"] = req.Path
		}
		h.tracker.Track(ctx, tracking.NewEvent(name, props))
		c.JSON(http.StatusAccepted, models.EventResponse{Accepted: string(name)})

	default:
		badRequest(c, fmt.Errorf("name or action is required"))
	}
}

func unknownEvent(c *gin.Context, name string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "UNKNOWN_EVENT",
			Message: fmt.Sprintf("event %q is not accepted from clients", name),
			Details: map[string]interface{}{"name": name},
		},
	})
}
