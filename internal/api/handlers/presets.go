package handlers

import (
	"net/http"

	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/api/models"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/model"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/presets"
	"github.com/eltechldn-adm/BatteryBluePrint-sub001/internal/tracking"

	"github.com/gin-gonic/gin"
)

// PresetHandler handles region preset requests
type PresetHandler struct {
	resolver *presets.Resolver
	tracker  tracking.Tracker
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(resolver *presets.Resolver, tracker tracking.Tracker) *PresetHandler {
	if tracker == nil {
		tracker = tracking.Nop{}
	}
	return &PresetHandler{resolver: resolver, tracker: tracker}
}

// ListPresets handles GET /api/v1/presets
func (h *PresetHandler) ListPresets(c *gin.Context) {
	list := h.resolver.List()
	out := make([]models.PresetInfo, len(list))
	for i, p := range list {
		out[i] = toPresetInfo(p)
	}
	fallback, _ := h.resolver.Lookup("")
	c.JSON(http.StatusOK, gin.H{
		"presets": out,
		"default": toPresetInfo(fallback),
		"count":   len(out),
	})
}

// GetPreset handles GET /api/v1/presets/:code
// Unknown codes are not an error: the global default is returned with matched=false.
func (h *PresetHandler) GetPreset(c *gin.Context) {
	code := c.Param("code")
	p, matched := h.resolver.Lookup(code)

	h.tracker.Track(c.Request.Context(), tracking.NewEvent(tracking.EventPresetViewed, map[string]any{
		"requested": code,
		"matched":   matched,
	}))
	c.JSON(http.StatusOK, models.PresetResponse{
		Requested: code,
		Matched:   matched,
		Preset:    toPresetInfo(p),
	})
}

func toPresetInfo(p model.LocationPreset) models.PresetInfo {
	return models.PresetInfo{
		Code:        p.Code,
		Name:        p.Name,
		Aliases:     p.Aliases,
		Assumptions: p.Assumptions,
	}
}
