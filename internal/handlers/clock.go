package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
)

const (
	statusOK          = "ok"
	statusModeSet     = "mode_set"
	statusColorCycled = "color_cycled"
	statusAutoSet     = "auto_color_set"

	errGetState        = "failed to load state"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Respond with a status and include current state if available (best-effort).
func (h *Handler) respondWithStatusAndState(c *gin.Context, status string, extra gin.H) {
	ctx := c.Request.Context()
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	st, err := h.services.Monitoring.State(ctx)
	if err == nil {
		resp["state"] = st
	}
	c.JSON(http.StatusOK, resp)
}

// Request DTO for setting the clock mode.
type modeRequest struct {
	Mode string `json:"mode" binding:"required"` // arc_digital | arc_analog | pipboy | gif_digital | weather | apple_rings
}

// Request DTO for toggling weather-driven coloring.
type autoColorRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

func (h *Handler) getState(c *gin.Context) {
	ctx := c.Request.Context()
	st, err := h.services.Monitoring.State(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "clock_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) setMode(c *gin.Context) {
	var req modeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	mode, err := arcclock.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	if err := h.services.Clock.SetMode(ctx, mode); err != nil {
		if h.log != nil {
			h.log.Errorw("clock_set_mode_failed", "err", err, "mode", req.Mode)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWithStatusAndState(c, statusModeSet, gin.H{"mode": mode.String()})
}

func (h *Handler) nextMode(c *gin.Context) {
	ctx := c.Request.Context()
	mode, err := h.services.Clock.NextMode(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to cycle mode", "clock_next_mode_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusModeSet, gin.H{"mode": mode.String()})
}

func (h *Handler) cycleColor(c *gin.Context) {
	ctx := c.Request.Context()
	color, err := h.services.Clock.CycleColor(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to cycle color", "clock_cycle_color_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusColorCycled, gin.H{"color": color})
}

func (h *Handler) setAutoWeatherColor(c *gin.Context) {
	var req autoColorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	ctx := c.Request.Context()
	if err := h.services.Clock.SetAutoWeatherColor(ctx, *req.Enabled); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to set auto color", "clock_auto_color_failed", err)
		return
	}
	h.respondWithStatusAndState(c, statusAutoSet, gin.H{"enabled": *req.Enabled})
}
