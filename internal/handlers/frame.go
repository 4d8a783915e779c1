package handlers

import (
	"bytes"
	"image/png"
	"net/http"

	"github.com/gin-gonic/gin"
)

// framePNG encodes the current framebuffer as a PNG, the host-side stand-in
// for looking at the physical screen.
func (h *Handler) framePNG(c *gin.Context) {
	if h.frame == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no display attached"})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, h.frame.Snapshot()); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to encode frame", "frame_encode_failed", err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
