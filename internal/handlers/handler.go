package handlers

import (
	"image"

	"github.com/gin-gonic/gin"

	"github.com/robegamesios/ArcReactorClock-sub000/internal/logger"
	"github.com/robegamesios/ArcReactorClock-sub000/internal/service"
)

// FrameSource provides the current framebuffer contents for the preview
// endpoint. Nil when the server runs headless.
type FrameSource interface {
	Snapshot() *image.RGBA
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	frame    FrameSource
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, frame FrameSource, log *logger.Logger) *Handler {
	return &Handler{services: services, frame: frame, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	// Health endpoint
	router.GET("/health", h.health)

	// Frame preview (PNG render of the current display contents)
	router.GET("/frame.png", h.framePNG)

	// Versioned API endpoints
	h.registerAPIRoutes(router)

	// WebSocket state stream, upgraded on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerClockRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerClockRoutes(api *gin.RouterGroup) {
	clock := api.Group("/clock")
	{
		clock.GET("/state", h.getState)
		// Body example: {"mode":"pipboy"}
		clock.POST("/mode", h.setMode)
		clock.POST("/mode/next", h.nextMode)
		clock.POST("/color/cycle", h.cycleColor)
		// Body example: {"enabled":true}
		clock.POST("/color/auto", h.setAutoWeatherColor)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("/", h.getLogs)
	}
}
