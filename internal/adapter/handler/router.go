package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/summaro/internal/adapter/dto/common"
	"github.com/johnquangdev/summaro/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	audioHandler  *AudioHandler
	digestHandler *DigestHandler
	historyOn     bool
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, audioHandler *AudioHandler, digestHandler *DigestHandler, historyOn bool) *Router {
	return &Router{
		cfg:           cfg,
		audioHandler:  audioHandler,
		digestHandler: digestHandler,
		historyOn:     historyOn,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")
	api.GET("/health", rt.healthCheck)
	api.GET("/files", rt.audioHandler.ListFiles)
	api.POST("/upload-audio", rt.audioHandler.UploadAudio)

	e.Static("/uploads", rt.cfg.Upload.Dir)

	v1 := e.Group("/v1")
	rt.setupDigestRoutes(v1)
}

// setupDigestRoutes configures the engine and history routes
func (rt *Router) setupDigestRoutes(g *echo.Group) {
	g.POST("/digest", rt.digestHandler.CreateDigest)

	if rt.historyOn {
		g.GET("/digests", rt.digestHandler.ListDigests)
		g.GET("/digests/:id", rt.digestHandler.GetDigest)
	} else {
		g.GET("/digests", rt.notImplemented)
		g.GET("/digests/:id", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not enabled",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Set DB_ENABLED=true to keep digest history",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	features := []string{"upload", "digest"}
	if rt.historyOn {
		features = append(features, "history")
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "healthy",
		Message:     "Summaro Backend is Running!",
		Timestamp:   time.Now().UTC(),
		Environment: rt.cfg.Server.Environment,
		Features:    features,
	})
}
