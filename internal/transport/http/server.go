package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast/internal/config"
	"github.com/roomcast/roomcast/internal/core"
	"github.com/roomcast/roomcast/internal/metrics"
)

// NewServer builds the HTTP server: websocket endpoint, health check,
// diagnostics, and metrics.
func NewServer(engine *core.Engine, gateway *Gateway, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery(), LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(engine, gateway, cfg.SessionBuffer, logger)))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	debug := NewDebugHandlers(engine, logger)
	router.GET("/debug/rooms", debug.Rooms)

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
