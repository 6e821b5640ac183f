package api

import (
	"time"

	"github.com/Domenick1991/flightsinfo/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/labstack/gommon/log"
)

// NewRouter mounts the flight and reference routes on a fresh gin engine.
func NewRouter(service flights.FlightUseCase, logger *log.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	handler := NewFlightHandler(service)
	handler.Register(router.Group("/flights"))
	handler.RegisterReference(router.Group(""))

	return router
}

func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debugj(log.JSON{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}
