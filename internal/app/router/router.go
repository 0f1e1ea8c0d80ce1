package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"clinic_backend/internal/platform/http/handler"
)

// NewRouter builds the operational HTTP surface.
// /metrics serves the collectors gathered by gatherer.
func NewRouter(log zerolog.Logger, gatherer prometheus.Gatherer, checks map[string]handler.Check) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), accessLog(log))

	// liveness
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	// dependencies
	r.GET("/readyz", handler.Readiness(checks))
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	return r
}

func accessLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		event := log.Debug()
		switch {
		case status >= 500:
			event = log.Error()
		case status >= 400:
			event = log.Warn()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request processed")
	}
}
