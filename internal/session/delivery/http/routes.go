package http

import (
	"github.com/gin-gonic/gin"

	"adaptive-response-engine/internal/middleware"
)

// RegisterRoutes registers /sessions routes on the given group.
func RegisterRoutes(r *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	r.POST("", mw.RateLimit(), h.Create)

	s := r.Group("/:id", mw.RateLimit())
	s.POST("/turns", h.ProcessTurn)
	s.POST("/speech", h.ProcessSpeech)
	s.GET("/context", h.Context)
	s.DELETE("", h.Close)
}
