package http

import (
	"github.com/gin-gonic/gin"

	"adaptive-response-engine/internal/session"
	"adaptive-response-engine/pkg/log"
)

// Handler is the public interface for the session HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	ProcessTurn(c *gin.Context)
	ProcessSpeech(c *gin.Context)
	Context(c *gin.Context)
	Close(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc session.UseCase
}

// New creates a new HTTP handler for the session domain.
func New(l log.Logger, uc session.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
