package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"adaptive-response-engine/internal/metrics"
	"adaptive-response-engine/internal/session"
	"adaptive-response-engine/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	rateLimitPerMin int
	shutdownTimeout time.Duration

	// Observability
	metrics *metrics.Collector

	// Session domain
	sessionUC session.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int
	ShutdownTimeout time.Duration

	Metrics *metrics.Collector

	// Session domain
	SessionUseCase session.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		shutdownTimeout: cfg.ShutdownTimeout,
		metrics:         cfg.Metrics,
		sessionUC:       cfg.SessionUseCase,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.sessionUC == nil {
		return errors.New("session use case is required")
	}
	return nil
}

// Handler exposes the routed engine, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
