package log

import "go.uber.org/zap"

// ZapConfig mirrors the logger section of the service configuration.
type ZapConfig struct {
	Level        string
	Mode         string // "production" or "debug"
	Encoding     string // "console" or "json"
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

type ctxKey int

const (
	sessionIDKey ctxKey = iota
)
