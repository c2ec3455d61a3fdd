package log

import "go.uber.org/zap"

// ZapConfig holds the logger configuration.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// traceIDKey is the context key for the request trace id.
type traceIDKey struct{}
