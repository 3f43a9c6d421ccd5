package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FieldSession   = "session_id"
	FieldOperation = "operation"
	FieldProvider  = "ai_provider"
	FieldModel     = "ai_model"
	FieldTemplate  = "template"
	FieldTheme     = "theme"
)

// Options select the encoding and verbosity of the service logger.
type Options struct {
	JSON  bool
	Debug bool
	// Output defaults to stderr.
	Output zapcore.WriteSyncer
}

func New(opts Options) *zap.Logger {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}
	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}

	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "time"
	ec.EncodeTime = zapcore.RFC3339TimeEncoder
	ec.EncodeDuration = zapcore.StringDurationEncoder

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(ec)
	} else {
		enc = zapcore.NewConsoleEncoder(ec)
	}
	return zap.New(zapcore.NewCore(enc, out, level), zap.AddCaller(), zap.ErrorOutput(out))
}

// WithFields attaches fields to logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// ProviderFields describes the generation backend. Empty values are skipped.
func ProviderFields(provider, model string) []zap.Field {
	fields := make([]zap.Field, 0, 2)
	if p := strings.TrimSpace(provider); p != "" {
		fields = append(fields, zap.String(FieldProvider, p))
	}
	if m := strings.TrimSpace(model); m != "" {
		fields = append(fields, zap.String(FieldModel, m))
	}
	return fields
}

// Excerpt logs s under key, cut to limit runes with a trailing ellipsis.
func Excerpt(key, s string, limit int) zap.Field {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	switch {
	case limit <= 0:
		s = ""
	case len(runes) > limit:
		s = string(runes[:limit]) + "..."
	}
	return zap.String(key, s)
}
