package glayer

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/mr-joshcrane/glayer/layer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger writing to w at the level and in the format
// named by cfg.
func NewLogger(cfg Config, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	var encoder zapcore.Encoder
	switch cfg.LogFormat {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig())
	case "text":
		encoder = zapcore.NewConsoleEncoder(encoderConfig())
	default:
		return nil, fmt.Errorf("invalid log format %q, expected json or text", cfg.LogFormat)
	}
	return newLogger(encoder, w, level), nil
}

func defaultLogger(w io.Writer) *zap.Logger {
	return newLogger(zapcore.NewJSONEncoder(encoderConfig()), w, zapcore.InfoLevel)
}

func newLogger(encoder zapcore.Encoder, w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), level)
	return zap.New(core)
}

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

type zapLayerLogger struct {
	logger *zap.Logger
}

func (z zapLayerLogger) Log(message string) {
	z.logger.Info(message)
}

// ContextLogger adapts base to the layer.Logger interface, adding the request
// ID and function name of the current invocation when they are known.
func ContextLogger(ctx context.Context, base *zap.Logger) layer.Logger {
	logger := base
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		logger = logger.With(zap.String("requestId", lc.AwsRequestID))
	}
	if lambdacontext.FunctionName != "" {
		logger = logger.With(zap.String("function", lambdacontext.FunctionName))
	}
	return zapLayerLogger{logger: logger}
}
