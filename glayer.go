package glayer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mr-joshcrane/glayer/layer"
	"go.uber.org/zap"
)

const (
	LayerArgument = "fromLambdaFunction"
	Greeting      = "Hello AWS Lambda Builders!"
	Result        = "Done"
)

// Handler is the function invoked by the Lambda runtime. It delegates its
// logging to the shared layer code and keeps no state between invocations.
type Handler struct {
	Stdout io.Writer
	Logger func(ctx context.Context) layer.Logger
}

type HandlerOptions func(h Handler) Handler

// NewHandler writes to os.Stdout by default. Unless a logger option is given,
// log lines go as JSON at info level to the same writer as the handler's
// output, the way the Lambda runtime captures both.
func NewHandler(opts ...HandlerOptions) Handler {
	h := Handler{
		Stdout: os.Stdout,
	}
	for _, opt := range opts {
		h = opt(h)
	}
	if h.Logger == nil {
		base := defaultLogger(h.Stdout)
		h.Logger = func(ctx context.Context) layer.Logger {
			return ContextLogger(ctx, base)
		}
	}
	return h
}

func WithStdout(w io.Writer) HandlerOptions {
	return func(h Handler) Handler {
		h.Stdout = w
		return h
	}
}

// WithLogger tags every invocation's log lines with the request ID found in
// the invocation context.
func WithLogger(base *zap.Logger) HandlerOptions {
	return func(h Handler) Handler {
		h.Logger = func(ctx context.Context) layer.Logger {
			return ContextLogger(ctx, base)
		}
		return h
	}
}

// WithLayerLogger hands the same logger to every invocation.
func WithLayerLogger(l layer.Logger) HandlerOptions {
	return func(h Handler) Handler {
		h.Logger = func(context.Context) layer.Logger {
			return l
		}
		return h
	}
}

// HandleRequest ignores its input and always returns Result.
func (h Handler) HandleRequest(ctx context.Context, input any) (any, error) {
	logger := h.Logger(ctx)
	layer.DoSomethingOnLayer(logger, LayerArgument)
	fmt.Fprintln(h.Stdout, Greeting)
	return Result, nil
}
