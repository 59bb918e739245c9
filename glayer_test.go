package glayer_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/go-cmp/cmp"
	"github.com/mr-joshcrane/glayer"
	"github.com/mr-joshcrane/glayer/layer"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingLogger struct {
	messages []string
}

func (r *recordingLogger) Log(message string) {
	r.messages = append(r.messages, message)
}

func TestHandleRequest_ReturnsDoneForAnyInput(t *testing.T) {
	t.Parallel()
	tc := []struct {
		description string
		input       any
	}{
		{description: "nil input", input: nil},
		{description: "string input", input: "some event"},
		{description: "map input", input: map[string]any{"key": "value"}},
		{description: "number input", input: 42.0},
	}
	for _, tt := range tc {
		t.Run(tt.description, func(t *testing.T) {
			h := glayer.NewHandler(
				glayer.WithStdout(new(bytes.Buffer)),
				glayer.WithLayerLogger(&recordingLogger{}),
			)
			got, err := h.HandleRequest(context.Background(), tt.input)
			if err != nil {
				t.Fatal(err)
			}
			if got != "Done" {
				t.Errorf("expected Done, got %v", got)
			}
		})
	}
}

func TestHandleRequest_LogsThroughLayerAndWritesGreeting(t *testing.T) {
	t.Parallel()
	logger := &recordingLogger{}
	stdout := new(bytes.Buffer)
	h := glayer.NewHandler(
		glayer.WithStdout(stdout),
		glayer.WithLayerLogger(logger),
	)
	_, err := h.HandleRequest(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Doing something on layerfromLambdaFunction"}
	if !cmp.Equal(logger.messages, want) {
		t.Error(cmp.Diff(want, logger.messages))
	}
	if stdout.String() != "Hello AWS Lambda Builders!\n" {
		t.Errorf("unexpected stdout: %q", stdout.String())
	}
}

func TestHandleRequest_KeepsNoStateBetweenInvocations(t *testing.T) {
	t.Parallel()
	logger := &recordingLogger{}
	stdout := new(bytes.Buffer)
	h := glayer.NewHandler(
		glayer.WithStdout(stdout),
		glayer.WithLayerLogger(logger),
	)
	for i := 0; i < 3; i++ {
		got, err := h.HandleRequest(context.Background(), i)
		if err != nil {
			t.Fatal(err)
		}
		if got != glayer.Result {
			t.Errorf("invocation %d: expected %q, got %v", i, glayer.Result, got)
		}
	}
	if len(logger.messages) != 3 {
		t.Errorf("expected 3 log calls, got %d", len(logger.messages))
	}
	want := "Hello AWS Lambda Builders!\nHello AWS Lambda Builders!\nHello AWS Lambda Builders!\n"
	if stdout.String() != want {
		t.Errorf("unexpected stdout: %q", stdout.String())
	}
}

func TestHandleRequest_WithLoggerTagsRequestID(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.InfoLevel)
	h := glayer.NewHandler(
		glayer.WithStdout(new(bytes.Buffer)),
		glayer.WithLogger(zap.New(core)),
	)
	ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
		AwsRequestID: "request-1234",
	})
	_, err := h.HandleRequest(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != layer.Message(glayer.LayerArgument) {
		t.Errorf("unexpected log message %q", entries[0].Message)
	}
	if entries[0].ContextMap()["requestId"] != "request-1234" {
		t.Errorf("expected requestId field, got %v", entries[0].ContextMap())
	}
}

func TestNewHandler_DefaultLoggerWritesLayerLineToStdout(t *testing.T) {
	t.Parallel()
	stdout := new(bytes.Buffer)
	h := glayer.NewHandler(glayer.WithStdout(stdout))
	got, err := h.HandleRequest(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != glayer.Result {
		t.Errorf("expected %q, got %v", glayer.Result, got)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected a log line and a greeting, got %q", stdout.String())
	}
	var entry map[string]any
	err = json.Unmarshal([]byte(lines[0]), &entry)
	if err != nil {
		t.Fatalf("expected a JSON log line, got %q: %v", lines[0], err)
	}
	if entry["msg"] != "Doing something on layerfromLambdaFunction" {
		t.Errorf("unexpected msg field: %v", entry["msg"])
	}
	if lines[1] != "Hello AWS Lambda Builders!" {
		t.Errorf("unexpected greeting line: %q", lines[1])
	}
}
