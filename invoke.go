package glayer

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/mr-joshcrane/glayer/layer"
)

var (
	ErrFunctionNotFound = errors.New("function not found")
	ErrUnexpectedResult = errors.New("unexpected invocation result")
)

type LambdaClient interface {
	GetFunction(ctx context.Context, params *lambda.GetFunctionInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error)
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

type InvokeResult struct {
	StatusCode      int32
	ExecutedVersion string
	FunctionError   string
	Payload         []byte
	Logs            string
}

// Invoke calls a deployed function synchronously once it has settled,
// returning its payload along with the tail of its execution log.
func Invoke(ctx context.Context, c LambdaClient, name, qualifier string, payload []byte) (InvokeResult, error) {
	exists, err := lambdaExists(ctx, c, name, qualifier)
	if err != nil {
		return InvokeResult{}, err
	}
	if !exists {
		return InvokeResult{}, fmt.Errorf("%w: %s", ErrFunctionNotFound, name)
	}
	err = WaitForConsistency(ctx, c, name, qualifier)
	if err != nil {
		return InvokeResult{}, err
	}
	resp, err := c.Invoke(ctx, invokeCommand(name, qualifier, payload))
	if err != nil {
		return InvokeResult{}, fmt.Errorf("failure in invoking %s: %w", name, err)
	}
	logs, err := decodeLogs(resp.LogResult)
	if err != nil {
		return InvokeResult{}, err
	}
	return InvokeResult{
		StatusCode:      resp.StatusCode,
		ExecutedVersion: aws.ToString(resp.ExecutedVersion),
		FunctionError:   aws.ToString(resp.FunctionError),
		Payload:         resp.Payload,
		Logs:            logs,
	}, nil
}

func invokeCommand(name, qualifier string, payload []byte) *lambda.InvokeInput {
	input := &lambda.InvokeInput{
		FunctionName:   aws.String(name),
		InvocationType: types.InvocationTypeRequestResponse,
		LogType:        types.LogTypeTail,
		Payload:        payload,
	}
	if qualifier != "" {
		input.Qualifier = aws.String(qualifier)
	}
	return input
}

func decodeLogs(logResult *string) (string, error) {
	if logResult == nil {
		return "", nil
	}
	logs, err := base64.StdEncoding.DecodeString(*logResult)
	if err != nil {
		return "", fmt.Errorf("failure in decoding log result: %w", err)
	}
	return string(logs), nil
}

// Verify checks the invocation produced what the function is expected to
// produce: the Result payload, the layer log line and the greeting.
func (r InvokeResult) Verify() error {
	if r.FunctionError != "" {
		return fmt.Errorf("function returned %s error: %s", r.FunctionError, r.Payload)
	}
	var got string
	err := json.Unmarshal(r.Payload, &got)
	if err != nil {
		return fmt.Errorf("%w: payload %q is not a JSON string", ErrUnexpectedResult, r.Payload)
	}
	if got != Result {
		return fmt.Errorf("%w: expected %q, got %q", ErrUnexpectedResult, Result, got)
	}
	want := layer.Message(LayerArgument)
	if !strings.Contains(r.Logs, want) {
		return fmt.Errorf("%w: log line %q not found", ErrUnexpectedResult, want)
	}
	if !strings.Contains(r.Logs, Greeting) {
		return fmt.Errorf("%w: output %q not found", ErrUnexpectedResult, Greeting)
	}
	return nil
}

var DefaultRetryWaitingPeriod = WaitForRetry

// WaitForRetry pauses between polls, returning early with the context's error
// if ctx is done first.
func WaitForRetry(ctx context.Context) error {
	timer := time.NewTimer(3 * time.Second)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// WaitForConsistency polls the function configuration until it is active
// and no update is in flight.
func WaitForConsistency(ctx context.Context, c LambdaClient, name, qualifier string) error {
	retryLimit := 10
	for i := 0; i <= retryLimit; i++ {
		resp, err := c.GetFunction(ctx, getFunctionCommand(name, qualifier))
		if err != nil {
			return fmt.Errorf("failure in getting function %s: %w", name, err)
		}
		ready, err := isReady(resp.Configuration)
		if err != nil {
			return fmt.Errorf("lambda %s: %w", name, err)
		}
		if ready {
			return nil
		}
		if i == retryLimit {
			break
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		err = DefaultRetryWaitingPeriod(ctx)
		if err != nil {
			return err
		}
	}
	return fmt.Errorf("waited for lambda %s to become consistent, but it didn't after %d retries", name, retryLimit)
}

func isReady(cfg *types.FunctionConfiguration) (bool, error) {
	if cfg == nil {
		return true, nil
	}
	if cfg.State == types.StateFailed {
		return false, fmt.Errorf("function is in failed state: %s", aws.ToString(cfg.StateReason))
	}
	if cfg.LastUpdateStatus == types.LastUpdateStatusFailed {
		return false, fmt.Errorf("last update failed: %s", aws.ToString(cfg.LastUpdateStatusReason))
	}
	if cfg.State != "" && cfg.State != types.StateActive {
		return false, nil
	}
	return cfg.LastUpdateStatus != types.LastUpdateStatusInProgress, nil
}

func getFunctionCommand(name, qualifier string) *lambda.GetFunctionInput {
	input := &lambda.GetFunctionInput{
		FunctionName: aws.String(name),
	}
	if qualifier != "" {
		input.Qualifier = aws.String(qualifier)
	}
	return input
}

func lambdaExists(ctx context.Context, c LambdaClient, name, qualifier string) (bool, error) {
	_, err := c.GetFunction(ctx, getFunctionCommand(name, qualifier))
	if err != nil {
		var resourceNotFound *types.ResourceNotFoundException
		if errors.As(err, &resourceNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
