package glayer

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/aws/smithy-go"
)

func NewLambdaClient(ctx context.Context) (*lambda.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRetryer(customRetryer))
	if err != nil {
		return nil, fmt.Errorf("failure in loading AWS config: %w", err)
	}
	return lambda.NewFromConfig(cfg), nil
}

func customRetryer() aws.Retryer {
	return retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = 20
		o.Retryables = append(o.Retryables, RetryableErrors{})
	})
}

// RetryableErrors marks errors raised while a function is still being
// updated, or is throttled, as worth another attempt.
type RetryableErrors struct{}

func (r RetryableErrors) IsErrorRetryable(err error) aws.Ternary {
	var opErr *smithy.OperationError
	if errors.As(err, &opErr) {
		var conflict *types.ResourceConflictException
		if errors.As(err, &conflict) {
			return aws.TrueTernary
		}
		var throttled *types.TooManyRequestsException
		if errors.As(err, &throttled) {
			return aws.TrueTernary
		}
	}
	return aws.UnknownTernary
}
