package mockclient

import (
	"context"
	"encoding/base64"
	"sync/atomic"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
)

type DummyLambdaClient struct {
	ActiveAfterXRetries *int
	FuncExists          bool
	Err                 error
	State               types.State
	Payload             []byte
	Logs                string
	FunctionError       string
	InvokeErr           error
	Invocations         *int32
	LastInvoke          *lambda.InvokeInput
}

func (d DummyLambdaClient) GetFunction(ctx context.Context, input *lambda.GetFunctionInput, opts ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error) {
	if d.Err != nil {
		return &lambda.GetFunctionOutput{}, d.Err
	}
	if !d.FuncExists {
		return &lambda.GetFunctionOutput{}, new(types.ResourceNotFoundException)
	}
	state := types.StateActive
	if d.State != "" {
		state = d.State
	}
	if d.ActiveAfterXRetries != nil && *d.ActiveAfterXRetries > 0 {
		*d.ActiveAfterXRetries--
		state = types.StatePending
	}
	return &lambda.GetFunctionOutput{
		Configuration: &types.FunctionConfiguration{
			FunctionName: input.FunctionName,
			State:        state,
			StateReason:  aws.String("dummy state reason"),
		},
	}, nil
}

func (d DummyLambdaClient) Invoke(ctx context.Context, input *lambda.InvokeInput, opts ...func(*lambda.Options)) (*lambda.InvokeOutput, error) {
	if d.Invocations != nil {
		atomic.AddInt32(d.Invocations, 1)
	}
	if d.LastInvoke != nil {
		*d.LastInvoke = *input
	}
	if d.InvokeErr != nil {
		return nil, d.InvokeErr
	}
	out := &lambda.InvokeOutput{
		StatusCode:      200,
		ExecutedVersion: aws.String("$LATEST"),
		Payload:         d.Payload,
		LogResult:       aws.String(base64.StdEncoding.EncodeToString([]byte(d.Logs))),
	}
	if input.Qualifier != nil {
		out.ExecutedVersion = input.Qualifier
	}
	if d.FunctionError != "" {
		out.FunctionError = aws.String(d.FunctionError)
	}
	return out, nil
}
