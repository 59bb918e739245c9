package glayer

import (
	"bytes"
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
)

var RequestID = uuid.NewString

// InvokeLocal runs h in-process the way the Lambda runtime would, decoding
// payload as the event and returning the JSON encoded result.
func InvokeLocal(ctx context.Context, h Handler, payload []byte) ([]byte, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		payload = []byte("{}")
	}
	ctx = lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID: RequestID(),
	})
	return lambda.NewHandler(h.HandleRequest).Invoke(ctx, payload)
}
