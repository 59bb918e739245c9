package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	lambda.Start(handler)
}

// The runtime passes at most a context and an event
func handler(ctx context.Context, event any, extra string) (string, error) {
	return "Done", nil
}
