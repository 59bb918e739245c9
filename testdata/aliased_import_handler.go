package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"
)

func main() {
	awslambda.Start(handler)
}

func handler(ctx context.Context) error {
	return nil
}
