package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	lambda.Start(handler)
}

func handler(ctx context.Context, input any) (any, error) {
	fmt.Println("Hello AWS Lambda Builders!")
	return "Done", nil
}
