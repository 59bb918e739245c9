package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	lambda.Start(handler)
}

// With two return values the second must be an error
func handler(ctx context.Context, event any) (string, int) {
	return "Done", 0
}
