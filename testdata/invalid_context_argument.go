package main

import (
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	lambda.Start(handler)
}

// Two arguments must start with context.Context
func handler(name string, event any) error {
	return nil
}
