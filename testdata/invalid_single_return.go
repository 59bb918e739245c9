package main

import (
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	lambda.Start(handler)
}

// A single return value must be an error
func handler() string {
	return "Done"
}
