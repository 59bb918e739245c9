package main

import (
	"github.com/aws/aws-lambda-go/lambda"
)

func run() {
	lambda.Start(handler)
}

func handler() string {
	return "Done"
}
