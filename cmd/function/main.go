package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/mr-joshcrane/glayer"
)

func main() {
	cfg, err := glayer.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := glayer.NewLogger(cfg, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	h := glayer.NewHandler(glayer.WithLogger(logger))
	lambda.Start(h.HandleRequest)
}
