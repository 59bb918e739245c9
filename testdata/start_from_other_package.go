package main

import (
	"context"

	lambda "example.com/notaws/runtime"
)

func main() {
	lambda.Start(handler)
}

func handler(ctx context.Context) error {
	return nil
}
