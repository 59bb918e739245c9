package main

import (
	"fmt"
	"os"

	"github.com/mr-joshcrane/glayer/command"
)

func main() {
	err := command.Main(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
