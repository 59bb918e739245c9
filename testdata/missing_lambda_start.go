package main

import "fmt"

func main() {
	fmt.Println(handler())
}

func handler() string {
	return "Done"
}
