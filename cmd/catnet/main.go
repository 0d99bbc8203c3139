// Package main provides the catnet CLI.
package main

import (
	"fmt"
	"os"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("catnet %s\n", version)
		return
	}

	fmt.Println("catnet - feed-forward binary image classifier trainer")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("See examples/catvnoncat for a runnable training program.")
}
