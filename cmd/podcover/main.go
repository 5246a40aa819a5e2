// podcover — Podcast episode cover generation.
//
// Usage:
//
//	podcover -t <title> -i <image> [-s <subtitle>] [-e <episode>] [options]
//	podcover interactive
//	podcover serve [--port 8080]
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
