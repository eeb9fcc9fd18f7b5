package main

import (
	"os"

	"github.com/swiftscribe/swiftscribe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
