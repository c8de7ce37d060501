package main

import (
	"os"

	"github.com/dmitrymomot/lingo/cmd/lingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
