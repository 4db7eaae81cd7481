package main

import (
	"os"

	"github.com/msto63/mdwtext/cmd/mdwtext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
