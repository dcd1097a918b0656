// Package main is the entry point for the medwatch service.
package main

import (
	"os"

	"github.com/donaldgifford/medwatch/cmd/medwatch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
