// Package main is the entry point for the medwatchctl CLI client.
package main

import (
	"github.com/donaldgifford/medwatch/cmd/medwatchctl/cmd"
)

func main() {
	cmd.Execute()
}
