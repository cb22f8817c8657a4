// Package main is the entry point for avito-client.
package main

import (
	"os"

	"github.com/donaldgifford/avito-client/cmd/avito-client/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
