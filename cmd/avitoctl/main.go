// Package main is the entry point for the avitoctl CLI client.
package main

import (
	"github.com/donaldgifford/avito-client/cmd/avitoctl/cmd"
)

func main() {
	cmd.Execute()
}
