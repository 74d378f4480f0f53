// Package main is the entry point for the catalogctl CLI.
package main

import (
	"os"

	"fsanano/item-catalog/cmd/catalogctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
