// Package main is the entry point for the murcielago CLI.
package main

import (
	"os"

	"github.com/f3rmion/murcielago/cmd/murcielago/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
