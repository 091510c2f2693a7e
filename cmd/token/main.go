// Package main is the entry point for the manager token CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/parsonage/property-ops/cmd/token/cmd"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
