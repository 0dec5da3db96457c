// Package main is the entry point for the obs-portable CLI.
package main

import (
	"github.com/joho/godotenv"

	"obsportable.dev/pkg/obsportable/cmd"
)

func main() {
	_ = godotenv.Load()

	cmd.Execute()
}
