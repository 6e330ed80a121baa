package main

import (
	"os"

	"lumen/cmd/lumen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
