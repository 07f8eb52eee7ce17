package main

import (
	"os"

	"github.com/texunc/texunc/cmd/texunc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
