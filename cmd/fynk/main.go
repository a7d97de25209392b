package main

import (
	"os"

	"github.com/fynk-lang/fynk/cmd/fynk/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
