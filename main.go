package main

import (
	"os"

	"github.com/abhisek/continha/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
