package main

import (
	"os"

	"github.com/go-drift/tablediff/cmd/tablediff/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
