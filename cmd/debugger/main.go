package main

import (
	"os"

	"github.com/msto63/debugger/cmd/debugger/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
