package main

import (
	"os"

	"github.com/mistakeknot/tasklane/internal/tasklane/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
