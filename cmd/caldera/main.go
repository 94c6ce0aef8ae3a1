package main

import (
	"os"

	"github.com/calderaviz/caldera/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
