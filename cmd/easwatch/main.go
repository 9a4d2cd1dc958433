package main

import (
	"os"

	"github.com/gbertoni/easwatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
