package main

import (
	"os"

	"github.com/hiro2620/sphero-controll/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
