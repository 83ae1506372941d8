package main

import (
	"os"

	"github.com/usmank-dev/neonfolio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
