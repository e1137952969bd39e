package main

import (
	"os"

	"github.com/wasteflow/wasteflow/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
