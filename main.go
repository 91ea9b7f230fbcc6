package main

import (
	"os"

	"github.com/souravmalhi93-eng/Vaani-backend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
