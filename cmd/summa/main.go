package main

import (
	"os"

	"github.com/msto63/summa/cmd/summa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
