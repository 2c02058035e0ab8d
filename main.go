package main

import (
	"os"

	"github.com/Yashshokeen-11/ALP/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
