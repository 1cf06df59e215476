package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.Red("Erreur : %v\n", err)
		os.Exit(1)
	}
}
