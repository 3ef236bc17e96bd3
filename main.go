package main

import (
	"os"

	"github.com/boaziz1447-maker/omar-alessa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
