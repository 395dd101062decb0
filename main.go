package main

import (
	"os"

	"github.com/nkapoor/emcmd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
