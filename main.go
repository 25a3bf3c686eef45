package main

import (
	"os"

	"github.com/rectlabs/rectarea/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
