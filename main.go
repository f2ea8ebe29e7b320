package main

import (
	"os"

	"github.com/beka-birhanu/pony-escape/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
