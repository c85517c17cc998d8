package main

import (
	"os"

	"github.com/skx/forthc/cmd/forthc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
