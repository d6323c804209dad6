package main

import (
	"os"

	"github.com/ariel-frischer/tagcheck/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
