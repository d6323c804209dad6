// Command checkkeys is a standalone alias for `tagcheck keys`.
package main

import (
	"os"

	"github.com/ariel-frischer/tagcheck/internal/cli"
)

func main() {
	os.Exit(cli.Run(append([]string{"keys"}, os.Args[1:]...), os.Stdout, os.Stderr))
}
