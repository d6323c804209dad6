// Command checktags is a standalone alias for `tagcheck tags`.
package main

import (
	"os"

	"github.com/ariel-frischer/tagcheck/internal/cli"
)

func main() {
	os.Exit(cli.Run(append([]string{"tags"}, os.Args[1:]...), os.Stdout, os.Stderr))
}
