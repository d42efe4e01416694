// Command tython builds a deferred expression from command-line steps and
// evaluates it against a seed.
package main

import (
	"fmt"
	"os"

	"github.com/rxonhe/go-tython/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tython:", err)
		os.Exit(1)
	}
}
