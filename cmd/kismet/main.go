// Command kismet is a thin REPL over the lex → parse → lower → eval
// pipeline: it reads lines from standard input, runs each through the
// pipeline, and prints whichever outputs --print selects.
package main

import (
	"fmt"
	"os"

	"github.com/astralarya/kismet/cmd/kismet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
