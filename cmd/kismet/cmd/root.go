// Package cmd wires the kismet REPL into a single cobra command: one local
// --print flag plus RunE.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// printKinds lists every valid --print kind, in validation order.
var printKinds = []string{"debug", "ast", "loopback", "output", "error"}

// defaultPrintKinds is the REPL's set when --print is never given.
var defaultPrintKinds = []string{"output", "error"}

var printFlags []string

var rootCmd = &cobra.Command{
	Use:   "kismet",
	Short: "A REPL for the kismet dice-expression language",
	Long: `kismet reads expressions from standard input, runs each through the
lex -> parse -> lower -> eval pipeline, and prints the result.

Examples:
  # Start the REPL with default output
  kismet

  # Show the parsed AST and its round-tripped source form too
  kismet --print ast --print loopback`,
	RunE: runRepl,
}

func init() {
	rootCmd.Flags().StringArrayVar(&printFlags, "print", nil,
		fmt.Sprintf("output to print per line, repeatable (one of %v; default %v)", printKinds, defaultPrintKinds))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func resolvePrintSet(flags []string) (map[string]bool, error) {
	if len(flags) == 0 {
		flags = defaultPrintKinds
	}
	set := make(map[string]bool, len(flags))
	valid := make(map[string]bool, len(printKinds))
	for _, k := range printKinds {
		valid[k] = true
	}
	for _, f := range flags {
		if !valid[f] {
			return nil, fmt.Errorf("invalid --print kind %q (must be one of %v)", f, printKinds)
		}
		set[f] = true
	}
	return set, nil
}
