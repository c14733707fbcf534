package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/astralarya/kismet/internal/ast"
	"github.com/astralarya/kismet/internal/eval"
	"github.com/astralarya/kismet/internal/kerr"
	"github.com/astralarya/kismet/internal/lower"
	"github.com/astralarya/kismet/internal/parser"
	"github.com/astralarya/kismet/pkg/span"
)

func runRepl(cmd *cobra.Command, args []string) error {
	printSet, err := resolvePrintSet(printFlags)
	if err != nil {
		return err
	}

	if printSet["debug"] {
		dumpDebug()
	}

	fmt.Println("Welcome to kismet! Type expressions, or 'exit' to quit.")

	symtab := eval.New()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "exit" {
			fmt.Println("Goodbye <3")
			return nil
		}
		runLine(line, symtab, printSet)
	}
	return nil
}

// dumpDebug prints a structured dump of the --print configuration once,
// before the loop starts.
func dumpDebug() {
	data, err := yaml.Marshal(map[string]any{"print": printFlags})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		return
	}
	fmt.Print(string(data))
}

func runLine(line string, symtab *eval.SymbolTable, printSet map[string]bool) {
	prog, perr := parser.Parse(line)
	if perr != nil {
		printError(printSet, perr)
		return
	}
	if printSet["ast"] {
		printAST(prog)
	}
	if printSet["loopback"] {
		fmt.Println(prog.Value.String())
	}

	block, lerr := lower.Program(prog.Value)
	if lerr != nil {
		printError(printSet, lerr)
		return
	}
	val, eerr := eval.Block(block, symtab)
	if eerr != nil {
		printError(printSet, eerr)
		return
	}
	if printSet["output"] {
		fmt.Println(val.String())
	}
}

func printError(printSet map[string]bool, err *kerr.Error) {
	if printSet["error"] {
		fmt.Println("ERROR: " + err.Error())
	}
}

func printAST(prog span.Node[ast.Program]) {
	data, err := yaml.Marshal(prog.Value)
	if err != nil {
		fmt.Println(prog.Value.String())
		return
	}
	fmt.Print(string(data))
}
