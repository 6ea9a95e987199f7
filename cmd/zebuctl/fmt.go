package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/zebu/ast"
	"github.com/joshuapare/zebu/parse"
)

func init() {
	rootCmd.AddCommand(newFmtCmd())
}

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Reparse a dump file and print it normalized",
		Long: `The fmt command parses a bracketed AST dump and reprints it on one
line with canonical spacing and quoting.

Example:
  zebuctl fmt tree.zb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFmt(args[0])
		},
	}
}

func runFmt(path string) error {
	printVerbose("Parsing dump: %s\n", path)

	tree := ast.New(ast.MinNodeSize)
	defer tree.Destroy()

	root, err := parse.File(tree, path)
	if err != nil {
		return reportParseError(err)
	}

	if err := ast.Fprint(os.Stdout, root); err != nil {
		return fmt.Errorf("failed to print tree: %w", err)
	}
	fmt.Println()
	return nil
}
