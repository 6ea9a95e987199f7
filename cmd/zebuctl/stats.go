package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/zebu/ast"
	"github.com/joshuapare/zebu/parse"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file>",
		Short: "Summarize a dump file",
		Long: `The stats command parses a bracketed AST dump and reports node counts
by kind, tree depth, dictionary contents, and arena usage.

Example:
  zebuctl stats tree.zb`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
}

func runStats(path string) error {
	tree := ast.New(ast.MinNodeSize)
	defer tree.Destroy()

	root, err := parse.File(tree, path)
	if err != nil {
		return reportParseError(err)
	}

	var kinds [6]int
	depth := measure(root, 1, kinds[:])

	header := color.New(color.Bold)
	if noColor {
		header.DisableColor()
	}

	fmt.Println(header.Sprint("Nodes"))
	fmt.Printf("  total:   %d\n", tree.NumNodes())
	for k := ast.Null; k <= ast.Pointer; k++ {
		if kinds[k] > 0 {
			fmt.Printf("  %-8s %d\n", k.String()+":", kinds[k])
		}
	}
	fmt.Printf("  depth:   %d\n", depth)

	fmt.Println(header.Sprint("Strings"))
	fmt.Printf("  unique:  %d\n", tree.Strings().Len())

	st := tree.ArenaStats()
	fmt.Println(header.Sprint("Arena"))
	fmt.Printf("  allocs:    %d\n", st.Allocs)
	fmt.Printf("  requested: %d bytes\n", st.Requested)
	fmt.Printf("  reserved:  %d bytes\n", st.Reserved)
	fmt.Printf("  blobs:     %d fixed, %d overflow\n", st.Blobs, st.Overflow)
	return nil
}

// measure counts nodes per kind and returns the subtree depth.
func measure(n *ast.Node, level int, kinds []int) int {
	kinds[n.Kind()]++
	deepest := level
	for c := range n.Children() {
		if d := measure(c, level+1, kinds); d > deepest {
			deepest = d
		}
	}
	return deepest
}
