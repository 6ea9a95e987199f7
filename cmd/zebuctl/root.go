package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/zebu/parse"
	"github.com/joshuapare/zebu/report"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "zebuctl",
	Short: "Inspect and reformat AST dump files",
	Long: `zebuctl works with the bracketed AST dump format written by the zebu
tree printer. It can reparse, normalize, and summarize dumps, and renders
syntax errors with a source excerpt and caret underline.`,
	Version: "0.1.0",

	// Syntax errors are rendered with their source excerpt before the
	// command returns; cobra must not print them a second time.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// errSyntax marks an error already rendered by the excerpt reporter.
var errSyntax = errors.New("syntax error")

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSyntax) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// reportParseError renders a syntax error with its source excerpt and
// returns errSyntax so execute exits nonzero without reprinting it; other
// errors pass through unchanged.
func reportParseError(err error) error {
	var perr *parse.Error
	if !errors.As(err, &perr) {
		return err
	}
	r := report.New(os.Stderr)
	if noColor {
		r.SetColor(false)
	}
	r.Error(perr.Msg, perr.Path, perr.Span)
	return errSyntax
}

// printVerbose prints a message only in verbose mode.
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
