// Package main provides the CLI entry point for sheetreport.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/sheetreport/pkg/sheetreport"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		reportError(stdout, stderr, err)
	}
	return exitCode(err)
}

func newRootCmd() *cobra.Command {
	opts := sheetreport.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "sheetreport [input.xlsx]",
		Short: "Summarize a workbook and export every sheet as JSON",
		Long: `sheetreport prints the columns, row count and first rows of every sheet
in an xlsx workbook and writes each sheet's data rows to <sheet>_data.json.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.InputPath = args[0]
			}
			_, err := sheetreport.Run(cmd.OutOrStdout(), opts)
			return err
		},
	}

	rootCmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", opts.OutputDir, "Directory for the exported JSON files")

	return rootCmd
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// reportError prints the error line to stdout and its kind and cause chain to stderr.
func reportError(stdout, stderr io.Writer, err error) {
	st := sheetreport.NewStyles(stdout)
	fmt.Fprintln(stdout, st.Error.Render("❌ Error: "+err.Error()))

	fmt.Fprintf(stderr, "kind: %s\n", sheetreport.KindOf(err))
	fmt.Fprintln(stderr, "trace:")
	writeTrace(stderr, err, 1)
}

// writeTrace writes err and every error it wraps, one per line, indented by depth.
func writeTrace(w io.Writer, err error, depth int) {
	if err == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(w, "%s%T: %v\n", indent, err, err)

	switch x := err.(type) {
	case interface{ Unwrap() []error }:
		for _, e := range x.Unwrap() {
			writeTrace(w, e, depth+1)
		}
	default:
		writeTrace(w, errors.Unwrap(err), depth+1)
	}
}
