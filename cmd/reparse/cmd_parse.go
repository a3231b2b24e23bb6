package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dhamidi/reparse/java/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool
	var diagnosticsOnly bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .java file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := parseFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if diagnosticsOnly {
				printDiagnostics(out, tree)
				return nil
			}
			return printTree(out, tree, outputFormat, includePositions)
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include positions and widths in the text dump")
	cmd.Flags().BoolVar(&diagnosticsOnly, "diagnostics", false, "print only diagnostics")

	return cmd
}

func parseFile(filename string) (*parser.Tree, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "read java file")
	}
	return parser.ParseString(string(data), parser.WithFile(filename)), nil
}
