package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dhamidi/reparse/java/parser"
	"github.com/dhamidi/reparse/java/syntax"
)

func newEditCmd() *cobra.Command {
	var start, length int
	var text string
	var verify bool
	var write bool
	var includePositions bool
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "edit <file>",
		Short: "Apply one edit to a .java file and reparse it incrementally",
		Long: `Parses the file, replaces --length bytes at --start with --text and
reparses the result incrementally. Prints the new tree, its diagnostics and
what the incremental parse reused.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			old, err := parseFile(args[0])
			if err != nil {
				return err
			}

			change := syntax.NewChangeRange(syntax.TextSpan{Start: start, Length: length}, len(text))
			tree, err := old.Edit(change, text)
			if err != nil {
				return errors.Wrapf(err, "edit %s", args[0])
			}

			out := cmd.OutOrStdout()
			if err := printTree(out, tree, outputFormat, includePositions); err != nil {
				return err
			}
			if outputFormat == "text" {
				printStats(out, tree.Stats)
			}

			if verify {
				if err := verifyTree(tree); err != nil {
					return err
				}
				fmt.Fprintln(out, "incremental parse matches full parse")
			}

			if write {
				if err := os.WriteFile(args[0], []byte(tree.Text.String()), 0o644); err != nil {
					return errors.Wrap(err, "write java file")
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "byte offset where the edit starts")
	cmd.Flags().IntVar(&length, "length", 0, "number of bytes to replace")
	cmd.Flags().StringVar(&text, "text", "", "replacement text")
	cmd.Flags().BoolVar(&verify, "verify", false, "compare the result against a full parse")
	cmd.Flags().BoolVar(&write, "write", false, "write the edited text back to the file")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include positions and widths in the text dump")

	return cmd
}

// verifyTree compares an incrementally parsed tree against a full parse of
// its text.
func verifyTree(tree *parser.Tree) error {
	full := parser.Parse(tree.Text, parser.WithFile(tree.File))
	if err := syntax.Compare(full.Root, tree.Root); err != nil {
		return errors.Wrap(err, "incremental parse differs from full parse")
	}
	if len(full.Diagnostics) != len(tree.Diagnostics) {
		return errors.Newf("incremental parse has %d diagnostics, full parse has %d",
			len(tree.Diagnostics), len(full.Diagnostics))
	}
	for i, d := range full.Diagnostics {
		if tree.Diagnostics[i] != d {
			return errors.Newf("diagnostic %d differs: want %+v, got %+v", i, d, tree.Diagnostics[i])
		}
	}
	return nil
}
