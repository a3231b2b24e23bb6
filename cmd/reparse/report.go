package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/dhamidi/reparse/format"
	"github.com/dhamidi/reparse/java/incremental"
	"github.com/dhamidi/reparse/java/parser"
	"github.com/dhamidi/reparse/java/syntax"
)

// printTree writes the tree in the requested output format. The text format
// is followed by the diagnostics; json carries them inside the document.
func printTree(w io.Writer, tree *parser.Tree, outputFormat string, includePositions bool) error {
	switch outputFormat {
	case "text":
		fmt.Fprint(w, syntax.Dump(tree.Root, includePositions))
		printDiagnostics(w, tree)
		return nil
	case "json":
		return errors.Wrap(format.NewTreeJSONEncoder(w).Encode(tree), "encode json")
	}
	return errors.Newf("unknown format: %s", outputFormat)
}

// location turns a byte offset into a 1-based line and byte column.
func location(text string, offset int) (line, col int) {
	before := text[:min(offset, len(text))]
	line = strings.Count(before, "\n") + 1
	col = offset - strings.LastIndexByte(before, '\n')
	return line, col
}

func printDiagnostics(w io.Writer, tree *parser.Tree) {
	text := tree.Text.String()
	for _, d := range tree.Diagnostics {
		line, col := location(text, d.Start)
		fmt.Fprintf(w, "%s:%d:%d: %s\n", tree.File, line, col, d.Message)
	}
}

func printStats(w io.Writer, stats incremental.Stats) {
	fmt.Fprintf(w, "reused %d nodes and %d tokens, scanned %d tokens, crumbled %d nodes, skipped %d elements\n",
		stats.ReusedNodes, stats.ReusedTokens, stats.ScannedTokens, stats.Crumbled, stats.Skipped)
}

func addStats(total *incremental.Stats, s incremental.Stats) {
	total.ReusedNodes += s.ReusedNodes
	total.ReusedTokens += s.ReusedTokens
	total.ScannedTokens += s.ScannedTokens
	total.Crumbled += s.Crumbled
	total.Skipped += s.Skipped
}
