package parser

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/reparse/java/incremental"
	"github.com/dhamidi/reparse/java/lexer"
	"github.com/dhamidi/reparse/java/syntax"
)

var log = commonlog.GetLogger("reparse.parser")

// Tree is the result of parsing one version of a file.
type Tree struct {
	File string
	Root *syntax.Node
	Text *syntax.Text
	// Diagnostics holds scanner and parser diagnostics ordered by position.
	Diagnostics []syntax.Diagnostic
	// Stats describes what an incremental parse reused. It is zero for a
	// full parse.
	Stats incremental.Stats
}

// Parse parses text from scratch.
func Parse(text *syntax.Text, opts ...Option) *Tree {
	p := newParser(opts...)
	src := lexer.NewSource(text)
	p.src = src
	root := p.parseCompilationUnit()
	return p.newTree(root, text, src.TokenDiagnostics(), incremental.Stats{})
}

// ParseString parses s from scratch.
func ParseString(s string, opts ...Option) *Tree {
	return Parse(syntax.NewText(s), opts...)
}

// IncrementalParse parses text, the result of applying change to old.Text,
// reusing the parts of old the change cannot have affected. The result is
// structurally identical to Parse(text).
//
// Reused subtrees move into the new tree, so old must not be used after this
// call. If change is empty, old itself is returned.
//
// A violated internal invariant aborts the parse and is returned as an error
// for which errors.HasAssertionFailure holds.
func IncrementalParse(old *Tree, change syntax.TextChangeRange, text *syntax.Text, opts ...Option) (tree *Tree, err error) {
	if change.IsUnchanged() {
		return old, nil
	}
	if change.Span.Start < 0 || change.Span.End() > old.Text.Len() || change.NewLength < 0 {
		return nil, errors.Newf("change %v does not fit the old text of length %d", change, old.Text.Len())
	}
	if old.Text.Len()+change.Delta() != text.Len() {
		return nil, errors.Newf("change %v turns %d bytes into %d, but the new text has %d",
			change, old.Text.Len(), old.Text.Len()+change.Delta(), text.Len())
	}

	defer func() {
		if r := recover(); r != nil {
			failure, ok := r.(error)
			if !ok || !errors.HasAssertionFailure(failure) {
				panic(r)
			}
			tree, err = nil, errors.Wrapf(failure, "incremental parse of %q", old.File)
		}
	}()

	p := newParser(append([]Option{WithFile(old.File)}, opts...)...)
	src := incremental.NewSource(old.Root, change, text, lexer.NewSource(text), incremental.WithCursorPool(p.pool))
	defer src.Close()
	p.src = src

	root := p.parseCompilationUnit()
	stats := src.Stats()
	log.Debugf("%s: reparsed after %v: %d nodes and %d tokens reused, %d tokens scanned",
		p.file, change, stats.ReusedNodes, stats.ReusedTokens, stats.ScannedTokens)
	return p.newTree(root, text, src.TokenDiagnostics(), stats), nil
}

// Edit applies a replacement of change.Span to the tree's text and parses the
// result incrementally.
func (t *Tree) Edit(change syntax.TextChangeRange, replacement string, opts ...Option) (*Tree, error) {
	if len(replacement) != change.NewLength {
		return nil, errors.Newf("replacement of %d bytes does not match change %v", len(replacement), change)
	}
	if change.Span.Start < 0 || change.Span.End() > t.Text.Len() {
		return nil, errors.Newf("change %v does not fit the text of length %d", change, t.Text.Len())
	}
	return IncrementalParse(t, change, syntax.ApplyChange(t.Text, change, replacement), opts...)
}

func (p *Parser) newTree(root *syntax.Node, text *syntax.Text, scanned []syntax.Diagnostic, stats incremental.Stats) *Tree {
	diags := slices.Concat(scanned, syntax.TreeDiagnostics(root))
	slices.SortStableFunc(diags, func(a, b syntax.Diagnostic) int {
		return a.Start - b.Start
	})
	return &Tree{
		File:        p.file,
		Root:        root,
		Text:        text,
		Diagnostics: diags,
		Stats:       stats,
	}
}
