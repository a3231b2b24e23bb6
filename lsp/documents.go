package lsp

import (
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/reparse/java/incremental"
	"github.com/dhamidi/reparse/java/parser"
	"github.com/dhamidi/reparse/java/syntax"
)

var log = commonlog.GetLogger("reparse.lsp")

type document struct {
	version protocol.Integer
	tree    *parser.Tree
}

// Documents holds the parse trees of the open documents. Every change is
// reparsed incrementally against the previous tree. All documents share one
// cursor pool.
type Documents struct {
	mu     sync.Mutex
	docs   map[protocol.DocumentUri]*document
	pool   *incremental.CursorPool
	verify bool
}

// NewDocuments creates an empty store. With verify set, every incremental
// parse is checked against a full parse of the same text.
func NewDocuments(verify bool) *Documents {
	return &Documents{
		docs:   make(map[protocol.DocumentUri]*document),
		pool:   incremental.NewCursorPool(),
		verify: verify,
	}
}

// Open parses text from scratch and returns the diagnostics of the document.
func (d *Documents) Open(uri protocol.DocumentUri, version protocol.Integer, text string) []protocol.Diagnostic {
	d.mu.Lock()
	defer d.mu.Unlock()

	tree := parser.ParseString(text, parser.WithFile(uriToPath(uri)))
	d.docs[uri] = &document{version: version, tree: tree}
	log.Debugf("opened %s: %d bytes, %d diagnostics", uri, len(text), len(tree.Diagnostics))
	return diagnostics(tree)
}

// Change applies content change events, each relative to the text left by
// the previous one, and reparses the document once for the whole batch.
func (d *Documents) Change(uri protocol.DocumentUri, version protocol.Integer, events []any) ([]protocol.Diagnostic, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.docs[uri]
	if !ok {
		return nil, errors.Newf("change to %s, which is not open", uri)
	}

	content := doc.tree.Text.String()
	changes := make([]syntax.TextChangeRange, 0, len(events))
	for _, event := range events {
		var change syntax.TextChangeRange
		var err error
		content, change, err = applyEvent(content, event)
		if err != nil {
			return nil, errors.Wrapf(err, "change %s to version %d", uri, version)
		}
		changes = append(changes, change)
	}

	doc.tree = d.reparse(doc.tree, syntax.CollapseChangeRanges(changes), syntax.NewText(content))
	doc.version = version
	return diagnostics(doc.tree), nil
}

func (d *Documents) Close(uri protocol.DocumentUri) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.docs, uri)
}

// Text returns the current content of an open document.
func (d *Documents) Text(uri protocol.DocumentUri) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	doc, ok := d.docs[uri]
	if !ok {
		return "", false
	}
	return doc.tree.Text.String(), true
}

// Stats describes what the last parse of a document reused.
func (d *Documents) Stats(uri protocol.DocumentUri) (incremental.Stats, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	doc, ok := d.docs[uri]
	if !ok {
		return incremental.Stats{}, false
	}
	return doc.tree.Stats, true
}

// Symbols returns the declarations of a document as a hierarchy.
func (d *Documents) Symbols(uri protocol.DocumentUri) []protocol.DocumentSymbol {
	d.mu.Lock()
	defer d.mu.Unlock()
	doc, ok := d.docs[uri]
	if !ok {
		return nil
	}
	return symbols(doc.tree)
}

func (d *Documents) reparse(old *parser.Tree, change syntax.TextChangeRange, text *syntax.Text) *parser.Tree {
	file := old.File
	tree, err := parser.IncrementalParse(old, change, text, parser.WithCursorPool(d.pool))
	if err != nil {
		log.Errorf("%s: incremental parse failed, parsing from scratch: %s", file, err)
		return parser.Parse(text, parser.WithFile(file))
	}
	if d.verify {
		full := parser.Parse(text, parser.WithFile(file))
		if err := syntax.Compare(full.Root, tree.Root); err != nil {
			log.Errorf("%s: incremental parse after %v differs from full parse: %s", file, change, err)
			return full
		}
	}
	return tree
}

func applyEvent(content string, event any) (string, syntax.TextChangeRange, error) {
	switch e := event.(type) {
	case protocol.TextDocumentContentChangeEvent:
		if e.Range == nil {
			return e.Text, syntax.ChangeRangeBetween(syntax.NewText(content), syntax.NewText(e.Text)), nil
		}
		start, end := e.Range.IndexesIn(content)
		if start > end {
			return "", syntax.TextChangeRange{}, errors.Newf("range %+v ends before it starts", *e.Range)
		}
		change := syntax.NewChangeRange(syntax.SpanFromBounds(start, end), len(e.Text))
		return content[:start] + e.Text + content[end:], change, nil
	case protocol.TextDocumentContentChangeEventWhole:
		return e.Text, syntax.ChangeRangeBetween(syntax.NewText(content), syntax.NewText(e.Text)), nil
	}
	return "", syntax.TextChangeRange{}, errors.Newf("unsupported content change %T", event)
}

func diagnostics(tree *parser.Tree) []protocol.Diagnostic {
	lines := newLineIndex(tree.Text.String())
	severity := protocol.DiagnosticSeverityError
	source := lsName
	diags := make([]protocol.Diagnostic, 0, len(tree.Diagnostics))
	for _, d := range tree.Diagnostics {
		diags = append(diags, protocol.Diagnostic{
			Range:    lines.rangeOf(d.Start, d.Start+d.Length),
			Severity: &severity,
			Source:   &source,
			Message:  d.Message,
		})
	}
	return diags
}
