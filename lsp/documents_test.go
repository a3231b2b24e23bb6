package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const uri = "file:///src/A.java"

func edit(startLine, startChar, endLine, endChar uint32, text string) protocol.TextDocumentContentChangeEvent {
	return protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: protocol.Position{Line: startLine, Character: startChar},
			End:   protocol.Position{Line: endLine, Character: endChar},
		},
		Text: text,
	}
}

func TestDocumentsAppliesChangesInOrder(t *testing.T) {
	docs := NewDocuments(true)
	diags := docs.Open(uri, 1, "class A {\n  int x;\n}\n")
	assert.Empty(t, diags)

	diags, err := docs.Change(uri, 2, []any{
		edit(1, 6, 1, 7, "count"),
		edit(2, 0, 2, 0, "  int y;\n"),
	})
	require.NoError(t, err)
	assert.Empty(t, diags)

	text, ok := docs.Text(uri)
	require.True(t, ok)
	assert.Equal(t, "class A {\n  int count;\n  int y;\n}\n", text)

	symbols := docs.Symbols(uri)
	require.Len(t, symbols, 1)
	require.Len(t, symbols[0].Children, 2)
	assert.Equal(t, "count", symbols[0].Children[0].Name)
	assert.Equal(t, "y", symbols[0].Children[1].Name)
}

func TestDocumentsReplacesWholeText(t *testing.T) {
	docs := NewDocuments(false)
	docs.Open(uri, 1, "class A { }")

	diags, err := docs.Change(uri, 2, []any{
		protocol.TextDocumentContentChangeEventWhole{Text: "class A { int x }"},
	})
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, "expected ';'", diags[0].Message)

	text, _ := docs.Text(uri)
	assert.Equal(t, "class A { int x }", text)
}

func TestDocumentsReusesUnchangedMembers(t *testing.T) {
	docs := NewDocuments(true)
	docs.Open(uri, 1, "class A {\n    int f() { return 1; }\n    int g() { return 2; }\n    int h() { return 3; }\n}\n")

	_, err := docs.Change(uri, 2, []any{edit(2, 21, 2, 22, "20")})
	require.NoError(t, err)

	stats, ok := docs.Stats(uri)
	require.True(t, ok)
	assert.Equal(t, 2, stats.ReusedNodes)
	assert.Equal(t, docs.pool.Created(), docs.pool.Idle())

	text, _ := docs.Text(uri)
	assert.Contains(t, text, "return 20;")
}

func TestDocumentsRejectsBadChanges(t *testing.T) {
	docs := NewDocuments(false)

	_, err := docs.Change(uri, 2, []any{edit(0, 0, 0, 0, "x")})
	assert.ErrorContains(t, err, "not open")

	docs.Open(uri, 1, "class A { }")
	_, err = docs.Change(uri, 2, []any{edit(0, 0, 0, 0, "x"), "bogus"})
	assert.ErrorContains(t, err, "unsupported content change string")

	text, _ := docs.Text(uri)
	assert.Equal(t, "class A { }", text, "a failed batch leaves the document alone")

	docs.Close(uri)
	_, ok := docs.Text(uri)
	assert.False(t, ok)
}

func TestDocumentsDiagnosticPositions(t *testing.T) {
	docs := NewDocuments(false)
	diags := docs.Open(uri, 1, "class A {\n  void f() { x = 1 }\n}")

	require.Len(t, diags, 1)
	assert.Equal(t, "expected ';'", diags[0].Message)
	assert.Equal(t, protocol.Range{
		Start: protocol.Position{Line: 1, Character: 19},
		End:   protocol.Position{Line: 1, Character: 19},
	}, diags[0].Range)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
}
