package incremental

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dhamidi/reparse/java/lexer"
	"github.com/dhamidi/reparse/java/syntax"
)

// statements builds a compilation unit holding one expression statement per
// "name;" pair in input. It stands in for the grammar in tests that only
// need a tree of realistic shape.
func statements(t *testing.T, input string) (*syntax.Node, *syntax.Text) {
	t.Helper()
	text := syntax.NewText(input)
	l := lexer.New(text)

	var stmts []syntax.Element
	for {
		tok := l.Scan()
		if tok.Kind() == syntax.TokenEOF {
			root := syntax.NewNode(syntax.KindCompilationUnit, nil, syntax.EmptyList, syntax.NewList(stmts), tok)
			return root, text
		}
		require.Equal(t, syntax.TokenIdent, tok.Kind())
		semi := l.Scan()
		require.Equal(t, syntax.TokenSemicolon, semi.Kind())
		stmts = append(stmts, syntax.NewNode(syntax.KindExprStmt, syntax.NewNode(syntax.KindIdentifier, tok), semi))
	}
}

func stmt(root *syntax.Node, i int) *syntax.Node {
	return root.ChildAt(2).ChildAt(i).(*syntax.Node)
}
