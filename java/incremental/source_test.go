package incremental

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/reparse/java/lexer"
	"github.com/dhamidi/reparse/java/syntax"
)

// editSource parses "a; b; c; d; e;" and prepares a source for the text with
// d replaced by dd.
func editSource(t *testing.T, pool *CursorPool) (*syntax.Node, *Source) {
	t.Helper()
	root, _ := statements(t, "a; b; c; d; e;")
	change := syntax.NewChangeRange(syntax.TextSpan{Start: 9, Length: 1}, 2)
	text := syntax.NewText("a; b; c; dd; e;")
	return root, NewSource(root, change, text, lexer.NewSource(text), WithCursorPool(pool))
}

func TestSourceReusesAroundEdit(t *testing.T) {
	pool := NewCursorPool()
	root, src := editSource(t, pool)
	oldSemi := stmt(root, 3).ChildAt(1).(*syntax.Token)
	last := stmt(root, 4)

	first := src.CurrentNode()
	require.Same(t, stmt(root, 0), first)
	src.ConsumeNode(first)
	assert.Equal(t, 3, src.AbsolutePosition())

	// the second statement ends where the normalized change starts
	ident := src.CurrentNode()
	require.NotNil(t, ident)
	assert.Equal(t, syntax.KindIdentifier, ident.Kind())
	b := src.CurrentToken()
	assert.Same(t, ident.ChildAt(0), b)
	src.ConsumeToken(b)

	for src.AbsolutePosition() < 11 {
		assert.Nil(t, src.CurrentNode())
		tok := src.CurrentToken()
		assert.Same(t, src.Text(), tok.Source(), "token %q is scanned", tok.Text())
		src.ConsumeToken(tok)
	}

	semi := src.CurrentToken()
	require.Same(t, oldSemi, semi)
	assert.Equal(t, 11, semi.FullStart())
	src.ConsumeToken(semi)

	node := src.CurrentNode()
	require.Same(t, last, node)
	assert.Equal(t, 13, node.FullStart())
	assert.Equal(t, 14, node.ChildAt(1).FullStart())
	assert.Equal(t, "e", node.ChildAt(0).(*syntax.Node).ChildAt(0).(*syntax.Token).Text())
	src.ConsumeNode(node)

	eof := src.CurrentToken()
	assert.Equal(t, syntax.TokenEOF, eof.Kind())
	src.ConsumeToken(eof)

	stats := src.Stats()
	assert.Equal(t, 2, stats.ReusedNodes)
	assert.Equal(t, 2, stats.ReusedTokens)
	assert.Equal(t, 5, stats.ScannedTokens)
	assert.Equal(t, 3, stats.Skipped)

	src.Close()
	assert.Equal(t, pool.Created(), pool.Idle())
}

func TestSourceRewindRestoresCursor(t *testing.T) {
	pool := NewCursorPool()
	root, src := editSource(t, pool)

	rp := src.GetRewindPoint()
	assert.Nil(t, src.CurrentNode(), "nothing is reused while speculating")
	src.ConsumeToken(src.CurrentToken())
	src.ConsumeToken(src.CurrentToken())
	assert.Equal(t, 3, src.AbsolutePosition())

	src.Rewind(rp)
	src.ReleaseRewindPoint(rp)
	assert.Equal(t, 0, src.AbsolutePosition())
	assert.Same(t, stmt(root, 0), src.CurrentNode())

	src.Close()
	assert.Equal(t, 2, pool.Created())
	assert.Equal(t, 2, pool.Idle())
}

func TestSourceRewindAfterPassingChange(t *testing.T) {
	pool := NewCursorPool()
	root, src := editSource(t, pool)

	first := src.CurrentNode()
	require.Same(t, stmt(root, 0), first)
	src.ConsumeNode(first)
	ident := src.CurrentNode()
	require.NotNil(t, ident)
	src.ConsumeNode(ident)
	assert.Equal(t, 4, src.AbsolutePosition())

	delta := src.changeDelta
	changeRange := src.changeRange
	require.NotNil(t, changeRange)
	path := append([]piece(nil), src.cursor.pieces[:src.cursor.current+1]...)

	speculate := func() []syntax.TokenKind {
		var kinds []syntax.TokenKind
		for tok := src.CurrentToken(); tok.Kind() != syntax.TokenEOF; tok = src.CurrentToken() {
			kinds = append(kinds, tok.Kind())
			src.ConsumeToken(tok)
		}
		return kinds
	}

	rp := src.GetRewindPoint()
	kinds := speculate()
	assert.Equal(t, 15, src.AbsolutePosition())
	assert.Nil(t, src.changeRange, "the change has been passed")
	assert.Equal(t, -10, src.changeDelta)

	src.Rewind(rp)
	assert.Equal(t, 4, src.AbsolutePosition())
	assert.Equal(t, delta, src.changeDelta)
	assert.Same(t, changeRange, src.changeRange)
	assert.Equal(t, len(path)-1, src.cursor.current)
	assert.Equal(t, path, src.cursor.pieces[:src.cursor.current+1])

	assert.Equal(t, kinds, speculate())
	src.Rewind(rp)
	src.ReleaseRewindPoint(rp)

	src.Close()
	assert.Equal(t, pool.Created(), pool.Idle())
}

func TestSourceCloseReturnsOutstandingCursors(t *testing.T) {
	pool := NewCursorPool()
	_, src := editSource(t, pool)
	src.GetRewindPoint()
	src.GetRewindPoint()

	src.Close()
	assert.Equal(t, 3, pool.Created())
	assert.Equal(t, 3, pool.Idle())
}

func TestSourceOldTokenInsideSpeculation(t *testing.T) {
	root, src := editSource(t, NewCursorPool())
	tok := src.CurrentToken()
	require.Same(t, syntax.FirstToken(root), tok)

	src.GetRewindPoint()
	assert.Panics(t, func() { src.ConsumeToken(tok) })
}

func TestSourcePeekToken(t *testing.T) {
	root, src := editSource(t, NewCursorPool())

	assert.Same(t, stmt(root, 0).ChildAt(1), src.PeekToken(1))
	assert.Same(t, syntax.FirstToken(stmt(root, 1)), src.PeekToken(2))

	semi := src.PeekToken(3)
	assert.Equal(t, syntax.TokenSemicolon, semi.Kind())
	assert.NotSame(t, stmt(root, 1).ChildAt(1), semi, "the token touching the change is scanned")
	assert.Equal(t, 4, semi.FullStart())
}

func TestSourceContextualTokenIsScanned(t *testing.T) {
	oldText := syntax.NewText("a >> b")
	l := lexer.New(oldText)
	a := l.Scan()
	gt1 := l.Scan()
	gt2 := l.Scan()
	b := l.Scan()
	eof := l.Scan()
	root := syntax.NewNode(syntax.KindCompilationUnit, a, gt1, gt2, b, eof)

	text := syntax.NewText("a >> b;")
	change := syntax.NewChangeRange(syntax.TextSpan{Start: 6, Length: 0}, 1)
	src := NewSource(root, change, text, lexer.NewSource(text))
	defer src.Close()

	src.ConsumeToken(src.CurrentToken())
	assert.Same(t, gt1, src.CurrentToken())

	shr := src.CurrentContextualToken()
	assert.Equal(t, syntax.TokenShr, shr.Kind())
	assert.NotSame(t, gt1, shr)
	src.ConsumeToken(shr)
	assert.Equal(t, 5, src.AbsolutePosition())
}
