package parser

import (
	"github.com/dhamidi/reparse/java/incremental"
	"github.com/dhamidi/reparse/java/lexer"
	"github.com/dhamidi/reparse/java/syntax"
)

// TokenSource is everything the grammar reads. A full parse reads from a
// scanner; an incremental parse reads from a source that serves old subtrees
// where it can.
//
// CurrentNode returns a node of the old tree starting at the current position
// that may be reused as is, or nil. The grammar asks for it only where it is
// about to parse a list element and accepts it only if its kind is one it
// would produce there.
//
// Tokens obtained before taking a rewind point must not be consumed after it:
// the source may serve a different token instance at the same position.
type TokenSource interface {
	Text() *syntax.Text
	AbsolutePosition() int

	CurrentNode() *syntax.Node
	ConsumeNode(node *syntax.Node)

	CurrentToken() *syntax.Token
	CurrentContextualToken() *syntax.Token
	PeekToken(n int) *syntax.Token
	ConsumeToken(tok *syntax.Token)

	GetRewindPoint() lexer.RewindPoint
	Rewind(rp lexer.RewindPoint)
	ReleaseRewindPoint(rp lexer.RewindPoint)

	TokenDiagnostics() []syntax.Diagnostic
}

var (
	_ TokenSource = (*lexer.Source)(nil)
	_ TokenSource = (*incremental.Source)(nil)
)
