package incremental

import "github.com/dhamidi/reparse/java/syntax"

// ReusableNode reports whether node, found in the old tree at the absolute
// position pos of the new text, may be handed to the parser unchanged. change
// is the part of the edit not yet parsed past, or nil once it has been.
// Nodes without text are never reused.
func ReusableNode(node *syntax.Node, pos int, change *syntax.TextChangeRange) bool {
	if node == nil || node.FullWidth() == 0 {
		return false
	}
	if intersectsChange(pos, node.FullWidth(), change) {
		return false
	}
	return !node.IsIncrementallyUnusable()
}

// ReusableToken is ReusableNode for tokens. Tokens whose kind is only
// produced by a contextual rescan are never reused, since the grammar may ask
// for a different scan at the same position.
func ReusableToken(tok *syntax.Token, pos int, change *syntax.TextChangeRange, contextual func(syntax.TokenKind) bool) bool {
	if tok == nil {
		return false
	}
	if intersectsChange(pos, tok.FullWidth(), change) {
		return false
	}
	if tok.IsIncrementallyUnusable() {
		return false
	}
	return contextual == nil || !contextual(tok.Kind())
}

func intersectsChange(pos, width int, change *syntax.TextChangeRange) bool {
	return change != nil && change.Span.IntersectsWith(pos, width)
}
