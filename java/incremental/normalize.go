package incremental

import "github.com/dhamidi/reparse/java/syntax"

// maxLookahead is the number of tokens past the current one the grammar may
// inspect before committing to a production.
const maxLookahead = 1

// ExtendToAffectedRange widens change to the left so that it covers every
// token whose parse could have been influenced by the edited text. A token
// decided with k tokens of lookahead may have looked at an edited token, so
// the range starts maxLookahead+1 tokens before the edit. The end of the
// span is kept and the new length grows by the same amount as the span.
func ExtendToAffectedRange(change syntax.TextChangeRange, root syntax.Element) syntax.TextChangeRange {
	start := change.Span.Start
	for i := 0; start > 0 && i <= maxLookahead; i++ {
		tok := syntax.FindToken(root, start)
		if tok == nil {
			break
		}
		start = max(0, tok.FullStart()-1)
	}
	return syntax.TextChangeRange{
		Span:      syntax.SpanFromBounds(start, change.Span.End()),
		NewLength: change.NewLength + (change.Span.Start - start),
	}
}
