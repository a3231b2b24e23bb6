package lexer

import "github.com/dhamidi/reparse/java/syntax"

// RewindPoint is an opaque handle to a saved source position. Rewind points
// nest: they must be released in the reverse order they were taken, whether
// or not the source was rewound to them.
type RewindPoint int

type savedPosition struct {
	index    int
	position int
}

// Source serves tokens scanned from new text to the parser. Tokens are kept
// in a window starting at the oldest outstanding rewind point, so peeking and
// rewinding do not rescan. While any rewind point is outstanding the source
// is pinned and cannot be repositioned.
type Source struct {
	text     *syntax.Text
	lexer    *Lexer
	window   []*syntax.Token
	index    int
	position int
	saved    []savedPosition
	diags    []syntax.Diagnostic
}

func NewSource(text *syntax.Text) *Source {
	return &Source{
		text:  text,
		lexer: New(text),
	}
}

func (s *Source) Text() *syntax.Text {
	return s.text
}

// AbsolutePosition is the full start of the current token.
func (s *Source) AbsolutePosition() int {
	return s.position
}

func (s *Source) IsPinned() bool {
	return len(s.saved) > 0
}

// CurrentNode always returns nil: a scanner has no old tree to reuse.
func (s *Source) CurrentNode() *syntax.Node {
	return nil
}

func (s *Source) ConsumeNode(n *syntax.Node) {
	syntax.Assertf(false, "scanner source cannot consume node %v", n.Kind())
}

func (s *Source) CurrentToken() *syntax.Token {
	return s.PeekToken(0)
}

// PeekToken returns the token n positions after the current one.
func (s *Source) PeekToken(n int) *syntax.Token {
	syntax.Assertf(n >= 0, "negative peek distance %d", n)
	for len(s.window) <= s.index+n {
		s.window = append(s.window, s.lexer.Scan())
		s.diags = append(s.diags, s.lexer.TakeDiagnostics()...)
	}
	return s.window[s.index+n]
}

// CurrentContextualToken rescans the current token allowing the operators
// that begin with '>'. Tokens after it in the window are discarded.
func (s *Source) CurrentContextualToken() *syntax.Token {
	current := s.CurrentToken()
	if current.Kind() != syntax.TokenGT {
		return current
	}
	s.truncate(s.index, s.position)
	tok := s.lexer.ScanContextual()
	s.diags = append(s.diags, s.lexer.TakeDiagnostics()...)
	s.window = append(s.window, tok)
	return tok
}

func (s *Source) ConsumeToken(tok *syntax.Token) {
	syntax.Assertf(s.index < len(s.window) && s.window[s.index] == tok, "consumed token %v is not the current token", tok.Kind())
	s.index++
	s.position += tok.FullWidth()
	s.compact()
}

// ResetToPosition moves the source to an absolute token boundary, dropping
// everything scanned ahead. It is an error to call this while pinned.
func (s *Source) ResetToPosition(pos int) {
	syntax.Assertf(!s.IsPinned(), "cannot reset a pinned source to %d", pos)
	s.dropDiagnostics(s.position)
	s.window = s.window[:0]
	s.index = 0
	s.position = pos
	s.lexer.Reset(pos)
}

func (s *Source) GetRewindPoint() RewindPoint {
	s.saved = append(s.saved, savedPosition{index: s.index, position: s.position})
	return RewindPoint(len(s.saved) - 1)
}

// Rewind restores the position saved in rp. The rewind point stays
// outstanding until released.
func (s *Source) Rewind(rp RewindPoint) {
	syntax.Assertf(int(rp) < len(s.saved), "rewind to unknown point %d", rp)
	saved := s.saved[rp]
	s.index = saved.index
	s.position = saved.position
	s.truncate(saved.index, saved.position)
}

func (s *Source) ReleaseRewindPoint(rp RewindPoint) {
	syntax.Assertf(int(rp) == len(s.saved)-1, "rewind point %d released out of order (%d outstanding)", rp, len(s.saved))
	s.saved = s.saved[:rp]
	s.compact()
}

// TokenDiagnostics returns the scanner diagnostics for the tokens scanned so
// far.
func (s *Source) TokenDiagnostics() []syntax.Diagnostic {
	return s.diags
}

// truncate drops window tokens from index on and moves the lexer back to
// their start.
func (s *Source) truncate(index, position int) {
	for i := index; i < len(s.window); i++ {
		s.window[i] = nil
	}
	s.window = s.window[:index]
	s.dropDiagnostics(position)
	s.lexer.Reset(position)
}

// compact drops consumed tokens once nothing can rewind to them.
func (s *Source) compact() {
	if s.IsPinned() || s.index == 0 {
		return
	}
	n := copy(s.window, s.window[s.index:])
	for i := n; i < len(s.window); i++ {
		s.window[i] = nil
	}
	s.window = s.window[:n]
	s.index = 0
}

func (s *Source) dropDiagnostics(from int) {
	keep := len(s.diags)
	for keep > 0 && s.diags[keep-1].Start >= from {
		keep--
	}
	s.diags = s.diags[:keep]
}
