package incremental

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/reparse/java/lexer"
	"github.com/dhamidi/reparse/java/syntax"
)

var log = commonlog.GetLogger("reparse.incremental")

// Scanner is the fallback token source used wherever the old tree cannot
// serve the parser. *lexer.Source implements it.
type Scanner interface {
	AbsolutePosition() int
	IsPinned() bool
	CurrentToken() *syntax.Token
	CurrentContextualToken() *syntax.Token
	PeekToken(n int) *syntax.Token
	ConsumeToken(tok *syntax.Token)
	ResetToPosition(pos int)
	GetRewindPoint() lexer.RewindPoint
	Rewind(rp lexer.RewindPoint)
	ReleaseRewindPoint(rp lexer.RewindPoint)
	TokenDiagnostics() []syntax.Diagnostic
}

// Stats counts what a single incremental parse reused and rebuilt.
type Stats struct {
	ReusedNodes   int
	ReusedTokens  int
	ScannedTokens int
	Crumbled      int
	Skipped       int
}

type savedState struct {
	changeDelta int
	changeRange *syntax.TextChangeRange
	cursor      *Cursor
	scanner     lexer.RewindPoint
}

// Source serves the parser nodes and tokens for new text, taking them from
// the old tree wherever the edit cannot have affected them and from a
// scanner everywhere else.
//
// changeDelta is the new-text position minus the old-tree position of the
// cursor. The cursor is only read from when the two are aligned. changeRange
// is the normalized edit until the parser moves past its new extent; after
// that the old tree lies entirely after the edit and only alignment matters.
type Source struct {
	text       *syntax.Text
	scanner    Scanner
	pool       *CursorPool
	contextual func(syntax.TokenKind) bool

	cursor      *Cursor
	changeDelta int
	changeRange *syntax.TextChangeRange
	newSpan     syntax.TextSpan

	saved []savedState
	stats Stats
}

// Option configures a Source.
type Option func(*Source)

// WithCursorPool makes the source take its cursors from pool instead of a
// private one.
func WithCursorPool(pool *CursorPool) Option {
	return func(s *Source) {
		s.pool = pool
	}
}

// WithContextualKinds overrides the predicate identifying token kinds that
// are only produced by a contextual rescan.
func WithContextualKinds(fn func(syntax.TokenKind) bool) Option {
	return func(s *Source) {
		s.contextual = fn
	}
}

// NewSource prepares to parse text, the result of applying change to the text
// oldRoot was parsed from. scanner must be positioned at the start of text.
// The source must be closed after parsing to return its cursors to the pool.
func NewSource(oldRoot syntax.Element, change syntax.TextChangeRange, text *syntax.Text, scanner Scanner, opts ...Option) *Source {
	s := &Source{
		text:       text,
		scanner:    scanner,
		contextual: lexer.IsContextual,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pool == nil {
		s.pool = NewCursorPool()
	}

	normalized := ExtendToAffectedRange(change, oldRoot)
	log.Debugf("change %v normalized to %v", change, normalized)
	s.changeRange = &normalized
	s.newSpan = normalized.NewSpan()

	s.cursor = s.pool.Get()
	s.cursor.PushElement(oldRoot, 0)
	return s
}

func (s *Source) Text() *syntax.Text {
	return s.text
}

func (s *Source) AbsolutePosition() int {
	return s.scanner.AbsolutePosition()
}

func (s *Source) TokenDiagnostics() []syntax.Diagnostic {
	return s.scanner.TokenDiagnostics()
}

func (s *Source) Stats() Stats {
	return s.stats
}

// Close returns every cursor held by the source to its pool, including those
// of rewind points a failed parse left outstanding.
func (s *Source) Close() {
	for i := len(s.saved) - 1; i >= 0; i-- {
		s.pool.Put(s.saved[i].cursor)
	}
	s.saved = nil
	if s.cursor != nil {
		s.pool.Put(s.cursor)
		s.cursor = nil
	}
	log.Debugf("reused %d nodes and %d tokens, scanned %d tokens, crumbled %d, skipped %d",
		s.stats.ReusedNodes, s.stats.ReusedTokens, s.stats.ScannedTokens, s.stats.Crumbled, s.stats.Skipped)
}

// CurrentNode returns the old-tree node at the current position if one can be
// reused, or nil.
func (s *Source) CurrentNode() *syntax.Node {
	if !s.canReadFromOldTree() {
		return nil
	}
	pos := s.scanner.AbsolutePosition()
	for {
		node := s.cursor.CurrentNode()
		if node == nil {
			return nil
		}
		if ReusableNode(node, pos, s.changeRange) {
			s.updateTokens(node, pos)
			return node
		}
		s.cursor.MoveToFirstChild()
		s.stats.Crumbled++
	}
}

func (s *Source) CurrentToken() *syntax.Token {
	if s.canReadFromOldTree() {
		if tok := s.tryGetTokenFromOldTree(); tok != nil {
			return tok
		}
	}
	return s.scanner.CurrentToken()
}

// CurrentContextualToken is CurrentToken for positions where the grammar
// accepts the operators that start with '>'.
func (s *Source) CurrentContextualToken() *syntax.Token {
	if tok := s.CurrentToken(); tok.Kind() != syntax.TokenGT {
		return tok
	}
	return s.scanner.CurrentContextualToken()
}

func (s *Source) PeekToken(n int) *syntax.Token {
	if s.canReadFromOldTree() {
		if tok := s.tryPeekTokenFromOldTree(n); tok != nil {
			return tok
		}
	}
	return s.scanner.PeekToken(n)
}

// ConsumeNode advances past node, which must be the result of the last call
// to CurrentNode.
func (s *Source) ConsumeNode(node *syntax.Node) {
	syntax.Assertf(node != nil && s.cursor.CurrentNode() == node, "consumed node is not the current old-tree node")
	syntax.Assertf(s.changeDelta == 0, "consumed old-tree node with change delta %d", s.changeDelta)
	syntax.Assertf(!s.scanner.IsPinned(), "consumed old-tree node inside a speculative parse")
	s.cursor.MoveToNextSibling()
	s.scanner.ResetToPosition(s.scanner.AbsolutePosition() + node.FullWidth())
	s.stats.ReusedNodes++
}

func (s *Source) ConsumeToken(tok *syntax.Token) {
	if s.cursor.CurrentToken() == tok {
		syntax.Assertf(s.changeDelta == 0, "consumed old-tree token with change delta %d", s.changeDelta)
		syntax.Assertf(!s.scanner.IsPinned(), "consumed old-tree token inside a speculative parse")
		s.cursor.MoveToNextSibling()
		s.scanner.ResetToPosition(s.scanner.AbsolutePosition() + tok.FullWidth())
		s.stats.ReusedTokens++
		return
	}

	s.changeDelta -= tok.FullWidth()
	s.scanner.ConsumeToken(tok)
	s.stats.ScannedTokens++

	if s.changeRange != nil && s.scanner.AbsolutePosition() >= s.newSpan.End() {
		s.changeDelta += s.changeRange.Delta()
		s.changeRange = nil
	}
}

// GetRewindPoint saves the current state, including a copy of the cursor,
// and pins the scanner until the point is released.
func (s *Source) GetRewindPoint() lexer.RewindPoint {
	s.saved = append(s.saved, savedState{
		changeDelta: s.changeDelta,
		changeRange: s.changeRange,
		cursor:      s.pool.Clone(s.cursor),
		scanner:     s.scanner.GetRewindPoint(),
	})
	return lexer.RewindPoint(len(s.saved) - 1)
}

// Rewind restores the state saved in rp. The point stays outstanding and may
// be rewound to again.
func (s *Source) Rewind(rp lexer.RewindPoint) {
	syntax.Assertf(int(rp) >= 0 && int(rp) < len(s.saved), "rewind to unknown point %d", rp)
	saved := s.saved[rp]
	s.changeDelta = saved.changeDelta
	s.changeRange = saved.changeRange
	s.cursor.DeepCopyFrom(saved.cursor)
	s.scanner.Rewind(saved.scanner)
}

func (s *Source) ReleaseRewindPoint(rp lexer.RewindPoint) {
	syntax.Assertf(int(rp) == len(s.saved)-1, "rewind point %d released out of order (%d outstanding)", rp, len(s.saved))
	saved := s.saved[rp]
	s.saved[rp] = savedState{}
	s.saved = s.saved[:rp]
	s.pool.Put(saved.cursor)
	s.scanner.ReleaseRewindPoint(saved.scanner)
}

func (s *Source) isPastChangeRange() bool {
	return s.changeRange == nil
}

func (s *Source) canReadFromOldTree() bool {
	if s.scanner.IsPinned() {
		return false
	}
	if !s.isPastChangeRange() && s.newSpan.IntersectsWithPosition(s.scanner.AbsolutePosition()) {
		return false
	}
	s.syncCursorToNewTextIfBehind()
	return s.changeDelta == 0 && !s.cursor.IsFinished()
}

// syncCursorToNewTextIfBehind skips or splits old-tree elements until the
// cursor is no longer behind the scanner. A negative delta means the parser
// has consumed more new text than the cursor has walked; a node wider than
// the gap straddles the scanner's position and is split instead. A straddling
// token cannot be split and is skipped, leaving the cursor ahead.
func (s *Source) syncCursorToNewTextIfBehind() {
	for !s.cursor.IsFinished() && s.changeDelta < 0 {
		e := s.cursor.CurrentNodeOrToken()
		if _, isToken := e.(*syntax.Token); !isToken && e.FullWidth() > -s.changeDelta {
			s.cursor.MoveToFirstChild()
			s.stats.Crumbled++
			continue
		}
		s.changeDelta += e.FullWidth()
		s.cursor.MoveToNextSibling()
		s.stats.Skipped++
	}
}

func (s *Source) tryGetTokenFromOldTree() *syntax.Token {
	s.cursor.MoveToFirstToken()
	tok := s.cursor.CurrentToken()
	pos := s.scanner.AbsolutePosition()
	if !ReusableToken(tok, pos, s.changeRange, s.contextual) {
		return nil
	}
	s.updateTokens(tok, pos)
	return tok
}

// tryPeekTokenFromOldTree walks a copy of the cursor n tokens ahead. Every
// token up to and including the peeked one must be reusable at the position
// it will occupy, otherwise the scanner answers the peek.
func (s *Source) tryPeekTokenFromOldTree(n int) *syntax.Token {
	c := s.pool.Clone(s.cursor)
	defer s.pool.Put(c)

	pos := s.scanner.AbsolutePosition()
	c.MoveToFirstToken()
	for i := 0; i < n; i++ {
		tok := c.CurrentToken()
		if !ReusableToken(tok, pos, s.changeRange, s.contextual) {
			return nil
		}
		pos += tok.FullWidth()
		c.MoveToNextSibling()
		c.MoveToFirstToken()
	}
	tok := c.CurrentToken()
	if !ReusableToken(tok, pos, s.changeRange, s.contextual) {
		return nil
	}
	s.updateTokens(tok, pos)
	return tok
}

// updateTokens moves the tokens of a reused element to their position in the
// new text. Before the edit nothing has shifted; after it every reused token
// has moved by the same delta. Earlier reads at this position can only have
// moved a prefix of the element's tokens, so when both ends are in place the
// whole element is.
func (s *Source) updateTokens(e syntax.Element, pos int) {
	if !s.isPastChangeRange() {
		return
	}
	if last := syntax.LastToken(e); e.FullStart() == pos && last != nil && last.FullEnd() == pos+e.FullWidth() {
		return
	}
	syntax.VisitTokens(e, func(tok *syntax.Token) bool {
		tok.SetTextAndFullStart(s.text, pos)
		pos += tok.FullWidth()
		return true
	})
}
