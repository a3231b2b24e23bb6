package syntax

type TriviaKind int

const (
	TriviaWhitespace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
)

var triviaKindNames = map[TriviaKind]string{
	TriviaWhitespace:   "Whitespace",
	TriviaNewline:      "Newline",
	TriviaLineComment:  "LineComment",
	TriviaBlockComment: "BlockComment",
}

func (k TriviaKind) String() string {
	if name, ok := triviaKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Trivia is a run of whitespace or a comment attached to a token. Its text is
// not stored; it is read from the token's source text.
type Trivia struct {
	Kind  TriviaKind
	Width int
}

type TokenFlags uint8

const (
	// FlagMissing marks a zero-width token inserted by error recovery.
	FlagMissing TokenFlags = 1 << iota
	// FlagConvertedKeyword marks a contextual keyword the parser turned into
	// an identifier.
	FlagConvertedKeyword
	// FlagHasDiagnostic marks a token the scanner reported a problem for.
	FlagHasDiagnostic
)

// Token is a leaf of the tree: the token text surrounded by leading and
// trailing trivia. Leading trivia is everything between the previous token's
// trailing trivia and the token; trailing trivia runs up to and including the
// first newline after it.
type Token struct {
	kind      TokenKind
	text      *Text
	fullStart int
	leading   []Trivia
	trailing  []Trivia
	leadingW  int
	width     int
	trailingW int
	flags     TokenFlags
	parent    Element
}

func NewToken(kind TokenKind, text *Text, fullStart int, leading []Trivia, width int, trailing []Trivia, flags TokenFlags) *Token {
	t := &Token{
		kind:      kind,
		text:      text,
		fullStart: fullStart,
		leading:   leading,
		trailing:  trailing,
		width:     width,
		flags:     flags,
	}
	for _, tr := range leading {
		t.leadingW += tr.Width
	}
	for _, tr := range trailing {
		t.trailingW += tr.Width
	}
	return t
}

// NewMissingToken returns a zero-width token standing in for one the parser
// expected but did not find at pos.
func NewMissingToken(kind TokenKind, text *Text, pos int) *Token {
	return NewToken(kind, text, pos, nil, 0, nil, FlagMissing)
}

func (t *Token) Kind() TokenKind     { return t.kind }
func (t *Token) Flags() TokenFlags   { return t.flags }
func (t *Token) FullStart() int      { return t.fullStart }
func (t *Token) FullWidth() int      { return t.leadingW + t.width + t.trailingW }
func (t *Token) FullEnd() int        { return t.fullStart + t.FullWidth() }
func (t *Token) Start() int          { return t.fullStart + t.leadingW }
func (t *Token) End() int            { return t.Start() + t.width }
func (t *Token) Width() int          { return t.width }
func (t *Token) Source() *Text       { return t.text }
func (t *Token) IsShared() bool      { return false }
func (t *Token) ChildCount() int     { return 0 }
func (t *Token) Parent() Element     { return t.parent }
func (t *Token) setParent(p Element) { t.parent = p }

func (t *Token) ChildAt(i int) Element {
	Assertf(false, "token %v has no children (index %d)", t.kind, i)
	return nil
}

func (t *Token) LeadingTrivia() []Trivia  { return t.leading }
func (t *Token) TrailingTrivia() []Trivia { return t.trailing }
func (t *Token) LeadingWidth() int        { return t.leadingW }
func (t *Token) TrailingWidth() int       { return t.trailingW }

func (t *Token) IsMissing() bool          { return t.flags&FlagMissing != 0 }
func (t *Token) IsConvertedKeyword() bool { return t.flags&FlagConvertedKeyword != 0 }
func (t *Token) HasDiagnostic() bool      { return t.flags&FlagHasDiagnostic != 0 }

// IsIncrementallyUnusable reports whether the token must always be produced
// fresh by the scanner instead of being taken over from an old tree.
func (t *Token) IsIncrementallyUnusable() bool {
	return t.FullWidth() == 0 ||
		t.flags != 0 ||
		t.kind.IsDivide()
}

// Text returns the token text without trivia.
func (t *Token) Text() string {
	if t.width == 0 {
		return ""
	}
	return t.text.Substring(t.Start(), t.End())
}

// FullText returns the token text including its trivia.
func (t *Token) FullText() string {
	if t.FullWidth() == 0 {
		return ""
	}
	return t.text.Substring(t.fullStart, t.FullEnd())
}

func (t *Token) LeadingText() string {
	return t.text.Substring(t.fullStart, t.Start())
}

func (t *Token) TrailingText() string {
	return t.text.Substring(t.End(), t.FullEnd())
}

// SetTextAndFullStart rebinds the token to a new source snapshot at a new
// position. Only the incremental parser calls this, when it moves a token
// whose bytes are unchanged but whose offset shifted.
func (t *Token) SetTextAndFullStart(text *Text, fullStart int) {
	t.text = text
	t.fullStart = fullStart
}

// ConvertToIdentifier returns a copy of a contextual keyword token re-kinded
// as an identifier.
func (t *Token) ConvertToIdentifier() *Token {
	c := *t
	c.kind = TokenIdent
	c.flags |= FlagConvertedKeyword
	c.parent = nil
	return &c
}

func (t *Token) String() string {
	if t.IsMissing() {
		return "<missing " + t.kind.String() + ">"
	}
	return t.Text()
}
