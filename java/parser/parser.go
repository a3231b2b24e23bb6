package parser

import (
	"github.com/dhamidi/reparse/java/incremental"
	"github.com/dhamidi/reparse/java/syntax"
)

// Option configures a parse.
type Option func(*Parser)

// WithFile names the file being parsed in the resulting tree and in log
// messages.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithCursorPool shares a cursor pool between incremental parses. Without it
// every incremental parse allocates its own.
func WithCursorPool(pool *incremental.CursorPool) Option {
	return func(p *Parser) {
		p.pool = pool
	}
}

type Parser struct {
	file string
	pool *incremental.CursorPool
	src  TokenSource
}

func newParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Parser) current() *syntax.Token {
	return p.src.CurrentToken()
}

func (p *Parser) peek(n int) *syntax.Token {
	return p.src.PeekToken(n)
}

func (p *Parser) check(kind syntax.TokenKind) bool {
	return p.current().Kind() == kind
}

func (p *Parser) match(kinds ...syntax.TokenKind) bool {
	k := p.current().Kind()
	for _, kind := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (p *Parser) advance() *syntax.Token {
	tok := p.current()
	p.src.ConsumeToken(tok)
	return tok
}

// consume advances past tok, which must be the token the source is
// currently positioned at. Used for tokens obtained by a contextual rescan.
func (p *Parser) consume(tok *syntax.Token) *syntax.Token {
	p.src.ConsumeToken(tok)
	return tok
}

func (p *Parser) expect(kind syntax.TokenKind) *syntax.Token {
	if p.check(kind) {
		return p.advance()
	}
	return p.missing(kind)
}

func (p *Parser) missing(kind syntax.TokenKind) *syntax.Token {
	return syntax.NewMissingToken(kind, p.src.Text(), p.src.AbsolutePosition())
}

// expectIdentifier accepts an identifier or a contextual keyword, which is
// converted into an identifier.
func (p *Parser) expectIdentifier() *syntax.Token {
	tok := p.current()
	switch {
	case tok.Kind() == syntax.TokenIdent:
		return p.advance()
	case tok.Kind().IsContextualKeyword():
		p.advance()
		return tok.ConvertToIdentifier()
	}
	return p.missing(syntax.TokenIdent)
}

// skipUntil wraps the current token and every following one up to a token
// satisfying stop, or the end of input, into an error node. The current token
// is always taken.
func (p *Parser) skipUntil(stop func(syntax.TokenKind) bool, leading ...syntax.Element) *syntax.Node {
	skipped := leading
	if !p.check(syntax.TokenEOF) {
		skipped = append(skipped, p.advance())
	}
	for k := p.current().Kind(); k != syntax.TokenEOF && !stop(k); k = p.current().Kind() {
		skipped = append(skipped, p.advance())
	}
	return syntax.NewNode(syntax.KindError, skipped...)
}

func isIdentifierLike(k syntax.TokenKind) bool {
	return k == syntax.TokenIdent || k.IsContextualKeyword()
}

func isPrimitive(k syntax.TokenKind) bool {
	switch k {
	case syntax.TokenBoolean, syntax.TokenByte, syntax.TokenChar, syntax.TokenShort,
		syntax.TokenInt, syntax.TokenLong, syntax.TokenFloat, syntax.TokenDouble:
		return true
	}
	return false
}

func isTypeStart(k syntax.TokenKind) bool {
	return isPrimitive(k) || isIdentifierLike(k)
}

func isModifier(k syntax.TokenKind) bool {
	switch k {
	case syntax.TokenPublic, syntax.TokenProtected, syntax.TokenPrivate,
		syntax.TokenStatic, syntax.TokenFinal, syntax.TokenAbstract,
		syntax.TokenNative, syntax.TokenSynchronized, syntax.TokenTransient,
		syntax.TokenVolatile, syntax.TokenDefault:
		return true
	}
	return false
}

func canStartMember(k syntax.TokenKind) bool {
	switch k {
	case syntax.TokenAt, syntax.TokenClass, syntax.TokenInterface, syntax.TokenVoid, syntax.TokenSemicolon:
		return true
	}
	return isModifier(k) || isTypeStart(k)
}

func canStartStatement(k syntax.TokenKind) bool {
	switch k {
	case syntax.TokenLBrace, syntax.TokenSemicolon, syntax.TokenIf, syntax.TokenWhile,
		syntax.TokenReturn, syntax.TokenBreak, syntax.TokenContinue:
		return true
	}
	return isPrimitive(k) || canStartExpression(k)
}

func canStartExpression(k syntax.TokenKind) bool {
	switch k {
	case syntax.TokenIntLiteral, syntax.TokenFloatLiteral, syntax.TokenCharLiteral,
		syntax.TokenStringLiteral, syntax.TokenTrue, syntax.TokenFalse, syntax.TokenNull,
		syntax.TokenThis, syntax.TokenSuper, syntax.TokenNew, syntax.TokenLParen,
		syntax.TokenPlus, syntax.TokenMinus, syntax.TokenNot, syntax.TokenBitNot,
		syntax.TokenIncrement, syntax.TokenDecrement:
		return true
	}
	return isIdentifierLike(k)
}
