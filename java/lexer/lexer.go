package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/reparse/java/syntax"
)

// Lexer scans tokens together with their trivia from a source snapshot. It
// holds no state besides its position, so it can be reset to any token
// boundary and produce the same tokens a scan from the beginning would.
type Lexer struct {
	text  *syntax.Text
	pos   int
	diags []syntax.Diagnostic
	// set while scanning a token that produced a diagnostic
	flagged bool
}

func New(text *syntax.Text) *Lexer {
	return &Lexer{text: text}
}

func (l *Lexer) Position() int {
	return l.pos
}

func (l *Lexer) Reset(pos int) {
	syntax.Assertf(pos >= 0 && pos <= l.text.Len(), "reset position %d outside text of length %d", pos, l.text.Len())
	l.pos = pos
}

// TakeDiagnostics returns the diagnostics reported since the last call.
func (l *Lexer) TakeDiagnostics() []syntax.Diagnostic {
	d := l.diags
	l.diags = nil
	return d
}

// Scan returns the next token. A '>' is always scanned on its own; see
// ScanContextual.
func (l *Lexer) Scan() *syntax.Token {
	return l.scan(false)
}

// ScanContextual scans the next token in a context where '>' may start a
// shift or comparison operator.
func (l *Lexer) ScanContextual() *syntax.Token {
	return l.scan(true)
}

func (l *Lexer) scan(contextual bool) *syntax.Token {
	fullStart := l.pos
	l.flagged = false

	leading := l.scanTrivia(false)
	start := l.pos
	kind := syntax.TokenEOF
	if l.pos < l.text.Len() {
		kind = l.scanKind(contextual)
	}
	width := l.pos - start

	var trailing []syntax.Trivia
	if kind != syntax.TokenEOF {
		trailing = l.scanTrivia(true)
	}

	var flags syntax.TokenFlags
	if l.flagged {
		flags |= syntax.FlagHasDiagnostic
	}
	return syntax.NewToken(kind, l.text, fullStart, leading, width, trailing, flags)
}

func (l *Lexer) errorf(start int, msg string) {
	l.flagged = true
	l.diags = append(l.diags, syntax.Diagnostic{
		Start:   start,
		Length:  l.pos - start,
		Message: msg,
	})
}

func (l *Lexer) peek() byte {
	if l.pos >= l.text.Len() {
		return 0
	}
	return l.text.At(l.pos)
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= l.text.Len() {
		return 0
	}
	return l.text.At(l.pos + n)
}

func (l *Lexer) peekRune() (rune, int) {
	end := min(l.pos+utf8.UTFMax, l.text.Len())
	return utf8.DecodeRuneInString(l.text.Substring(l.pos, end))
}

// scanTrivia collects whitespace and comments. Trailing trivia stops after
// the first newline.
func (l *Lexer) scanTrivia(trailing bool) []syntax.Trivia {
	var trivia []syntax.Trivia
	for l.pos < l.text.Len() {
		start := l.pos
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\f':
			for c := l.peek(); c == ' ' || c == '\t' || c == '\f'; c = l.peek() {
				l.pos++
			}
			trivia = append(trivia, syntax.Trivia{Kind: syntax.TriviaWhitespace, Width: l.pos - start})
		case ch == '\r' || ch == '\n':
			if ch == '\r' && l.peekN(1) == '\n' {
				l.pos++
			}
			l.pos++
			trivia = append(trivia, syntax.Trivia{Kind: syntax.TriviaNewline, Width: l.pos - start})
			if trailing {
				return trivia
			}
		case ch == '/' && l.peekN(1) == '/':
			for c := l.peek(); c != 0 && c != '\n' && c != '\r'; c = l.peek() {
				l.pos++
			}
			trivia = append(trivia, syntax.Trivia{Kind: syntax.TriviaLineComment, Width: l.pos - start})
		case ch == '/' && l.peekN(1) == '*':
			l.pos += 2
			closed := false
			for l.pos < l.text.Len() {
				if l.peek() == '*' && l.peekN(1) == '/' {
					l.pos += 2
					closed = true
					break
				}
				l.pos++
			}
			if !closed {
				l.errorf(start, "unterminated comment")
			}
			trivia = append(trivia, syntax.Trivia{Kind: syntax.TriviaBlockComment, Width: l.pos - start})
		default:
			return trivia
		}
	}
	return trivia
}

func (l *Lexer) scanKind(contextual bool) syntax.TokenKind {
	ch := l.peek()
	switch {
	case isJavaLetter(ch):
		return l.scanIdentOrKeyword()
	case ch >= utf8.RuneSelf:
		if r, _ := l.peekRune(); unicode.IsLetter(r) {
			return l.scanIdentOrKeyword()
		}
	case isDigit(ch):
		return l.scanNumber()
	case ch == '.' && isDigit(l.peekN(1)):
		return l.scanNumber()
	case ch == '\'':
		return l.scanQuoted('\'', syntax.TokenCharLiteral, "unterminated character literal")
	case ch == '"':
		return l.scanQuoted('"', syntax.TokenStringLiteral, "unterminated string literal")
	}
	return l.scanOperator(contextual)
}

func (l *Lexer) scanIdentOrKeyword() syntax.TokenKind {
	start := l.pos
	for l.pos < l.text.Len() {
		ch := l.peek()
		if ch < utf8.RuneSelf {
			if !isJavaLetterOrDigit(ch) {
				break
			}
			l.pos++
			continue
		}
		r, size := l.peekRune()
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		l.pos += size
	}
	return syntax.LookupKeyword(l.text.Substring(start, l.pos))
}

func (l *Lexer) scanNumber() syntax.TokenKind {
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		l.pos += 2
		for isHexDigit(l.peek()) || l.peek() == '_' {
			l.pos++
		}
		if l.peek() == 'l' || l.peek() == 'L' {
			l.pos++
		}
		return syntax.TokenIntLiteral
	}

	isFloat := false
	for isDigit(l.peek()) || l.peek() == '_' {
		l.pos++
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		isFloat = true
		l.pos++
		for isDigit(l.peek()) || l.peek() == '_' {
			l.pos++
		}
	}
	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.pos++
		if l.peek() == '+' || l.peek() == '-' {
			l.pos++
		}
		for isDigit(l.peek()) || l.peek() == '_' {
			l.pos++
		}
	}

	switch l.peek() {
	case 'f', 'F', 'd', 'D':
		isFloat = true
		l.pos++
	case 'l', 'L':
		l.pos++
	}
	if isFloat {
		return syntax.TokenFloatLiteral
	}
	return syntax.TokenIntLiteral
}

// scanQuoted scans a character or string literal. Literals end at the line
// end when unterminated.
func (l *Lexer) scanQuoted(quote byte, kind syntax.TokenKind, unterminated string) syntax.TokenKind {
	start := l.pos
	l.pos++
	for {
		ch := l.peek()
		if ch == quote {
			l.pos++
			return kind
		}
		if ch == 0 && l.pos >= l.text.Len() || ch == '\n' || ch == '\r' {
			l.errorf(start, unterminated)
			return kind
		}
		if ch == '\\' && l.pos+1 < l.text.Len() && l.peekN(1) != '\n' && l.peekN(1) != '\r' {
			l.pos++
		}
		l.pos++
	}
}

func (l *Lexer) scanOperator(contextual bool) syntax.TokenKind {
	start := l.pos
	ch := l.peek()

	switch ch {
	case '(':
		return l.single(syntax.TokenLParen)
	case ')':
		return l.single(syntax.TokenRParen)
	case '{':
		return l.single(syntax.TokenLBrace)
	case '}':
		return l.single(syntax.TokenRBrace)
	case '[':
		return l.single(syntax.TokenLBracket)
	case ']':
		return l.single(syntax.TokenRBracket)
	case ';':
		return l.single(syntax.TokenSemicolon)
	case ',':
		return l.single(syntax.TokenComma)
	case '@':
		return l.single(syntax.TokenAt)
	case '~':
		return l.single(syntax.TokenBitNot)
	case '?':
		return l.single(syntax.TokenQuestion)
	case '.':
		if l.peekN(1) == '.' && l.peekN(2) == '.' {
			return l.multi(3, syntax.TokenEllipsis)
		}
		return l.single(syntax.TokenDot)
	case ':':
		if l.peekN(1) == ':' {
			return l.multi(2, syntax.TokenColonColon)
		}
		return l.single(syntax.TokenColon)
	case '=':
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenEQ)
		}
		return l.single(syntax.TokenAssign)
	case '!':
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenNE)
		}
		return l.single(syntax.TokenNot)
	case '<':
		if l.peekN(1) == '<' {
			if l.peekN(2) == '=' {
				return l.multi(3, syntax.TokenShlAssign)
			}
			return l.multi(2, syntax.TokenShl)
		}
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenLE)
		}
		return l.single(syntax.TokenLT)
	case '>':
		if !contextual {
			return l.single(syntax.TokenGT)
		}
		return l.scanGreaterThan()
	case '&':
		if l.peekN(1) == '&' {
			return l.multi(2, syntax.TokenAnd)
		}
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenAndAssign)
		}
		return l.single(syntax.TokenBitAnd)
	case '|':
		if l.peekN(1) == '|' {
			return l.multi(2, syntax.TokenOr)
		}
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenOrAssign)
		}
		return l.single(syntax.TokenBitOr)
	case '^':
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenXorAssign)
		}
		return l.single(syntax.TokenBitXor)
	case '+':
		if l.peekN(1) == '+' {
			return l.multi(2, syntax.TokenIncrement)
		}
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenPlusAssign)
		}
		return l.single(syntax.TokenPlus)
	case '-':
		if l.peekN(1) == '-' {
			return l.multi(2, syntax.TokenDecrement)
		}
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenMinusAssign)
		}
		if l.peekN(1) == '>' {
			return l.multi(2, syntax.TokenArrow)
		}
		return l.single(syntax.TokenMinus)
	case '*':
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenStarAssign)
		}
		return l.single(syntax.TokenStar)
	case '/':
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenSlashAssign)
		}
		return l.single(syntax.TokenSlash)
	case '%':
		if l.peekN(1) == '=' {
			return l.multi(2, syntax.TokenPercentAssign)
		}
		return l.single(syntax.TokenPercent)
	}

	if ch >= utf8.RuneSelf {
		_, size := l.peekRune()
		l.pos += size
	} else {
		l.pos++
	}
	l.errorf(start, "unexpected character")
	return syntax.TokenError
}

func (l *Lexer) scanGreaterThan() syntax.TokenKind {
	if l.peekN(1) == '>' {
		if l.peekN(2) == '>' {
			if l.peekN(3) == '=' {
				return l.multi(4, syntax.TokenUShrAssign)
			}
			return l.multi(3, syntax.TokenUShr)
		}
		if l.peekN(2) == '=' {
			return l.multi(3, syntax.TokenShrAssign)
		}
		return l.multi(2, syntax.TokenShr)
	}
	if l.peekN(1) == '=' {
		return l.multi(2, syntax.TokenGE)
	}
	return l.single(syntax.TokenGT)
}

func (l *Lexer) single(kind syntax.TokenKind) syntax.TokenKind {
	l.pos++
	return kind
}

func (l *Lexer) multi(n int, kind syntax.TokenKind) syntax.TokenKind {
	l.pos += n
	return kind
}

// IsContextual reports whether tokens of kind k only come out of a contextual
// rescan. Such tokens depend on the parser's state, not just on the text.
func IsContextual(k syntax.TokenKind) bool {
	switch k {
	case syntax.TokenGE, syntax.TokenShr, syntax.TokenUShr, syntax.TokenShrAssign, syntax.TokenUShrAssign:
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isJavaLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$'
}

func isJavaLetterOrDigit(ch byte) bool {
	return isJavaLetter(ch) || isDigit(ch)
}
