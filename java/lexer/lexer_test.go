package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/reparse/java/syntax"
)

func scanAll(input string) []*syntax.Token {
	l := New(syntax.NewText(input))
	var toks []*syntax.Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Kind() == syntax.TokenEOF {
			return toks
		}
	}
}

func kinds(toks []*syntax.Token) []syntax.TokenKind {
	out := make([]syntax.TokenKind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind()
	}
	return out
}

func TestScanKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []syntax.TokenKind
	}{
		{"", []syntax.TokenKind{syntax.TokenEOF}},
		{"class", []syntax.TokenKind{syntax.TokenClass, syntax.TokenEOF}},
		{"public class Main {}", []syntax.TokenKind{syntax.TokenPublic, syntax.TokenClass, syntax.TokenIdent, syntax.TokenLBrace, syntax.TokenRBrace, syntax.TokenEOF}},
		{"123", []syntax.TokenKind{syntax.TokenIntLiteral, syntax.TokenEOF}},
		{"0xFFL", []syntax.TokenKind{syntax.TokenIntLiteral, syntax.TokenEOF}},
		{"3.14", []syntax.TokenKind{syntax.TokenFloatLiteral, syntax.TokenEOF}},
		{".5f", []syntax.TokenKind{syntax.TokenFloatLiteral, syntax.TokenEOF}},
		{"1e10", []syntax.TokenKind{syntax.TokenFloatLiteral, syntax.TokenEOF}},
		{`"hello"`, []syntax.TokenKind{syntax.TokenStringLiteral, syntax.TokenEOF}},
		{`'a'`, []syntax.TokenKind{syntax.TokenCharLiteral, syntax.TokenEOF}},
		{"// comment\nclass", []syntax.TokenKind{syntax.TokenClass, syntax.TokenEOF}},
		{"/* block */ class", []syntax.TokenKind{syntax.TokenClass, syntax.TokenEOF}},
		{"+ - * / %", []syntax.TokenKind{syntax.TokenPlus, syntax.TokenMinus, syntax.TokenStar, syntax.TokenSlash, syntax.TokenPercent, syntax.TokenEOF}},
		{"== != < <= >", []syntax.TokenKind{syntax.TokenEQ, syntax.TokenNE, syntax.TokenLT, syntax.TokenLE, syntax.TokenGT, syntax.TokenEOF}},
		{"&& || !", []syntax.TokenKind{syntax.TokenAnd, syntax.TokenOr, syntax.TokenNot, syntax.TokenEOF}},
		{"<< <<=", []syntax.TokenKind{syntax.TokenShl, syntax.TokenShlAssign, syntax.TokenEOF}},
		{">>", []syntax.TokenKind{syntax.TokenGT, syntax.TokenGT, syntax.TokenEOF}},
		{">=", []syntax.TokenKind{syntax.TokenGT, syntax.TokenAssign, syntax.TokenEOF}},
		{"++ -- ->", []syntax.TokenKind{syntax.TokenIncrement, syntax.TokenDecrement, syntax.TokenArrow, syntax.TokenEOF}},
		{":: ... @", []syntax.TokenKind{syntax.TokenColonColon, syntax.TokenEllipsis, syntax.TokenAt, syntax.TokenEOF}},
		{"var record yield", []syntax.TokenKind{syntax.TokenVar, syntax.TokenRecord, syntax.TokenYield, syntax.TokenEOF}},
		{"größe", []syntax.TokenKind{syntax.TokenIdent, syntax.TokenEOF}},
		{"#", []syntax.TokenKind{syntax.TokenError, syntax.TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, kinds(scanAll(tt.input)))
		})
	}
}

func TestScanContextual(t *testing.T) {
	tests := []struct {
		input string
		kind  syntax.TokenKind
		width int
	}{
		{">", syntax.TokenGT, 1},
		{">=", syntax.TokenGE, 2},
		{">>", syntax.TokenShr, 2},
		{">>=", syntax.TokenShrAssign, 3},
		{">>>", syntax.TokenUShr, 3},
		{">>>=", syntax.TokenUShrAssign, 4},
		{"> >", syntax.TokenGT, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := New(syntax.NewText(tt.input)).ScanContextual()
			assert.Equal(t, tt.kind, tok.Kind())
			assert.Equal(t, tt.width, tok.Width())
			assert.Equal(t, tt.kind != syntax.TokenGT, IsContextual(tok.Kind()))
		})
	}
}

func TestTriviaSplitsAtNewline(t *testing.T) {
	toks := scanAll("a  // note\n  /* c */ b ;")
	require.Len(t, toks, 4)

	a := toks[0]
	assert.Equal(t, "a", a.Text())
	assert.Equal(t, 0, a.LeadingWidth())
	assert.Equal(t, "  // note\n", a.TrailingText())
	require.Len(t, a.TrailingTrivia(), 3)
	assert.Equal(t, syntax.TriviaNewline, a.TrailingTrivia()[2].Kind)

	b := toks[1]
	assert.Equal(t, "  /* c */ ", b.LeadingText())
	assert.Equal(t, " ", b.TrailingText())
	assert.Equal(t, 11, b.FullStart())

	eof := toks[3]
	assert.Equal(t, 0, eof.FullWidth())
	assert.Equal(t, 24, eof.FullStart())
}

func TestTokensCoverText(t *testing.T) {
	input := "package a.b;\n\nclass C {\n  int x = 1; // one\n  /* two */\n}\n"
	pos := 0
	for _, tok := range scanAll(input) {
		assert.Equal(t, pos, tok.FullStart())
		pos += tok.FullWidth()
	}
	assert.Equal(t, len(input), pos)
}

func TestScanDiagnostics(t *testing.T) {
	tests := []struct {
		input   string
		message string
		start   int
	}{
		{"x = \"abc\ny", "unterminated string literal", 4},
		{"'a", "unterminated character literal", 0},
		{"a /* never closed", "unterminated comment", 2},
		{"a # b", "unexpected character", 2},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			l := New(syntax.NewText(tt.input))
			var flagged bool
			for {
				tok := l.Scan()
				flagged = flagged || tok.HasDiagnostic()
				if tok.Kind() == syntax.TokenEOF {
					break
				}
			}
			diags := l.TakeDiagnostics()
			require.Len(t, diags, 1)
			assert.Equal(t, tt.message, diags[0].Message)
			assert.Equal(t, tt.start, diags[0].Start)
			assert.True(t, flagged)
			assert.Empty(t, l.TakeDiagnostics())
		})
	}
}

func TestResetRescansIdentically(t *testing.T) {
	text := syntax.NewText("int x = a >> 2;")
	l := New(text)
	var first []*syntax.Token
	for tok := l.Scan(); tok.Kind() != syntax.TokenEOF; tok = l.Scan() {
		first = append(first, tok)
	}

	l.Reset(first[2].FullStart())
	again := l.Scan()
	assert.Equal(t, first[2].Kind(), again.Kind())
	assert.Equal(t, first[2].FullStart(), again.FullStart())
	assert.Equal(t, first[2].FullWidth(), again.FullWidth())

	assert.Panics(t, func() { l.Reset(text.Len() + 1) })
}
