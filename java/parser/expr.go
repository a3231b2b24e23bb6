package parser

import "github.com/dhamidi/reparse/java/syntax"

func (p *Parser) parseExpression() *syntax.Node {
	return p.parseAssignment()
}

func isAssignment(k syntax.TokenKind) bool {
	switch k {
	case syntax.TokenAssign, syntax.TokenPlusAssign, syntax.TokenMinusAssign,
		syntax.TokenStarAssign, syntax.TokenSlashAssign, syntax.TokenPercentAssign,
		syntax.TokenAndAssign, syntax.TokenOrAssign, syntax.TokenXorAssign,
		syntax.TokenShlAssign, syntax.TokenShrAssign, syntax.TokenUShrAssign:
		return true
	}
	return false
}

func (p *Parser) parseAssignment() *syntax.Node {
	lhs := p.parseTernary()
	if op := p.src.CurrentContextualToken(); isAssignment(op.Kind()) {
		p.consume(op)
		return syntax.NewNode(syntax.KindAssignExpr, lhs, op, p.parseAssignment())
	}
	return lhs
}

func (p *Parser) parseTernary() *syntax.Node {
	cond := p.parseBinary(1)
	if !p.check(syntax.TokenQuestion) {
		return cond
	}
	question := p.advance()
	then := p.parseExpression()
	colon := p.expect(syntax.TokenColon)
	otherwise := p.parseTernary()
	return syntax.NewNode(syntax.KindTernaryExpr, cond, question, then, colon, otherwise)
}

// binaryPrecedence returns the binding strength of a binary operator, or 0 if
// k is not one.
func binaryPrecedence(k syntax.TokenKind) int {
	switch k {
	case syntax.TokenOr:
		return 1
	case syntax.TokenAnd:
		return 2
	case syntax.TokenBitOr:
		return 3
	case syntax.TokenBitXor:
		return 4
	case syntax.TokenBitAnd:
		return 5
	case syntax.TokenEQ, syntax.TokenNE:
		return 6
	case syntax.TokenLT, syntax.TokenGT, syntax.TokenLE, syntax.TokenGE, syntax.TokenInstanceof:
		return 7
	case syntax.TokenShl, syntax.TokenShr, syntax.TokenUShr:
		return 8
	case syntax.TokenPlus, syntax.TokenMinus:
		return 9
	case syntax.TokenStar, syntax.TokenSlash, syntax.TokenPercent:
		return 10
	}
	return 0
}

// parseBinary reads operators through the contextual scan, since this is the
// only place where '>' may start a longer operator.
func (p *Parser) parseBinary(minPrec int) *syntax.Node {
	left := p.parseUnary()
	for {
		op := p.src.CurrentContextualToken()
		prec := binaryPrecedence(op.Kind())
		if prec == 0 || prec < minPrec {
			return left
		}
		p.consume(op)
		if op.Kind() == syntax.TokenInstanceof {
			left = syntax.NewNode(syntax.KindInstanceofExpr, left, op, p.parseType())
			continue
		}
		right := p.parseBinary(prec + 1)
		left = syntax.NewNode(syntax.KindBinaryExpr, left, op, right)
	}
}

func (p *Parser) parseUnary() *syntax.Node {
	switch p.current().Kind() {
	case syntax.TokenPlus, syntax.TokenMinus, syntax.TokenNot, syntax.TokenBitNot,
		syntax.TokenIncrement, syntax.TokenDecrement:
		op := p.advance()
		return syntax.NewNode(syntax.KindUnaryExpr, op, p.parseUnary())
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() *syntax.Node {
	expr := p.parsePrimary()
	for {
		switch p.current().Kind() {
		case syntax.TokenDot:
			dot := p.advance()
			expr = syntax.NewNode(syntax.KindFieldAccess, expr, dot, p.expectIdentifier())
		case syntax.TokenLParen:
			expr = syntax.NewNode(syntax.KindCallExpr, expr, p.parseArguments())
		case syntax.TokenLBracket:
			open := p.advance()
			index := p.parseExpression()
			closing := p.expect(syntax.TokenRBracket)
			expr = syntax.NewNode(syntax.KindArrayAccess, expr, open, index, closing)
		case syntax.TokenIncrement, syntax.TokenDecrement:
			expr = syntax.NewNode(syntax.KindPostfixExpr, expr, p.advance())
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() *syntax.Node {
	switch k := p.current().Kind(); {
	case k == syntax.TokenIntLiteral, k == syntax.TokenFloatLiteral, k == syntax.TokenCharLiteral,
		k == syntax.TokenStringLiteral, k == syntax.TokenTrue, k == syntax.TokenFalse, k == syntax.TokenNull:
		return syntax.NewNode(syntax.KindLiteral, p.advance())
	case k == syntax.TokenThis:
		return syntax.NewNode(syntax.KindThis, p.advance())
	case k == syntax.TokenSuper:
		return syntax.NewNode(syntax.KindSuper, p.advance())
	case k == syntax.TokenLParen:
		open := p.advance()
		inner := p.parseExpression()
		closing := p.expect(syntax.TokenRParen)
		return syntax.NewNode(syntax.KindParenExpr, open, inner, closing)
	case k == syntax.TokenNew:
		kw := p.advance()
		typ := p.parseType()
		return syntax.NewNode(syntax.KindNewExpr, kw, typ, p.parseArguments())
	}
	return syntax.NewNode(syntax.KindIdentifier, p.expectIdentifier())
}

func (p *Parser) parseArguments() *syntax.Node {
	if !p.check(syntax.TokenLParen) {
		return syntax.NewNode(syntax.KindArguments,
			p.missing(syntax.TokenLParen), syntax.EmptySeparatedList, p.missing(syntax.TokenRParen))
	}
	open := p.advance()
	var items []syntax.Element
	if !p.check(syntax.TokenRParen) && !p.check(syntax.TokenEOF) {
		items = append(items, p.parseExpression())
		for p.check(syntax.TokenComma) {
			items = append(items, p.advance(), p.parseExpression())
		}
	}
	closing := p.expect(syntax.TokenRParen)
	return syntax.NewNode(syntax.KindArguments, open, syntax.NewSeparatedList(items), closing)
}
