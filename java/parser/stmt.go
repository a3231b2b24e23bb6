package parser

import "github.com/dhamidi/reparse/java/syntax"

func (p *Parser) parseBlock() *syntax.Node {
	open := p.expect(syntax.TokenLBrace)
	stmts := p.parseStatements()
	closing := p.expect(syntax.TokenRBrace)
	return syntax.NewNode(syntax.KindBlock, open, stmts, closing)
}

// parseStatements parses the statements of a block up to its closing brace.
// Unchanged statements of the old tree are taken over whole.
func (p *Parser) parseStatements() *syntax.List {
	var stmts []syntax.Element
	for {
		if node := p.src.CurrentNode(); node != nil && node.Kind().IsStatement() {
			p.src.ConsumeNode(node)
			stmts = append(stmts, node)
			continue
		}
		if p.match(syntax.TokenRBrace, syntax.TokenEOF) {
			break
		}
		stmts = append(stmts, p.parseStatement())
	}
	return syntax.NewList(stmts)
}

func stopStatement(k syntax.TokenKind) bool {
	return k == syntax.TokenRBrace || canStartStatement(k)
}

func (p *Parser) parseStatement() *syntax.Node {
	switch p.current().Kind() {
	case syntax.TokenLBrace:
		return p.parseBlock()
	case syntax.TokenSemicolon:
		return syntax.NewNode(syntax.KindEmptyStmt, p.advance())
	case syntax.TokenIf:
		return p.parseIfStmt()
	case syntax.TokenWhile:
		return p.parseWhileStmt()
	case syntax.TokenReturn:
		return p.parseReturnStmt()
	case syntax.TokenBreak:
		return p.parseJumpStmt(syntax.KindBreakStmt)
	case syntax.TokenContinue:
		return p.parseJumpStmt(syntax.KindContinueStmt)
	case syntax.TokenRBrace, syntax.TokenEOF:
		// A statement is required here but the enclosing block or input ends.
		return syntax.NewNode(syntax.KindEmptyStmt, p.missing(syntax.TokenSemicolon))
	}

	if p.isLocalVarDecl() {
		return p.parseLocalVarDecl()
	}
	if canStartExpression(p.current().Kind()) {
		expr := p.parseExpression()
		semi := p.expect(syntax.TokenSemicolon)
		return syntax.NewNode(syntax.KindExprStmt, expr, semi)
	}
	return p.skipUntil(stopStatement)
}

func (p *Parser) parseIfStmt() *syntax.Node {
	kw := p.advance()
	open := p.expect(syntax.TokenLParen)
	cond := p.parseExpression()
	closing := p.expect(syntax.TokenRParen)
	then := p.parseStatement()

	var elseClause *syntax.Node
	if p.check(syntax.TokenElse) {
		elseKw := p.advance()
		elseClause = syntax.NewNode(syntax.KindElseClause, elseKw, p.parseStatement())
	}
	return syntax.NewNode(syntax.KindIfStmt, kw, open, cond, closing, then, elseClause)
}

func (p *Parser) parseWhileStmt() *syntax.Node {
	kw := p.advance()
	open := p.expect(syntax.TokenLParen)
	cond := p.parseExpression()
	closing := p.expect(syntax.TokenRParen)
	body := p.parseStatement()
	return syntax.NewNode(syntax.KindWhileStmt, kw, open, cond, closing, body)
}

func (p *Parser) parseReturnStmt() *syntax.Node {
	kw := p.advance()
	var value syntax.Element
	if canStartExpression(p.current().Kind()) {
		value = p.parseExpression()
	}
	semi := p.expect(syntax.TokenSemicolon)
	return syntax.NewNode(syntax.KindReturnStmt, kw, value, semi)
}

func (p *Parser) parseJumpStmt(kind syntax.NodeKind) *syntax.Node {
	kw := p.advance()
	var label *syntax.Token
	if isIdentifierLike(p.current().Kind()) {
		label = p.expectIdentifier()
	}
	semi := p.expect(syntax.TokenSemicolon)
	return syntax.NewNode(kind, kw, label, semi)
}

// isLocalVarDecl decides between a declaration and an expression statement
// by trying to read a type followed by a name. The attempt is always undone.
func (p *Parser) isLocalVarDecl() bool {
	k := p.current().Kind()
	if isPrimitive(k) {
		return true
	}
	if !isIdentifierLike(k) {
		return false
	}

	rp := p.src.GetRewindPoint()
	defer p.src.ReleaseRewindPoint(rp)
	defer p.src.Rewind(rp)

	return p.skipType() && isIdentifierLike(p.current().Kind())
}

// skipType consumes a type without building nodes and reports whether one
// was there.
func (p *Parser) skipType() bool {
	switch k := p.current().Kind(); {
	case isPrimitive(k):
		p.advance()
	case isIdentifierLike(k):
		p.advance()
		for p.check(syntax.TokenDot) && isIdentifierLike(p.peek(1).Kind()) {
			p.advance()
			p.advance()
		}
		if p.check(syntax.TokenLT) {
			p.advance()
			if !p.skipType() {
				return false
			}
			for p.check(syntax.TokenComma) {
				p.advance()
				if !p.skipType() {
					return false
				}
			}
			if !p.check(syntax.TokenGT) {
				return false
			}
			p.advance()
		}
	default:
		return false
	}
	for p.check(syntax.TokenLBracket) && p.peek(1).Kind() == syntax.TokenRBracket {
		p.advance()
		p.advance()
	}
	return true
}

func (p *Parser) parseLocalVarDecl() *syntax.Node {
	typ := p.parseType()
	declarators := p.parseDeclarators(p.expectIdentifier())
	semi := p.expect(syntax.TokenSemicolon)
	return syntax.NewNode(syntax.KindLocalVarDecl, typ, declarators, semi)
}
