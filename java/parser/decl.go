package parser

import "github.com/dhamidi/reparse/java/syntax"

func (p *Parser) parseCompilationUnit() *syntax.Node {
	var pkg *syntax.Node
	if p.check(syntax.TokenPackage) {
		pkg = p.parsePackageDecl()
	}

	var imports []syntax.Element
	for p.check(syntax.TokenImport) {
		imports = append(imports, p.parseImportDecl())
	}

	members := p.parseMembers(false)
	eof := p.expect(syntax.TokenEOF)
	return syntax.NewNode(syntax.KindCompilationUnit, pkg, syntax.NewList(imports), members, eof)
}

func (p *Parser) parsePackageDecl() *syntax.Node {
	kw := p.advance()
	name := p.parseQualifiedName()
	semi := p.expect(syntax.TokenSemicolon)
	return syntax.NewNode(syntax.KindPackageDecl, kw, name, semi)
}

func (p *Parser) parseImportDecl() *syntax.Node {
	children := []syntax.Element{p.advance()}
	if p.check(syntax.TokenStatic) {
		children = append(children, p.advance())
	}
	children = append(children, p.parseQualifiedName())
	if p.check(syntax.TokenDot) && p.peek(1).Kind() == syntax.TokenStar {
		children = append(children, p.advance(), p.advance())
	}
	children = append(children, p.expect(syntax.TokenSemicolon))
	return syntax.NewNode(syntax.KindImportDecl, children...)
}

func (p *Parser) parseQualifiedName() *syntax.Node {
	parts := []syntax.Element{p.expectIdentifier()}
	for p.check(syntax.TokenDot) && isIdentifierLike(p.peek(1).Kind()) {
		parts = append(parts, p.advance(), p.expectIdentifier())
	}
	return syntax.NewNode(syntax.KindQualifiedName, parts...)
}

// parseMembers parses declarations up to the end of input, or up to a closing
// brace when inside a class body. Unchanged declarations of the old tree are
// taken over whole.
func (p *Parser) parseMembers(inClassBody bool) *syntax.List {
	var members []syntax.Element
	for {
		if node := p.src.CurrentNode(); node != nil && node.Kind().IsMember() {
			p.src.ConsumeNode(node)
			members = append(members, node)
			continue
		}
		k := p.current().Kind()
		if k == syntax.TokenEOF || (inClassBody && k == syntax.TokenRBrace) {
			break
		}
		members = append(members, p.parseMember())
	}
	return syntax.NewList(members)
}

func stopMember(k syntax.TokenKind) bool {
	return k == syntax.TokenRBrace || canStartMember(k)
}

func (p *Parser) parseMember() *syntax.Node {
	tok := p.current()
	if tok.Kind() == syntax.TokenSemicolon {
		return syntax.NewNode(syntax.KindEmptyDecl, p.advance())
	}
	if !canStartMember(tok.Kind()) {
		return p.skipUntil(stopMember)
	}

	mods := p.parseModifiers()
	switch k := p.current().Kind(); {
	case k == syntax.TokenClass:
		return p.parseClassDecl(mods)
	case k == syntax.TokenInterface:
		return p.parseInterfaceDecl(mods)
	case k == syntax.TokenVoid:
		void := p.advance()
		name := p.expectIdentifier()
		return p.parseMethodDecl(mods, void, name)
	case isTypeStart(k):
		typ := p.parseType()
		name := p.expectIdentifier()
		if p.check(syntax.TokenLParen) {
			return p.parseMethodDecl(mods, typ, name)
		}
		return p.parseFieldDecl(mods, typ, name)
	}

	var skipped []syntax.Element
	for k := p.current().Kind(); k != syntax.TokenEOF && !stopMember(k); k = p.current().Kind() {
		skipped = append(skipped, p.advance())
	}
	return syntax.NewNode(syntax.KindError, append([]syntax.Element{mods}, skipped...)...)
}

func (p *Parser) parseModifiers() *syntax.Node {
	var mods []syntax.Element
	for {
		switch k := p.current().Kind(); {
		case isModifier(k):
			mods = append(mods, p.advance())
		case k == syntax.TokenAt:
			mods = append(mods, p.parseAnnotation())
		default:
			return syntax.NewNode(syntax.KindModifiers, syntax.NewList(mods))
		}
	}
}

func (p *Parser) parseAnnotation() *syntax.Node {
	at := p.advance()
	name := p.parseQualifiedName()
	var args *syntax.Node
	if p.check(syntax.TokenLParen) {
		args = p.parseArguments()
	}
	return syntax.NewNode(syntax.KindAnnotation, at, name, args)
}

func (p *Parser) parseClassDecl(mods *syntax.Node) *syntax.Node {
	kw := p.advance()
	name := p.expectIdentifier()

	var extends, implements *syntax.Node
	if p.check(syntax.TokenExtends) {
		extends = syntax.NewNode(syntax.KindExtendsClause, p.advance(), p.parseTypeList())
	}
	if p.check(syntax.TokenImplements) {
		implements = syntax.NewNode(syntax.KindImplementsClause, p.advance(), p.parseTypeList())
	}

	body := p.parseClassBody()
	return syntax.NewNode(syntax.KindClassDecl, mods, kw, name, extends, implements, body)
}

func (p *Parser) parseInterfaceDecl(mods *syntax.Node) *syntax.Node {
	kw := p.advance()
	name := p.expectIdentifier()

	var extends *syntax.Node
	if p.check(syntax.TokenExtends) {
		extends = syntax.NewNode(syntax.KindExtendsClause, p.advance(), p.parseTypeList())
	}

	body := p.parseClassBody()
	return syntax.NewNode(syntax.KindInterfaceDecl, mods, kw, name, extends, body)
}

func (p *Parser) parseTypeList() *syntax.SeparatedList {
	items := []syntax.Element{p.parseType()}
	for p.check(syntax.TokenComma) {
		items = append(items, p.advance(), p.parseType())
	}
	return syntax.NewSeparatedList(items)
}

func (p *Parser) parseClassBody() *syntax.Node {
	open := p.expect(syntax.TokenLBrace)
	members := p.parseMembers(true)
	closing := p.expect(syntax.TokenRBrace)
	return syntax.NewNode(syntax.KindClassBody, open, members, closing)
}

// parseMethodDecl continues a declaration whose return type and name have
// been read. returnType is a type node or the void keyword.
func (p *Parser) parseMethodDecl(mods *syntax.Node, returnType syntax.Element, name *syntax.Token) *syntax.Node {
	params := p.parseParameters()
	var body syntax.Element
	if p.check(syntax.TokenLBrace) {
		body = p.parseBlock()
	} else {
		body = p.expect(syntax.TokenSemicolon)
	}
	return syntax.NewNode(syntax.KindMethodDecl, mods, returnType, name, params, body)
}

func (p *Parser) parseParameters() *syntax.Node {
	open := p.expect(syntax.TokenLParen)
	var items []syntax.Element
	if !p.check(syntax.TokenRParen) && !p.check(syntax.TokenEOF) {
		items = append(items, p.parseParameter())
		for p.check(syntax.TokenComma) {
			items = append(items, p.advance(), p.parseParameter())
		}
	}
	closing := p.expect(syntax.TokenRParen)
	return syntax.NewNode(syntax.KindParameters, open, syntax.NewSeparatedList(items), closing)
}

func (p *Parser) parseParameter() *syntax.Node {
	mods := p.parseModifiers()
	typ := p.parseType()
	name := p.expectIdentifier()
	return syntax.NewNode(syntax.KindParameter, mods, typ, name)
}

// parseFieldDecl continues a declaration whose type and first name have been
// read.
func (p *Parser) parseFieldDecl(mods, typ *syntax.Node, name *syntax.Token) *syntax.Node {
	declarators := p.parseDeclarators(name)
	semi := p.expect(syntax.TokenSemicolon)
	return syntax.NewNode(syntax.KindFieldDecl, mods, typ, declarators, semi)
}

func (p *Parser) parseDeclarators(first *syntax.Token) *syntax.SeparatedList {
	items := []syntax.Element{p.parseDeclarator(first)}
	for p.check(syntax.TokenComma) {
		comma := p.advance()
		items = append(items, comma, p.parseDeclarator(p.expectIdentifier()))
	}
	return syntax.NewSeparatedList(items)
}

func (p *Parser) parseDeclarator(name *syntax.Token) *syntax.Node {
	var init *syntax.Node
	if p.check(syntax.TokenAssign) {
		init = syntax.NewNode(syntax.KindInitializer, p.advance(), p.parseExpression())
	}
	return syntax.NewNode(syntax.KindDeclarator, name, init)
}

func (p *Parser) parseType() *syntax.Node {
	var typ *syntax.Node
	if isPrimitive(p.current().Kind()) {
		typ = syntax.NewNode(syntax.KindPrimitiveType, p.advance())
	} else {
		name := p.parseQualifiedName()
		var args *syntax.Node
		if p.check(syntax.TokenLT) {
			args = p.parseTypeArguments()
		}
		typ = syntax.NewNode(syntax.KindType, name, args)
	}
	for p.check(syntax.TokenLBracket) && p.peek(1).Kind() == syntax.TokenRBracket {
		typ = syntax.NewNode(syntax.KindArrayType, typ, p.advance(), p.advance())
	}
	return typ
}

// parseTypeArguments reads '>' as a plain token: the closing brackets of
// nested type arguments are never combined into a shift operator.
func (p *Parser) parseTypeArguments() *syntax.Node {
	open := p.advance()
	items := []syntax.Element{p.parseType()}
	for p.check(syntax.TokenComma) {
		items = append(items, p.advance(), p.parseType())
	}
	closing := p.expect(syntax.TokenGT)
	return syntax.NewNode(syntax.KindTypeArguments, open, syntax.NewSeparatedList(items), closing)
}
