package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/reparse/java/parser"
	"github.com/dhamidi/reparse/java/syntax"
)

func symbols(tree *parser.Tree) []protocol.DocumentSymbol {
	lines := newLineIndex(tree.Text.String())
	return memberSymbols(lines, tree.Root.ChildAt(2))
}

// memberSymbols lists the declarations of a member list. Declarations whose
// name is missing are left out.
func memberSymbols(lines *lineIndex, members syntax.Element) []protocol.DocumentSymbol {
	var result []protocol.DocumentSymbol
	for i := 0; i < members.ChildCount(); i++ {
		n, ok := members.ChildAt(i).(*syntax.Node)
		if !ok {
			continue
		}
		switch n.Kind() {
		case syntax.KindClassDecl:
			result = appendSymbol(result, lines, n, n.ChildAt(2), protocol.SymbolKindClass, n.ChildAt(5))
		case syntax.KindInterfaceDecl:
			result = appendSymbol(result, lines, n, n.ChildAt(2), protocol.SymbolKindInterface, n.ChildAt(4))
		case syntax.KindMethodDecl:
			result = appendSymbol(result, lines, n, n.ChildAt(2), protocol.SymbolKindMethod, nil)
		case syntax.KindFieldDecl:
			declarators := n.ChildAt(2)
			for j := 0; j < declarators.ChildCount(); j++ {
				if d, ok := declarators.ChildAt(j).(*syntax.Node); ok && d.Kind() == syntax.KindDeclarator {
					result = appendSymbol(result, lines, n, d.ChildAt(0), protocol.SymbolKindField, nil)
				}
			}
		}
	}
	return result
}

func appendSymbol(result []protocol.DocumentSymbol, lines *lineIndex, decl *syntax.Node, name syntax.Element, kind protocol.SymbolKind, body syntax.Element) []protocol.DocumentSymbol {
	tok, ok := name.(*syntax.Token)
	if !ok || tok.IsMissing() {
		return result
	}
	symbol := protocol.DocumentSymbol{
		Name:           tok.Text(),
		Kind:           kind,
		Range:          lines.rangeOf(decl.Start(), decl.End()),
		SelectionRange: lines.rangeOf(tok.Start(), tok.End()),
	}
	if body != nil {
		symbol.Children = memberSymbols(lines, body.ChildAt(1))
	}
	return append(result, symbol)
}
