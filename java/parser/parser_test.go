package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/reparse/java/syntax"
)

func findAll(e syntax.Element, kind syntax.NodeKind) []*syntax.Node {
	var found []*syntax.Node
	var walk func(e syntax.Element)
	walk = func(e syntax.Element) {
		if e == nil {
			return
		}
		if _, ok := e.(*syntax.Token); ok {
			return
		}
		if n, ok := e.(*syntax.Node); ok && n.Kind() == kind {
			found = append(found, n)
		}
		for i := 0; i < e.ChildCount(); i++ {
			walk(e.ChildAt(i))
		}
	}
	walk(e)
	return found
}

func find(t *testing.T, e syntax.Element, kind syntax.NodeKind) *syntax.Node {
	t.Helper()
	found := findAll(e, kind)
	require.NotEmpty(t, found, "no %v in\n%s", kind, syntax.Dump(e, false))
	return found[0]
}

func tokenAt(t *testing.T, n *syntax.Node, i int) *syntax.Token {
	t.Helper()
	tok, ok := n.ChildAt(i).(*syntax.Token)
	require.True(t, ok, "child %d of %v is not a token", i, n.Kind())
	return tok
}

func TestParseCoversText(t *testing.T) {
	inputs := []string{
		"",
		"   \n",
		sample,
		"class A { # }",
		"class { void f( { x = ; } ",
		"/* unterminated",
		"class A { String s = \"open; }\n}",
		"}}}",
	}

	for _, input := range inputs {
		tree := ParseString(input)
		var b strings.Builder
		syntax.VisitTokens(tree.Root, func(tok *syntax.Token) bool {
			b.WriteString(tok.FullText())
			return true
		})
		assert.Equal(t, input, b.String())
		assert.Equal(t, len(input), tree.Root.FullWidth())
		assert.Equal(t, syntax.TokenEOF, syntax.LastToken(tree.Root).Kind())
	}
}

func TestParseSample(t *testing.T) {
	tree := ParseString(sample, WithFile("Counter.java"))
	assert.Equal(t, "Counter.java", tree.File)
	assert.Empty(t, tree.Diagnostics)
	assert.Zero(t, tree.Stats)

	assert.NotNil(t, find(t, tree.Root, syntax.KindPackageDecl))
	assert.Len(t, findAll(tree.Root, syntax.KindImportDecl), 1)
	assert.Len(t, findAll(tree.Root, syntax.KindMethodDecl), 3)
	assert.Len(t, findAll(tree.Root, syntax.KindFieldDecl), 2)

	class := find(t, tree.Root, syntax.KindClassDecl)
	assert.Equal(t, "Counter", tokenAt(t, class, 2).Text())
	assert.NotNil(t, class.ChildAt(3), "extends clause")
	assert.NotNil(t, class.ChildAt(4), "implements clause")
}

func TestParseDeclarations(t *testing.T) {
	tree := ParseString("import static a.B.*;\nclass A implements C, D { int f(int a, String[] b); }")
	require.Empty(t, tree.Diagnostics)

	imp := find(t, tree.Root, syntax.KindImportDecl)
	assert.Equal(t, syntax.TokenStatic, tokenAt(t, imp, 1).Kind())
	assert.Equal(t, syntax.TokenStar, tokenAt(t, imp, 4).Kind())

	impl := find(t, tree.Root, syntax.KindImplementsClause)
	assert.Equal(t, 3, impl.ChildAt(1).ChildCount(), "two types and a comma")

	method := find(t, tree.Root, syntax.KindMethodDecl)
	assert.Equal(t, "f", tokenAt(t, method, 2).Text())
	assert.Equal(t, syntax.TokenSemicolon, tokenAt(t, method, 4).Kind())
	params := find(t, method, syntax.KindParameters)
	assert.Equal(t, 3, params.ChildAt(1).ChildCount())
	assert.NotNil(t, find(t, params, syntax.KindArrayType))
}

func TestParseStatementKinds(t *testing.T) {
	tree := ParseString(`class A { void f() {
		List<String> xs = y;
		a < b;
		x = 1;
		int[] ys;
		var v = 2;
		while (x) break;
		if (x) return; else continue;
		{ }
		;
	} }`)
	require.Empty(t, tree.Diagnostics)

	body := find(t, tree.Root, syntax.KindBlock)
	stmts := body.ChildAt(1)
	want := []syntax.NodeKind{
		syntax.KindLocalVarDecl,
		syntax.KindExprStmt,
		syntax.KindExprStmt,
		syntax.KindLocalVarDecl,
		syntax.KindLocalVarDecl,
		syntax.KindWhileStmt,
		syntax.KindIfStmt,
		syntax.KindBlock,
		syntax.KindEmptyStmt,
	}
	require.Equal(t, len(want), stmts.ChildCount())
	for i, kind := range want {
		assert.Equal(t, kind, stmts.ChildAt(i).(*syntax.Node).Kind(), "statement %d", i)
	}

	assert.Equal(t, syntax.KindBinaryExpr, stmts.ChildAt(1).ChildAt(0).(*syntax.Node).Kind())
	assert.Equal(t, syntax.KindAssignExpr, stmts.ChildAt(2).ChildAt(0).(*syntax.Node).Kind())

	name := syntax.FirstToken(stmts.ChildAt(4))
	assert.Equal(t, syntax.TokenIdent, name.Kind())
	assert.True(t, name.IsConvertedKeyword())
}

func TestParseOperators(t *testing.T) {
	tree := ParseString("class A { void f() { x = a + b * c; y >>= a >> b >>> c >= d; } }")

	assigns := findAll(tree.Root, syntax.KindAssignExpr)
	require.Len(t, assigns, 2)

	sum := assigns[0].ChildAt(2).(*syntax.Node)
	require.Equal(t, syntax.KindBinaryExpr, sum.Kind())
	assert.Equal(t, syntax.TokenPlus, tokenAt(t, sum, 1).Kind())
	assert.Equal(t, syntax.TokenStar, tokenAt(t, sum.ChildAt(2).(*syntax.Node), 1).Kind())

	assert.Equal(t, syntax.TokenShrAssign, tokenAt(t, assigns[1], 1).Kind())
	cmp := assigns[1].ChildAt(2).(*syntax.Node)
	require.Equal(t, syntax.KindBinaryExpr, cmp.Kind())
	assert.Equal(t, syntax.TokenGE, tokenAt(t, cmp, 1).Kind())
	shift := cmp.ChildAt(0).(*syntax.Node)
	assert.Equal(t, syntax.TokenUShr, tokenAt(t, shift, 1).Kind())
	assert.Equal(t, syntax.TokenShr, tokenAt(t, shift.ChildAt(0).(*syntax.Node), 1).Kind())
}

func TestParseTypeArgumentsKeepBracketsApart(t *testing.T) {
	tree := ParseString("class A { Map<String, List<String>> m; }")
	require.Empty(t, tree.Diagnostics)

	args := findAll(tree.Root, syntax.KindTypeArguments)
	require.Len(t, args, 2)
	for _, a := range args {
		assert.Equal(t, syntax.TokenGT, tokenAt(t, a, 2).Kind())
	}
}

func TestParseDiagnostics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []syntax.Diagnostic
	}{
		{
			name:  "missing semicolon",
			input: "class A { void f() { x = 1 } }",
			want:  []syntax.Diagnostic{{Start: 27, Message: "expected ';'"}},
		},
		{
			name:  "missing class name",
			input: "class { }",
			want:  []syntax.Diagnostic{{Start: 6, Message: "expected 'Identifier'"}},
		},
		{
			name:  "unexpected character",
			input: "class A { # }",
			want: []syntax.Diagnostic{
				{Start: 10, Length: 1, Message: "unexpected character"},
				{Start: 10, Length: 1, Message: "unexpected '#'"},
			},
		},
		{
			name:  "unterminated comment",
			input: "class A { } /* x",
			want:  []syntax.Diagnostic{{Start: 12, Length: 4, Message: "unterminated comment"}},
		},
		{
			name:  "missing closing brace",
			input: "class A {",
			want:  []syntax.Diagnostic{{Start: 9, Message: "expected '}'"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := ParseString(tt.input)
			assert.Equal(t, tt.want, tree.Diagnostics)
		})
	}
}

func TestParseRecoversFromStrayTokens(t *testing.T) {
	tree := ParseString("class A { ) int x; } } class B { }")
	assert.NotEmpty(t, tree.Diagnostics)
	assert.Len(t, findAll(tree.Root, syntax.KindClassDecl), 2)
	assert.Len(t, findAll(tree.Root, syntax.KindFieldDecl), 1)
	assert.Len(t, findAll(tree.Root, syntax.KindError), 2)
}
