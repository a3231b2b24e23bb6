package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/reparse/java/parser"
	"github.com/dhamidi/reparse/java/syntax"
)

func decode(t *testing.T, tree *parser.Tree) treeJSON {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewTreeJSONEncoder(&buf).Encode(tree))

	var out treeJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestTreeJSONEncoder(t *testing.T) {
	out := decode(t, parser.ParseString("class A { int x }", parser.WithFile("A.java")))

	assert.Equal(t, "A.java", out.File)
	assert.Equal(t, []diagnosticJSON{{Start: 16, Message: "expected ';'"}}, out.Diagnostics)
	assert.Nil(t, out.Stats)

	root := out.Root
	assert.Equal(t, "CompilationUnit", root.Kind)
	assert.Equal(t, &spanJSON{Start: 0, End: 17}, root.Span)
	require.Len(t, root.Children, 3, "imports, members and EOF; the absent package is left out")

	class := root.Children[1].Children[0]
	assert.Equal(t, "ClassDecl", class.Kind)
	name := class.Children[2]
	assert.Equal(t, "A", name.Token)
	assert.Equal(t, &spanJSON{Start: 6, End: 7}, name.Span)

	var missing []*elementJSON
	var walk func(e *elementJSON)
	walk = func(e *elementJSON) {
		if e.Missing {
			missing = append(missing, e)
		}
		for _, c := range e.Children {
			walk(c)
		}
	}
	walk(root)
	require.Len(t, missing, 1)
	assert.Equal(t, ";", missing[0].Kind)
}

func TestTreeJSONEncoderIncludesStats(t *testing.T) {
	old := parser.ParseString("class A { int f() { } int g() { } }")
	tree, err := old.Edit(syntax.NewChangeRange(syntax.TextSpan{Start: 14, Length: 1}, 2), "ff")
	require.NoError(t, err)

	out := decode(t, tree)
	require.NotNil(t, out.Stats)
	assert.Equal(t, tree.Stats.ReusedNodes, out.Stats.ReusedNodes)
	assert.Positive(t, out.Stats.ScannedTokens)
}
