// Package format renders parse trees for tools.
package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/reparse/java/incremental"
	"github.com/dhamidi/reparse/java/parser"
	"github.com/dhamidi/reparse/java/syntax"
)

type TreeJSONEncoder struct {
	w io.Writer
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w}
}

func (e *TreeJSONEncoder) Encode(tree *parser.Tree) error {
	text, err := e.MarshalText(tree)
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *TreeJSONEncoder) MarshalText(tree *parser.Tree) ([]byte, error) {
	out := treeJSON{
		File:        tree.File,
		Root:        elementToJSON(tree.Root),
		Diagnostics: []diagnosticJSON{},
	}
	for _, d := range tree.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, diagnosticJSON(d))
	}
	if tree.Stats != (incremental.Stats{}) {
		stats := statsJSON(tree.Stats)
		out.Stats = &stats
	}
	return json.MarshalIndent(out, "", "  ")
}

type treeJSON struct {
	File        string           `json:"file,omitempty"`
	Root        *elementJSON     `json:"root"`
	Diagnostics []diagnosticJSON `json:"diagnostics"`
	Stats       *statsJSON       `json:"stats,omitempty"`
}

// elementJSON is a node, list or token. Spans are byte offsets of the
// element without its outer trivia.
type elementJSON struct {
	Kind     string         `json:"kind"`
	Span     *spanJSON      `json:"span,omitempty"`
	Token    string         `json:"token,omitempty"`
	Missing  bool           `json:"missing,omitempty"`
	Children []*elementJSON `json:"children,omitempty"`
}

type spanJSON struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type diagnosticJSON struct {
	Start   int    `json:"start"`
	Length  int    `json:"length"`
	Message string `json:"message"`
}

type statsJSON struct {
	ReusedNodes   int `json:"reusedNodes"`
	ReusedTokens  int `json:"reusedTokens"`
	ScannedTokens int `json:"scannedTokens"`
	Crumbled      int `json:"crumbled"`
	Skipped       int `json:"skipped"`
}

func elementToJSON(e syntax.Element) *elementJSON {
	switch v := e.(type) {
	case *syntax.Token:
		return &elementJSON{
			Kind:    v.Kind().String(),
			Span:    &spanJSON{Start: v.Start(), End: v.End()},
			Token:   v.Text(),
			Missing: v.IsMissing(),
		}
	case *syntax.Node:
		je := &elementJSON{Kind: v.Kind().String()}
		if syntax.FirstToken(v) != nil {
			je.Span = &spanJSON{Start: v.Start(), End: v.End()}
		}
		je.Children = childrenToJSON(v)
		return je
	case *syntax.List:
		return &elementJSON{Kind: "List", Children: childrenToJSON(v)}
	case *syntax.SeparatedList:
		return &elementJSON{Kind: "SeparatedList", Children: childrenToJSON(v)}
	}
	return nil
}

// childrenToJSON leaves out absent slots.
func childrenToJSON(e syntax.Element) []*elementJSON {
	var children []*elementJSON
	for i := 0; i < e.ChildCount(); i++ {
		if c := e.ChildAt(i); c != nil {
			if jc := elementToJSON(c); jc != nil {
				children = append(children, jc)
			}
		}
	}
	return children
}
