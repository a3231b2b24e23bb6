package syntax

// VisitTokens calls fn for every token under e in document order. Returning
// false from fn stops the walk.
func VisitTokens(e Element, fn func(*Token) bool) bool {
	switch v := e.(type) {
	case *Token:
		if v == nil {
			return true
		}
		return fn(v)
	case nil:
		return true
	default:
		if !present(e) {
			return true
		}
		for i := 0; i < e.ChildCount(); i++ {
			if !VisitTokens(e.ChildAt(i), fn) {
				return false
			}
		}
		return true
	}
}

// FirstToken returns the first token under e, including zero-width ones, or
// nil if there is none.
func FirstToken(e Element) *Token {
	var first *Token
	VisitTokens(e, func(t *Token) bool {
		first = t
		return false
	})
	return first
}

// LastToken returns the last token under e, or nil if there is none.
func LastToken(e Element) *Token {
	if !present(e) {
		return nil
	}
	if tok, ok := e.(*Token); ok {
		return tok
	}
	for i := e.ChildCount() - 1; i >= 0; i-- {
		if tok := LastToken(e.ChildAt(i)); tok != nil {
			return tok
		}
	}
	return nil
}

// FindToken returns the token whose full span contains pos. Positions at or
// past the end of root resolve to its last token.
func FindToken(root Element, pos int) *Token {
	if pos >= root.FullWidth() {
		return LastToken(root)
	}
	offset := 0
	e := root
	for {
		if tok, ok := e.(*Token); ok {
			return tok
		}
		next := Element(nil)
		for i := 0; i < e.ChildCount(); i++ {
			child := e.ChildAt(i)
			if child == nil {
				continue
			}
			w := child.FullWidth()
			if pos < offset+w {
				next = child
				break
			}
			offset += w
		}
		Assertf(next != nil, "position %d not covered by %T", pos, e)
		e = next
	}
}

// Diagnostic is a problem found while scanning or parsing, located by byte
// offsets in the source text.
type Diagnostic struct {
	Start   int
	Length  int
	Message string
}

// TreeDiagnostics derives the grammar diagnostics recorded in the shape of the
// tree: skipped tokens under Error nodes and tokens inserted as missing.
func TreeDiagnostics(root Element) []Diagnostic {
	var diags []Diagnostic
	var walk func(e Element)
	walk = func(e Element) {
		switch v := e.(type) {
		case *Token:
			if v.IsMissing() {
				diags = append(diags, Diagnostic{
					Start:   v.Start(),
					Message: "expected '" + v.Kind().String() + "'",
				})
			}
		case *Node:
			if v.Kind() == KindError {
				if first := FirstToken(v); first != nil {
					diags = append(diags, Diagnostic{
						Start:   first.Start(),
						Length:  v.End() - first.Start(),
						Message: "unexpected '" + first.Text() + "'",
					})
				}
				return
			}
			for i := 0; i < v.ChildCount(); i++ {
				if c := v.ChildAt(i); c != nil {
					walk(c)
				}
			}
		case *List, *SeparatedList:
			for i := 0; i < e.ChildCount(); i++ {
				walk(e.ChildAt(i))
			}
		}
	}
	walk(root)
	return diags
}
