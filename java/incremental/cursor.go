package incremental

import "github.com/dhamidi/reparse/java/syntax"

type piece struct {
	element       syntax.Element
	indexInParent int
}

// Cursor walks the nodes and tokens of a tree in document order. Its state
// is the path from the root to the current element, one piece per level, so
// copying it costs the depth of the tree rather than its size. Lists appear
// in the path but are never current: the cursor always descends into their
// first element. Absent child slots and shared empty lists are skipped.
type Cursor struct {
	pieces  []piece
	current int
}

func newCursor() *Cursor {
	return &Cursor{current: -1}
}

func (c *Cursor) IsFinished() bool {
	return c.current < 0
}

// PushElement makes e, the child at indexInParent of the current element,
// the new current element.
func (c *Cursor) PushElement(e syntax.Element, indexInParent int) {
	syntax.Assertf(e != nil && !e.IsShared(), "cannot position cursor on a shared or absent element")
	c.current++
	if c.current == len(c.pieces) {
		c.pieces = append(c.pieces, piece{})
	}
	c.pieces[c.current] = piece{element: e, indexInParent: indexInParent}
}

// MoveToFirstChild descends into the first usable child of the current node.
// On a token it does nothing; on a node without usable children it moves to
// the next sibling instead.
func (c *Cursor) MoveToFirstChild() {
	e := c.CurrentNodeOrToken()
	if e == nil {
		return
	}
	if _, ok := e.(*syntax.Token); ok {
		return
	}
	for i := 0; i < e.ChildCount(); i++ {
		if child := e.ChildAt(i); usable(child) {
			c.PushElement(child, i)
			c.moveToFirstChildIfList()
			return
		}
	}
	c.MoveToNextSibling()
}

// MoveToNextSibling moves to the next usable element after the current one
// in document order, climbing out of parents whose children are exhausted.
// Climbing out of the root finishes the cursor.
func (c *Cursor) MoveToNextSibling() {
	for !c.IsFinished() {
		p := &c.pieces[c.current]
		if c.current > 0 {
			parent := c.pieces[c.current-1].element
			for i := p.indexInParent + 1; i < parent.ChildCount(); i++ {
				if sibling := parent.ChildAt(i); usable(sibling) {
					p.element = sibling
					p.indexInParent = i
					c.moveToFirstChildIfList()
					return
				}
			}
		}
		p.element = nil
		p.indexInParent = 0
		c.current--
	}
}

func (c *Cursor) moveToFirstChildIfList() {
	for {
		switch l := c.pieces[c.current].element.(type) {
		case *syntax.List, *syntax.SeparatedList:
			syntax.Assertf(l.ChildCount() > 0, "non-shared list without elements")
			c.PushElement(l.ChildAt(0), 0)
		default:
			return
		}
	}
}

// MoveToFirstToken descends until the current element is a token.
func (c *Cursor) MoveToFirstToken() {
	for {
		e := c.CurrentNodeOrToken()
		if e == nil {
			return
		}
		if _, ok := e.(*syntax.Token); ok {
			return
		}
		c.MoveToFirstChild()
	}
}

func (c *Cursor) CurrentNodeOrToken() syntax.Element {
	if c.IsFinished() {
		return nil
	}
	return c.pieces[c.current].element
}

func (c *Cursor) CurrentNode() *syntax.Node {
	n, _ := c.CurrentNodeOrToken().(*syntax.Node)
	return n
}

func (c *Cursor) CurrentToken() *syntax.Token {
	t, _ := c.CurrentNodeOrToken().(*syntax.Token)
	return t
}

// Clean drops every reference into the tree.
func (c *Cursor) Clean() {
	for i := range c.pieces {
		c.pieces[i] = piece{}
	}
	c.current = -1
}

// DeepCopyFrom replaces this cursor's path with a copy of other's. The two
// cursors move independently afterwards.
func (c *Cursor) DeepCopyFrom(other *Cursor) {
	syntax.Assertf(c != other, "cannot copy a cursor onto itself")
	c.Clean()
	for i := 0; i <= other.current; i++ {
		p := other.pieces[i]
		c.PushElement(p.element, p.indexInParent)
	}
}

func usable(e syntax.Element) bool {
	if e == nil {
		return false
	}
	switch v := e.(type) {
	case *syntax.Token:
		return v != nil
	case *syntax.Node:
		return v != nil
	case *syntax.List:
		return v != nil && !v.IsShared()
	case *syntax.SeparatedList:
		return v != nil && !v.IsShared()
	}
	return false
}
