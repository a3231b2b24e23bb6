package syntax

// Element is one of *Token, *Node, *List or *SeparatedList. The set is closed;
// code that needs to tell them apart uses a type switch over those four.
//
// Parent back references are assigned when an element is placed under a new
// node. Reusing elements of an old tree in a new one therefore moves them:
// once an incremental parse has reused part of a tree, the old tree must not
// be read again.
type Element interface {
	FullWidth() int
	FullStart() int
	// IsShared reports whether the element is a canonical empty instance that
	// has no parent and no position.
	IsShared() bool
	IsIncrementallyUnusable() bool
	ChildCount() int
	// ChildAt returns the i-th child slot, which is nil when absent.
	ChildAt(i int) Element
	Parent() Element

	setParent(Element)
}

func present(e Element) bool {
	switch v := e.(type) {
	case *Token:
		return v != nil
	case *Node:
		return v != nil
	case *List:
		return v != nil
	case *SeparatedList:
		return v != nil
	}
	return false
}

func sumWidth(elements []Element) (width int, unusable bool) {
	for _, e := range elements {
		if e == nil {
			continue
		}
		width += e.FullWidth()
		if e.IsIncrementallyUnusable() {
			unusable = true
		}
	}
	return width, unusable
}

func adopt(parent Element, children []Element) []Element {
	out := make([]Element, len(children))
	for i, c := range children {
		if !present(c) {
			continue
		}
		out[i] = c
		if !c.IsShared() {
			c.setParent(parent)
		}
	}
	return out
}

// Node is an interior element of the tree with a fixed kind and ordered child
// slots.
type Node struct {
	kind      NodeKind
	children  []Element
	fullWidth int
	unusable  bool
	parent    Element
}

// NewNode builds a node over children. Nil children (including typed nil
// pointers) are recorded as absent slots.
func NewNode(kind NodeKind, children ...Element) *Node {
	n := &Node{kind: kind}
	n.children = adopt(n, children)
	n.fullWidth, n.unusable = sumWidth(n.children)
	if kind == KindError {
		n.unusable = true
	}
	return n
}

func (n *Node) Kind() NodeKind                { return n.kind }
func (n *Node) FullWidth() int                { return n.fullWidth }
func (n *Node) IsShared() bool                { return false }
func (n *Node) IsIncrementallyUnusable() bool { return n.unusable }
func (n *Node) ChildCount() int               { return len(n.children) }
func (n *Node) ChildAt(i int) Element         { return n.children[i] }
func (n *Node) Parent() Element               { return n.parent }
func (n *Node) setParent(p Element)           { n.parent = p }

func (n *Node) FullStart() int {
	tok := FirstToken(n)
	Assertf(tok != nil, "node %v has no tokens", n.kind)
	return tok.FullStart()
}

// Start is the position of the first non-trivia byte of the node.
func (n *Node) Start() int {
	tok := FirstToken(n)
	Assertf(tok != nil, "node %v has no tokens", n.kind)
	return tok.Start()
}

// End is the position just past the last non-trivia byte of the node.
func (n *Node) End() int {
	tok := LastToken(n)
	Assertf(tok != nil, "node %v has no tokens", n.kind)
	return tok.End()
}

// FirstChildOfKind returns the first child node of the given kind.
func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, c := range n.children {
		if child, ok := c.(*Node); ok && child.kind == kind {
			return child
		}
	}
	return nil
}

// TokenChild returns the first direct token child of the given kind.
func (n *Node) TokenChild(kind TokenKind) *Token {
	for _, c := range n.children {
		if tok, ok := c.(*Token); ok && tok.kind == kind {
			return tok
		}
	}
	return nil
}

func (n *Node) String() string {
	return Dump(n, false)
}

// List is a non-empty sequence of elements. The empty list is the shared
// EmptyList instance.
type List struct {
	elements  []Element
	fullWidth int
	unusable  bool
	parent    Element
	shared    bool
}

// EmptyList is the canonical empty list.
var EmptyList = &List{shared: true}

func NewList(elements []Element) *List {
	if len(elements) == 0 {
		return EmptyList
	}
	l := &List{}
	l.elements = adopt(l, elements)
	l.fullWidth, l.unusable = sumWidth(l.elements)
	return l
}

func (l *List) FullWidth() int                { return l.fullWidth }
func (l *List) IsShared() bool                { return l.shared }
func (l *List) IsIncrementallyUnusable() bool { return l.unusable }
func (l *List) ChildCount() int               { return len(l.elements) }
func (l *List) ChildAt(i int) Element         { return l.elements[i] }
func (l *List) Parent() Element               { return l.parent }

func (l *List) setParent(p Element) {
	Assertf(!l.shared, "cannot parent the shared empty list")
	l.parent = p
}

func (l *List) FullStart() int {
	Assertf(!l.shared, "shared empty list has no position")
	return l.elements[0].FullStart()
}

// SeparatedList is a non-empty sequence of items interleaved with separator
// tokens: item, separator, item, ... The empty one is EmptySeparatedList.
type SeparatedList struct {
	elements  []Element
	fullWidth int
	unusable  bool
	parent    Element
	shared    bool
}

// EmptySeparatedList is the canonical empty separated list.
var EmptySeparatedList = &SeparatedList{shared: true}

func NewSeparatedList(elements []Element) *SeparatedList {
	if len(elements) == 0 {
		return EmptySeparatedList
	}
	l := &SeparatedList{}
	l.elements = adopt(l, elements)
	l.fullWidth, l.unusable = sumWidth(l.elements)
	return l
}

func (l *SeparatedList) FullWidth() int                { return l.fullWidth }
func (l *SeparatedList) IsShared() bool                { return l.shared }
func (l *SeparatedList) IsIncrementallyUnusable() bool { return l.unusable }
func (l *SeparatedList) ChildCount() int               { return len(l.elements) }
func (l *SeparatedList) ChildAt(i int) Element         { return l.elements[i] }
func (l *SeparatedList) Parent() Element               { return l.parent }

func (l *SeparatedList) setParent(p Element) {
	Assertf(!l.shared, "cannot parent the shared empty separated list")
	l.parent = p
}

func (l *SeparatedList) FullStart() int {
	Assertf(!l.shared, "shared empty separated list has no position")
	return l.elements[0].FullStart()
}

// ItemCount returns the number of non-separator items.
func (l *SeparatedList) ItemCount() int {
	return (len(l.elements) + 1) / 2
}

func (l *SeparatedList) Item(i int) Element {
	return l.elements[i*2]
}

func (l *SeparatedList) Separator(i int) *Token {
	return l.elements[i*2+1].(*Token)
}
