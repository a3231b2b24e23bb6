package syntax

import "fmt"

// Text is an immutable snapshot of source text. Substrings share the backing
// storage, so slicing is O(1).
type Text struct {
	content string
}

func NewText(content string) *Text {
	return &Text{content: content}
}

func (t *Text) Len() int {
	if t == nil {
		return 0
	}
	return len(t.content)
}

func (t *Text) At(i int) byte {
	return t.content[i]
}

func (t *Text) Substring(start, end int) string {
	return t.content[start:end]
}

func (t *Text) String() string {
	if t == nil {
		return ""
	}
	return t.content
}

// TextSpan is the half-open interval [Start, Start+Length).
type TextSpan struct {
	Start  int
	Length int
}

func SpanFromBounds(start, end int) TextSpan {
	return TextSpan{Start: start, Length: end - start}
}

func (s TextSpan) End() int {
	return s.Start + s.Length
}

// IntersectsWithPosition reports whether pos lies in the span, counting both
// end points.
func (s TextSpan) IntersectsWithPosition(pos int) bool {
	return pos >= s.Start && pos <= s.End()
}

// IntersectsWith reports whether [start, start+length) overlaps or touches
// the span.
func (s TextSpan) IntersectsWith(start, length int) bool {
	end := start + length
	return start <= s.End() && end >= s.Start
}

func (s TextSpan) String() string {
	return fmt.Sprintf("[%d..%d)", s.Start, s.End())
}

// TextChangeRange describes one edit: Span is the replaced region in the old
// text and NewLength the length of its replacement.
type TextChangeRange struct {
	Span      TextSpan
	NewLength int
}

func NewChangeRange(span TextSpan, newLength int) TextChangeRange {
	return TextChangeRange{Span: span, NewLength: newLength}
}

// NewSpan is the replaced region in new-text coordinates.
func (r TextChangeRange) NewSpan() TextSpan {
	return TextSpan{Start: r.Span.Start, Length: r.NewLength}
}

// Delta is the change in document length caused by the edit.
func (r TextChangeRange) Delta() int {
	return r.NewLength - r.Span.Length
}

func (r TextChangeRange) IsUnchanged() bool {
	return r.Span.Length == 0 && r.NewLength == 0
}

func (r TextChangeRange) String() string {
	return fmt.Sprintf("%v -> %d", r.Span, r.NewLength)
}
