package syntax

// ApplyChange returns the text produced by replacing change.Span in old with
// replacement. len(replacement) must equal change.NewLength.
func ApplyChange(old *Text, change TextChangeRange, replacement string) *Text {
	Assertf(len(replacement) == change.NewLength, "replacement length %d does not match change %v", len(replacement), change)
	Assertf(change.Span.Start >= 0 && change.Span.End() <= old.Len(), "change %v outside text of length %d", change, old.Len())
	return NewText(old.content[:change.Span.Start] + replacement + old.content[change.Span.End():])
}

// ChangeRangeBetween computes a single change range turning old into new by
// trimming their common prefix and suffix.
func ChangeRangeBetween(old, new *Text) TextChangeRange {
	a, b := old.String(), new.String()
	prefix := 0
	for prefix < len(a) && prefix < len(b) && a[prefix] == b[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(a)-prefix && suffix < len(b)-prefix && a[len(a)-1-suffix] == b[len(b)-1-suffix] {
		suffix++
	}
	return TextChangeRange{
		Span:      SpanFromBounds(prefix, len(a)-suffix),
		NewLength: len(b) - suffix - prefix,
	}
}

// CollapseChangeRanges folds a sequence of edits, each expressed against the
// text produced by the previous one, into one range against the original
// text.
func CollapseChangeRanges(changes []TextChangeRange) TextChangeRange {
	if len(changes) == 0 {
		return TextChangeRange{}
	}
	first := changes[0]
	oldStart := first.Span.Start
	oldEnd := first.Span.End()
	newEnd := oldStart + first.NewLength

	for _, next := range changes[1:] {
		oldStart1, oldEnd1, newEnd1 := oldStart, oldEnd, newEnd
		oldStart2, oldEnd2, newEnd2 := next.Span.Start, next.Span.End(), next.Span.Start+next.NewLength

		oldStart = min(oldStart1, oldStart2)
		oldEnd = max(oldEnd1, oldEnd1+(oldEnd2-newEnd1))
		newEnd = max(newEnd2, newEnd2+(newEnd1-oldEnd2))
	}
	return TextChangeRange{
		Span:      SpanFromBounds(oldStart, oldEnd),
		NewLength: newEnd - oldStart,
	}
}
