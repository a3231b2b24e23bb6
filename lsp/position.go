package lsp

import (
	"slices"
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// lineIndex maps byte offsets of a document to LSP positions, whose
// characters are counted in UTF-16 code units.
type lineIndex struct {
	content string
	starts  []int
}

func newLineIndex(content string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{content: content, starts: starts}
}

func (l *lineIndex) position(offset int) protocol.Position {
	offset = min(max(offset, 0), len(l.content))
	line, found := slices.BinarySearch(l.starts, offset)
	if !found {
		line--
	}
	character := 0
	for _, r := range l.content[l.starts[line]:offset] {
		character += utf16.RuneLen(r)
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(character),
	}
}

func (l *lineIndex) rangeOf(start, end int) protocol.Range {
	return protocol.Range{Start: l.position(start), End: l.position(end)}
}

func uriToPath(uri protocol.DocumentUri) string {
	if path, ok := strings.CutPrefix(uri, "file://"); ok {
		return path
	}
	return uri
}
