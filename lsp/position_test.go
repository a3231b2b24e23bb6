package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestLineIndexCountsUTF16(t *testing.T) {
	lines := newLineIndex("a\né\U0001F600b\n")

	tests := []struct {
		offset int
		want   protocol.Position
	}{
		{0, protocol.Position{Line: 0, Character: 0}},
		{1, protocol.Position{Line: 0, Character: 1}},
		{2, protocol.Position{Line: 1, Character: 0}},
		{4, protocol.Position{Line: 1, Character: 1}},
		{8, protocol.Position{Line: 1, Character: 3}},
		{10, protocol.Position{Line: 2, Character: 0}},
		{99, protocol.Position{Line: 2, Character: 0}},
		{-1, protocol.Position{Line: 0, Character: 0}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, lines.position(tt.offset), "offset %d", tt.offset)
	}
}

func TestURIToPath(t *testing.T) {
	assert.Equal(t, "/src/A.java", uriToPath("file:///src/A.java"))
	assert.Equal(t, "untitled:1", uriToPath("untitled:1"))
}
