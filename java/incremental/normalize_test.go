package incremental

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dhamidi/reparse/java/syntax"
)

func TestExtendToAffectedRange(t *testing.T) {
	// a; b; c; d; e;
	// 0  3  6  9  12
	root, _ := statements(t, "a; b; c; d; e;")

	tests := []struct {
		name   string
		change syntax.TextChangeRange
		want   syntax.TextChangeRange
	}{
		{
			name:   "replace an identifier",
			change: syntax.NewChangeRange(syntax.TextSpan{Start: 9, Length: 1}, 2),
			want:   syntax.NewChangeRange(syntax.SpanFromBounds(6, 10), 5),
		},
		{
			name:   "insert inside trivia",
			change: syntax.NewChangeRange(syntax.TextSpan{Start: 11, Length: 0}, 1),
			want:   syntax.NewChangeRange(syntax.SpanFromBounds(8, 11), 4),
		},
		{
			name:   "delete across tokens",
			change: syntax.NewChangeRange(syntax.TextSpan{Start: 10, Length: 3}, 0),
			want:   syntax.NewChangeRange(syntax.SpanFromBounds(8, 13), 2),
		},
		{
			name:   "stops at the start of the text",
			change: syntax.NewChangeRange(syntax.TextSpan{Start: 3, Length: 1}, 1),
			want:   syntax.NewChangeRange(syntax.SpanFromBounds(0, 4), 4),
		},
		{
			name:   "edit at the start",
			change: syntax.NewChangeRange(syntax.TextSpan{Start: 0, Length: 1}, 0),
			want:   syntax.NewChangeRange(syntax.SpanFromBounds(0, 1), 0),
		},
		{
			name:   "append at the end",
			change: syntax.NewChangeRange(syntax.TextSpan{Start: 14, Length: 0}, 3),
			want:   syntax.NewChangeRange(syntax.SpanFromBounds(12, 14), 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtendToAffectedRange(tt.change, root)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.change.Span.End(), got.Span.End())
			assert.Equal(t, tt.change.Delta(), got.Delta())
		})
	}
}
