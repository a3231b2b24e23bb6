package syntax

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Dump renders the tree under e, one element per line, in the style of the
// Java parser's node printer.
func Dump(e Element, showPositions bool) string {
	var b strings.Builder
	dump(&b, e, 0, showPositions)
	return b.String()
}

func dump(b *strings.Builder, e Element, indent int, showPositions bool) {
	if !present(e) {
		return
	}
	b.WriteString(strings.Repeat("  ", indent))
	switch v := e.(type) {
	case *Token:
		fmt.Fprintf(b, "%v %q", v.kind, v.Text())
		if v.IsMissing() {
			b.WriteString(" (missing)")
		}
		if showPositions {
			fmt.Fprintf(b, " [%d-%d]", v.Start(), v.End())
		}
		b.WriteString("\n")
		return
	case *Node:
		b.WriteString(v.kind.String())
		if tok := FirstToken(v); showPositions && tok != nil {
			fmt.Fprintf(b, " [%d+%d]", tok.FullStart(), v.fullWidth)
		}
	case *List:
		b.WriteString("List")
	case *SeparatedList:
		b.WriteString("SeparatedList")
	}
	b.WriteString("\n")
	for i := 0; i < e.ChildCount(); i++ {
		dump(b, e.ChildAt(i), indent+1, showPositions)
	}
}

// Compare reports the first structural difference between two trees: element
// variants, kinds, widths, positions, token text and trivia. It returns nil
// when the trees are equivalent.
func Compare(want, got Element) error {
	return compare(want, got, "")
}

func compare(want, got Element, path string) error {
	if present(want) != present(got) {
		return errors.Newf("%s: presence differs (want %v, got %v)", pathOrRoot(path), present(want), present(got))
	}
	if !present(want) {
		return nil
	}
	if fmt.Sprintf("%T", want) != fmt.Sprintf("%T", got) {
		return errors.Newf("%s: element type differs (want %T, got %T)", pathOrRoot(path), want, got)
	}
	if want.FullWidth() != got.FullWidth() {
		return errors.Newf("%s: full width differs (want %d, got %d)", pathOrRoot(path), want.FullWidth(), got.FullWidth())
	}
	if want.IsShared() || got.IsShared() {
		if want.IsShared() != got.IsShared() {
			return errors.Newf("%s: shared flag differs", pathOrRoot(path))
		}
		return nil
	}
	switch w := want.(type) {
	case *Token:
		return compareTokens(w, got.(*Token), path)
	case *Node:
		g := got.(*Node)
		if w.kind != g.kind {
			return errors.Newf("%s: node kind differs (want %v, got %v)", pathOrRoot(path), w.kind, g.kind)
		}
		path += "/" + w.kind.String()
	}
	if want.ChildCount() != got.ChildCount() {
		return errors.Newf("%s: child count differs (want %d, got %d)", pathOrRoot(path), want.ChildCount(), got.ChildCount())
	}
	for i := 0; i < want.ChildCount(); i++ {
		if err := compare(want.ChildAt(i), got.ChildAt(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func compareTokens(w, g *Token, path string) error {
	at := fmt.Sprintf("%s %v", pathOrRoot(path), w.kind)
	switch {
	case w.kind != g.kind:
		return errors.Newf("%s: token kind differs (got %v)", at, g.kind)
	case w.flags != g.flags:
		return errors.Newf("%s: token flags differ (want %b, got %b)", at, w.flags, g.flags)
	case w.fullStart != g.fullStart:
		return errors.Newf("%s: full start differs (want %d, got %d)", at, w.fullStart, g.fullStart)
	case w.Text() != g.Text():
		return errors.Newf("%s: text differs (want %q, got %q)", at, w.Text(), g.Text())
	case !sameTrivia(w.leading, g.leading) || w.LeadingText() != g.LeadingText():
		return errors.Newf("%s: leading trivia differs (want %q, got %q)", at, w.LeadingText(), g.LeadingText())
	case !sameTrivia(w.trailing, g.trailing) || w.TrailingText() != g.TrailingText():
		return errors.Newf("%s: trailing trivia differs (want %q, got %q)", at, w.TrailingText(), g.TrailingText())
	}
	return nil
}

func sameTrivia(a, b []Trivia) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func pathOrRoot(path string) string {
	if path == "" {
		return "root"
	}
	return path
}
