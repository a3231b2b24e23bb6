package main

import (
	"math/rand/v2"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"

	"github.com/dhamidi/reparse/config"
	"github.com/dhamidi/reparse/java/incremental"
	"github.com/dhamidi/reparse/java/parser"
	"github.com/dhamidi/reparse/java/syntax"
)

// checkFiles lists the files under dir matching any of the patterns, sorted
// and without duplicates.
func checkFiles(dir string, patterns []string) ([]string, error) {
	fsys := os.DirFS(dir)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Wrapf(err, "glob %s", pattern)
		}
		files = append(files, matches...)
	}
	slices.Sort(files)
	return slices.Compact(files), nil
}

// editFailure describes an edit after which the incremental parse disagreed
// with a full parse.
type editFailure struct {
	Edit   int
	Change syntax.TextChangeRange
	Insert string
	Before string
	Err    error
}

func (f *editFailure) Error() string {
	return errors.Wrapf(f.Err, "edit %d: %v with %q", f.Edit, f.Change, f.Insert).Error()
}

// checkText applies opts.Edits random edits to content one after another.
// Inserted text is cut from content itself, so the edits look like the code
// being checked. Each incremental parse is compared against a full parse; the
// first disagreement is returned as an *editFailure.
func checkText(name, content string, opts config.CheckConfig, rng *rand.Rand, pool *incremental.CursorPool) (incremental.Stats, error) {
	var total incremental.Stats
	tree := parser.ParseString(content, parser.WithFile(name))

	for i := range opts.Edits {
		n := tree.Text.Len()
		start := rng.IntN(n + 1)
		length := rng.IntN(min(opts.MaxDelete, n-start) + 1)
		from := rng.IntN(len(content) + 1)
		insert := content[from : from+rng.IntN(min(opts.MaxInsert, len(content)-from)+1)]

		before := tree.Text.String()
		change := syntax.NewChangeRange(syntax.TextSpan{Start: start, Length: length}, len(insert))
		next, err := tree.Edit(change, insert, parser.WithCursorPool(pool))
		if err == nil {
			err = verifyTree(next)
		}
		if err != nil {
			return total, &editFailure{Edit: i, Change: change, Insert: insert, Before: before, Err: err}
		}

		addStats(&total, next.Stats)
		tree = next
	}
	return total, nil
}
