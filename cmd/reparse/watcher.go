package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/reparse/java/incremental"
	"github.com/dhamidi/reparse/java/parser"
	"github.com/dhamidi/reparse/java/syntax"
)

var watchLog = commonlog.GetLogger("reparse.watch")

// fileWatcher keeps the parse trees of the Java files under a directory and
// reparses a file incrementally whenever it is written.
type fileWatcher struct {
	root    string
	include func(rel string) bool
	verify  bool
	out     io.Writer

	trees map[string]*parser.Tree
	pool  *incremental.CursorPool
}

func newFileWatcher(root string, include func(rel string) bool, out io.Writer) *fileWatcher {
	return &fileWatcher{
		root:    root,
		include: include,
		out:     out,
		trees:   make(map[string]*parser.Tree),
		pool:    incremental.NewCursorPool(),
	}
}

// scan parses every included file and returns the directories to watch.
// Hidden directories are skipped.
func (w *fileWatcher) scan() ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != w.root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			dirs = append(dirs, path)
			return nil
		}
		if w.included(path) {
			return w.update(path)
		}
		return nil
	})
	return dirs, errors.Wrapf(err, "scan %s", w.root)
}

func (w *fileWatcher) included(path string) bool {
	rel, err := filepath.Rel(w.root, path)
	return err == nil && w.include(rel)
}

// update reads path and reparses it, incrementally if it was seen before.
// Nothing is reported when the content did not change.
func (w *fileWatcher) update(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read java file")
	}
	text := syntax.NewText(string(data))

	old, ok := w.trees[path]
	if !ok {
		tree := parser.Parse(text, parser.WithFile(path))
		w.trees[path] = tree
		fmt.Fprintf(w.out, "%s: parsed, %d diagnostics\n", path, len(tree.Diagnostics))
		printDiagnostics(w.out, tree)
		return nil
	}

	change := syntax.ChangeRangeBetween(old.Text, text)
	if change.IsUnchanged() {
		return nil
	}
	tree, err := parser.IncrementalParse(old, change, text, parser.WithCursorPool(w.pool))
	if err != nil {
		watchLog.Errorf("%s: incremental parse failed, parsing from scratch: %s", path, err)
		tree = parser.Parse(text, parser.WithFile(path))
	} else if w.verify {
		if err := verifyTree(tree); err != nil {
			watchLog.Errorf("%s: %s", path, err)
			tree = parser.Parse(text, parser.WithFile(path))
		}
	}
	w.trees[path] = tree

	fmt.Fprintf(w.out, "%s: reparsed after %v, %d diagnostics, ", path, change, len(tree.Diagnostics))
	printStats(w.out, tree.Stats)
	printDiagnostics(w.out, tree)
	return nil
}

func (w *fileWatcher) remove(path string) {
	if _, ok := w.trees[path]; ok {
		delete(w.trees, path)
		fmt.Fprintf(w.out, "%s: removed\n", path)
	}
}

// run scans the tree and then follows file system events until ctx is done.
func (w *fileWatcher) run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create fsnotify watcher")
	}
	defer watcher.Close()

	dirs, err := w.scan()
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, "watch %s", dir)
		}
	}
	watchLog.Infof("watching %d directories under %s", len(dirs), w.root)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handle(watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			watchLog.Warningf("watcher error: %s", err)
		}
	}
}

func (w *fileWatcher) handle(watcher *fsnotify.Watcher, event fsnotify.Event) {
	switch {
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			if err := watcher.Add(event.Name); err != nil {
				watchLog.Warningf("watch %s: %s", event.Name, err)
			}
			return
		}
		if !w.included(event.Name) {
			return
		}
		if err := w.update(event.Name); err != nil {
			watchLog.Errorf("%s", err)
		}

	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		w.remove(event.Name)
	}
}
