// Package parser is a recursive-descent parser for a subset of Java that
// produces lossless syntax trees.
//
// The grammar reads exclusively through a TokenSource. Parse runs it over a
// plain scanner. IncrementalParse runs it over an incremental.Source, which
// answers from the previous tree wherever an edit cannot have changed the
// result, so that
//
//	tree, err := parser.IncrementalParse(old, change, text)
//
// yields a tree structurally equal to parser.Parse(text) while sharing the
// unchanged declarations and statements of old.
package parser
