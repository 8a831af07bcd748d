// Package cssdiff compares two generated stylesheets line by line.
package cssdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineType marks a line as unchanged, added or removed.
type LineType int

const (
	LineContext LineType = iota
	LineAddition
	LineDeletion
)

// Line is one line of a diff.
type Line struct {
	Type LineType
	Text string
}

// Result is a line diff between two stylesheets.
type Result struct {
	Lines   []Line
	Added   int
	Removed int
}

// Changed reports whether the stylesheets differ.
func (r Result) Changed() bool {
	return r.Added > 0 || r.Removed > 0
}

// Compare diffs oldCSS against newCSS by whole lines.
func Compare(oldCSS, newCSS string) Result {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldCSS, newCSS)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var r Result
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		typ := LineContext
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			typ = LineAddition
		case diffmatchpatch.DiffDelete:
			typ = LineDeletion
		}
		for _, text := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			r.Lines = append(r.Lines, Line{Type: typ, Text: text})
			switch typ {
			case LineAddition:
				r.Added++
			case LineDeletion:
				r.Removed++
			}
		}
	}
	return r
}

// Unified renders changed lines with up to context unchanged lines around
// them. Separate hunks are introduced by "@@". Identical input renders "".
func (r Result) Unified(context int, oldName, newName string) string {
	if !r.Changed() {
		return ""
	}

	keep := make([]bool, len(r.Lines))
	for i, l := range r.Lines {
		if l.Type == LineContext {
			continue
		}
		for j := max(0, i-context); j <= min(len(r.Lines)-1, i+context); j++ {
			keep[j] = true
		}
	}

	var b strings.Builder
	b.WriteString("--- " + oldName + "\n")
	b.WriteString("+++ " + newName + "\n")
	inHunk := false
	for i, l := range r.Lines {
		if !keep[i] {
			inHunk = false
			continue
		}
		if !inHunk {
			b.WriteString("@@\n")
			inHunk = true
		}
		b.WriteString(prefix(l.Type) + l.Text + "\n")
	}
	return b.String()
}

func prefix(t LineType) string {
	switch t {
	case LineAddition:
		return "+"
	case LineDeletion:
		return "-"
	default:
		return " "
	}
}
