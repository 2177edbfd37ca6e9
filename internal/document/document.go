// Package document provides the line-indexed text abstraction the recognizer
// and synthesizer operate on, so the core never touches files directly.
package document

import "strings"

// Position addresses a point in a document. Line and Col are zero-based.
type Position struct {
	Line int
	Col  int
}

// Document is immutable line-indexed text.
type Document struct {
	lines []string
}

// FromString splits text into lines. Trailing carriage returns are removed so
// CRLF files behave like LF files.
func FromString(text string) *Document {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &Document{lines: lines}
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of line i, or "" when i is out of range.
func (d *Document) Line(i int) string {
	if i < 0 || i >= len(d.lines) {
		return ""
	}
	return d.lines[i]
}

// Text reassembles the full document.
func (d *Document) Text() string {
	return strings.Join(d.lines, "\n")
}

// InsertAfter returns the document text with block inserted on its own lines
// after line i. A negative i inserts at the top.
func (d *Document) InsertAfter(i int, block string) string {
	block = strings.TrimSuffix(block, "\n")
	if i < 0 {
		return block + "\n" + d.Text()
	}
	if i >= len(d.lines) {
		i = len(d.lines) - 1
	}
	out := make([]string, 0, len(d.lines)+strings.Count(block, "\n")+1)
	out = append(out, d.lines[:i+1]...)
	out = append(out, strings.Split(block, "\n")...)
	out = append(out, d.lines[i+1:]...)
	return strings.Join(out, "\n")
}
