package buffer

import (
	"iter"
	"strings"

	"github.com/juju/errors"
)

var (
	// ErrOutOfRange is the cause of every error returned for a line number
	// which doesn't refer to an existing line (or, for InsertAt, to the
	// position right after the last line).
	ErrOutOfRange = errors.New("line number out of range")

	// ErrEmbeddedNewline is returned by InsertAt when the text would span more
	// than one line.
	ErrEmbeddedNewline = errors.New("text contains a newline")
)

// Buffer is an ordered, mutable sequence of text lines. All line numbers in
// its API are 1-based, as presented to the user; the 0-based storage index
// never leaks out.
//
// Buffer is not safe for concurrent use; it's owned by a single editing
// session.
type Buffer struct {
	lines []string
}

func New() *Buffer {
	return &Buffer{}
}

// Load replaces the whole contents of the buffer with the given lines. The
// slice is copied, so the caller is free to reuse it.
func (b *Buffer) Load(lines []string) {
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
}

// Len returns the current number of lines.
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Display returns a lazy sequence of (1-based line number, text) pairs. Every
// range over the returned sequence enumerates the state of the buffer at that
// time, so it can be reused after the buffer was modified.
func (b *Buffer) Display() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 0; i < len(b.lines); i++ {
			if !yield(i+1, b.lines[i]) {
				return
			}
		}
	}
}

// InsertAt inserts text so that it becomes line n; lines which were at n and
// after are shifted down by one. Valid values of n are 1 to Len()+1, the
// latter meaning appending.
//
// A single trailing newline (either "\n" or "\r\n") is stripped; any other
// newline in text results in ErrEmbeddedNewline.
func (b *Buffer) InsertAt(n int, text string) error {
	if n < 1 || n > len(b.lines)+1 {
		return errors.Annotatef(ErrOutOfRange, "inserting at %d (have %d lines)", n, len(b.lines))
	}

	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	if strings.Contains(text, "\n") {
		return errors.Trace(ErrEmbeddedNewline)
	}

	idx := n - 1
	b.lines = append(b.lines, "")
	copy(b.lines[idx+1:], b.lines[idx:])
	b.lines[idx] = text

	return nil
}

// DeleteAt removes line n, shifting all subsequent lines up by one. Valid
// values of n are 1 to Len().
func (b *Buffer) DeleteAt(n int) error {
	if n < 1 || n > len(b.lines) {
		return errors.Annotatef(ErrOutOfRange, "deleting %d (have %d lines)", n, len(b.lines))
	}

	idx := n - 1
	copy(b.lines[idx:], b.lines[idx+1:])
	b.lines[len(b.lines)-1] = ""
	b.lines = b.lines[:len(b.lines)-1]

	return nil
}

// Line returns the text of line n.
func (b *Buffer) Line(n int) (string, error) {
	if n < 1 || n > len(b.lines) {
		return "", errors.Annotatef(ErrOutOfRange, "getting line %d (have %d lines)", n, len(b.lines))
	}

	return b.lines[n-1], nil
}

// Lines returns a copy of all the lines.
func (b *Buffer) Lines() []string {
	ret := make([]string, len(b.lines))
	copy(ret, b.lines)
	return ret
}
