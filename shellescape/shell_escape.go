// Package shellescape splits command lines into words the way a POSIX shell
// would (minus expansions), and does the opposite: joins words into a line,
// quoting where necessary.
package shellescape

import (
	"strings"
	"unicode"

	"github.com/juju/errors"
)

var ErrUnfinishedQuote = errors.New("unfinished quote")

// Escape joins the parts with spaces, single-quoting every part which would
// otherwise not survive Parse unchanged.
func Escape(parts []string) string {
	var sb strings.Builder

	for i, part := range parts {
		if i > 0 {
			sb.WriteByte(' ')
		}

		if !needsQuoting(part) {
			sb.WriteString(part)
			continue
		}

		sb.WriteByte('\'')
		sb.WriteString(strings.ReplaceAll(part, "'", `'"'"'`))
		sb.WriteByte('\'')
	}

	return sb.String()
}

func needsQuoting(part string) bool {
	if part == "" {
		return true
	}

	for _, r := range part {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}

		switch r {
		case '-', '_', '.', '/', ':', ',', '=', '+':
			continue
		}

		return true
	}

	return false
}

type quoteState int

const (
	quoteStateNone quoteState = iota
	quoteStateSingle
	quoteStateDouble
	quoteStateDoubleEscaped
)

type tokenizer struct {
	parts []string
	cur   strings.Builder

	// inWord is true once we've seen the first rune of the current word;
	// it's needed since a word might be empty, like in `foo ''`.
	inWord bool
	quote  quoteState
}

func (tk *tokenizer) finishWord() {
	tk.parts = append(tk.parts, tk.cur.String())
	tk.cur.Reset()
	tk.inWord = false
}

func (tk *tokenizer) feed(r rune) {
	switch tk.quote {
	case quoteStateNone:
		switch {
		case unicode.IsSpace(r):
			if tk.inWord {
				tk.finishWord()
			}
		case r == '\'':
			tk.inWord = true
			tk.quote = quoteStateSingle
		case r == '"':
			tk.inWord = true
			tk.quote = quoteStateDouble
		default:
			tk.inWord = true
			tk.cur.WriteRune(r)
		}

	case quoteStateSingle:
		if r == '\'' {
			tk.quote = quoteStateNone
		} else {
			tk.cur.WriteRune(r)
		}

	case quoteStateDouble:
		switch r {
		case '"':
			tk.quote = quoteStateNone
		case '\\':
			tk.quote = quoteStateDoubleEscaped
		default:
			tk.cur.WriteRune(r)
		}

	case quoteStateDoubleEscaped:
		// Inside double quotes, backslash only escapes a backslash or a quote;
		// otherwise it's kept literally.
		if r != '\\' && r != '"' {
			tk.cur.WriteRune('\\')
		}
		tk.cur.WriteRune(r)
		tk.quote = quoteStateDouble
	}
}

// Parse splits the line into words separated by whitespace. Single and double
// quotes group words together, e.g. `ins 2 "hello  world"` results in
// []string{"ins", "2", "hello  world"}. A line without any words results in
// nil.
func Parse(line string) ([]string, error) {
	tk := tokenizer{}

	for _, r := range line {
		tk.feed(r)
	}

	if tk.quote != quoteStateNone {
		return nil, errors.Trace(ErrUnfinishedQuote)
	}

	if tk.inWord {
		tk.finishWord()
	}

	return tk.parts, nil
}
