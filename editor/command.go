package editor

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dimonomid/lineedit/shellescape"
	"github.com/juju/errors"
)

// Op is the operation selected by the first word of a command line.
type Op string

const (
	// OpNone is for lines without any words; they're just skipped.
	OpNone Op = ""

	OpList    Op = "list"
	OpIns     Op = "ins"
	OpDel     Op = "del"
	OpSave    Op = "save"
	OpQuit    Op = "quit"
	OpCopy    Op = "copy"
	OpSet     Op = "set"
	OpHelp    Op = "help"
	OpVersion Op = "version"
	OpHistory Op = "history"

	// OpRecall is for "!!", "!n" and "!-n": repeating a command from the
	// history. Name holds the whole reference.
	OpRecall Op = "recall"

	// OpInvalid is for everything else, including lines which couldn't be
	// split into words.
	OpInvalid Op = "invalid"
)

var opsByName = map[string]Op{
	"list":    OpList,
	"ins":     OpIns,
	"del":     OpDel,
	"save":    OpSave,
	"quit":    OpQuit,
	"copy":    OpCopy,
	"set":     OpSet,
	"help":    OpHelp,
	"version": OpVersion,
	"history": OpHistory,
}

var ErrInvalidIndex = errors.New("invalid line number")

// Command is a single parsed command line. It's created for every line the
// operator enters, and thrown away once handled.
type Command struct {
	Op Op

	// Name is the first word as it was typed, and Args are the other words;
	// for ins, the inline text is a single last arg.
	Name string
	Args []string

	// ParseErr is set if the arguments couldn't be split into words (e.g.
	// there's an unfinished quote in `set prompt='x`); Op is OpInvalid then.
	ParseErr error

	// Payload is the inline text for "ins", like the "foo  bar" in
	// `ins 3 foo  bar`, exactly as typed. It's only set if it has anything
	// besides whitespace; HasPayload tells whether it was set.
	Payload    string
	HasPayload bool
}

// ParseCommand figures out the operation from the first word of the line,
// case-insensitively. For ins, del and copy, the line number is the next word,
// and for ins everything after it is the text to insert, taken as is.
// Arguments of all the other commands are split into words by
// shellescape.Parse, so they can be quoted.
func ParseCommand(line string) Command {
	name, rest := cutWord(strings.TrimLeftFunc(line, unicode.IsSpace))
	if name == "" {
		return Command{Op: OpNone}
	}

	cmd := Command{Name: name}

	if len(name) > 1 && strings.HasPrefix(name, "!") {
		cmd.Op = OpRecall
		cmd.Args = strings.Fields(rest)
		return cmd
	}

	op, ok := opsByName[strings.ToLower(name)]
	if !ok {
		op = OpInvalid
	}
	cmd.Op = op

	switch op {
	case OpIns, OpDel, OpCopy:
		idx, tail := cutWord(strings.TrimLeftFunc(rest, unicode.IsSpace))

		cmd.Args = []string{}
		if idx != "" {
			cmd.Args = append(cmd.Args, idx)
		}

		if op == OpIns {
			if strings.TrimSpace(tail) != "" {
				cmd.Args = append(cmd.Args, tail)
				cmd.Payload = tail
				cmd.HasPayload = true
			}
		} else {
			cmd.Args = append(cmd.Args, strings.Fields(tail)...)
		}

	default:
		args, err := shellescape.Parse(strings.TrimSpace(rest))
		if err != nil {
			return Command{
				Op:       OpInvalid,
				Name:     name,
				ParseErr: errors.Annotatef(err, "parsing %q", line),
			}
		}

		if args == nil {
			args = []string{}
		}
		cmd.Args = args
	}

	return cmd
}

// cutWord returns the leading word of s (up to the first whitespace), and
// what's after the single whitespace character following it.
func cutWord(s string) (word, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}

	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i], s[i+size:]
}

// Arg returns the i-th argument, or an empty string if there's no such one.
func (cmd *Command) Arg(i int) string {
	if i < 0 || i >= len(cmd.Args) {
		return ""
	}

	return cmd.Args[i]
}

// Words returns all the words of the command, including the name.
func (cmd *Command) Words() []string {
	if cmd.Name == "" {
		return nil
	}

	return append([]string{cmd.Name}, cmd.Args...)
}

// ParseIndex parses a line number as typed by the operator. It doesn't check
// the range; see InsertRange and LineRange for that.
func ParseIndex(token string) (int, error) {
	if token == "" {
		return 0, errors.Annotatef(ErrInvalidIndex, "missing")
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.Annotatef(ErrInvalidIndex, "%q", token)
	}

	return n, nil
}

// RangeCheck is the result of checking a line number against the document.
type RangeCheck int

const (
	InRange RangeCheck = iota
	BelowRange
	AboveRange
)

func (rc RangeCheck) String() string {
	switch rc {
	case InRange:
		return "in range"
	case BelowRange:
		return "below range"
	case AboveRange:
		return "above range"
	}

	return "RangeCheck(" + strconv.Itoa(int(rc)) + ")"
}

// InsertRange checks whether a line can be inserted at n in a document with
// the given number of lines: it can go anywhere from 1 to numLines+1, the
// latter meaning appending.
func InsertRange(n, numLines int) RangeCheck {
	return checkRange(n, numLines+1)
}

// LineRange checks whether n refers to an existing line.
func LineRange(n, numLines int) RangeCheck {
	return checkRange(n, numLines)
}

func checkRange(n, last int) RangeCheck {
	switch {
	case n < 1:
		return BelowRange
	case n > last:
		return AboveRange
	}

	return InRange
}
