package clhistory

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/juju/errors"
)

// CLHistory is the history of the lines entered at the editor's command
// prompt, optionally persisted to a file so that it survives restarts.
type CLHistory struct {
	params CLHistoryParams

	items []Item
}

type CLHistoryParams struct {
	// Filename is where to load the history from and write it to.  If it's
	// empty, the history is only kept in RAM and not persisted anywhere.
	Filename string
}

type Item struct {
	Time time.Time

	Str string
}

// New creates the history and loads the existing items from the file, if
// any. A missing file is not an error: it'll be created on the first Add.
func New(params CLHistoryParams) (*CLHistory, error) {
	h := &CLHistory{
		params: params,
	}

	if err := h.Load(); err != nil {
		return nil, errors.Trace(err)
	}

	return h, nil
}

// Load replaces the in-RAM history with the contents of the file. If Filename
// in params is empty, Load is a no-op. Lines which can't be parsed are
// skipped.
func (h *CLHistory) Load() error {
	if h.params.Filename == "" {
		return nil
	}

	f, err := os.Open(h.params.Filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Annotatef(err, "opening history file %s", h.params.Filename)
	}
	defer f.Close()

	var items []Item

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		item, err := unmarshalItem(scanner.Text())
		if err != nil {
			continue
		}

		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return errors.Annotatef(err, "reading history file %s", h.params.Filename)
	}

	h.items = items

	return nil
}

// Add adds the given string as a new history item to the in-RAM history and,
// if Filename in params was not empty, then also to this file.
func (h *CLHistory) Add(s string) error {
	item := Item{
		Time: time.Now(),
		Str:  s,
	}

	h.items = append(h.items, item)

	if h.params.Filename != "" {
		f, err := os.OpenFile(h.params.Filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return errors.Trace(err)
		}

		defer f.Close()

		if _, err := f.Write(marshalItem(item)); err != nil {
			return errors.Annotatef(err, "writing history file %s", h.params.Filename)
		}
	}

	return nil
}

// Items returns a copy of all the history items, oldest first.
func (h *CLHistory) Items() []Item {
	ret := make([]Item, len(h.items))
	copy(ret, h.items)
	return ret
}

// :1650712458000000000:12:0:foo bar baz
func marshalItem(item Item) []byte {
	b := bytes.Buffer{}
	b.WriteRune(':')
	b.WriteString(strconv.FormatInt(item.Time.UnixNano(), 10))
	b.WriteRune(':')
	b.WriteString(strconv.Itoa(len(item.Str) + 1))
	b.WriteString(":0:") // For now, no extra info
	b.WriteString(item.Str)
	b.WriteRune('\n')

	return b.Bytes()
}

// unmarshalItem parses a single line produced by marshalItem, without the
// trailing newline.
func unmarshalItem(line string) (Item, error) {
	if !strings.HasPrefix(line, ":") {
		return Item{}, errors.Errorf("no leading colon")
	}

	// Time, length, extra info, and the rest is the string itself (which may
	// contain colons too).
	fields := strings.SplitN(line[1:], ":", 4)
	if len(fields) != 4 {
		return Item{}, errors.Errorf("expected 4 fields, got %d", len(fields))
	}

	nanos, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Item{}, errors.Annotatef(err, "parsing time")
	}

	length, err := strconv.Atoi(fields[1])
	if err != nil {
		return Item{}, errors.Annotatef(err, "parsing length")
	}

	str := fields[3]
	if length != len(str)+1 {
		return Item{}, errors.Errorf("length mismatch: %d vs %d", length, len(str)+1)
	}

	return Item{
		Time: time.Unix(0, nanos),
		Str:  str,
	}, nil
}
