// Package editor implements the editing session: it loads a text file into a
// line buffer, runs the command loop (list, ins, del, save, quit etc) and
// reports the outcome of every command to the operator.
package editor

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/dimonomid/lineedit/buffer"
	"github.com/dimonomid/lineedit/clhistory"
	"github.com/dimonomid/lineedit/log"
	"github.com/dimonomid/lineedit/shellescape"
	"github.com/dimonomid/lineedit/textfile"
	"github.com/dimonomid/lineedit/version"
	"github.com/juju/errors"
	"github.com/mattn/go-runewidth"
)

const (
	msgAskPath    = "Enter the full file path to load, for example : /tmp/myfile.txt"
	msgEmptyPath  = "File name cannot be empty"
	msgLoaded     = "File loaded successfully"
	msgNotFound   = "File not found."
	msgInvalidCmd = "Invalid command."

	msgInsFormat  = "Invalid command format for insert."
	msgInsRange   = "Out of index to insert. Please check the input index"
	msgInsAskText = "Enter text to insert"
	msgInserted   = "Inserted successfully"

	msgDelFormat = "Invalid command format for delete."
	msgDelRange  = "Out of index to delete. Please check the input index"
	msgDeleted   = "Deleted successfully"

	msgCopyFormat = "Invalid command format for copy."
	msgCopyRange  = "Out of index to copy. Please check the input index"

	msgSaved = "File saved successfully."

	msgNoHistory = "History is not available"
)

const menu = `
Please enter following command(s) for corresponding operation(s)
list    : To display all lines
ins n   : To insert at line number n
del n   : To delete line number n
save    : To save the file
quit    : To quit from the app
copy n  : To copy line number n to the clipboard
set o=v : To set option o to v ("set o" shows it, "set" shows all)
history : To show entered commands
!n      : To repeat command n from the history (!! for the last one)
help    : To show this menu again
version : To show the version
`

// Clipboard is where the "copy" command puts lines.
type Clipboard interface {
	WriteText(value []byte) error
}

// State is where the session is in its lifecycle.
type State int

const (
	// StateIdle is before the file is loaded.
	StateIdle State = iota
	// StateLoaded is when the file is loaded and commands are being handled.
	StateLoaded
	// StateTerminated is after quitting, running out of input, or failing to
	// load the file.
	StateTerminated
)

type EditorParams struct {
	Config  Config
	Console Console

	// Path is the file to edit. If empty, the operator is asked for it.
	Path string

	// History, if not nil, receives every entered command line.
	History *clhistory.CLHistory

	// Clipboard is used by the "copy" command; if nil, copying is reported as
	// unavailable.
	Clipboard Clipboard

	Logger *log.Logger
}

// Editor is a single editing session. It exclusively owns the document being
// edited; nothing about it is safe for concurrent use.
type Editor struct {
	params EditorParams

	cfg       Config
	console   Console
	validator *textfile.Validator
	logger    *log.Logger

	state State

	path string
	buf  *buffer.Buffer

	// modified is true if the buffer was changed since it was loaded or saved
	// last time. It's only used for logging, since quitting doesn't ask for
	// confirmation.
	modified bool
}

func New(params EditorParams) (*Editor, error) {
	if params.Console == nil {
		return nil, errors.Errorf("console is required")
	}

	cfg := params.Config
	if err := cfg.Validate(); err != nil {
		return nil, errors.Annotatef(err, "invalid config")
	}

	validator, err := textfile.NewValidator(cfg.AllowedExtension, cfg.MaxFileSize)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &Editor{
		params: params,

		cfg:       cfg,
		console:   params.Console,
		validator: validator,
		logger:    params.Logger.WithNamespaceAppended("editor"),

		state: StateIdle,

		buf: buffer.New(),
	}, nil
}

// State returns the current state of the session.
func (e *Editor) State() State {
	return e.state
}

// Lines returns a copy of the document.
func (e *Editor) Lines() []string {
	return e.buf.Lines()
}

// Run runs the whole session: asks for the file path (unless it was given in
// params), loads the file, and handles commands until "quit" or the end of
// input. Failing to load the file is reported to the operator and ends the
// session, but it's not an error; the only errors returned are failures to
// read from the console.
func (e *Editor) Run() error {
	defer func() {
		e.state = StateTerminated
	}()

	path := e.params.Path
	if path == "" {
		e.console.Println(msgAskPath)
		e.console.Print(e.cfg.Prompt)

		line, err := e.console.ReadLine()
		if err != nil && errors.Cause(err) != io.EOF {
			return errors.Annotatef(err, "reading file path")
		}

		path = strings.TrimSpace(line)
	}

	if path == "" {
		e.console.Println(msgEmptyPath)
		return nil
	}

	if !e.load(path) {
		return nil
	}

	e.console.Println(msgLoaded)
	e.printMenu()

	for {
		e.console.Println()
		e.console.Print(e.cfg.Prompt)

		line, err := e.console.ReadLine()
		if err != nil {
			if errors.Cause(err) == io.EOF {
				e.logger.Infof("End of input, terminating (modified: %v)", e.modified)
				return nil
			}

			return errors.Annotatef(err, "reading command")
		}

		quit, err := e.handleCmd(line)
		if err != nil {
			return errors.Trace(err)
		}

		if quit {
			return nil
		}
	}
}

// load reads the file into the buffer, and reports the outcome to the
// operator. Returns whether it was successful.
func (e *Editor) load(path string) bool {
	lines, err := e.validator.Load(path)
	if err != nil {
		e.logger.Errorf("Failed to load %s: %s", path, err.Error())

		switch errors.Cause(err) {
		case textfile.ErrInvalidExtension:
			e.console.Printf(
				"Invalid file extension. Only %s files are allowed.\n", e.validator.AllowedExtension(),
			)
		case textfile.ErrTooLarge:
			e.console.Printf(
				"File size exceeds the maximum allowed size of %d bytes.\n", e.validator.MaxFileSize(),
			)
		case textfile.ErrNotFound:
			e.console.Println(msgNotFound)
		default:
			e.console.Printf("Error loading file: %s\n", err.Error())
		}

		return false
	}

	e.path = path
	e.buf.Load(lines)
	e.modified = false
	e.state = StateLoaded

	e.logger.Infof("Loaded %s: %d lines", path, len(lines))

	return true
}

func (e *Editor) printMenu() {
	e.console.Print(menu)
}

// handleCmd handles a single command line. It returns quit=true if the
// session should be terminated. Every problem with the command itself is
// reported to the operator; the returned error is only about failing to
// read further input from the console.
func (e *Editor) handleCmd(line string) (quit bool, err error) {
	cmd := ParseCommand(line)
	if cmd.Op == OpNone {
		return false, nil
	}

	if cmd.Op == OpRecall {
		recalled, err := e.recall(cmd.Name)
		if err != nil {
			e.console.Printf("Error: %s\n", err.Error())
			return false, nil
		}

		// Show what is actually going to run.
		e.console.Println(recalled)

		line = recalled
		cmd = ParseCommand(line)
		if cmd.Op == OpNone || cmd.Op == OpRecall {
			e.console.Println(msgInvalidCmd)
			return false, nil
		}
	}

	e.addToHistory(strings.TrimLeftFunc(line, unicode.IsSpace))

	if cmd.ParseErr != nil {
		e.logger.Verbose1f("Invalid command: %s", cmd.ParseErr.Error())
	} else {
		e.logger.Verbose1f("Command: %s", shellescape.Escape(cmd.Words()))
	}

	switch cmd.Op {
	case OpList:
		e.list()

	case OpIns:
		return e.insert(&cmd)

	case OpDel:
		e.delete(&cmd)

	case OpSave:
		e.save()

	case OpQuit:
		if e.modified {
			e.logger.Infof("Quitting with unsaved changes")
		}
		return true, nil

	case OpCopy:
		e.copyLine(&cmd)

	case OpSet:
		e.set(&cmd)

	case OpHelp:
		e.printMenu()

	case OpVersion:
		e.console.Print(version.VersionFullDescr(e.clipboardErr()))

	case OpHistory:
		e.printHistory()

	default:
		e.console.Println(msgInvalidCmd)
	}

	return false, nil
}

func (e *Editor) addToHistory(line string) {
	if e.params.History == nil {
		return
	}

	if err := e.params.History.Add(line); err != nil {
		// Not worth bothering the operator about it.
		e.logger.Warnf("Failed to add %q to history: %s", line, err.Error())
	}
}

func (e *Editor) printHistory() {
	if e.params.History == nil {
		e.console.Println(msgNoHistory)
		return
	}

	for i, item := range e.params.History.Items() {
		e.console.Printf("%d: %s\n", i+1, item.Str)
	}
}

// recall resolves a history reference: "!!" is the last entered command,
// "!n" is the n-th one as numbered by the "history" command, and "!-n" is the
// n-th one from the end.
func (e *Editor) recall(ref string) (string, error) {
	if e.params.History == nil {
		return "", errors.New(msgNoHistory)
	}

	items := e.params.History.Items()

	var idx int
	if ref == "!!" {
		idx = len(items) - 1
	} else {
		n, err := strconv.Atoi(ref[1:])
		if err != nil || n == 0 {
			return "", errors.Errorf("%s: invalid history reference", ref)
		}

		if n > 0 {
			idx = n - 1
		} else {
			idx = len(items) + n
		}
	}

	if idx < 0 || idx >= len(items) {
		return "", errors.Errorf("%s: no such command in history", ref)
	}

	return items[idx].Str, nil
}

func (e *Editor) list() {
	for n, text := range e.buf.Display() {
		if e.cfg.ListMaxWidth > 0 {
			text = runewidth.Truncate(text, e.cfg.ListMaxWidth, "…")
		}

		e.console.Printf("%d: %s\n", n, text)
	}
}

func (e *Editor) insert(cmd *Command) (quit bool, err error) {
	n, err := ParseIndex(cmd.Arg(0))
	if err != nil {
		e.console.Println(msgInsFormat)
		return false, nil
	}

	if rc := InsertRange(n, e.buf.Len()); rc != InRange {
		e.logger.Verbose1f("ins %d: %s (have %d lines)", n, rc, e.buf.Len())
		e.console.Println(msgInsRange)
		return false, nil
	}

	text := cmd.Payload
	if !cmd.HasPayload {
		e.console.Println(msgInsAskText)

		text, err = e.console.ReadLine()
		if err != nil {
			if errors.Cause(err) == io.EOF {
				e.logger.Infof("End of input while waiting for text to insert")
				return true, nil
			}

			return false, errors.Annotatef(err, "reading text to insert")
		}
	}

	if err := e.buf.InsertAt(n, text); err != nil {
		// Should never happen with the console input, since it's line-based.
		e.logger.Errorf("Failed to insert at %d: %s", n, err.Error())
		e.console.Printf("Failed to insert: %s\n", err.Error())
		return false, nil
	}

	e.modified = true
	e.console.Println(msgInserted)

	return false, nil
}

func (e *Editor) delete(cmd *Command) {
	n, err := ParseIndex(cmd.Arg(0))
	if err != nil {
		e.console.Println(msgDelFormat)
		return
	}

	if rc := LineRange(n, e.buf.Len()); rc != InRange {
		e.logger.Verbose1f("del %d: %s (have %d lines)", n, rc, e.buf.Len())
		e.console.Println(msgDelRange)
		return
	}

	if err := e.buf.DeleteAt(n); err != nil {
		e.logger.Errorf("Failed to delete %d: %s", n, err.Error())
		e.console.Printf("Failed to delete: %s\n", err.Error())
		return
	}

	e.modified = true
	e.console.Println(msgDeleted)
}

// save writes the document back to the file it was loaded from. On failure,
// the document is left intact, so the operator can retry.
func (e *Editor) save() {
	if err := textfile.WriteLines(e.path, e.buf.Lines()); err != nil {
		e.logger.Errorf("Failed to save %s: %s", e.path, err.Error())
		e.console.Printf("Error saving file: %s\n", err.Error())
		return
	}

	e.logger.Infof("Saved %s: %d lines", e.path, e.buf.Len())

	e.modified = false
	e.console.Println(msgSaved)
}

func (e *Editor) copyLine(cmd *Command) {
	n, err := ParseIndex(cmd.Arg(0))
	if err != nil {
		e.console.Println(msgCopyFormat)
		return
	}

	if LineRange(n, e.buf.Len()) != InRange {
		e.console.Println(msgCopyRange)
		return
	}

	text, err := e.buf.Line(n)
	if err != nil {
		e.console.Printf("Failed to copy: %s\n", err.Error())
		return
	}

	if e.params.Clipboard == nil {
		e.console.Printf("Clipboard is not available: %s\n", e.clipboardErr().Error())
		return
	}

	if err := e.params.Clipboard.WriteText([]byte(text)); err != nil {
		e.console.Printf("Clipboard is not available: %s\n", err.Error())
		return
	}

	e.console.Printf("Copied line %d to clipboard\n", n)
}

func (e *Editor) set(cmd *Command) {
	arg := strings.Join(cmd.Args, " ")
	if arg == "" {
		for _, line := range describeOptions(&e.cfg) {
			e.console.Println(line)
		}
		return
	}

	res, err := setOption(&e.cfg, arg)
	if err != nil {
		e.console.Printf("Error: %s\n", err.Error())
		return
	}

	e.console.Printf("%s is %s\n", res.name, res.value)
}

// clipboardErr returns why the clipboard is not available, or nil if it is.
func (e *Editor) clipboardErr() error {
	if e.params.Clipboard == nil {
		return errors.New("no clipboard")
	}

	if c, ok := e.params.Clipboard.(interface{ InitErr() error }); ok {
		return c.InitErr()
	}

	return nil
}
