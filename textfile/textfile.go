// Package textfile is the only place where the editor touches the disk: it
// validates that a file is acceptable for editing, reads it as a sequence of
// lines and writes lines back.
package textfile

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"github.com/juju/errors"
)

const (
	DefaultAllowedExtension       = ".txt"
	DefaultMaxFileSize      int64 = 1048576
)

var (
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrTooLarge         = errors.New("file is too large")
	ErrNotFound         = errors.New("file not found")
)

// Validator checks the two preconditions which must hold before a file is
// read: the extension and the size.
type Validator struct {
	allowedExt  string
	maxFileSize int64

	// extMatcher matches lowercased base names, like "*.txt".
	extMatcher glob.Glob
}

// NewValidator creates a validator for the given extension (including the
// leading dot, like ".txt"; it's matched case-insensitively) and the max file
// size in bytes.
func NewValidator(allowedExt string, maxFileSize int64) (*Validator, error) {
	if !strings.HasPrefix(allowedExt, ".") || len(allowedExt) < 2 {
		return nil, errors.Errorf("extension %q must start with a dot and not be empty", allowedExt)
	}

	if maxFileSize <= 0 {
		return nil, errors.Errorf("max file size must be positive, got %d", maxFileSize)
	}

	pattern := "*" + glob.QuoteMeta(strings.ToLower(allowedExt))
	matcher, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Annotatef(err, "compiling %q", pattern)
	}

	return &Validator{
		allowedExt:  allowedExt,
		maxFileSize: maxFileSize,
		extMatcher:  matcher,
	}, nil
}

func (v *Validator) AllowedExtension() string {
	return v.allowedExt
}

func (v *Validator) MaxFileSize() int64 {
	return v.maxFileSize
}

// ValidateExtension returns whether the path has the allowed extension.
func (v *Validator) ValidateExtension(path string) bool {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return false
	}

	return v.extMatcher.Match(strings.ToLower(base))
}

// ValidateSize returns whether the file size doesn't exceed the maximum. If
// the file doesn't exist, the returned error's cause is ErrNotFound.
func (v *Validator) ValidateSize(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, errors.Annotatef(ErrNotFound, "%s", path)
		}

		return false, errors.Annotatef(err, "getting size of %s", path)
	}

	return info.Size() <= v.maxFileSize, nil
}

// Load checks the extension and the size (in this order, and before reading
// anything) and then reads the lines. The cause of the returned error is one
// of ErrInvalidExtension, ErrTooLarge, ErrNotFound, or some other I/O error.
func (v *Validator) Load(path string) ([]string, error) {
	if !v.ValidateExtension(path) {
		return nil, errors.Annotatef(ErrInvalidExtension, "%s", path)
	}

	ok, err := v.ValidateSize(path)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if !ok {
		return nil, errors.Annotatef(ErrTooLarge, "%s", path)
	}

	lines, err := ReadLines(path)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return lines, nil
}

// ReadLines reads the whole file and returns its lines without the line
// terminators. Both "\n" and "\r\n" are recognized; the last line doesn't have
// to be terminated. An empty file results in zero lines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Annotatef(ErrNotFound, "%s", path)
		}

		return nil, errors.Annotatef(err, "opening %s", path)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, errors.Annotatef(err, "reading %s", path)
	}

	return lines, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	// Not using bufio.Scanner, because it has a limit on the line length.
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			lines = append(lines, line)
		}

		if err != nil {
			if err == io.EOF {
				break
			}

			return nil, errors.Trace(err)
		}
	}

	return lines, nil
}

// WriteLines overwrites the file with the given lines, each one terminated
// with "\n". The write is not atomic: on failure, the file might be left
// partially written.
func WriteLines(path string, lines []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Annotatef(err, "creating %s", path)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Annotatef(cerr, "closing %s", path)
		}
	}()

	bw := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return errors.Annotatef(err, "writing %s", path)
		}

		if err := bw.WriteByte('\n'); err != nil {
			return errors.Annotatef(err, "writing %s", path)
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.Annotatef(err, "writing %s", path)
	}

	return nil
}
