package editor

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console is how the editor talks to the operator: it reads whole lines and
// prints text. ReadLine returns io.EOF once there is no more input.
type Console interface {
	ReadLine() (string, error)

	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})
}

// StdConsole is a Console on top of a reader and a writer, typically stdin
// and stdout.
type StdConsole struct {
	r *bufio.Reader
	w io.Writer
}

var _ Console = &StdConsole{}

func NewStdConsole(r io.Reader, w io.Writer) *StdConsole {
	return &StdConsole{
		r: bufio.NewReader(r),
		w: w,
	}
}

// ReadLine returns the next line without the line terminator. The last line
// doesn't have to be terminated; io.EOF is only returned when there's nothing
// left at all.
func (c *StdConsole) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}

		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, nil
}

func (c *StdConsole) Print(a ...interface{}) {
	fmt.Fprint(c.w, a...)
}

func (c *StdConsole) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.w, format, a...)
}

func (c *StdConsole) Println(a ...interface{}) {
	fmt.Fprintln(c.w, a...)
}
