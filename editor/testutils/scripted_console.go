package testutils

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ScriptedConsole is a console which returns the predefined input lines one
// by one, and then io.EOF; everything printed is accumulated and available
// via Output.
type ScriptedConsole struct {
	input []string
	out   bytes.Buffer

	// NumRead is how many input lines were consumed so far.
	NumRead int
}

func NewScriptedConsole(input ...string) *ScriptedConsole {
	return &ScriptedConsole{input: input}
}

func (c *ScriptedConsole) ReadLine() (string, error) {
	if c.NumRead >= len(c.input) {
		return "", io.EOF
	}

	line := c.input[c.NumRead]
	c.NumRead++

	return line, nil
}

func (c *ScriptedConsole) Print(a ...interface{}) {
	fmt.Fprint(&c.out, a...)
}

func (c *ScriptedConsole) Printf(format string, a ...interface{}) {
	fmt.Fprintf(&c.out, format, a...)
}

func (c *ScriptedConsole) Println(a ...interface{}) {
	fmt.Fprintln(&c.out, a...)
}

// Output returns everything printed so far.
func (c *ScriptedConsole) Output() string {
	return c.out.String()
}

// Transcript returns the printed lines with the prompts cut out and empty
// lines dropped, which is what's easy to make assertions about. Since the
// input isn't echoed, the text printed right after a prompt ends up on the
// same line with it; cutting the prompt out puts it on its own line.
func Transcript(output, prompt string) []string {
	if prompt != "" {
		output = strings.ReplaceAll(output, prompt, "\n")
	}

	var ret []string
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}

		ret = append(ret, line)
	}

	return ret
}

// ContainsLines returns whether want appears in lines as a contiguous
// sub-sequence.
func ContainsLines(lines, want []string) bool {
	if len(want) == 0 {
		return true
	}

	for i := 0; i+len(want) <= len(lines); i++ {
		match := true
		for j := range want {
			if lines[i+j] != want[j] {
				match = false
				break
			}
		}

		if match {
			return true
		}
	}

	return false
}
