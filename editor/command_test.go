package editor

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

type parseCommandTC struct {
	line string

	wantOp      Op
	wantArgs    []string
	wantPayload *string
	wantErr     bool
}

func strPtr(s string) *string {
	return &s
}

func TestParseCommand(t *testing.T) {
	testCases := []parseCommandTC{
		parseCommandTC{line: "", wantOp: OpNone},
		parseCommandTC{line: "   ", wantOp: OpNone},
		parseCommandTC{line: "list", wantOp: OpList, wantArgs: []string{}},
		parseCommandTC{line: "  LIST  ", wantOp: OpList, wantArgs: []string{}},
		parseCommandTC{line: "Ins 3", wantOp: OpIns, wantArgs: []string{"3"}},
		parseCommandTC{line: "ins 3 foo  bar", wantOp: OpIns, wantArgs: []string{"3", "foo  bar"}, wantPayload: strPtr("foo  bar")},
		parseCommandTC{line: "ins  3  foo ", wantOp: OpIns, wantArgs: []string{"3", " foo "}, wantPayload: strPtr(" foo ")},
		parseCommandTC{line: "ins 1 it's here", wantOp: OpIns, wantArgs: []string{"1", "it's here"}, wantPayload: strPtr("it's here")},
		parseCommandTC{line: `ins 1 say "hi"`, wantOp: OpIns, wantArgs: []string{"1", `say "hi"`}, wantPayload: strPtr(`say "hi"`)},
		parseCommandTC{line: "ins 3 '", wantOp: OpIns, wantArgs: []string{"3", "'"}, wantPayload: strPtr("'")},
		parseCommandTC{line: "ins 3   ", wantOp: OpIns, wantArgs: []string{"3"}},
		parseCommandTC{line: "ins", wantOp: OpIns, wantArgs: []string{}},
		parseCommandTC{line: "del x", wantOp: OpDel, wantArgs: []string{"x"}},
		parseCommandTC{line: "del 1 2", wantOp: OpDel, wantArgs: []string{"1", "2"}},
		parseCommandTC{line: "del 1 it's", wantOp: OpDel, wantArgs: []string{"1", "it's"}},
		parseCommandTC{line: "save", wantOp: OpSave, wantArgs: []string{}},
		parseCommandTC{line: "QUIT", wantOp: OpQuit, wantArgs: []string{}},
		parseCommandTC{line: "copy 1", wantOp: OpCopy, wantArgs: []string{"1"}},
		parseCommandTC{line: "set width=10", wantOp: OpSet, wantArgs: []string{"width=10"}},
		parseCommandTC{line: "set prompt='$ '", wantOp: OpSet, wantArgs: []string{"prompt=$ "}},
		parseCommandTC{line: "History", wantOp: OpHistory, wantArgs: []string{}},
		parseCommandTC{line: "!!", wantOp: OpRecall, wantArgs: []string{}},
		parseCommandTC{line: " !-2 ", wantOp: OpRecall, wantArgs: []string{}},
		parseCommandTC{line: "!", wantOp: OpInvalid, wantArgs: []string{}},
		parseCommandTC{line: "help", wantOp: OpHelp, wantArgs: []string{}},
		parseCommandTC{line: "version", wantOp: OpVersion, wantArgs: []string{}},
		parseCommandTC{line: "foo 1", wantOp: OpInvalid, wantArgs: []string{"1"}},
		parseCommandTC{line: "insert 1", wantOp: OpInvalid, wantArgs: []string{"1"}},
		parseCommandTC{line: "set prompt='unfinished", wantOp: OpInvalid, wantErr: true},
		parseCommandTC{line: "list it's", wantOp: OpInvalid, wantErr: true},
	}

	for i, tc := range testCases {
		assertArgs := []interface{}{"testCase %d %q", i, tc.line}

		cmd := ParseCommand(tc.line)

		assert.Equal(t, tc.wantOp, cmd.Op, assertArgs...)
		assert.Equal(t, tc.wantErr, cmd.ParseErr != nil, assertArgs...)
		if !tc.wantErr && tc.wantOp != OpNone {
			assert.Equal(t, tc.wantArgs, cmd.Args, assertArgs...)
		}

		if tc.wantPayload != nil {
			assert.True(t, cmd.HasPayload, assertArgs...)
			assert.Equal(t, *tc.wantPayload, cmd.Payload, assertArgs...)
		} else {
			assert.False(t, cmd.HasPayload, assertArgs...)
		}
	}
}

func TestCommandArgAndWords(t *testing.T) {
	cmd := ParseCommand("Del 2")

	assert.Equal(t, "2", cmd.Arg(0))
	assert.Equal(t, "", cmd.Arg(1))
	assert.Equal(t, "", cmd.Arg(-1))
	assert.Equal(t, []string{"Del", "2"}, cmd.Words())

	empty := ParseCommand("")
	assert.Nil(t, empty.Words())
}

type parseIndexTC struct {
	token   string
	want    int
	wantErr bool
}

func TestParseIndex(t *testing.T) {
	testCases := []parseIndexTC{
		parseIndexTC{token: "1", want: 1},
		parseIndexTC{token: "42", want: 42},
		parseIndexTC{token: "+3", want: 3},
		parseIndexTC{token: "0", want: 0},
		parseIndexTC{token: "-2", want: -2},
		parseIndexTC{token: "", wantErr: true},
		parseIndexTC{token: "x", wantErr: true},
		parseIndexTC{token: "1.5", wantErr: true},
		parseIndexTC{token: "99999999999999999999", wantErr: true},
	}

	for i, tc := range testCases {
		got, err := ParseIndex(tc.token)
		if tc.wantErr {
			assert.Equal(t, ErrInvalidIndex, errors.Cause(err), "testCase %d %q", i, tc.token)
		} else {
			assert.NoError(t, err, "testCase %d %q", i, tc.token)
			assert.Equal(t, tc.want, got, "testCase %d %q", i, tc.token)
		}
	}
}

type rangeTC struct {
	n, numLines int

	wantInsert RangeCheck
	wantLine   RangeCheck
}

func TestRangeChecks(t *testing.T) {
	testCases := []rangeTC{
		rangeTC{n: 1, numLines: 0, wantInsert: InRange, wantLine: AboveRange},
		rangeTC{n: 1, numLines: 3, wantInsert: InRange, wantLine: InRange},
		rangeTC{n: 3, numLines: 3, wantInsert: InRange, wantLine: InRange},
		rangeTC{n: 4, numLines: 3, wantInsert: InRange, wantLine: AboveRange},
		rangeTC{n: 5, numLines: 3, wantInsert: AboveRange, wantLine: AboveRange},
		rangeTC{n: 0, numLines: 3, wantInsert: BelowRange, wantLine: BelowRange},
		rangeTC{n: -1, numLines: 3, wantInsert: BelowRange, wantLine: BelowRange},
	}

	for i, tc := range testCases {
		assert.Equal(t, tc.wantInsert, InsertRange(tc.n, tc.numLines), "testCase %d (%+v)", i, tc)
		assert.Equal(t, tc.wantLine, LineRange(tc.n, tc.numLines), "testCase %d (%+v)", i, tc)
	}

	assert.Equal(t, "below range", BelowRange.String())
	assert.Equal(t, "RangeCheck(7)", RangeCheck(7).String())
}
