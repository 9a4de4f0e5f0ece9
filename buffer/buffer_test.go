package buffer

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func collect(b *Buffer) []string {
	var ret []string
	for _, line := range b.Display() {
		ret = append(ret, line)
	}
	return ret
}

type insertTC struct {
	initial []string
	n       int
	text    string

	want    []string
	wantErr error
}

func TestInsertAt(t *testing.T) {
	testCases := []insertTC{
		insertTC{initial: nil, n: 1, text: "a", want: []string{"a"}},
		insertTC{initial: []string{"a", "b"}, n: 1, text: "z", want: []string{"z", "a", "b"}},
		insertTC{initial: []string{"a", "b"}, n: 2, text: "z", want: []string{"a", "z", "b"}},
		insertTC{initial: []string{"a", "b"}, n: 3, text: "z", want: []string{"a", "b", "z"}},
		insertTC{initial: []string{"a", "b"}, n: 2, text: "", want: []string{"a", "", "b"}},
		insertTC{initial: []string{"a"}, n: 2, text: "z\n", want: []string{"a", "z"}},
		insertTC{initial: []string{"a"}, n: 2, text: "z\r\n", want: []string{"a", "z"}},

		insertTC{initial: []string{"a", "b"}, n: 4, text: "z", want: []string{"a", "b"}, wantErr: ErrOutOfRange},
		insertTC{initial: []string{"a", "b"}, n: 0, text: "z", want: []string{"a", "b"}, wantErr: ErrOutOfRange},
		insertTC{initial: []string{"a", "b"}, n: -1, text: "z", want: []string{"a", "b"}, wantErr: ErrOutOfRange},
		insertTC{initial: []string{"a"}, n: 1, text: "x\ny", want: []string{"a"}, wantErr: ErrEmbeddedNewline},
	}

	for i, tc := range testCases {
		assertArgs := []interface{}{"testCase %d (%+v)", i, tc}

		b := New()
		b.Load(tc.initial)

		err := b.InsertAt(tc.n, tc.text)
		if tc.wantErr != nil {
			assert.Equal(t, tc.wantErr, errors.Cause(err), assertArgs...)
			assert.Equal(t, len(tc.initial), b.Len(), assertArgs...)
		} else {
			assert.Nil(t, err, assertArgs...)
			assert.Equal(t, len(tc.initial)+1, b.Len(), assertArgs...)
		}

		assert.Equal(t, tc.want, b.Lines(), assertArgs...)
	}
}

type deleteTC struct {
	initial []string
	n       int

	want    []string
	wantErr error
}

func TestDeleteAt(t *testing.T) {
	testCases := []deleteTC{
		deleteTC{initial: []string{"a", "b", "c"}, n: 1, want: []string{"b", "c"}},
		deleteTC{initial: []string{"a", "b", "c"}, n: 2, want: []string{"a", "c"}},
		deleteTC{initial: []string{"a", "b", "c"}, n: 3, want: []string{"a", "b"}},
		deleteTC{initial: []string{"a"}, n: 1, want: []string{}},

		deleteTC{initial: []string{"a", "b", "c"}, n: 4, want: []string{"a", "b", "c"}, wantErr: ErrOutOfRange},
		deleteTC{initial: []string{"a", "b", "c"}, n: 0, want: []string{"a", "b", "c"}, wantErr: ErrOutOfRange},
		deleteTC{initial: []string{}, n: 1, want: []string{}, wantErr: ErrOutOfRange},
	}

	for i, tc := range testCases {
		assertArgs := []interface{}{"testCase %d (%+v)", i, tc}

		b := New()
		b.Load(tc.initial)

		err := b.DeleteAt(tc.n)
		if tc.wantErr != nil {
			assert.Equal(t, tc.wantErr, errors.Cause(err), assertArgs...)
		} else {
			assert.Nil(t, err, assertArgs...)
		}

		assert.Equal(t, tc.want, b.Lines(), assertArgs...)
	}
}

func TestDisplay(t *testing.T) {
	b := New()
	b.Load([]string{"a", "b", "c"})

	var nums []int
	var texts []string
	for n, text := range b.Display() {
		nums = append(nums, n)
		texts = append(texts, text)
	}

	assert.Equal(t, []int{1, 2, 3}, nums)
	assert.Equal(t, []string{"a", "b", "c"}, texts)

	// The same sequence is restartable and reflects modifications.
	seq := b.Display()
	assert.NoError(t, b.DeleteAt(1))

	texts = nil
	for _, text := range seq {
		texts = append(texts, text)
	}
	assert.Equal(t, []string{"b", "c"}, texts)

	// Early break is fine.
	for n := range seq {
		assert.Equal(t, 1, n)
		break
	}

	assert.Nil(t, collect(New()))
}

func TestLoadCopies(t *testing.T) {
	src := []string{"a", "b"}

	b := New()
	b.Load(src)
	src[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, collect(b))

	lines := b.Lines()
	lines[1] = "changed"
	assert.Equal(t, []string{"a", "b"}, collect(b))
}

func TestLine(t *testing.T) {
	b := New()
	b.Load([]string{"a", "b"})

	got, err := b.Line(2)
	assert.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = b.Line(3)
	assert.Equal(t, ErrOutOfRange, errors.Cause(err))

	_, err = b.Line(0)
	assert.Equal(t, ErrOutOfRange, errors.Cause(err))
}
