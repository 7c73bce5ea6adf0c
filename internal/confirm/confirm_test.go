package confirm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("stdin closed") }

func TestGate_Confirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "y confirms", input: "y\n", want: true},
		{name: "Y confirms", input: "Y\n", want: true},
		{name: "padded y confirms", input: "  y  \n", want: true},
		{name: "y without newline confirms", input: "y", want: true},
		{name: "n denies", input: "n\n", want: false},
		{name: "empty denies", input: "\n", want: false},
		{name: "yes denies", input: "yes\n", want: false},
		{name: "garbage denies", input: "sure\n", want: false},
		{name: "eof denies", input: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			g := Gate{In: strings.NewReader(tt.input), Out: &out}
			assert.Equal(t, tt.want, g.Confirm("remove foo"))
			assert.Equal(t, "Are you sure you want to remove foo? [y/N] ", out.String())
		})
	}
}

func TestGate_ReadErrorDenies(t *testing.T) {
	g := Gate{In: failingReader{}, Out: &bytes.Buffer{}}
	assert.False(t, g.Confirm("remove foo"))
}

func TestGate_ReadsOnlyOneLine(t *testing.T) {
	in := strings.NewReader("n\ny\n")
	g := Gate{In: in, Out: &bytes.Buffer{}}
	assert.False(t, g.Confirm("remove foo"))
}
