package debug

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

type fakeJSON struct {
	d   string
	err error
}

func (f fakeJSON) JSON() ([]byte, error) { return []byte(f.d), f.err }

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	SetOutput(buf)
	defer SetOutput(os.Stderr)

	// Passed as []any: Logf replaces JSON values with strings before
	// formatting, which the vet printf check cannot see.
	nodeArgs := []any{fakeJSON{d: "[1]"}, "$"}
	badArgs := []any{fakeJSON{err: errors.New("x")}}
	Logf("node %s at %s\n", nodeArgs...)
	Logf("bad %s\n", badArgs...)
	out := buf.String()
	for _, want := range []string{"node [1] at $", "bad [raw debug.fakeJSON]"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in %q", want, out)
		}
	}
}
