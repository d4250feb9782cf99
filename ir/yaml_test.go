package ir

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/hjson-format/debug"
	"github.com/signadot/hjson-format/format"
)

func TestFromYAML(t *testing.T) {
	node, err := FromYAML([]byte("z: 1\na:\n  - x\n  - -2\n  - 1.5\nm: {k: true}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, node.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
	arr := node.Values[1]
	if arr.Type != ArrayType || arr.Len() != 3 {
		t.Fatalf("expected 3 element array")
	}
	if arr.Values[0].String != "x" || arr.Values[1].Number != "-2" || arr.Values[2].Number != "1.5" {
		t.Errorf("unexpected array values")
	}
	if b := Get(node.Values[2], "k"); b == nil || b.Type != BoolType || !b.Bool {
		t.Errorf("expected k: true")
	}
}

func TestFromYAMLComments(t *testing.T) {
	node, err := FromYAML([]byte("# head\na: 1\nb: 2 # line\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(node.Values[0].Before, "head") {
		t.Errorf("head comment not attached, got %q", node.Values[0].Before)
	}
	if !strings.HasPrefix(node.Values[1].After, "#") || !strings.Contains(node.Values[1].After, "line") {
		t.Errorf("line comment not attached, got %q", node.Values[1].After)
	}
}

func TestImport(t *testing.T) {
	for _, f := range format.AllFormats() {
		var in string
		switch f {
		case format.JSONFormat:
			in = `{"a": 1}`
		case format.YAMLFormat:
			in = "a: 1\n"
		case format.IRFormat:
			in = `{"type": "Object", "fields": ["a"], "values": [{"type": "Number", "number": "1"}]}`
		}
		node, err := Import([]byte(in), f)
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if v := Get(node, "a"); v == nil || v.Number != "1" {
			t.Errorf("%s: expected a: 1", f)
		}
	}
}

func TestImportDebugLog(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	debug.SetOutput(buf)
	defer debug.SetOutput(os.Stderr)
	debugImport = func() bool { return true }
	defer func() { debugImport = debug.Import }()

	irDoc := `{"type": "Object", "fields": ["a"], "comments": {"inside": "# end"},
		"values": [{"type": "Number", "number": "1", "comments": {"before": "# a", "after": "# b"}}]}`
	inputs := []struct {
		f    format.Format
		in   string
		want string
	}{
		{format.JSONFormat, `{"a": 1}`, "import json: 8 bytes, 0 comments"},
		{format.IRFormat, irDoc, fmt.Sprintf("import ir: %d bytes, 3 comments", len(irDoc))},
		{format.YAMLFormat, "a: 1\n", "import yaml: 5 bytes, 0 comments"},
	}
	for _, in := range inputs {
		if _, err := Import([]byte(in.in), in.f); err != nil {
			t.Fatalf("%s: %v", in.f, err)
		}
		if !strings.Contains(buf.String(), in.want) {
			t.Errorf("missing %q in %q", in.want, buf.String())
		}
	}
	if n := strings.Count(buf.String(), "import yaml"); n != 1 {
		t.Errorf("yaml import logged %d times", n)
	}
}

func TestImportNoDebugLog(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	debug.SetOutput(buf)
	defer debug.SetOutput(os.Stderr)
	debugImport = func() bool { return false }
	defer func() { debugImport = debug.Import }()

	if _, err := FromYAML([]byte("a: 1 # c\n")); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}
}
