package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/hjson-format/dsf"
	"github.com/signadot/hjson-format/encode"
	"github.com/signadot/hjson-format/format"
)

func testConverter() *converter {
	return &converter{log: newLogger(io.Discard, true)}
}

func TestConvert(t *testing.T) {
	for _, tc := range []struct {
		name string
		conv func(c *converter)
		in   string
		f    format.Format
		want string
	}{
		{
			name: "json",
			in:   `{"a": "hello", "b": [1, 2]}`,
			want: "{\n  a: hello\n  b: [\n    1\n    2\n  ]\n}\n",
		},
		{
			name: "documents",
			in:   "{\"a\": 1}\n---\n[true]",
			want: "{\n  a: 1\n}\n---\n[\n  true\n]\n",
		},
		{
			name: "yaml",
			in:   "b: x\na:\n  - 1\n  - null\n",
			f:    format.YAMLFormat,
			want: "{\n  b: x\n  a: [\n    1\n    null\n  ]\n}\n",
		},
		{
			name: "patch",
			conv: func(c *converter) { c.patch = []byte(`{"b": null, "c": "x"}`) },
			in:   `{"a": 1, "b": 2}`,
			want: "{\n  a: 1\n  c: x\n}\n",
		},
		{
			name: "condense",
			conv: func(c *converter) { c.condense = true },
			in:   `{"a": [1, 2], "b": [[1]]}`,
			want: "{\n  a: [ 1, 2 ]\n  b: [\n    [ 1 ]\n  ]\n}\n",
		},
		{
			name: "options",
			conv: func(c *converter) {
				c.opts = []encode.EncodeOption{
					encode.EncodeRootBraces(false),
					encode.EncodeProviders(dsf.Hex(true)),
				}
			},
			in:   `{"a": 255}`,
			want: "\n  a: 0xff\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := testConverter()
			if tc.conv != nil {
				tc.conv(c)
			}
			buf := bytes.NewBuffer(nil)
			if err := c.convert(buf, []byte(tc.in), tc.f); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	c := testConverter()
	if err := c.convert(io.Discard, []byte(`{"a": `), format.JSONFormat); err == nil {
		t.Error("expected decode error")
	}
	c.patch = []byte(`[`)
	if err := c.convert(io.Discard, []byte(`{}`), format.JSONFormat); err == nil {
		t.Error("expected patch error")
	}
}

func TestHjsonPath(t *testing.T) {
	for _, tc := range []struct {
		file string
		f    format.Format
		want string
	}{
		{"x/a.json", format.JSONFormat, "x/a.hjson"},
		{"a.yml", format.YAMLFormat, "a.hjson"},
		{"a.yaml", format.YAMLFormat, "a.hjson"},
		{"a.ir.json", format.IRFormat, "a.hjson"},
		{"noext", format.JSONFormat, "noext.hjson"},
	} {
		if got := hjsonPath(tc.file, tc.f); got != tc.want {
			t.Errorf("hjsonPath(%q) = %q, want %q", tc.file, got, tc.want)
		}
	}
}

func TestLineDiff(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	changed, err := lineDiff(buf, "f", "a\nb\n", "a\nc\n")
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("not changed")
	}
	if diff := cmp.Diff("--- f\n+++ f\n a\n-b\n+c\n", buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	buf.Reset()
	changed, err = lineDiff(buf, "f", "same\n", "same\n")
	if err != nil || changed || buf.Len() != 0 {
		t.Errorf("unchanged: %t %v %q", changed, err, buf.String())
	}
}

func TestWriteAndDiffFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "a.json")
	if err := os.WriteFile(in, []byte(`{"a": 1}`), 0644); err != nil {
		t.Fatal(err)
	}
	c := testConverter()
	if err := writeFile(c, in, format.JSONFormat); err != nil {
		t.Fatal(err)
	}
	d, err := os.ReadFile(filepath.Join(dir, "a.hjson"))
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "{\n  a: 1\n}\n" {
		t.Errorf("got %q", d)
	}

	buf := bytes.NewBuffer(nil)
	if err := diffFile(c, buf, in, format.JSONFormat); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected diff %q", buf.String())
	}
	if err := os.WriteFile(in, []byte(`{"a": 2}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := diffFile(c, buf, in, format.JSONFormat); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "-  a: 1\n+  a: 2\n") {
		t.Errorf("diff: %q", buf.String())
	}
}
