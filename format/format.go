package format

import (
	"errors"
	"fmt"
	"path/filepath"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
	// IRFormat is the JSON serialization of the value tree itself,
	// carrying comments and layout hints.
	IRFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
		"ir":   IRFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case IRFormat:
		return []byte("ir"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }
func (f Format) IsIR() bool   { return f == IRFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case IRFormat:
		return ".ir.json"
	default:
		return ""
	}
}

// FromPath guesses the format of a file from its name, defaulting to JSON.
func FromPath(path string) Format {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return YAMLFormat
	}
	if len(path) > len(".ir.json") && path[len(path)-len(".ir.json"):] == ".ir.json" {
		return IRFormat
	}
	return JSONFormat
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, YAMLFormat, IRFormat}
}
