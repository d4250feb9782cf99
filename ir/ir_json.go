package ir

import (
	"encoding/json"
	"fmt"
)

// The IR itself is representable in JSON, which lets annotated trees
// (comments, blank lines, layout hints) be stored and loaded without a
// relaxed-JSON parser.

type irComments struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
	Inside string `json:"inside,omitempty"`
}

type irBase struct {
	Type   Type     `json:"type"`
	Fields []string `json:"fields,omitempty"`
	Values []*Node  `json:"values,omitempty"`

	Comments   *irComments `json:"comments,omitempty"`
	Lines      int         `json:"lines,omitempty"`
	Condensed  bool        `json:"condensed,omitempty"`
	LineLength int         `json:"lineLength,omitempty"`
	Number     string      `json:"number,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:       y.Type,
		Fields:     y.Fields,
		Values:     y.Values,
		Lines:      y.Lines,
		Condensed:  y.Condensed,
		LineLength: y.LineLength,
		Number:     y.Number,
	}
	if y.Comments != (Comments{}) {
		base.Comments = &irComments{Before: y.Before, After: y.After, Inside: y.Inside}
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	switch tmp.Type {
	case ObjectType:
		if len(tmp.Fields) != len(tmp.Values) {
			return fmt.Errorf("%w: object has %d fields and %d values", ErrImport, len(tmp.Fields), len(tmp.Values))
		}
	case ArrayType:
		if len(tmp.Fields) != 0 {
			return fmt.Errorf("%w: array with fields", ErrImport)
		}
	}
	y.Type = tmp.Type
	y.Fields = tmp.Fields
	y.Values = tmp.Values
	y.Lines = tmp.Lines
	y.Condensed = tmp.Condensed
	y.LineLength = tmp.LineLength
	y.Number = tmp.Number
	y.String = tmp.String
	y.Bool = tmp.Bool
	if tmp.Comments != nil {
		y.Comments = Comments{
			Before: tmp.Comments.Before,
			After:  tmp.Comments.After,
			Inside: tmp.Comments.Inside,
		}
	}
	for i, v := range y.Values {
		if v == nil {
			v = Null()
			y.Values[i] = v
		}
		v.Parent = y
		v.ParentIndex = i
		if y.Type == ObjectType {
			v.ParentField = y.Fields[i]
		}
	}
	return nil
}
