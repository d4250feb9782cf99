package dsf

import (
	"errors"
	"testing"

	"github.com/signadot/hjson-format/ir"
)

func TestMath(t *testing.T) {
	for _, tc := range []struct {
		node *ir.Node
		want string
	}{
		{ir.FromNumber("NaN"), "NaN"},
		{ir.FromNumber("+Inf"), "+Inf"},
		{ir.FromNumber("-Inf"), "-Inf"},
		{ir.FromNumber("-0"), "-0"},
		{ir.FromNumber("-0.0"), "-0"},
		{ir.FromNumber("0"), ""},
		{ir.FromNumber("1.5"), ""},
		{ir.FromString("NaN"), ""},
	} {
		if got := Math().Stringify(tc.node); got != tc.want {
			t.Errorf("math(%s %q) = %q, want %q", tc.node.Type, tc.node.Number, got, tc.want)
		}
	}
}

func TestHex(t *testing.T) {
	for _, tc := range []struct {
		node *ir.Node
		want string
	}{
		{ir.FromInt(255), "0xff"},
		{ir.FromInt(0), "0x0"},
		{ir.FromNumber("16.0"), "0x10"},
		{ir.FromNumber("1.5"), ""},
		{ir.FromInt(-1), ""},
		{ir.FromString("255"), ""},
	} {
		if got := Hex(true).Stringify(tc.node); got != tc.want {
			t.Errorf("hex(%q) = %q, want %q", tc.node.Number, got, tc.want)
		}
	}
	if got := Hex(false).Stringify(ir.FromInt(255)); got != "" {
		t.Errorf("hex without stringify = %q", got)
	}
}

func TestStringifyFirstWins(t *testing.T) {
	ps := []Provider{Hex(false), Math(), Hex(true)}
	if got := Stringify(ps, ir.FromNumber("NaN")); got != "NaN" {
		t.Errorf("got %q", got)
	}
	if got := Stringify(ps, ir.FromInt(10)); got != "0xa" {
		t.Errorf("got %q", got)
	}
	if got := Stringify(ps, ir.FromString("x")); got != "" {
		t.Errorf("got %q", got)
	}
	if got := Stringify(nil, ir.FromInt(10)); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestExpr(t *testing.T) {
	p, err := Expr("upper", `kind == "String" && str startsWith "id-" ? quote(upper(str)) : isInt && integer > 9 ? hex(integer) : ""`)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name() != "upper" {
		t.Errorf("name %q", p.Name())
	}
	for _, tc := range []struct {
		node *ir.Node
		want string
	}{
		{ir.FromString("id-ab"), `"ID-AB"`},
		{ir.FromString("other"), ""},
		{ir.FromInt(31), "0x1f"},
		{ir.FromInt(3), ""},
		{ir.FromBool(true), ""},
		{ir.Null(), ""},
	} {
		if got := p.Stringify(tc.node); got != tc.want {
			t.Errorf("Stringify(%s) = %q, want %q", tc.node.Type, got, tc.want)
		}
	}
}

func TestExprCompileError(t *testing.T) {
	if _, err := Expr("bad", `kind +`); !errors.Is(err, ErrExpr) {
		t.Errorf("expected ErrExpr, got %v", err)
	}
	if _, err := Expr("notstring", `1 + 2`); !errors.Is(err, ErrExpr) {
		t.Errorf("expected ErrExpr for non string result, got %v", err)
	}
}

func TestRegistry(t *testing.T) {
	if Lookup("math") == nil || Lookup("hex") == nil {
		t.Fatalf("builtin providers not registered")
	}
	if err := Register(Math()); !errors.Is(err, ErrProviderExists) {
		t.Errorf("expected ErrProviderExists, got %v", err)
	}
	ps := Providers()
	for i := 1; i < len(ps); i++ {
		if ps[i-1].Name() > ps[i].Name() {
			t.Errorf("providers not sorted")
		}
	}
}
