package dsf

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/hjson-format/debug"
	"github.com/signadot/hjson-format/ir"
	"github.com/signadot/hjson-format/token"
)

var ErrExpr = errors.New("dsf expression")

// Expr compiles src, an expr-lang expression producing a string, into a
// provider. The expression sees the value through these variables:
//
//	kind     the value type: "Null", "Bool", "Number", "String", "Array", "Object"
//	text     scalar text: the number text, the string, "true"/"false", "null"
//	str      the string value
//	boolean  the boolean value
//	num      the number as a float
//	integer  the number as an integer, when isInt
//	isInt    whether the number text is an integer
//	path     the value's path from the root, like $.a[0]
//
// and the functions hex(int) and quote(string). An empty result leaves
// the value to the writer.
func Expr(providerName, src string) (Provider, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrExpr, providerName, err)
	}
	return &exprProvider{name: name(providerName), src: src, prg: prg}, nil
}

type exprProvider struct {
	name
	src string
	prg *vm.Program
}

func (p *exprProvider) Description() string {
	return "expression " + strconv.Quote(p.src)
}

func (p *exprProvider) Stringify(node *ir.Node) string {
	res, err := expr.Run(p.prg, exprEnv(node))
	if err != nil {
		if debug.DSF() {
			debug.Logf("dsf %s: %s: %v\n", p.Name(), node.Path(), err)
		}
		return ""
	}
	s, _ := res.(string)
	return s
}

func exprEnv(node *ir.Node) map[string]any {
	env := map[string]any{
		"kind":    node.Type.String(),
		"text":    "",
		"str":     "",
		"boolean": false,
		"num":     0.0,
		"integer": 0,
		"isInt":   false,
		"path":    node.Path(),
	}
	switch node.Type {
	case ir.StringType:
		env["text"] = node.String
		env["str"] = node.String
	case ir.BoolType:
		env["text"] = strconv.FormatBool(node.Bool)
		env["boolean"] = node.Bool
	case ir.NullType:
		env["text"] = "null"
	case ir.NumberType:
		env["text"] = node.Number
		if f, ok := node.Float64(); ok {
			env["num"] = f
		}
		if i, ok := node.Int64(); ok {
			env["integer"] = int(i)
			env["isInt"] = true
		}
	}
	return env
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(exprEnv(ir.Null())),
		expr.AsKind(reflect.String),
		expr.Function("hex", func(params ...any) (any, error) {
			i, ok := params[0].(int)
			if !ok {
				return nil, fmt.Errorf("hex: expected int, got %T", params[0])
			}
			if i < 0 {
				return "-0x" + strconv.FormatInt(-int64(i), 16), nil
			}
			return "0x" + strconv.FormatInt(int64(i), 16), nil
		},
			new(func(int) string)),
		expr.Function("quote", func(params ...any) (any, error) {
			return token.Quote(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
