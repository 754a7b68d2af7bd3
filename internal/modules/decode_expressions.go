package modules

import (
	"strconv"

	"github.com/funvibe/miniscript/internal/ast"
	"gopkg.in/yaml.v3"
)

var expressionKinds = map[string][]string{
	"int":    nil,
	"string": nil,
	"bool":   nil,
	"br":     nil,
	"var":    nil,
	"member": nil,
	"index":  nil,
	"not":    nil,
	"op":     {"left", "right"},
	"call":   {"args"},
}

func (d *decoder) expressions(n *yaml.Node) ([]ast.Expression, error) {
	if isNull(n) {
		return []ast.Expression{}, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "expected a sequence of expressions")
	}
	out := make([]ast.Expression, 0, len(n.Content))
	for _, c := range n.Content {
		e, err := d.expression(c)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (d *decoder) expression(n *yaml.Node) (ast.Expression, error) {
	kind, err := d.kindOf(n, expressionKinds)
	if err != nil {
		return nil, err
	}
	f, err := d.fields(n, append([]string{kind}, expressionKinds[kind]...)...)
	if err != nil {
		return nil, err
	}
	line, err := d.line(n, f)
	if err != nil {
		return nil, err
	}
	v := f[kind]

	switch kind {
	case "int":
		i, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return nil, d.errorf(v, "int: %v", err)
		}
		return &ast.IntegerLiteral{Line: line, Value: i}, nil

	case "string":
		if v.Kind != yaml.ScalarNode {
			return nil, d.errorf(v, "string: expected a scalar")
		}
		return &ast.StringLiteral{Line: line, Value: v.Value}, nil

	case "bool":
		var b bool
		if err := v.Decode(&b); err != nil {
			return nil, d.errorf(v, "bool: %v", err)
		}
		return &ast.BooleanLiteral{Line: line, Value: b}, nil

	case "br":
		return &ast.LineBreakLiteral{Line: line}, nil

	case "var":
		name, err := d.name(v, "var")
		if err != nil {
			return nil, err
		}
		return &ast.Identifier{Line: line, Value: name}, nil

	case "member":
		if v.Kind != yaml.SequenceNode || len(v.Content) != 2 {
			return nil, d.errorf(v, "member: expected [object, member]")
		}
		obj, err := d.name(v.Content[0], "member")
		if err != nil {
			return nil, err
		}
		member, err := d.name(v.Content[1], "member")
		if err != nil {
			return nil, err
		}
		return &ast.MemberExpression{Line: line, Name: obj, Member: member}, nil

	case "index":
		idx, err := d.fields(v, "name", "at")
		if err != nil {
			return nil, err
		}
		name, err := d.name(idx["name"], "index")
		if err != nil {
			return nil, err
		}
		if idx["at"] == nil {
			return nil, d.errorf(v, "index %s: missing at", name)
		}
		at, err := d.expression(idx["at"])
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpression{Line: line, Name: name, Index: at}, nil

	case "not":
		right, err := d.expression(v)
		if err != nil {
			return nil, err
		}
		return &ast.PrefixExpression{Line: line, Right: right}, nil

	case "op":
		op, ok := ast.ParseOperator(v.Value)
		if !ok {
			return nil, d.errorf(v, "unknown operator %q", v.Value)
		}
		if f["left"] == nil || f["right"] == nil {
			return nil, d.errorf(n, "op %s: needs left and right", v.Value)
		}
		left, err := d.expression(f["left"])
		if err != nil {
			return nil, err
		}
		right, err := d.expression(f["right"])
		if err != nil {
			return nil, err
		}
		return &ast.InfixExpression{Line: line, Left: left, Operator: op, Right: right}, nil

	case "call":
		return d.call(line, v, f)
	}
	return nil, d.errorf(n, "unknown expression %q", kind)
}

func (d *decoder) call(line int, v *yaml.Node, f map[string]*yaml.Node) (*ast.CallExpression, error) {
	name, err := d.name(v, "call")
	if err != nil {
		return nil, err
	}
	args, err := d.expressions(f["args"])
	if err != nil {
		return nil, err
	}
	return &ast.CallExpression{Line: line, Function: name, Arguments: args}, nil
}
