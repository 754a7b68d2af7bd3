package modules

import (
	"github.com/funvibe/miniscript/internal/ast"
	"gopkg.in/yaml.v3"
)

// statementKinds maps each statement kind key to the sibling keys it accepts.
var statementKinds = map[string][]string{
	"write":    nil,
	"declare":  {"value", "object", "array"},
	"assign":   {"value"},
	"if":       {"then", "else"},
	"while":    {"do"},
	"dowhile":  {"do"},
	"function": {"params", "body"},
	"call":     {"args"},
	"break":    nil,
	"continue": nil,
	"return":   nil,
	"nop":      nil,
}

func (d *decoder) statements(n *yaml.Node) ([]ast.Statement, error) {
	if isNull(n) {
		return []ast.Statement{}, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "expected a sequence of statements")
	}
	out := make([]ast.Statement, 0, len(n.Content))
	for _, c := range n.Content {
		s, err := d.statement(c)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (d *decoder) statement(n *yaml.Node) (ast.Statement, error) {
	kind, err := d.kindOf(n, statementKinds)
	if err != nil {
		return nil, err
	}
	f, err := d.fields(n, append([]string{kind}, statementKinds[kind]...)...)
	if err != nil {
		return nil, err
	}
	line, err := d.line(n, f)
	if err != nil {
		return nil, err
	}
	v := f[kind]

	switch kind {
	case "write":
		args, err := d.expressions(v)
		if err != nil {
			return nil, err
		}
		return &ast.WriteStatement{Line: line, Arguments: args}, nil

	case "declare":
		return d.declaration(line, v, f)

	case "assign":
		target, err := d.target(v, line)
		if err != nil {
			return nil, err
		}
		if f["value"] == nil {
			return nil, d.errorf(n, "assign: missing value")
		}
		value, err := d.expression(f["value"])
		if err != nil {
			return nil, err
		}
		return &ast.AssignStatement{Line: line, Target: target, Value: value}, nil

	case "if":
		cond, err := d.expression(v)
		if err != nil {
			return nil, err
		}
		then, err := d.statements(f["then"])
		if err != nil {
			return nil, err
		}
		stmt := &ast.IfStatement{Line: line, Condition: cond, Consequence: then}
		if f["else"] != nil {
			if stmt.Alternative, err = d.statements(f["else"]); err != nil {
				return nil, err
			}
		}
		return stmt, nil

	case "while", "dowhile":
		cond, err := d.expression(v)
		if err != nil {
			return nil, err
		}
		body, err := d.statements(f["do"])
		if err != nil {
			return nil, err
		}
		return &ast.LoopStatement{Line: line, Condition: cond, Body: body, TestFirst: kind == "while"}, nil

	case "function":
		name, err := d.name(v, "function")
		if err != nil {
			return nil, err
		}
		params, err := d.names(f["params"], "params")
		if err != nil {
			return nil, err
		}
		body, err := d.statements(f["body"])
		if err != nil {
			return nil, err
		}
		return &ast.FunctionStatement{Line: line, Name: name, Parameters: params, Body: body}, nil

	case "call":
		call, err := d.call(line, v, f)
		if err != nil {
			return nil, err
		}
		return &ast.CallStatement{Line: line, Call: call}, nil

	case "break":
		return &ast.BreakStatement{Line: line}, nil
	case "continue":
		return &ast.ContinueStatement{Line: line}, nil
	case "nop":
		return &ast.NopStatement{Line: line}, nil

	case "return":
		stmt := &ast.ReturnStatement{Line: line}
		if !isNull(v) {
			if stmt.Value, err = d.expression(v); err != nil {
				return nil, err
			}
		}
		return stmt, nil
	}
	return nil, d.errorf(n, "unknown statement %q", kind)
}

func (d *decoder) declaration(line int, v *yaml.Node, f map[string]*yaml.Node) (ast.Statement, error) {
	name, err := d.name(v, "declare")
	if err != nil {
		return nil, err
	}
	stmt := &ast.DeclarationStatement{Line: line, Name: name}

	set := 0
	for _, k := range []string{"value", "object", "array"} {
		if f[k] != nil {
			set++
		}
	}
	if set > 1 {
		return nil, d.errorf(v, "declare %s: more than one initializer", name)
	}

	switch {
	case f["value"] != nil:
		stmt.Value, err = d.expression(f["value"])
	case f["object"] != nil:
		stmt.ObjectInit, err = d.statements(f["object"])
	case f["array"] != nil:
		stmt.ArrayInit, err = d.expressions(f["array"])
	}
	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// target decodes an assignment target: a bare name, {name, member} or {name, index}.
func (d *decoder) target(n *yaml.Node, line int) (ast.Target, error) {
	if n.Kind == yaml.ScalarNode {
		name, err := d.name(n, "assign")
		if err != nil {
			return nil, err
		}
		return &ast.NameTarget{Line: line, Name: name}, nil
	}

	f, err := d.fields(n, "name", "member", "index")
	if err != nil {
		return nil, err
	}
	name, err := d.name(f["name"], "assign")
	if err != nil {
		return nil, err
	}
	switch {
	case f["member"] != nil && f["index"] != nil:
		return nil, d.errorf(n, "assign %s: member and index are exclusive", name)
	case f["member"] != nil:
		member, err := d.name(f["member"], "member")
		if err != nil {
			return nil, err
		}
		return &ast.MemberTarget{Line: line, Name: name, Member: member}, nil
	case f["index"] != nil:
		idx, err := d.expression(f["index"])
		if err != nil {
			return nil, err
		}
		return &ast.IndexTarget{Line: line, Name: name, Index: idx}, nil
	}
	return &ast.NameTarget{Line: line, Name: name}, nil
}
