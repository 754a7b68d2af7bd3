package modules

import (
	"fmt"

	"github.com/funvibe/miniscript/internal/ast"
	"gopkg.in/yaml.v3"
)

// DecodeError points at the YAML line of a malformed node.
type DecodeError struct {
	File string
	Line int
	Msg  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Msg)
}

// Decode parses a program tree. file is used for error messages and is
// recorded in the returned Program.
func Decode(data []byte, file string) (*ast.Program, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", file, err)
	}
	d := &decoder{file: file}
	prog := &ast.Program{File: file}
	if root.Kind == 0 || len(root.Content) == 0 {
		return prog, nil
	}

	doc := root.Content[0]
	if doc.Kind == yaml.MappingNode {
		f, err := d.fields(doc, "statements")
		if err != nil {
			return nil, err
		}
		doc = f["statements"]
		if doc == nil {
			return prog, nil
		}
	}
	stmts, err := d.statements(doc)
	if err != nil {
		return nil, err
	}
	prog.Statements = stmts
	return prog, nil
}

type decoder struct {
	file string
}

func (d *decoder) errorf(n *yaml.Node, format string, args ...any) error {
	return &DecodeError{File: d.file, Line: n.Line, Msg: fmt.Sprintf(format, args...)}
}

// fields indexes a mapping node by key, rejecting keys not in allowed.
func (d *decoder) fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.errorf(n, "expected a mapping")
	}
	ok := make(map[string]bool, len(allowed)+1)
	for _, k := range allowed {
		ok[k] = true
	}
	ok["line"] = true

	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		if !ok[key] {
			return nil, d.errorf(n.Content[i], "unexpected key %q", key)
		}
		if _, dup := out[key]; dup {
			return nil, d.errorf(n.Content[i], "duplicate key %q", key)
		}
		out[key] = n.Content[i+1]
	}
	return out, nil
}

// kindOf returns the first key of a node mapping that names a node kind.
func (d *decoder) kindOf(n *yaml.Node, kinds map[string][]string) (string, error) {
	if n.Kind != yaml.MappingNode {
		return "", d.errorf(n, "expected a node mapping")
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if _, ok := kinds[n.Content[i].Value]; ok {
			return n.Content[i].Value, nil
		}
	}
	return "", d.errorf(n, "node has no kind key")
}

// line returns the explicit line: field, or the YAML line of the node.
func (d *decoder) line(n *yaml.Node, f map[string]*yaml.Node) (int, error) {
	ln, ok := f["line"]
	if !ok {
		return n.Line, nil
	}
	var v int
	if err := ln.Decode(&v); err != nil {
		return 0, d.errorf(ln, "line: %v", err)
	}
	return v, nil
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null")
}

func (d *decoder) name(n *yaml.Node, what string) (string, error) {
	if n == nil || n.Kind != yaml.ScalarNode || n.Value == "" {
		line := 0
		if n != nil {
			line = n.Line
		}
		return "", &DecodeError{File: d.file, Line: line, Msg: what + ": expected a name"}
	}
	return n.Value, nil
}

func (d *decoder) names(n *yaml.Node, what string) ([]string, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, d.errorf(n, "%s: expected a sequence", what)
	}
	out := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		s, err := d.name(c, what)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
