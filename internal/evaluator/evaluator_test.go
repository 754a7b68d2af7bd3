package evaluator

import (
	"testing"

	"github.com/funvibe/miniscript/internal/ast"
)

func TestScenarios(t *testing.T) {
	tests := []struct {
		name     string
		program  []ast.Statement
		wantOut  string
		wantDiag string
	}{
		{
			name: "declare and add",
			program: block(
				declare(1, "x", num(5)),
				write(2, infix(2, ident(2, "x"), ast.OpAdd, num(3))),
			),
			wantOut: "8",
		},
		{
			name: "redeclaration reads the old value first",
			program: block(
				declare(1, "s", str("a")),
				declare(2, "s", infix(2, ident(2, "s"), ast.OpAdd, str("b"))),
				write(3, ident(3, "s")),
			),
			wantOut: "ab",
		},
		{
			name: "do-while runs once",
			program: block(
				doWhile(1, boolean(false), write(2, str("body"))),
			),
			wantOut: "body",
		},
		{
			name: "while with false condition never runs",
			program: block(
				while(1, boolean(false), write(2, str("body"))),
			),
			wantOut: "",
		},
		{
			name:     "write of an undeclared name",
			program:  block(write(3, ident(3, "x"))),
			wantOut:  "undefined",
			wantDiag: "Line 3, x has no value\n",
		},
		{
			name: "assignment to undeclared name heals",
			program: block(
				assign(2, "y", num(1)),
				write(3, ident(3, "y")),
			),
			wantOut:  "1",
			wantDiag: "Line 2, y undeclared\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, diag, _ := runProgram(t, tt.program...)
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if diag != tt.wantDiag {
				t.Errorf("diagnostics = %q, want %q", diag, tt.wantDiag)
			}
		})
	}
}

func TestShortCircuit(t *testing.T) {
	// side() leaves a mark in the output whenever it runs.
	side := function(1, "side", nil,
		write(2, str("called ")),
		ret(3, boolean(true)),
	)

	tests := []struct {
		name    string
		expr    ast.Expression
		wantOut string
	}{
		{"false and", infix(5, boolean(false), ast.OpAND, call(5, "side")), "false"},
		{"true or", infix(5, boolean(true), ast.OpOR, call(5, "side")), "true"},
		{"zero and", infix(5, num(0), ast.OpAND, call(5, "side")), "false"},
		{"nonempty or", infix(5, str("x"), ast.OpOR, call(5, "side")), "true"},
		{"true and", infix(5, boolean(true), ast.OpAND, call(5, "side")), "called true"},
		{"false or", infix(5, boolean(false), ast.OpOR, call(5, "side")), "called true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, diag, _ := runProgram(t, side, write(5, tt.expr))
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if diag != "" {
				t.Errorf("unexpected diagnostics %q", diag)
			}
		})
	}
}

func TestLeftOperandIsSnapshot(t *testing.T) {
	// bump() changes x while the right operand is evaluated.
	out, diag, _ := runProgram(t,
		declare(1, "x", num(1)),
		function(2, "bump", nil,
			assign(3, "x", num(100)),
			ret(4, num(0)),
		),
		write(6, infix(6, ident(6, "x"), ast.OpAdd, call(6, "bump"))),
		write(7, str(" "), ident(7, "x")),
	)
	if out != "1 100" {
		t.Errorf("output = %q, want %q", out, "1 100")
	}
	if diag != "" {
		t.Errorf("unexpected diagnostics %q", diag)
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		name     string
		expr     ast.Expression
		wantOut  string
		wantDiag string
	}{
		{"int add", infix(1, num(2), ast.OpAdd, num(3)), "5", ""},
		{"int sub", infix(1, num(2), ast.OpSub, num(3)), "-1", ""},
		{"int mul", infix(1, num(4), ast.OpMul, num(3)), "12", ""},
		{"int div truncates", infix(1, num(7), ast.OpDiv, num(2)), "3", ""},
		{"negative div truncates toward zero", infix(1, num(-7), ast.OpDiv, num(2)), "-3", ""},
		{"div by zero", infix(4, num(1), ast.OpDiv, num(0)), "undefined", "Line 4, type violation\n"},
		{"int lt", infix(1, num(1), ast.OpLT, num(2)), "true", ""},
		{"int ge", infix(1, num(1), ast.OpGE, num(2)), "false", ""},
		{"int eq", infix(1, num(2), ast.OpEQ, num(2)), "true", ""},
		{"int and is logical", infix(1, num(2), ast.OpAND, num(4)), "true", ""},
		{"string concat", infix(1, str("ab"), ast.OpAdd, str("cd")), "abcd", ""},
		{"string concat empty", infix(1, str(""), ast.OpAdd, str("cd")), "cd", ""},
		{"string ne", infix(1, str("a"), ast.OpNE, str("b")), "true", ""},
		{"string and empty", infix(1, str("a"), ast.OpAND, str("")), "false", ""},
		{"string ordering", infix(2, str("a"), ast.OpLT, str("b")), "undefined", "Line 2, type violation\n"},
		{"bool eq", infix(1, boolean(true), ast.OpEQ, boolean(false)), "false", ""},
		{"bool add", infix(3, boolean(true), ast.OpAdd, boolean(false)), "undefined", "Line 3, type violation\n"},
		{"mixed or", infix(1, num(0), ast.OpOR, str("a")), "true", ""},
		{"mixed and", infix(1, boolean(true), ast.OpAND, num(0)), "false", ""},
		{"mixed add", infix(5, num(1), ast.OpAdd, str("a")), "undefined", "Line 5, type violation\n"},
		{"mixed eq", infix(5, boolean(true), ast.OpEQ, num(1)), "undefined", "Line 5, type violation\n"},
		{"line break operand", infix(6, br(), ast.OpEQ, br()), "undefined", "Line 6, type violation\n"},
		{"not zero", not(1, num(0)), "true", ""},
		{"not string", not(1, str("a")), "false", ""},
		{"not bool", not(1, boolean(false)), "true", ""},
		{"not line break", not(7, br()), "undefined", "Line 7, type violation\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, diag, _ := runProgram(t, write(1, tt.expr))
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if diag != tt.wantDiag {
				t.Errorf("diagnostics = %q, want %q", diag, tt.wantDiag)
			}
		})
	}
}

func TestUndefinedOperandIsSilent(t *testing.T) {
	// Only the read of x reports; the addition on an undefined operand does not.
	out, diag, e := runProgram(t, write(2, infix(2, ident(2, "x"), ast.OpAdd, num(1))))
	if out != "undefined" {
		t.Errorf("output = %q, want undefined", out)
	}
	if diag != "Line 2, x has no value\n" {
		t.Errorf("diagnostics = %q", diag)
	}
	if n := len(e.Reporter.Errors()); n != 1 {
		t.Errorf("recorded %d errors, want 1", n)
	}
}

func TestArrayGrowth(t *testing.T) {
	out, diag, e := runProgram(t,
		declareArray(1, "a", num(1), num(2)),
		assignIndex(2, "a", num(4), num(9)),
		write(3, index(3, "a", num(0)), index(3, "a", num(4))),
		write(4, index(4, "a", num(2))),
	)
	if out != "19undefined" {
		t.Errorf("output = %q, want %q", out, "19undefined")
	}
	if diag != "Line 4, a[2] has no value\n" {
		t.Errorf("diagnostics = %q", diag)
	}

	a, ok := e.GlobalEnv.Get("a")
	if !ok || a.Kind != KindArray {
		t.Fatalf("a = %+v, want an array", a)
	}
	if a.Array.Len() != 5 {
		t.Errorf("len(a) = %d, want 5", a.Array.Len())
	}
	if a.Array.At(1).Int != 2 {
		t.Errorf("a[1] = %s, want 2", a.Array.At(1).Inspect())
	}
	for _, i := range []int{2, 3} {
		if slot := a.Array.At(i); slot.Assigned || slot.Kind != KindUndefined {
			t.Errorf("a[%d] = %+v, want an unassigned undefined slot", i, slot)
		}
	}
}

func TestReadPastEndGrowsArray(t *testing.T) {
	_, diag, e := runProgram(t,
		declareArray(1, "a"),
		write(2, index(2, "a", num(3))),
	)
	if diag != "Line 2, a[3] has no value\n" {
		t.Errorf("diagnostics = %q", diag)
	}
	a, _ := e.GlobalEnv.Get("a")
	if a.Array.Len() != 4 {
		t.Errorf("len(a) = %d, want 4", a.Array.Len())
	}
}

func TestIndexViolations(t *testing.T) {
	tests := []struct {
		name     string
		program  []ast.Statement
		wantDiag string
	}{
		{
			name:     "negative index",
			program:  block(declareArray(1, "a", num(1)), write(2, index(2, "a", num(-1)))),
			wantDiag: "Line 2, type violation\n",
		},
		{
			name:     "index past the growth bound",
			program:  block(declareArray(1, "a", num(1)), write(2, index(2, "a", num(1<<40)))),
			wantDiag: "Line 2, type violation\n",
		},
		{
			name:     "string index",
			program:  block(declareArray(1, "a", num(1)), write(2, index(2, "a", str("0")))),
			wantDiag: "Line 2, type violation\n",
		},
		{
			name:     "index into integer",
			program:  block(declare(1, "a", num(1)), write(2, index(2, "a", num(0)))),
			wantDiag: "Line 2, type violation\n",
		},
		{
			name:     "index into object",
			program:  block(declareObject(1, "o"), write(2, index(2, "o", num(0)))),
			wantDiag: "Line 2, type violation\n",
		},
		{
			name:     "index assignment into integer",
			program:  block(declare(1, "a", num(1)), assignIndex(2, "a", num(0), num(5))),
			wantDiag: "Line 2, type violation\n",
		},
		{
			name:     "array read as scalar",
			program:  block(declareArray(1, "a", num(1)), write(2, ident(2, "a"))),
			wantDiag: "Line 2, type violation\n",
		},
		{
			name:     "array assigned as scalar",
			program:  block(declareArray(1, "a", num(1)), assign(2, "a", num(5))),
			wantDiag: "Line 2, type violation\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, diag, _ := runProgram(t, tt.program...)
			if diag != tt.wantDiag {
				t.Errorf("diagnostics = %q, want %q", diag, tt.wantDiag)
			}
		})
	}
}

func TestHugeIndexDoesNotGrow(t *testing.T) {
	_, diag, e := runProgram(t,
		declareArray(1, "a", num(1)),
		assignIndex(2, "a", num(MaxArrayLength), num(5)),
		write(3, index(3, "a", num(1<<40))),
	)
	if diag != "Line 2, type violation\nLine 3, type violation\n" {
		t.Errorf("diagnostics = %q", diag)
	}
	a, _ := e.GlobalEnv.Get("a")
	if a.Array.Len() != 1 {
		t.Errorf("len = %d, want 1", a.Array.Len())
	}
}

func TestObjects(t *testing.T) {
	tests := []struct {
		name     string
		program  []ast.Statement
		wantOut  string
		wantDiag string
	}{
		{
			name: "member read",
			program: block(
				declareObject(1, "o", declare(1, "n", num(3)), declare(1, "s", str("x"))),
				write(2, member(2, "o", "n"), member(2, "o", "s")),
			),
			wantOut: "3x",
		},
		{
			name: "member assignment adds a member",
			program: block(
				declareObject(1, "o"),
				assignMember(2, "o", "m", num(7)),
				write(3, member(3, "o", "m")),
			),
			wantOut: "7",
		},
		{
			name: "missing member",
			program: block(
				declareObject(1, "o"),
				write(2, member(2, "o", "m")),
			),
			wantOut:  "undefined",
			wantDiag: "Line 2, o.m has no value\n",
		},
		{
			name: "member of an integer",
			program: block(
				declare(1, "x", num(1)),
				write(2, member(2, "x", "m")),
			),
			wantOut:  "undefined",
			wantDiag: "Line 2, type violation\n",
		},
		{
			name: "member assignment on an integer",
			program: block(
				declare(1, "x", num(1)),
				assignMember(2, "x", "m", num(1)),
			),
			wantDiag: "Line 2, type violation\n",
		},
		{
			name: "object read as scalar",
			program: block(
				declareObject(1, "o"),
				write(2, ident(2, "o")),
			),
			wantOut:  "undefined",
			wantDiag: "Line 2, type violation\n",
		},
		{
			name: "object assigned as scalar",
			program: block(
				declareObject(1, "o"),
				assign(2, "o", num(1)),
			),
			wantDiag: "Line 2, type violation\n",
		},
		{
			name: "object initializer reads globals",
			program: block(
				declare(1, "g", num(1)),
				declareObject(2, "o", declare(2, "copy", ident(2, "g"))),
				write(3, member(3, "o", "copy")),
			),
			wantOut: "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, diag, _ := runProgram(t, tt.program...)
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if diag != tt.wantDiag {
				t.Errorf("diagnostics = %q, want %q", diag, tt.wantDiag)
			}
		})
	}
}

func TestAliasing(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		out, diag, _ := runProgram(t,
			declareObject(1, "o", declare(1, "n", num(1))),
			declare(2, "p", ident(2, "o")),
			assignMember(3, "p", "n", num(2)),
			write(4, member(4, "o", "n")),
		)
		if out != "2" || diag != "" {
			t.Errorf("output = %q, diagnostics = %q; want 2 and none", out, diag)
		}
	})

	t.Run("array", func(t *testing.T) {
		out, diag, _ := runProgram(t,
			declareArray(1, "a", num(1)),
			declare(2, "b", ident(2, "a")),
			assignIndex(5, "b", num(0), num(7)),
			assignIndex(6, "b", num(2), num(8)),
			write(7, index(7, "a", num(0)), index(7, "a", num(2))),
		)
		if out != "78" || diag != "" {
			t.Errorf("output = %q, diagnostics = %q; want 78 and none", out, diag)
		}
	})

	t.Run("through a parameter", func(t *testing.T) {
		out, diag, _ := runProgram(t,
			function(1, "fill", []string{"arr"},
				assignIndex(2, "arr", num(1), str("x")),
			),
			declareArray(4, "a", str("w")),
			callStmt(5, "fill", ident(5, "a")),
			write(6, index(6, "a", num(0)), index(6, "a", num(1))),
		)
		if out != "wx" || diag != "" {
			t.Errorf("output = %q, diagnostics = %q; want wx and none", out, diag)
		}
	})

	t.Run("array element copies the handle", func(t *testing.T) {
		out, _, _ := runProgram(t,
			declareObject(1, "o", declare(1, "n", num(1))),
			declareArray(2, "a", ident(2, "o")),
			assignMember(3, "o", "n", num(5)),
			declare(4, "first", index(4, "a", num(0))),
			write(5, member(5, "first", "n")),
		)
		if out != "5" {
			t.Errorf("output = %q, want 5", out)
		}
	})
}

func TestFunctions(t *testing.T) {
	tests := []struct {
		name     string
		program  []ast.Statement
		wantOut  string
		wantDiag string
	}{
		{
			name: "call before definition",
			program: block(
				write(1, call(1, "five")),
				function(2, "five", nil, ret(3, num(5))),
			),
			wantOut: "5",
		},
		{
			name: "nested definition is hoisted",
			program: block(
				write(1, call(1, "inner")),
				ifElse(2, boolean(false), block(function(3, "inner", nil, ret(4, str("in")))), nil),
			),
			wantOut: "in",
		},
		{
			name: "parameters are copies",
			program: block(
				function(1, "inc", []string{"n"},
					assign(2, "n", infix(2, ident(2, "n"), ast.OpAdd, num(1))),
					ret(3, ident(3, "n")),
				),
				declare(5, "x", num(1)),
				write(6, call(6, "inc", ident(6, "x")), ident(6, "x")),
			),
			wantOut: "21",
		},
		{
			name: "arguments bind left to right",
			program: block(
				function(1, "sub", []string{"a", "b"},
					ret(2, infix(2, ident(2, "a"), ast.OpSub, ident(2, "b"))),
				),
				write(4, call(4, "sub", num(10), num(3))),
			),
			wantOut: "7",
		},
		{
			name: "global fallback",
			program: block(
				declare(1, "g", num(10)),
				function(2, "f", nil, ret(3, infix(3, ident(3, "g"), ast.OpAdd, num(1)))),
				write(5, call(5, "f")),
			),
			wantOut: "11",
		},
		{
			name: "assignment inside a function never reaches a global",
			program: block(
				declare(1, "g", num(1)),
				function(2, "set", nil, assign(3, "g", num(2)), ret(3, ident(3, "g"))),
				write(5, call(5, "set")),
				write(6, ident(6, "g")),
			),
			wantOut:  "21",
			wantDiag: "Line 3, g undeclared\n",
		},
		{
			name: "locals shadow globals",
			program: block(
				declare(1, "v", str("global")),
				function(2, "f", nil,
					declare(3, "v", str("local")),
					ret(4, ident(4, "v")),
				),
				write(6, call(6, "f"), ident(6, "v")),
			),
			wantOut: "localglobal",
		},
		{
			name: "no return yields undefined",
			program: block(
				function(1, "f", nil, write(2, str("ran "))),
				write(4, call(4, "f")),
			),
			wantOut: "ran undefined",
		},
		{
			name: "bare return",
			program: block(
				function(1, "f", nil, ret(2, nil), write(3, str("unreachable"))),
				write(5, call(5, "f")),
			),
			wantOut: "undefined",
		},
		{
			name: "return from inside a loop",
			program: block(
				function(1, "h", nil,
					declare(2, "i", num(0)),
					while(3, boolean(true),
						assign(4, "i", infix(4, ident(4, "i"), ast.OpAdd, num(1))),
						ifElse(5, infix(5, ident(5, "i"), ast.OpEQ, num(3)), block(ret(5, ident(5, "i"))), nil),
					),
				),
				write(8, call(8, "h")),
			),
			wantOut: "3",
		},
		{
			name: "recursion",
			program: block(
				function(1, "fact", []string{"n"},
					ifElse(2, infix(2, ident(2, "n"), ast.OpLE, num(1)),
						block(ret(2, num(1))),
						block(ret(3, infix(3, ident(3, "n"), ast.OpMul,
							call(3, "fact", infix(3, ident(3, "n"), ast.OpSub, num(1)))))),
					),
				),
				write(5, call(5, "fact", num(5))),
			),
			wantOut: "120",
		},
		{
			name: "returned object keeps its members",
			program: block(
				function(1, "mk", nil,
					declareObject(2, "o", declare(2, "a", num(4))),
					ret(3, ident(3, "o")),
				),
				declare(5, "r", call(5, "mk")),
				write(6, member(6, "r", "a")),
			),
			wantOut: "4",
		},
		{
			name:     "undeclared callee",
			program:  block(write(2, call(2, "nope"))),
			wantOut:  "undefined",
			wantDiag: "Line 2, type violation\n",
		},
		{
			name: "callee is not a function",
			program: block(
				declare(1, "f", num(1)),
				callStmt(2, "f"),
			),
			wantDiag: "Line 2, type violation\n",
		},
		{
			name: "undeclared assignment stays local",
			program: block(
				function(1, "f", nil,
					assign(2, "z", num(1)),
					ret(3, ident(3, "z")),
				),
				write(5, call(5, "f")),
				write(6, ident(6, "z")),
			),
			wantOut:  "1undefined",
			wantDiag: "Line 2, z undeclared\nLine 6, z has no value\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, diag, _ := runProgram(t, tt.program...)
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if diag != tt.wantDiag {
				t.Errorf("diagnostics = %q, want %q", diag, tt.wantDiag)
			}
		})
	}
}

func TestArityMismatch(t *testing.T) {
	id := function(1, "id", []string{"x"}, ret(2, ident(2, "x")))

	tests := []struct {
		name string
		args []ast.Expression
	}{
		{"too many", []ast.Expression{num(1), num(2)}},
		{"too few", nil},
		{"too many with bad arguments", []ast.Expression{ident(4, "nope"), infix(4, str("a"), ast.OpSub, num(1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, diag, e := runProgram(t, id, write(4, call(4, "id", tt.args...)))
			if out != "undefined" {
				t.Errorf("output = %q, want undefined", out)
			}
			if diag != "Line 4, type violation\n" {
				t.Errorf("diagnostics = %q", diag)
			}
			if n := len(e.Reporter.Errors()); n != 1 {
				t.Errorf("recorded %d errors, want exactly 1", n)
			}
		})
	}
}

func TestLoops(t *testing.T) {
	counter := func(line int) ast.Statement {
		return assign(line, "i", infix(line, ident(line, "i"), ast.OpAdd, num(1)))
	}
	below := func(line int, n int64) ast.Expression {
		return infix(line, ident(line, "i"), ast.OpLT, num(n))
	}
	is := func(line int, n int64) ast.Expression {
		return infix(line, ident(line, "i"), ast.OpEQ, num(n))
	}

	tests := []struct {
		name     string
		program  []ast.Statement
		wantOut  string
		wantDiag string
	}{
		{
			name: "while counts",
			program: block(
				declare(1, "i", num(0)),
				while(2, below(2, 3), counter(3), write(4, ident(4, "i"))),
			),
			wantOut: "123",
		},
		{
			name: "continue skips the rest of the body",
			program: block(
				declare(1, "i", num(0)),
				while(2, below(2, 3),
					counter(3),
					ifElse(4, is(4, 2), block(&ast.ContinueStatement{Line: 4}), nil),
					write(5, ident(5, "i")),
				),
			),
			wantOut: "13",
		},
		{
			name: "break ends the loop",
			program: block(
				declare(1, "i", num(0)),
				while(2, boolean(true),
					counter(3),
					ifElse(4, is(4, 3), block(&ast.BreakStatement{Line: 4}), nil),
					write(5, ident(5, "i")),
				),
				write(7, str("|"), ident(7, "i")),
			),
			wantOut: "12|3",
		},
		{
			name: "do-while continue rechecks the condition",
			program: block(
				declare(1, "i", num(0)),
				doWhile(2, below(2, 2),
					counter(3),
					&ast.ContinueStatement{Line: 4},
					write(5, str("unreachable")),
				),
				write(7, ident(7, "i")),
			),
			wantOut: "2",
		},
		{
			name: "invalid condition ends the loop",
			program: block(
				function(1, "nothing", nil),
				while(2, call(2, "nothing"), write(3, str("body"))),
				write(4, str("after")),
			),
			wantOut:  "after",
			wantDiag: "Line 2, condition unknown\n",
		},
		{
			name: "break in a nested loop ends only that loop",
			program: block(
				declare(1, "i", num(0)),
				while(2, below(2, 2),
					counter(3),
					while(4, boolean(true), write(5, str("in")), &ast.BreakStatement{Line: 6}),
					write(7, ident(7, "i")),
				),
			),
			wantOut: "in1in2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, diag, _ := runProgram(t, tt.program...)
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if diag != tt.wantDiag {
				t.Errorf("diagnostics = %q, want %q", diag, tt.wantDiag)
			}
		})
	}
}

func TestConditional(t *testing.T) {
	tests := []struct {
		name     string
		cond     ast.Expression
		wantOut  string
		wantDiag string
	}{
		{"true", boolean(true), "then", ""},
		{"zero", num(0), "else", ""},
		{"empty string", str(""), "else", ""},
		{"line break", &ast.LineBreakLiteral{Line: 2}, "", "Line 2, condition unknown\n"},
		{"undefined", call(2, "nothing"), "", "Line 2, condition unknown\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, diag, _ := runProgram(t,
				function(1, "nothing", nil),
				ifElse(2, tt.cond, block(write(3, str("then"))), block(write(4, str("else")))),
			)
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if diag != tt.wantDiag {
				t.Errorf("diagnostics = %q, want %q", diag, tt.wantDiag)
			}
		})
	}
}

func TestConditionAbort(t *testing.T) {
	t.Run("skips only the conditional", func(t *testing.T) {
		out, diag, _ := runProgram(t,
			function(1, "nothing", nil),
			function(2, "f", nil,
				ifElse(3, call(3, "nothing"), block(write(3, str("then"))), block(write(3, str("else")))),
				ret(4, str("done")),
			),
			write(6, call(6, "f")),
		)
		if out != "done" {
			t.Errorf("output = %q, want %q", out, "done")
		}
		if diag != "Line 3, condition unknown\n" {
			t.Errorf("diagnostics = %q", diag)
		}
	})

	t.Run("aborted call renders undefined", func(t *testing.T) {
		out, diag, _ := runProgram(t,
			function(1, "nothing", nil),
			function(2, "g", nil,
				ret(3, infix(3, call(3, "nothing"), ast.OpAND, num(1))),
				write(4, str("unreachable")),
			),
			write(6, call(6, "g"), str(" after")),
		)
		if out != "undefined after" {
			t.Errorf("output = %q, want %q", out, "undefined after")
		}
		if diag != "Line 3, condition unknown\n" {
			t.Errorf("diagnostics = %q", diag)
		}
	})
}

func TestEscapedSignals(t *testing.T) {
	tests := []struct {
		name     string
		program  []ast.Statement
		wantOut  string
		wantDiag string
	}{
		{
			name:     "break at top level",
			program:  block(&ast.BreakStatement{Line: 3}, write(4, str("next"))),
			wantOut:  "next",
			wantDiag: "Line 3, type violation\n",
		},
		{
			name:     "continue inside a top-level if",
			program:  block(ifElse(2, boolean(true), block(&ast.ContinueStatement{Line: 5}), nil), write(6, str("next"))),
			wantOut:  "next",
			wantDiag: "Line 5, type violation\n",
		},
		{
			name:     "return at top level",
			program:  block(ret(7, num(1)), write(8, str("next"))),
			wantOut:  "next",
			wantDiag: "Line 7, type violation\n",
		},
		{
			name: "break out of a function",
			program: block(
				function(1, "b", nil, &ast.BreakStatement{Line: 2}, write(3, str("unreachable"))),
				write(5, call(5, "b")),
			),
			wantOut:  "undefined",
			wantDiag: "Line 2, type violation\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, diag, _ := runProgram(t, tt.program...)
			if out != tt.wantOut {
				t.Errorf("output = %q, want %q", out, tt.wantOut)
			}
			if diag != tt.wantDiag {
				t.Errorf("diagnostics = %q, want %q", diag, tt.wantDiag)
			}
		})
	}
}
