package ast

// Functions returns every function definition in stmts, at any nesting
// depth, in source order.
func Functions(stmts []Statement) []*FunctionStatement {
	var out []*FunctionStatement
	Walk(stmts, func(s Statement) {
		if fs, ok := s.(*FunctionStatement); ok {
			out = append(out, fs)
		}
	})
	return out
}

// Walk calls fn for each statement in pre-order, descending into
// branches, loop bodies, function bodies and object initializers.
func Walk(stmts []Statement, fn func(Statement)) {
	for _, s := range stmts {
		fn(s)
		switch n := s.(type) {
		case *IfStatement:
			Walk(n.Consequence, fn)
			Walk(n.Alternative, fn)
		case *LoopStatement:
			Walk(n.Body, fn)
		case *FunctionStatement:
			Walk(n.Body, fn)
		case *DeclarationStatement:
			Walk(n.ObjectInit, fn)
		}
	}
}
