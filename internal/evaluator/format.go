package evaluator

import (
	"io"
	"strconv"

	"github.com/funvibe/miniscript/internal/ast"
)

const undefinedText = "undefined"

func (e *Evaluator) execWrite(node *ast.WriteStatement, env *Environment, flag *Flag) Outcome {
	for _, arg := range node.Arguments {
		var argFlag Flag
		v, err := e.Eval(arg, env, &argFlag)
		if err != nil {
			v = Undefined()
		}
		e.writeValue(v, node.Line, flag)
	}
	return completed
}

// writeValue renders one document.write argument. Objects and arrays are a
// type violation and still print as undefined.
func (e *Evaluator) writeValue(v Symbol, line int, flag *Flag) {
	switch v.Kind {
	case KindObject, KindArray:
		e.Reporter.Report(flag, TypeError, line, "")
		io.WriteString(e.Out, undefinedText)
	case KindFunction:
		e.Reporter.Report(flag, ParameterError, line, "")
	default:
		io.WriteString(e.Out, Render(v))
	}
}

// Render returns the text document.write prints for a printable value.
func Render(v Symbol) string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindLineBreak:
		return "\n"
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	}
	return undefinedText
}
