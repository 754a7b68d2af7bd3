package evaluator

import (
	"strconv"

	"github.com/funvibe/miniscript/internal/ast"
)

// Kind tags the active payload of a Symbol.
type Kind int

const (
	KindUndefined Kind = iota
	KindString
	KindInteger
	KindLineBreak
	KindBoolean
	KindObject
	KindArray
	KindFunction
)

var kindNames = [...]string{
	KindUndefined: "UNDEFINED",
	KindString:    "STRING",
	KindInteger:   "INTEGER",
	KindLineBreak: "BRTAG",
	KindBoolean:   "BOOLEAN",
	KindObject:    "OBJECT",
	KindArray:     "ARRAY",
	KindFunction:  "FUNCTION",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// truthy reports whether values of this kind have a truthiness.
func (k Kind) truthy() bool {
	return k == KindBoolean || k == KindInteger || k == KindString
}

// structured reports whether the kind needs member or index syntax to be read.
func (k Kind) structured() bool {
	return k == KindObject || k == KindArray
}

// Symbol is the runtime value stored in an Environment and produced by
// expressions. Only the payload field selected by Kind is meaningful, and
// only when Assigned is set.
type Symbol struct {
	Kind     Kind
	Declared bool
	Assigned bool

	Str      string
	Int      int64
	Bool     bool
	Object   *Environment
	Array    *Array
	Function *ast.FunctionStatement
}

// CopyFrom copies kind and payload from src, leaving the flags alone.
// Object and Array payloads are handles: the copy aliases the same storage.
func (s *Symbol) CopyFrom(src Symbol) {
	s.Kind = src.Kind
	s.Str = src.Str
	s.Int = src.Int
	s.Bool = src.Bool
	s.Object = src.Object
	s.Array = src.Array
	s.Function = src.Function
}

// Inspect renders the value for logs and test failures.
func (s Symbol) Inspect() string {
	switch s.Kind {
	case KindString:
		return strconv.Quote(s.Str)
	case KindInteger:
		return strconv.FormatInt(s.Int, 10)
	case KindBoolean:
		return strconv.FormatBool(s.Bool)
	case KindLineBreak:
		return "<br />"
	case KindObject:
		return "object(" + strconv.Itoa(s.Object.Len()) + ")"
	case KindArray:
		return "array(" + strconv.Itoa(s.Array.Len()) + ")"
	case KindFunction:
		if s.Function != nil {
			return "function " + s.Function.Name
		}
		return "function"
	}
	return "undefined"
}

func Undefined() Symbol { return Symbol{Kind: KindUndefined} }

func Integer(v int64) Symbol { return Symbol{Kind: KindInteger, Int: v, Assigned: true} }

func String(v string) Symbol { return Symbol{Kind: KindString, Str: v, Assigned: true} }

func Boolean(v bool) Symbol { return Symbol{Kind: KindBoolean, Bool: v, Assigned: true} }

func LineBreak() Symbol { return Symbol{Kind: KindLineBreak, Assigned: true} }

// MaxArrayLength bounds array growth. Indexing at or past it is a type
// violation instead of an allocation.
const MaxArrayLength = 1 << 24

// Array is a growable sequence of slots. It never shrinks.
type Array struct {
	elements []*Symbol
}

func NewArray() *Array {
	return &Array{}
}

func (a *Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.elements)
}

func (a *Array) Append(s *Symbol) {
	a.elements = append(a.elements, s)
}

// At returns the slot at i or nil when i is out of range.
func (a *Array) At(i int) *Symbol {
	if i < 0 || i >= len(a.elements) {
		return nil
	}
	return a.elements[i]
}

// Slot returns the slot at i, first growing the array with undefined,
// unassigned slots when i is past the end. i must be in [0, MaxArrayLength).
func (a *Array) Slot(i int) *Symbol {
	for len(a.elements) <= i {
		a.elements = append(a.elements, &Symbol{})
	}
	return a.elements[i]
}
