// value.go
//
// Value is the runtime's tagged union: exactly the five variants spec §3
// names (Nil, Boolean, Number, String, Callable), represented as `any` and
// discriminated by a type switch everywhere the interpreter operates on a
// value. There is no sixth variant and no host-side coercion: every
// operation in interpreter.go discriminates explicitly and fails with a
// *RuntimeError on a tag it doesn't expect, per spec §9's "dynamic typing"
// note.
//
// Go's `nil` interface value is not used to represent Oxente's Nil; Nil is
// the distinguished singleton below, so that an uninitialized Value (the
// Go zero value of `any`) is never silently mistaken for a well-formed
// Oxente nil during development. A Var declared without an initializer is
// explicitly assigned Nil, never left as a bare Go nil.
package oxente

import (
	"fmt"
	"strconv"
)

// Value is any one of Oxente's five runtime variants:
//
//	Nil      -> the nilValue singleton
//	Boolean  -> bool
//	Number   -> float64
//	String   -> string
//	Callable -> Callable
type Value any

// nilType is the unexported type of Oxente's Nil singleton, distinct from
// Go's untyped nil so type switches can tell "no Oxente value" (a bug) from
// "the Oxente value Nil" (well-formed) apart during development.
type nilType struct{}

// Nil is the singleton Oxente nil value.
var Nil Value = nilType{}

// isTruthy implements spec §3's truthiness invariant: Nil and false are
// falsey; every other value, including 0 and "", is truthy.
func isTruthy(v Value) bool {
	switch x := v.(type) {
	case nilType:
		return false
	case bool:
		return x
	default:
		return true
	}
}

// valuesEqual implements spec §3's equality invariant: Nil equals only
// Nil; across distinct kinds values are unequal; within a kind equality is
// structural (numbers by value, strings by content, booleans by bit,
// callables by identity).
func valuesEqual(a, b Value) bool {
	_, aNil := a.(nilType)
	_, bNil := b.(nilType)
	if aNil || bNil {
		return aNil && bNil
	}
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case Callable:
		bv, ok := b.(Callable)
		return ok && av == bv
	default:
		return false
	}
}

// stringify renders v the way the `print` statement and string
// concatenation do: integral numbers print without a trailing ".0", and a
// Callable prints as "<native fn>" or "<fn NAME>".
func stringify(v Value) string {
	switch x := v.(type) {
	case nilType:
		return "nil"
	case bool:
		if x {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(x)
	case string:
		return x
	case Callable:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}

// formatNumber renders f in decimal. Go's shortest round-tripping 'f'
// format already omits the fractional part for integral values (3 prints
// as "3", never "3.0"), satisfying spec §4.4's stringification rule.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
