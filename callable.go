// callable.go
//
// Callable is the uniform call interface spec §4.5 defines: arity plus a
// call operation. Exactly two implementers exist — the built-in `clock`
// native and a user-defined Function — matching the teacher's own
// NativeImpl/Fun split (runtime.go, interpreter.go) reduced to Oxente's
// much smaller surface: no currying, no declared parameter/return types,
// no type checking on call (spec §1's non-goals rule out a type checker
// entirely).
package oxente

import (
	"fmt"
	"time"
)

// Callable is any Oxente value that can appear on the left of a call
// expression.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []Value) (Value, error)
	String() string
}

// nativeClock is the interpreter's one standard-library native: a
// zero-arity function returning seconds since an arbitrary epoch as a
// float64, per spec §4.4.
type nativeClock struct{}

func (nativeClock) Arity() int { return 0 }

func (nativeClock) Call(interp *Interpreter, args []Value) (Value, error) {
	return Value(float64(time.Now().UnixNano()) / float64(time.Second)), nil
}

func (nativeClock) String() string { return "<native fn>" }

// Function is a user-defined function value: its declaration plus the
// environment captured at the point of declaration. That captured
// environment, not the caller's environment, is the closure.
type Function struct {
	Declaration *FunctionStmt
	Closure     *Environment
}

func (f *Function) Arity() int { return len(f.Declaration.Params) }

// Call binds each parameter to the corresponding argument in a fresh
// environment whose parent is the closure (not the call site), executes
// the body in it, and returns Nil on normal completion or the value
// carried by a returnSignal that reached this call boundary. A breakSignal
// escaping all the way out to a function call is a runtime error (spec §9:
// "break escaping a function" is undefined by the language spec; this
// interpreter treats it as a runtime error, its recommended resolution).
func (f *Function) Call(interp *Interpreter, args []Value) (result Value, err error) {
	env := NewEnvironment(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch sig := r.(type) {
		case returnSignal:
			result, err = sig.value, nil
		case breakSignal:
			err = &RuntimeError{Token: sig.keyword, Message: "Cannot break outside of a loop."}
		default:
			panic(r)
		}
	}()

	interp.executeBlock(f.Declaration.Body, env)
	return Nil, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}
