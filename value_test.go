package oxente

import "testing"

func Test_IsTruthy(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil is falsey", Nil, false},
		{"false is falsey", false, false},
		{"true is truthy", true, true},
		{"zero is truthy", 0.0, true},
		{"empty string is truthy", "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := isTruthy(c.v); got != c.want {
				t.Errorf("isTruthy(%v) = %v, want %v", c.v, got, c.want)
			}
		})
	}
}

func Test_ValuesEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Value
		want bool
	}{
		{"nil equals nil", Nil, Nil, true},
		{"nil does not equal false", Nil, false, false},
		{"equal numbers", 1.0, 1.0, true},
		{"unequal numbers", 1.0, 2.0, false},
		{"equal strings", "a", "a", true},
		{"unequal strings", "a", "b", false},
		{"number never equals string", 1.0, "1", false},
		{"equal bools", true, true, true},
		{"unequal bools", true, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := valuesEqual(c.a, c.b); got != c.want {
				t.Errorf("valuesEqual(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
			}
		})
	}
}

func Test_ValuesEqual_CallablesByIdentity(t *testing.T) {
	fn1 := &Function{Declaration: &FunctionStmt{Name: Token{Lexeme: "f"}}}
	fn2 := &Function{Declaration: &FunctionStmt{Name: Token{Lexeme: "f"}}}
	if !valuesEqual(Value(fn1), Value(fn1)) {
		t.Errorf("a callable should equal itself")
	}
	if valuesEqual(Value(fn1), Value(fn2)) {
		t.Errorf("distinct callables with identical declarations should not be equal")
	}
}

func Test_Stringify(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", Nil, "nil"},
		{"true", true, "true"},
		{"false", false, "false"},
		{"integral number has no trailing dot", 3.0, "3"},
		{"fractional number", 3.5, "3.5"},
		{"negative integral number", -2.0, "-2"},
		{"string", "hi", "hi"},
		{"native fn", nativeClock{}, "<native fn>"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := stringify(c.v); got != c.want {
				t.Errorf("stringify(%v) = %q, want %q", c.v, got, c.want)
			}
		})
	}
}
