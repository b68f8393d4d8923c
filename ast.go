// ast.go
//
// Expr and Stmt are Go interfaces with exactly the variants spec §3 names,
// each a concrete struct. There is no accept/visit machinery: the
// interpreter and any other consumer switches on the concrete type, which
// is what pattern matching on a tagged union looks like in Go (spec §9's
// "visitor pattern" design note). Nodes are built once by the parser and
// never mutated afterward; the interpreter only reads them.
package oxente

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// LiteralExpr wraps a constant Value produced directly by the scanner
// (numbers, strings, true/false/nil).
type LiteralExpr struct {
	Value Value
}

// UnaryExpr is a prefix operator (`-x`, `!x`). Op is retained so runtime
// errors can be reported at the operator's source line.
type UnaryExpr struct {
	Op    Token
	Right Expr
}

// BinaryExpr is an infix operator, including the comma operator.
type BinaryExpr struct {
	Left  Expr
	Op    Token
	Right Expr
}

// GroupingExpr is a parenthesized expression, kept as its own node (rather
// than collapsed away) so parenthesization is visible to anything that
// walks the tree, such as a canonical printer.
type GroupingExpr struct {
	Inner Expr
}

// TernaryExpr is `cond ? then : else`.
type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

// VariableExpr reads a name from the environment chain.
type VariableExpr struct {
	Name Token
}

// AssignExpr assigns Value to the variable named by Name and evaluates to
// the assigned value.
type AssignExpr struct {
	Name  Token
	Value Expr
}

// CallExpr applies Callee to Args. Paren is the closing ")" token, the
// source location blamed for arity and not-callable errors.
type CallExpr struct {
	Callee Expr
	Paren  Token
	Args   []Expr
}

func (LiteralExpr) exprNode()  {}
func (UnaryExpr) exprNode()    {}
func (BinaryExpr) exprNode()   {}
func (GroupingExpr) exprNode() {}
func (TernaryExpr) exprNode()  {}
func (VariableExpr) exprNode() {}
func (AssignExpr) exprNode()   {}
func (CallExpr) exprNode()     {}

// ExpressionStmt evaluates Expr and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates Expr and writes its stringified form followed by a
// newline to the interpreter's standard output.
type PrintStmt struct {
	Expr Expr
}

// VarStmt binds Name in the current environment. Initializer is nil when
// the declaration has no `= expr` clause, in which case the binding
// becomes Nil.
type VarStmt struct {
	Name        Token
	Initializer Expr
}

// BlockStmt executes Stmts in a fresh child environment.
type BlockStmt struct {
	Stmts []Stmt
}

// IfStmt executes Then or Else (Else may be nil) depending on Cond's
// truthiness.
type IfStmt struct {
	Cond Expr
	Then Stmt
	Else Stmt
}

// WhileStmt repeats Body while Cond is truthy. It is also the target a
// BreakStmt unwinds to, and the desugared form a `for` loop compiles into.
type WhileStmt struct {
	Cond Expr
	Body Stmt
}

// BreakStmt transfers control out of the nearest enclosing WhileStmt.
type BreakStmt struct {
	Keyword Token
}

// FunctionStmt declares a named function: it constructs a closure over the
// environment active at the point of declaration and binds it to Name.
type FunctionStmt struct {
	Name   Token
	Params []Token
	Body   []Stmt
}

// ReturnStmt transfers Value (Nil if Value is nil) out of the nearest
// enclosing function call.
type ReturnStmt struct {
	Keyword Token
	Value   Expr
}

func (ExpressionStmt) stmtNode() {}
func (PrintStmt) stmtNode()      {}
func (VarStmt) stmtNode()        {}
func (BlockStmt) stmtNode()      {}
func (IfStmt) stmtNode()         {}
func (WhileStmt) stmtNode()      {}
func (BreakStmt) stmtNode()      {}
func (FunctionStmt) stmtNode()   {}
func (ReturnStmt) stmtNode()     {}
