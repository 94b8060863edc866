package qom

// InfixOp identifies the binary math/bitwise/concat operator.
type InfixOp int

const (
	OpPlus InfixOp = iota
	OpMinus
	OpMultiply
	OpDivide
	OpBitwiseAnd
	OpBitwiseOr
	OpBitwiseXor
	OpShiftLeft
	OpShiftRight
	OpConcat
)

// InfixNode represents a binary math, bitwise, or concat expression.
type InfixNode struct {
	Predications
	Arithmetics
	Combinable
	Left  Node
	Right Node
	Op    InfixOp
}

func (n *InfixNode) Accept(v Visitor) string { return v.VisitInfix(n) }

// UnaryMathOp identifies the unary math operator.
type UnaryMathOp int

const (
	OpBitwiseNot UnaryMathOp = iota
)

// UnaryMathNode represents a unary math expression (e.g., bitwise NOT).
type UnaryMathNode struct {
	Predications
	Arithmetics
	Combinable
	Expr Node
	Op   UnaryMathOp
}

func (n *UnaryMathNode) Accept(v Visitor) string { return v.VisitUnaryMath(n) }

// NewInfixNode creates an InfixNode with properly initialised embedded structs.
func NewInfixNode(left, right Node, op InfixOp) *InfixNode {
	n := &InfixNode{Left: left, Right: right, Op: op}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

// NewUnaryMathNode creates a UnaryMathNode with properly initialised embedded structs.
func NewUnaryMathNode(expr Node, op UnaryMathOp) *UnaryMathNode {
	n := &UnaryMathNode{Expr: expr, Op: op}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

// Arithmetics provides math and bitwise methods to types that embed it.
// The self field must be set to the embedding node.
type Arithmetics struct {
	self Node
}

func (a Arithmetics) newInfix(op InfixOp, val any) *InfixNode {
	return NewInfixNode(a.self, Literal(val), op)
}

func (a Arithmetics) Plus(val any) *InfixNode       { return a.newInfix(OpPlus, val) }
func (a Arithmetics) Minus(val any) *InfixNode      { return a.newInfix(OpMinus, val) }
func (a Arithmetics) Multiply(val any) *InfixNode   { return a.newInfix(OpMultiply, val) }
func (a Arithmetics) Divide(val any) *InfixNode     { return a.newInfix(OpDivide, val) }
func (a Arithmetics) BitwiseAnd(val any) *InfixNode { return a.newInfix(OpBitwiseAnd, val) }
func (a Arithmetics) BitwiseOr(val any) *InfixNode  { return a.newInfix(OpBitwiseOr, val) }
func (a Arithmetics) BitwiseXor(val any) *InfixNode { return a.newInfix(OpBitwiseXor, val) }
func (a Arithmetics) ShiftLeft(val any) *InfixNode  { return a.newInfix(OpShiftLeft, val) }
func (a Arithmetics) ShiftRight(val any) *InfixNode { return a.newInfix(OpShiftRight, val) }
func (a Arithmetics) Concat(val any) *InfixNode     { return a.newInfix(OpConcat, val) }

func (a Arithmetics) BitwiseNot() *UnaryMathNode {
	return NewUnaryMathNode(a.self, OpBitwiseNot)
}
