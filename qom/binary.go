package qom

// ComparisonOp represents a binary comparison operator. The first six
// values double as row comparators.
type ComparisonOp int

const (
	OpEq ComparisonOp = iota
	OpNotEq
	OpGt
	OpGtEq
	OpLt
	OpLtEq
	OpLike
	OpNotLike
	OpRegexp
	OpNotRegexp
	OpDistinctFrom
	OpNotDistinctFrom
	OpCaseSensitiveEq
	OpCaseInsensitiveEq
)

// Ordered reports whether the operator is an ordering comparator
// (<, <=, >, >=).
func (op ComparisonOp) Ordered() bool {
	switch op {
	case OpGt, OpGtEq, OpLt, OpLtEq:
		return true
	}
	return false
}

// Strict returns the strict ordering comparator for op: OpLtEq becomes
// OpLt and OpGtEq becomes OpGt; strict operators are returned unchanged.
func (op ComparisonOp) Strict() ComparisonOp {
	switch op {
	case OpLtEq:
		return OpLt
	case OpGtEq:
		return OpGt
	}
	return op
}

// ComparisonNode represents a binary comparison: Left Op Right.
type ComparisonNode struct {
	Combinable
	Left  Node
	Right Node
	Op    ComparisonOp
}

func (n *ComparisonNode) Accept(v Visitor) string { return v.VisitComparison(n) }

// NewComparisonNode creates a ComparisonNode with properly initialised
// embedded structs.
func NewComparisonNode(left, right Node, op ComparisonOp) *ComparisonNode {
	n := &ComparisonNode{Left: left, Right: right, Op: op}
	n.self = n
	return n
}

// WithLeft returns a copy of the comparison with the left operand replaced.
func (n *ComparisonNode) WithLeft(left Node) *ComparisonNode {
	return NewComparisonNode(left, n.Right, n.Op)
}

// WithRight returns a copy of the comparison with the right operand replaced.
func (n *ComparisonNode) WithRight(right Node) *ComparisonNode {
	return NewComparisonNode(n.Left, right, n.Op)
}

// UnaryOp represents a unary postfix operator.
type UnaryOp int

const (
	OpIsNull UnaryOp = iota
	OpIsNotNull
)

// UnaryNode represents a unary predicate: Expr IS NULL / IS NOT NULL.
type UnaryNode struct {
	Combinable
	Expr Node
	Op   UnaryOp
}

func (n *UnaryNode) Accept(v Visitor) string { return v.VisitUnary(n) }
