package qom

// RowNode represents a row value expression: an ordered, fixed-degree tuple
// of expressions, comparable as a unit. Degree is fixed at construction;
// comparing rows of unequal degree is a DegreeMismatchError, surfaced at
// build time through Compare and otherwise at render time.
type RowNode struct {
	Combinable
	Exprs []Node
}

// Row creates a row value expression. The signature enforces degree >= 1.
func Row(first Node, rest ...Node) *RowNode {
	n := &RowNode{Exprs: append([]Node{first}, rest...)}
	n.self = n
	return n
}

// RowOf creates a row value expression from a slice, failing with an
// InvalidArityError for an empty slice.
func RowOf(exprs []Node) (*RowNode, error) {
	if len(exprs) == 0 {
		return nil, &InvalidArityError{Construct: "row value expression", Got: 0, Want: ">= 1"}
	}
	n := &RowNode{Exprs: exprs}
	n.self = n
	return n, nil
}

// RowValues creates a row of literal values.
func RowValues(first any, rest ...any) *RowNode {
	exprs := make([]Node, 0, 1+len(rest))
	exprs = append(exprs, Literal(first))
	for _, v := range rest {
		exprs = append(exprs, Literal(v))
	}
	n := &RowNode{Exprs: exprs}
	n.self = n
	return n
}

func (n *RowNode) Accept(v Visitor) string { return v.VisitRow(n) }

// Degree returns the number of components in the row.
func (n *RowNode) Degree() int { return len(n.Exprs) }

// WithExpr returns a copy of the row with component i replaced.
func (n *RowNode) WithExpr(i int, e Node) (*RowNode, error) {
	if i < 0 || i >= len(n.Exprs) {
		return nil, &InvalidArityError{Construct: "row value expression", Got: i, Want: "a valid component index"}
	}
	exprs := make([]Node, len(n.Exprs))
	copy(exprs, n.Exprs)
	exprs[i] = e
	out := &RowNode{Exprs: exprs}
	out.self = out
	return out, nil
}

// Compare builds a row comparison, failing eagerly on degree mismatch.
func (n *RowNode) Compare(op ComparisonOp, other *RowNode) (*RowComparisonNode, error) {
	if n.Degree() != other.Degree() {
		return nil, &DegreeMismatchError{Left: n.Degree(), Right: other.Degree()}
	}
	return newRowComparison(n, other, op), nil
}

func newRowComparison(row *RowNode, right Node, op ComparisonOp) *RowComparisonNode {
	c := &RowComparisonNode{Row: row, Right: right, Op: op}
	c.self = c
	return c
}

// Eq creates row = other. Degree mismatches surface at render time;
// use Compare for an eager check.
func (n *RowNode) Eq(other *RowNode) *RowComparisonNode {
	return newRowComparison(n, other, OpEq)
}

// NotEq creates row <> other.
func (n *RowNode) NotEq(other *RowNode) *RowComparisonNode {
	return newRowComparison(n, other, OpNotEq)
}

// Lt creates the lexicographic comparison row < other.
func (n *RowNode) Lt(other *RowNode) *RowComparisonNode {
	return newRowComparison(n, other, OpLt)
}

// LtEq creates the lexicographic comparison row <= other.
func (n *RowNode) LtEq(other *RowNode) *RowComparisonNode {
	return newRowComparison(n, other, OpLtEq)
}

// Gt creates the lexicographic comparison row > other.
func (n *RowNode) Gt(other *RowNode) *RowComparisonNode {
	return newRowComparison(n, other, OpGt)
}

// GtEq creates the lexicographic comparison row >= other.
func (n *RowNode) GtEq(other *RowNode) *RowComparisonNode {
	return newRowComparison(n, other, OpGtEq)
}

// IsDistinctFrom creates the NULL-safe inequality row IS DISTINCT FROM other.
func (n *RowNode) IsDistinctFrom(other *RowNode) *RowComparisonNode {
	return newRowComparison(n, other, OpDistinctFrom)
}

// IsNotDistinctFrom creates the NULL-safe equality row IS NOT DISTINCT FROM
// other.
func (n *RowNode) IsNotDistinctFrom(other *RowNode) *RowComparisonNode {
	return newRowComparison(n, other, OpNotDistinctFrom)
}

// EqSelect compares the row against a subquery of matching projected degree.
func (n *RowNode) EqSelect(sub *SelectCore) *RowComparisonNode {
	return newRowComparison(n, sub, OpEq)
}

// In creates row IN (candidate rows). An empty candidate list yields the
// Boolean-false identity condition; NOT IN over an empty list yields true.
func (n *RowNode) In(rows ...*RowNode) Node {
	if len(rows) == 0 {
		return False()
	}
	c := &RowInNode{Row: n, Rows: rows}
	c.self = c
	return c
}

// NotIn creates row NOT IN (candidate rows).
func (n *RowNode) NotIn(rows ...*RowNode) Node {
	if len(rows) == 0 {
		return True()
	}
	c := &RowInNode{Row: n, Rows: rows, Negate: true}
	c.self = c
	return c
}

// InSelect creates row IN (subquery). Subquery predicates always render
// natively, never expanded.
func (n *RowNode) InSelect(sub *SelectCore) *RowInNode {
	c := &RowInNode{Row: n, Subquery: sub}
	c.self = c
	return c
}

// NotInSelect creates row NOT IN (subquery).
func (n *RowNode) NotInSelect(sub *SelectCore) *RowInNode {
	c := &RowInNode{Row: n, Subquery: sub, Negate: true}
	c.self = c
	return c
}

// Between creates (row >= low) AND (row <= high).
func (n *RowNode) Between(low, high *RowNode) *RowBetweenNode {
	c := &RowBetweenNode{Row: n, Low: low, High: high}
	c.self = c
	return c
}

// NotBetween negates Between.
func (n *RowNode) NotBetween(low, high *RowNode) *RowBetweenNode {
	c := &RowBetweenNode{Row: n, Low: low, High: high, Negate: true}
	c.self = c
	return c
}

// BetweenSymmetric creates a range predicate holding for either ordering of
// the bounds: (row BETWEEN low AND high) OR (row BETWEEN high AND low).
func (n *RowNode) BetweenSymmetric(low, high *RowNode) *RowBetweenNode {
	c := &RowBetweenNode{Row: n, Low: low, High: high, Symmetric: true}
	c.self = c
	return c
}

// NotBetweenSymmetric negates BetweenSymmetric.
func (n *RowNode) NotBetweenSymmetric(low, high *RowNode) *RowBetweenNode {
	c := &RowBetweenNode{Row: n, Low: low, High: high, Symmetric: true, Negate: true}
	c.self = c
	return c
}

// RowComparisonNode compares a row against another row or a subquery.
// When the dialect lacks native row value expressions, rendering lowers the
// comparison to its Boolean expansion.
type RowComparisonNode struct {
	Combinable
	Row   *RowNode
	Right Node // *RowNode or *SelectCore
	Op    ComparisonOp
}

func (n *RowComparisonNode) Accept(v Visitor) string { return v.VisitRowComparison(n) }

// RowInNode is a row membership predicate over a literal row list or a
// subquery. Exactly one of Rows and Subquery is set.
type RowInNode struct {
	Combinable
	Row      *RowNode
	Rows     []*RowNode
	Subquery *SelectCore
	Negate   bool
}

func (n *RowInNode) Accept(v Visitor) string { return v.VisitRowIn(n) }

// RowBetweenNode is a row range predicate, always lowered to the two
// row comparisons (row >= low) AND (row <= high).
type RowBetweenNode struct {
	Combinable
	Row       *RowNode
	Low       *RowNode
	High      *RowNode
	Negate    bool
	Symmetric bool
}

func (n *RowBetweenNode) Accept(v Visitor) string { return v.VisitRowBetween(n) }
