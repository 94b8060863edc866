package qom

// InNode represents an IN or NOT IN set predicate over scalar values.
type InNode struct {
	Combinable
	Expr   Node
	Vals   []Node
	Negate bool
}

func (n *InNode) Accept(v Visitor) string { return v.VisitIn(n) }

// BetweenNode represents a [NOT] BETWEEN [SYMMETRIC] range predicate.
// Symmetric ranges hold for either ordering of the bounds; dialects without
// native BETWEEN SYMMETRIC render the two-sided expansion.
type BetweenNode struct {
	Combinable
	Expr      Node
	Low       Node
	High      Node
	Negate    bool
	Symmetric bool
}

func (n *BetweenNode) Accept(v Visitor) string { return v.VisitBetween(n) }
