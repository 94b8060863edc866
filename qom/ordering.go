package qom

// OrderDirection represents ASC or DESC ordering.
type OrderDirection int

const (
	Asc OrderDirection = iota
	Desc
)

// NullsDirection controls NULLS FIRST/LAST positioning.
type NullsDirection int

const (
	NullsDefault NullsDirection = iota
	NullsFirst
	NullsLast
)

// OrderingNode represents an ORDER BY expression with a direction.
type OrderingNode struct {
	Combinable
	Expr      Node
	Direction OrderDirection
	Nulls     NullsDirection
}

func (n *OrderingNode) Accept(v Visitor) string { return v.VisitOrdering(n) }

// WithNulls returns a copy of the ordering with the NULLS position set.
func (n *OrderingNode) WithNulls(d NullsDirection) *OrderingNode {
	out := &OrderingNode{Expr: n.Expr, Direction: n.Direction, Nulls: d}
	out.self = out
	return out
}
