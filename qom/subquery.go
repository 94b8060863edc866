package qom

// ExistsNode represents an EXISTS or NOT EXISTS subquery predicate.
type ExistsNode struct {
	Combinable
	Subquery Node
	Negated  bool
}

func (n *ExistsNode) Accept(v Visitor) string { return v.VisitExists(n) }

// Exists creates an EXISTS(subquery) node.
func Exists(subquery Node) *ExistsNode {
	n := &ExistsNode{Subquery: subquery}
	n.self = n
	return n
}

// NotExists creates a NOT EXISTS(subquery) node.
func NotExists(subquery Node) *ExistsNode {
	n := &ExistsNode{Subquery: subquery, Negated: true}
	n.self = n
	return n
}

// ScalarSubqueryNode wraps a single-column, single-row SELECT so it can be
// used wherever a scalar expression is expected.
type ScalarSubqueryNode struct {
	Predications
	Arithmetics
	Combinable
	Query *SelectCore
}

func (n *ScalarSubqueryNode) Accept(v Visitor) string { return v.VisitScalarSubquery(n) }

// ScalarSubquery wraps a SELECT as a scalar expression.
func ScalarSubquery(query *SelectCore) *ScalarSubqueryNode {
	n := &ScalarSubqueryNode{Query: query}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}
