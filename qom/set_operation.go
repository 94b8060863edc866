package qom

// SetOpType represents the type of set operation.
type SetOpType int

const (
	Union SetOpType = iota
	UnionAll
	Intersect
	IntersectAll
	Except
	ExceptAll
)

// SetOperationNode represents a set operation between two queries.
type SetOperationNode struct {
	Left  Node
	Right Node
	Type  SetOpType
}

func (n *SetOperationNode) Accept(v Visitor) string { return v.VisitSetOperation(n) }
