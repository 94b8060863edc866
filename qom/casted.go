package qom

// CastedNode represents a typed value that knows its SQL type.
// Used for type-aware rendering (e.g., ensuring correct casting).
type CastedNode struct {
	Predications
	Arithmetics
	Combinable
	Value any
	Type  DataType
}

func (n *CastedNode) Accept(v Visitor) string { return v.VisitCasted(n) }

// NewCasted creates a CastedNode with properly initialised embedded structs.
func NewCasted(value any, t DataType) *CastedNode {
	n := &CastedNode{Value: value, Type: t}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}
