package qom

// Combinable provides logical chaining methods to types that embed it.
// The self field must be set to the embedding node.
type Combinable struct {
	self Node
}

// And combines self with other. The NoCondition identity is eliminated:
// combining with it returns self unchanged.
func (c Combinable) And(other Node) Node {
	if other == nil || IsNoCondition(other) {
		return c.self
	}
	n := &AndNode{Left: c.self, Right: other}
	n.self = n
	return n
}

// Or combines self with other, wrapped in a GroupingNode for correct
// precedence. The NoCondition identity is eliminated.
func (c Combinable) Or(other Node) Node {
	if other == nil || IsNoCondition(other) {
		return c.self
	}
	or := &OrNode{Left: c.self, Right: other}
	or.self = or
	g := &GroupingNode{Expr: or}
	g.self = g
	return g
}

// Not creates a NotNode negating self.
func (c Combinable) Not() *NotNode {
	n := &NotNode{Expr: c.self}
	n.self = n
	return n
}
