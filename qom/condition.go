package qom

// AndNode represents a logical AND between two conditions.
type AndNode struct {
	Combinable
	Left  Node
	Right Node
}

func (n *AndNode) Accept(v Visitor) string { return v.VisitAnd(n) }

// OrNode represents a logical OR between two conditions.
type OrNode struct {
	Combinable
	Left  Node
	Right Node
}

func (n *OrNode) Accept(v Visitor) string { return v.VisitOr(n) }

// NotNode represents a logical NOT of a condition.
type NotNode struct {
	Combinable
	Expr Node
}

func (n *NotNode) Accept(v Visitor) string { return v.VisitNot(n) }

// GroupingNode wraps an expression in parentheses for precedence control.
type GroupingNode struct {
	Combinable
	Expr Node
}

func (n *GroupingNode) Accept(v Visitor) string { return v.VisitGrouping(n) }

// BoolKind discriminates the identity conditions.
type BoolKind int

const (
	// KindNone is the "no condition" identity: it is eliminated during
	// AND/OR composition and dropped by clause writers, never rendered
	// as literal SQL.
	KindNone BoolKind = iota
	KindTrue
	KindFalse
)

// BoolNode is a constant Boolean condition: TRUE, FALSE, or the
// distinguished "no condition" identity element.
type BoolNode struct {
	Combinable
	Kind BoolKind
}

func (n *BoolNode) Accept(v Visitor) string { return v.VisitBool(n) }

// True returns the always-true condition.
func True() *BoolNode {
	n := &BoolNode{Kind: KindTrue}
	n.self = n
	return n
}

// False returns the always-false condition.
func False() *BoolNode {
	n := &BoolNode{Kind: KindFalse}
	n.self = n
	return n
}

// NoCondition returns the "no condition" identity element.
func NoCondition() *BoolNode {
	n := &BoolNode{Kind: KindNone}
	n.self = n
	return n
}

// IsNoCondition reports whether n is the "no condition" identity.
func IsNoCondition(n Node) bool {
	b, ok := n.(*BoolNode)
	return ok && b.Kind == KindNone
}

// AndAll combines conditions with AND, eliminating NoCondition operands.
// With no effective operands it returns NoCondition.
func AndAll(conds ...Node) Node {
	return combine(conds, func(l, r Node) Node {
		n := &AndNode{Left: l, Right: r}
		n.self = n
		return n
	})
}

// OrAll combines conditions with OR, eliminating NoCondition operands.
// With no effective operands it returns NoCondition.
func OrAll(conds ...Node) Node {
	return combine(conds, func(l, r Node) Node {
		n := &OrNode{Left: l, Right: r}
		n.self = n
		return n
	})
}

func combine(conds []Node, join func(l, r Node) Node) Node {
	var result Node
	for _, c := range conds {
		if c == nil || IsNoCondition(c) {
			continue
		}
		if result == nil {
			result = c
		} else {
			result = join(result, c)
		}
	}
	if result == nil {
		return NoCondition()
	}
	return result
}
