package qom

// Predications provides comparison methods to types that embed it.
// The self field must be set to the embedding node so that comparisons
// reference the correct left-hand side.
type Predications struct {
	self Node
}

// Eq creates an equality comparison: self = val.
func (p Predications) Eq(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpEq)
}

// NotEq creates an inequality comparison: self <> val.
func (p Predications) NotEq(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpNotEq)
}

// Gt creates a greater-than comparison: self > val.
func (p Predications) Gt(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpGt)
}

// GtEq creates a greater-than-or-equal comparison: self >= val.
func (p Predications) GtEq(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpGtEq)
}

// Lt creates a less-than comparison: self < val.
func (p Predications) Lt(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpLt)
}

// LtEq creates a less-than-or-equal comparison: self <= val.
func (p Predications) LtEq(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpLtEq)
}

// Like creates a LIKE comparison: self LIKE val.
func (p Predications) Like(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpLike)
}

// NotLike creates a NOT LIKE comparison: self NOT LIKE val.
func (p Predications) NotLike(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpNotLike)
}

// In creates an IN predicate: self IN (vals...).
// An empty val list yields the Boolean-false identity condition.
func (p Predications) In(vals ...any) Node {
	if len(vals) == 0 {
		return False()
	}
	wrapped := make([]Node, len(vals))
	for i, v := range vals {
		wrapped[i] = Literal(v)
	}
	n := &InNode{Expr: p.self, Vals: wrapped}
	n.self = n
	return n
}

// NotIn creates a NOT IN predicate: self NOT IN (vals...).
// An empty val list yields the Boolean-true identity condition.
func (p Predications) NotIn(vals ...any) Node {
	if len(vals) == 0 {
		return True()
	}
	wrapped := make([]Node, len(vals))
	for i, v := range vals {
		wrapped[i] = Literal(v)
	}
	n := &InNode{Expr: p.self, Vals: wrapped, Negate: true}
	n.self = n
	return n
}

// Between creates a BETWEEN predicate: self BETWEEN low AND high.
func (p Predications) Between(low, high any) *BetweenNode {
	n := &BetweenNode{Expr: p.self, Low: Literal(low), High: Literal(high)}
	n.self = n
	return n
}

// NotBetween creates a NOT BETWEEN predicate.
func (p Predications) NotBetween(low, high any) *BetweenNode {
	n := &BetweenNode{Expr: p.self, Low: Literal(low), High: Literal(high), Negate: true}
	n.self = n
	return n
}

// BetweenSymmetric creates a BETWEEN SYMMETRIC predicate, true for either
// ordering of the bounds. Dialects without native support render the
// two-sided BETWEEN expansion.
func (p Predications) BetweenSymmetric(low, high any) *BetweenNode {
	n := &BetweenNode{Expr: p.self, Low: Literal(low), High: Literal(high), Symmetric: true}
	n.self = n
	return n
}

// NotBetweenSymmetric creates a NOT BETWEEN SYMMETRIC predicate.
func (p Predications) NotBetweenSymmetric(low, high any) *BetweenNode {
	n := &BetweenNode{Expr: p.self, Low: Literal(low), High: Literal(high), Symmetric: true, Negate: true}
	n.self = n
	return n
}

// MatchesRegexp creates a regexp match: self ~ val.
func (p Predications) MatchesRegexp(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpRegexp)
}

// DoesNotMatchRegexp creates a negated regexp match: self !~ val.
func (p Predications) DoesNotMatchRegexp(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpNotRegexp)
}

// IsDistinctFrom creates a NULL-safe inequality comparison.
func (p Predications) IsDistinctFrom(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpDistinctFrom)
}

// IsNotDistinctFrom creates a NULL-safe equality comparison.
func (p Predications) IsNotDistinctFrom(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpNotDistinctFrom)
}

// CaseSensitiveEq creates a case-sensitive equality comparison.
func (p Predications) CaseSensitiveEq(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpCaseSensitiveEq)
}

// CaseInsensitiveEq creates a case-insensitive equality comparison.
func (p Predications) CaseInsensitiveEq(val any) *ComparisonNode {
	return NewComparisonNode(p.self, Literal(val), OpCaseInsensitiveEq)
}

// IsNull creates an IS NULL predicate.
func (p Predications) IsNull() *UnaryNode {
	n := &UnaryNode{Expr: p.self, Op: OpIsNull}
	n.self = n
	return n
}

// IsNotNull creates an IS NOT NULL predicate.
func (p Predications) IsNotNull() *UnaryNode {
	n := &UnaryNode{Expr: p.self, Op: OpIsNotNull}
	n.self = n
	return n
}

// EqAny returns self = v1 OR self = v2 OR ... wrapped in a GroupingNode.
func (p Predications) EqAny(vals ...any) *GroupingNode {
	return p.anyComparison(OpEq, vals)
}

// MatchesAny returns self LIKE p1 OR self LIKE p2 OR ... wrapped in a
// GroupingNode.
func (p Predications) MatchesAny(vals ...any) *GroupingNode {
	return p.anyComparison(OpLike, vals)
}

func (p Predications) anyComparison(op ComparisonOp, vals []any) *GroupingNode {
	nds := make([]Node, len(vals))
	for i, v := range vals {
		nds[i] = NewComparisonNode(p.self, Literal(v), op)
	}
	return groupOr(nds)
}

// groupOr chains nodes with OR and wraps them in a GroupingNode.
// Returns nil if nds is empty.
func groupOr(nds []Node) *GroupingNode {
	if len(nds) == 0 {
		return nil
	}
	result := nds[0]
	for i := 1; i < len(nds); i++ {
		or := &OrNode{Left: result, Right: nds[i]}
		or.self = or
		result = or
	}
	g := &GroupingNode{Expr: result}
	g.self = g
	return g
}

// chainAnd chains nodes with AND. Returns nil if nds is empty.
func chainAnd(nds []Node) Node {
	if len(nds) == 0 {
		return nil
	}
	result := nds[0]
	for i := 1; i < len(nds); i++ {
		and := &AndNode{Left: result, Right: nds[i]}
		and.self = and
		result = and
	}
	return result
}

// As creates an AliasNode wrapping self with the given alias name.
func (p Predications) As(name string) *AliasNode {
	return NewAliasNode(p.self, name)
}

// Asc creates an ascending ordering node.
func (p Predications) Asc() *OrderingNode {
	n := &OrderingNode{Expr: p.self, Direction: Asc}
	n.self = n
	return n
}

// Desc creates a descending ordering node.
func (p Predications) Desc() *OrderingNode {
	n := &OrderingNode{Expr: p.self, Direction: Desc}
	n.self = n
	return n
}
