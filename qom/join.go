package qom

// JoinType represents the type of SQL JOIN.
type JoinType int

const (
	InnerJoin JoinType = iota
	LeftOuterJoin
	RightOuterJoin
	FullOuterJoin
	CrossJoin
	StringJoin // raw SQL join fragment
)

// JoinNode represents a SQL JOIN clause.
type JoinNode struct {
	Left    Node     // source table
	Right   Node     // target table or subquery
	Type    JoinType // join type
	On      Node     // join condition (nil for CROSS JOIN)
	Lateral bool     // LATERAL modifier (PostgreSQL)
}

func (n *JoinNode) Accept(v Visitor) string { return v.VisitJoin(n) }
