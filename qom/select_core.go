package qom

// LockMode represents row-level locking for SELECT queries.
type LockMode int

const (
	NoLock         LockMode = iota
	ForUpdate               // FOR UPDATE
	ForShare                // FOR SHARE
	ForNoKeyUpdate          // FOR NO KEY UPDATE
	ForKeyShare             // FOR KEY SHARE
)

// String returns the SQL keyword for this lock mode.
func (m LockMode) String() string {
	switch m {
	case ForUpdate:
		return "FOR UPDATE"
	case ForShare:
		return "FOR SHARE"
	case ForNoKeyUpdate:
		return "FOR NO KEY UPDATE"
	case ForKeyShare:
		return "FOR KEY SHARE"
	default:
		return ""
	}
}

// SelectCore represents the data container for a SELECT statement.
// The fluent API for building queries lives in the managers package.
type SelectCore struct {
	From        Node
	Projections []Node
	Wheres      []Node
	Joins       []*JoinNode
	Groups      []Node        // GROUP BY expressions
	Havings     []Node        // HAVING conditions
	Windows     []*WindowSpec // named WINDOW definitions
	Orders      []Node        // OrderingNode values
	Limit       Node          // nil or LiteralNode
	Offset      Node          // nil or LiteralNode
	Distinct    bool
	DistinctOn  []Node     // DISTINCT ON columns (PostgreSQL)
	Lock        LockMode   // FOR UPDATE/SHARE
	SkipLocked  bool       // SKIP LOCKED
	Comment     string     // query comment /* ... */
	Hints       []string   // optimizer hints /*+ ... */
	CTEs        []*CTENode // WITH clause
}

func (n *SelectCore) Accept(v Visitor) string { return v.VisitSelectCore(n) }

// Clone returns a copy of the statement with independent clause slices.
// Child nodes are shared: they are immutable, so sharing is safe.
func (n *SelectCore) Clone() *SelectCore {
	c := *n
	c.Projections = append([]Node(nil), n.Projections...)
	c.Wheres = append([]Node(nil), n.Wheres...)
	c.Joins = append([]*JoinNode(nil), n.Joins...)
	c.Groups = append([]Node(nil), n.Groups...)
	c.Havings = append([]Node(nil), n.Havings...)
	c.Windows = append([]*WindowSpec(nil), n.Windows...)
	c.Orders = append([]Node(nil), n.Orders...)
	c.DistinctOn = append([]Node(nil), n.DistinctOn...)
	c.Hints = append([]string(nil), n.Hints...)
	c.CTEs = append([]*CTENode(nil), n.CTEs...)
	return &c
}

// WithWheres returns a copy of the statement with the WHERE list replaced.
func (n *SelectCore) WithWheres(wheres ...Node) *SelectCore {
	c := n.Clone()
	c.Wheres = wheres
	return c
}

// WithProjections returns a copy of the statement with the select list
// replaced.
func (n *SelectCore) WithProjections(projections ...Node) *SelectCore {
	c := n.Clone()
	c.Projections = projections
	return c
}
