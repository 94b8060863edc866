package qom

// AssignmentNode represents a SET column = value pair in UPDATE, or the
// update list of an upsert clause.
type AssignmentNode struct {
	Column Node
	Value  Node
}

func (n *AssignmentNode) Accept(v Visitor) string { return v.VisitAssignment(n) }

// Assign creates an assignment of value to column.
func Assign(column, value Node) *AssignmentNode {
	return &AssignmentNode{Column: column, Value: value}
}

// OnConflictAction selects the behaviour of the conflict clause.
type OnConflictAction int

const (
	ConflictDoNothing OnConflictAction = iota
	ConflictDoUpdate
)

// OnConflictNode represents the conflict clause of an INSERT. Targets name
// the conflicting columns; Updates apply when the action is DO UPDATE, with
// an optional WHERE condition.
type OnConflictNode struct {
	Action  OnConflictAction
	Targets []Node
	Updates []*AssignmentNode
	Where   Node
}

func (n *OnConflictNode) Accept(v Visitor) string { return v.VisitOnConflict(n) }

// InsertStatement represents the data container for an INSERT statement.
type InsertStatement struct {
	Relation  *Table
	Columns   []Node
	Values    [][]Node    // literal rows; mutually exclusive with Select
	Select    *SelectCore // INSERT ... SELECT source
	Conflict  *OnConflictNode
	Returning []Node
	CTEs      []*CTENode
}

func (n *InsertStatement) Accept(v Visitor) string { return v.VisitInsertStatement(n) }

// Clone returns a copy of the statement with independent clause slices.
func (n *InsertStatement) Clone() *InsertStatement {
	c := *n
	c.Columns = append([]Node(nil), n.Columns...)
	c.Values = append([][]Node(nil), n.Values...)
	c.Returning = append([]Node(nil), n.Returning...)
	c.CTEs = append([]*CTENode(nil), n.CTEs...)
	return &c
}

// UpdateStatement represents the data container for an UPDATE statement.
type UpdateStatement struct {
	Relation  *Table
	Values    []*AssignmentNode
	Wheres    []Node
	Orders    []Node
	Limit     Node
	Returning []Node
	CTEs      []*CTENode
}

func (n *UpdateStatement) Accept(v Visitor) string { return v.VisitUpdateStatement(n) }

// Clone returns a copy of the statement with independent clause slices.
func (n *UpdateStatement) Clone() *UpdateStatement {
	c := *n
	c.Values = append([]*AssignmentNode(nil), n.Values...)
	c.Wheres = append([]Node(nil), n.Wheres...)
	c.Orders = append([]Node(nil), n.Orders...)
	c.Returning = append([]Node(nil), n.Returning...)
	c.CTEs = append([]*CTENode(nil), n.CTEs...)
	return &c
}

// DeleteStatement represents the data container for a DELETE statement.
type DeleteStatement struct {
	Relation  *Table
	Wheres    []Node
	Orders    []Node
	Limit     Node
	Returning []Node
	CTEs      []*CTENode
}

func (n *DeleteStatement) Accept(v Visitor) string { return v.VisitDeleteStatement(n) }

// Clone returns a copy of the statement with independent clause slices.
func (n *DeleteStatement) Clone() *DeleteStatement {
	c := *n
	c.Wheres = append([]Node(nil), n.Wheres...)
	c.Orders = append([]Node(nil), n.Orders...)
	c.Returning = append([]Node(nil), n.Returning...)
	c.CTEs = append([]*CTENode(nil), n.CTEs...)
	return &c
}
