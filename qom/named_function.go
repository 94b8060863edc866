package qom

// NamedFunctionNode represents a named SQL function call like COALESCE,
// LOWER, CAST, etc. Functions with dialect-conditional rendering (e.g.
// POSITION) have dedicated node types instead.
type NamedFunctionNode struct {
	Predications
	Arithmetics
	Combinable
	Name     string
	Args     []Node
	Distinct bool
}

func (n *NamedFunctionNode) Accept(v Visitor) string { return v.VisitNamedFunction(n) }

// NewNamedFunction creates a NamedFunctionNode with properly initialised embedded structs.
func NewNamedFunction(name string, args ...Node) *NamedFunctionNode {
	n := &NamedFunctionNode{Name: name, Args: args}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}

// Coalesce creates a COALESCE(args...) function call.
func Coalesce(args ...Node) *NamedFunctionNode {
	return NewNamedFunction("COALESCE", args...)
}

// Lower creates a LOWER(expr) function call.
func Lower(expr Node) *NamedFunctionNode {
	return NewNamedFunction("LOWER", expr)
}

// Upper creates an UPPER(expr) function call.
func Upper(expr Node) *NamedFunctionNode {
	return NewNamedFunction("UPPER", expr)
}

// Substring creates a SUBSTRING(expr, start, len) function call.
func Substring(expr, start, length Node) *NamedFunctionNode {
	return NewNamedFunction("SUBSTRING", expr, start, length)
}

// Cast creates a CAST(expr AS typeName) expression.
// The type name is stored as a SqlLiteral so it renders verbatim.
func Cast(expr Node, typeName string) *NamedFunctionNode {
	return NewNamedFunction("CAST", expr, NewSqlLiteral(typeName))
}

// Over wraps the named function with an inline window specification.
func (n *NamedFunctionNode) Over(spec *WindowSpec) *OverNode {
	o := NewOverNode(n)
	o.Spec = spec
	return o
}

// OverName wraps the named function with a named window reference.
func (n *NamedFunctionNode) OverName(name string) *OverNode {
	o := NewOverNode(n)
	o.WindowName = name
	return o
}

// PositionNode represents POSITION(search IN in): the 1-based index of the
// first occurrence of search within in, or 0 when absent. Dialects without
// the standard syntax render INSTR or CHARINDEX instead; the search-first
// argument order is preserved where the target function uses it.
type PositionNode struct {
	Predications
	Arithmetics
	Combinable
	Search Node
	In     Node
}

func (n *PositionNode) Accept(v Visitor) string { return v.VisitPosition(n) }

// Position creates a POSITION(search IN in) node.
func Position(search, in Node) *PositionNode {
	n := &PositionNode{Search: search, In: in}
	n.Predications.self = n
	n.Arithmetics.self = n
	n.Combinable.self = n
	return n
}
