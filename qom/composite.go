package qom

// CompositeNode represents a structured (UDT / composite type) constant:
// a qualified type name plus one value per attribute of the type.
//
// Dialects that support structured binds send the values as ordinary bind
// parameters inside a row constructor; everywhere else the constant must be
// inlined, and setting Inline forces inlining even where binding works.
type CompositeNode struct {
	Predications
	Combinable
	Qualifier string // the UDT's (possibly schema-qualified) type name
	Values    []Node // one value per attribute, in declaration order
	Inline    bool   // force literal inlining regardless of parameter mode
}

func (n *CompositeNode) Accept(v Visitor) string { return v.VisitComposite(n) }

// NewComposite creates a composite constant of the named type. Raw values
// are wrapped with Literal.
func NewComposite(qualifier string, values ...any) *CompositeNode {
	n := &CompositeNode{Qualifier: qualifier, Values: make([]Node, len(values))}
	for i, val := range values {
		n.Values[i] = Literal(val)
	}
	n.Predications.self = n
	n.Combinable.self = n
	return n
}

// Inlined returns a copy of the composite with inlining forced.
func (n *CompositeNode) Inlined() *CompositeNode {
	c := &CompositeNode{Qualifier: n.Qualifier, Values: n.Values, Inline: true}
	c.Predications.self = c
	c.Combinable.self = c
	return c
}

// IsInlineRequested reports whether a node demands inline literal rendering
// rather than parameter binding.
func IsInlineRequested(n Node) bool {
	if c, ok := n.(*CompositeNode); ok {
		return c.Inline
	}
	return false
}
