package qom

// Attribute represents a column reference, optionally bound to a table or
// table alias. A nil Relation renders as a bare column name.
type Attribute struct {
	Predications
	Arithmetics
	Combinable
	Name     string
	Relation Node     // *Table, *TableAlias, or nil for an unqualified column
	Type     DataType // semantic type used for parameter coercion ("" if unknown)
}

// NewAttribute creates an Attribute with Predications, Arithmetics, and
// Combinable properly initialized to reference the new Attribute as self.
func NewAttribute(relation Node, name string) *Attribute {
	a := &Attribute{Name: name, Relation: relation}
	a.Predications.self = a
	a.Arithmetics.self = a
	a.Combinable.self = a
	return a
}

// NewColumn creates an unqualified column reference.
func NewColumn(name string) *Attribute {
	return NewAttribute(nil, name)
}

func (a *Attribute) Accept(v Visitor) string { return v.VisitAttribute(a) }

// Typed returns a copy of the Attribute with its semantic type set.
// The copy has its own self pointers; the receiver is unchanged.
func (a *Attribute) Typed(t DataType) *Attribute {
	c := &Attribute{Name: a.Name, Relation: a.Relation, Type: t}
	c.Predications.self = c
	c.Arithmetics.self = c
	c.Combinable.self = c
	return c
}

// Coerce wraps val as a bindable parameter carrying the attribute's
// semantic type. Untyped attributes produce a plain bind parameter.
func (a *Attribute) Coerce(val any) Node {
	return Coerce(val, a.Type)
}
