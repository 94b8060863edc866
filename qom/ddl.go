package qom

// AlterTypeAction is the single action carried by an ALTER TYPE statement.
// Exactly one variant is held; the unexported method keeps the set closed.
type AlterTypeAction interface {
	alterTypeAction()
}

// RenameTypeTo renames the type itself.
type RenameTypeTo struct {
	NewName string
}

// SetTypeSchema moves the type to another schema.
type SetTypeSchema struct {
	Schema string
}

// AddEnumValue appends a value to an enum type, optionally positioned
// before or after an existing value. At most one of Before and After is set.
type AddEnumValue struct {
	Value  string
	Before string
	After  string
}

// RenameEnumValue renames an existing enum value.
type RenameEnumValue struct {
	From string
	To   string
}

func (RenameTypeTo) alterTypeAction()    {}
func (SetTypeSchema) alterTypeAction()   {}
func (AddEnumValue) alterTypeAction()    {}
func (RenameEnumValue) alterTypeAction() {}

// AlterTypeNode represents ALTER TYPE name <action>. A statement carries
// exactly one action; building one without an action is an error at render
// time.
type AlterTypeNode struct {
	TypeName string
	Schema   string // optional schema qualifier of the type name
	Action   AlterTypeAction
}

func (n *AlterTypeNode) Accept(v Visitor) string { return v.VisitAlterType(n) }

// AlterType creates an ALTER TYPE statement node for the named type.
func AlterType(name string) *AlterTypeNode {
	return &AlterTypeNode{TypeName: name}
}
