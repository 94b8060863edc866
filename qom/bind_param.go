package qom

// DataType names the semantic column type a parameter binds against.
// It is advisory: renderers use it for coercion casts, not validation.
type DataType string

const (
	TypeBoolean   DataType = "boolean"
	TypeInteger   DataType = "integer"
	TypeBigint    DataType = "bigint"
	TypeNumeric   DataType = "numeric"
	TypeDouble    DataType = "double precision"
	TypeVarchar   DataType = "varchar"
	TypeTimestamp DataType = "timestamp"
	TypeDate      DataType = "date"
	TypeUUID      DataType = "uuid"
	TypeBytes     DataType = "bytea"
)

// BindParamNode represents an explicit bind parameter placeholder.
// Its Value is always emitted as a bind parameter in parameterized mode,
// or rendered as a literal value in inline mode. Type, when set, records
// the semantic column type the value binds against.
type BindParamNode struct {
	Predications
	Combinable
	Value any
	Type  DataType
}

func (n *BindParamNode) Accept(v Visitor) string { return v.VisitBindParam(n) }

// NewBindParam creates an untyped BindParamNode.
func NewBindParam(value any) *BindParamNode {
	n := &BindParamNode{Value: value}
	n.Predications.self = n
	n.Combinable.self = n
	return n
}

// Coerce binds a raw value against a target semantic type, producing a
// bindable parameter node. An empty type yields an untyped parameter.
func Coerce(value any, t DataType) *BindParamNode {
	n := NewBindParam(value)
	n.Type = t
	return n
}
