package managers

import "github.com/evanwray/arbor/qom"

// AlterTypeManager provides a fluent API for building ALTER TYPE statements.
// A statement carries exactly one action; calling a second action setter
// replaces the first.
type AlterTypeManager struct {
	Statement *qom.AlterTypeNode
}

// NewAlterTypeManager creates a new AlterTypeManager for the named type.
func NewAlterTypeManager(typeName string) *AlterTypeManager {
	return &AlterTypeManager{Statement: qom.AlterType(typeName)}
}

// InSchema qualifies the type name with a schema.
func (m *AlterTypeManager) InSchema(schema string) *AlterTypeManager {
	m.Statement.Schema = schema
	return m
}

// RenameTo renames the type itself.
func (m *AlterTypeManager) RenameTo(newName string) *AlterTypeManager {
	m.Statement.Action = qom.RenameTypeTo{NewName: newName}
	return m
}

// SetSchema moves the type to another schema.
func (m *AlterTypeManager) SetSchema(schema string) *AlterTypeManager {
	m.Statement.Action = qom.SetTypeSchema{Schema: schema}
	return m
}

// AddValue appends a value to an enum type.
func (m *AlterTypeManager) AddValue(value string) *AlterTypeManager {
	m.Statement.Action = qom.AddEnumValue{Value: value}
	return m
}

// AddValueBefore inserts an enum value before an existing one.
func (m *AlterTypeManager) AddValueBefore(value, before string) *AlterTypeManager {
	m.Statement.Action = qom.AddEnumValue{Value: value, Before: before}
	return m
}

// AddValueAfter inserts an enum value after an existing one.
func (m *AlterTypeManager) AddValueAfter(value, after string) *AlterTypeManager {
	m.Statement.Action = qom.AddEnumValue{Value: value, After: after}
	return m
}

// RenameValue renames an existing enum value.
func (m *AlterTypeManager) RenameValue(from, to string) *AlterTypeManager {
	m.Statement.Action = qom.RenameEnumValue{From: from, To: to}
	return m
}

// ToSQL generates the statement SQL. ALTER TYPE carries no bind parameters;
// enum values are inlined as part of the DDL text.
func (m *AlterTypeManager) ToSQL(v qom.Visitor) (string, error) {
	sql, _, err := toSQLParams(v, func(v qom.Visitor) (string, error) {
		return m.Statement.Accept(v), nil
	})
	return sql, err
}
