package managers

import (
	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/rewrite"
)

// UpdateManager provides a fluent API for building UPDATE statements.
type UpdateManager struct {
	treeManager
	Statement *qom.UpdateStatement
}

// NewUpdateManager creates a new UpdateManager targeting the given table.
func NewUpdateManager(table *qom.Table) *UpdateManager {
	return &UpdateManager{
		Statement: &qom.UpdateStatement{Relation: table},
	}
}

// Set adds a column assignment to the SET clause.
// val can be a raw Go value or a Node.
func (m *UpdateManager) Set(col qom.Node, val any) *UpdateManager {
	m.Statement.Values = append(m.Statement.Values, qom.Assign(col, qom.Literal(val)))
	return m
}

// Where appends conditions to the WHERE clause.
func (m *UpdateManager) Where(conditions ...qom.Node) *UpdateManager {
	m.Statement.Wheres = append(m.Statement.Wheres, conditions...)
	return m
}

// Order appends orderings, constraining which rows an ordered, limited
// UPDATE touches (MySQL).
func (m *UpdateManager) Order(orderings ...qom.Node) *UpdateManager {
	m.Statement.Orders = append(m.Statement.Orders, orderings...)
	return m
}

// Limit caps the number of rows updated (MySQL).
func (m *UpdateManager) Limit(n int) *UpdateManager {
	m.Statement.Limit = qom.Literal(n)
	return m
}

// Returning sets the RETURNING clause columns.
func (m *UpdateManager) Returning(cols ...qom.Node) *UpdateManager {
	m.Statement.Returning = cols
	return m
}

// With adds a Common Table Expression (WITH clause).
func (m *UpdateManager) With(name string, query qom.Node) *UpdateManager {
	m.Statement.CTEs = append(m.Statement.CTEs, &qom.CTENode{Name: name, Query: query})
	return m
}

// Use registers a transformer.
func (m *UpdateManager) Use(t rewrite.Transformer) *UpdateManager {
	m.addTransformer(t)
	return m
}

// toSQLCore applies transformers to a copy of the statement and generates SQL.
func (m *UpdateManager) toSQLCore(v qom.Visitor) (string, error) {
	stmt := m.Statement.Clone()
	for _, t := range m.transformers {
		var err error
		stmt, err = t.TransformUpdate(stmt)
		if err != nil {
			return "", err
		}
	}
	return stmt.Accept(v), nil
}

// ToSQL applies transformers and generates SQL with parameters.
// Returns SQL string, parameter values (if parameterised), and any error.
func (m *UpdateManager) ToSQL(v qom.Visitor) (string, []any, error) {
	return toSQLParams(v, m.toSQLCore)
}
