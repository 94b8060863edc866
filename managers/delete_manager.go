package managers

import (
	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/rewrite"
)

// DeleteManager provides a fluent API for building DELETE statements.
type DeleteManager struct {
	treeManager
	Statement *qom.DeleteStatement
}

// NewDeleteManager creates a new DeleteManager targeting the given table.
func NewDeleteManager(from *qom.Table) *DeleteManager {
	return &DeleteManager{
		Statement: &qom.DeleteStatement{Relation: from},
	}
}

// Where appends conditions to the WHERE clause.
func (m *DeleteManager) Where(conditions ...qom.Node) *DeleteManager {
	m.Statement.Wheres = append(m.Statement.Wheres, conditions...)
	return m
}

// Order appends orderings, constraining which rows an ordered, limited
// DELETE touches (MySQL).
func (m *DeleteManager) Order(orderings ...qom.Node) *DeleteManager {
	m.Statement.Orders = append(m.Statement.Orders, orderings...)
	return m
}

// Limit caps the number of rows deleted (MySQL).
func (m *DeleteManager) Limit(n int) *DeleteManager {
	m.Statement.Limit = qom.Literal(n)
	return m
}

// Returning sets the RETURNING clause columns.
func (m *DeleteManager) Returning(cols ...qom.Node) *DeleteManager {
	m.Statement.Returning = cols
	return m
}

// With adds a Common Table Expression (WITH clause).
func (m *DeleteManager) With(name string, query qom.Node) *DeleteManager {
	m.Statement.CTEs = append(m.Statement.CTEs, &qom.CTENode{Name: name, Query: query})
	return m
}

// Use registers a transformer.
func (m *DeleteManager) Use(t rewrite.Transformer) *DeleteManager {
	m.addTransformer(t)
	return m
}

// toSQLCore applies transformers to a copy of the statement and generates SQL.
func (m *DeleteManager) toSQLCore(v qom.Visitor) (string, error) {
	stmt := m.Statement.Clone()
	for _, t := range m.transformers {
		var err error
		stmt, err = t.TransformDelete(stmt)
		if err != nil {
			return "", err
		}
	}
	return stmt.Accept(v), nil
}

// ToSQL applies transformers and generates SQL with parameters.
// Returns SQL string, parameter values (if parameterised), and any error.
func (m *DeleteManager) ToSQL(v qom.Visitor) (string, []any, error) {
	return toSQLParams(v, m.toSQLCore)
}
