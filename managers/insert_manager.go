package managers

import (
	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/rewrite"
)

// InsertManager provides a fluent API for building INSERT statements.
type InsertManager struct {
	treeManager
	Statement *qom.InsertStatement
}

// NewInsertManager creates a new InsertManager targeting the given table.
func NewInsertManager(into *qom.Table) *InsertManager {
	return &InsertManager{
		Statement: &qom.InsertStatement{Relation: into},
	}
}

// Columns sets the column list for the INSERT statement.
func (m *InsertManager) Columns(cols ...qom.Node) *InsertManager {
	m.Statement.Columns = cols
	return m
}

// Values appends a row of values to the INSERT statement.
// Each call to Values adds one row. Pass raw Go values; they are
// wrapped with qom.Literal automatically.
func (m *InsertManager) Values(vals ...any) *InsertManager {
	row := make([]qom.Node, len(vals))
	for i, v := range vals {
		row[i] = qom.Literal(v)
	}
	m.Statement.Values = append(m.Statement.Values, row)
	return m
}

// FromSelect sets a SELECT subquery as the source of rows.
// Mutually exclusive with Values: if Select is set, Values are ignored
// by the visitor.
func (m *InsertManager) FromSelect(sel *SelectManager) *InsertManager {
	m.Statement.Select = sel.Core
	return m
}

// Returning sets the RETURNING clause columns.
func (m *InsertManager) Returning(cols ...qom.Node) *InsertManager {
	m.Statement.Returning = cols
	return m
}

// With adds a Common Table Expression (WITH clause).
func (m *InsertManager) With(name string, query qom.Node) *InsertManager {
	m.Statement.CTEs = append(m.Statement.CTEs, &qom.CTENode{Name: name, Query: query})
	return m
}

// OnConflict begins a conflict clause targeting the given columns.
// Returns an OnConflictContext for specifying the action.
func (m *InsertManager) OnConflict(cols ...qom.Node) *OnConflictContext {
	oc := &qom.OnConflictNode{Targets: cols}
	m.Statement.Conflict = oc
	return &OnConflictContext{manager: m, node: oc}
}

// Use registers a transformer.
func (m *InsertManager) Use(t rewrite.Transformer) *InsertManager {
	m.addTransformer(t)
	return m
}

// toSQLCore applies transformers to a copy of the statement and generates SQL.
func (m *InsertManager) toSQLCore(v qom.Visitor) (string, error) {
	stmt := m.Statement.Clone()
	for _, t := range m.transformers {
		var err error
		stmt, err = t.TransformInsert(stmt)
		if err != nil {
			return "", err
		}
	}
	return stmt.Accept(v), nil
}

// ToSQL applies transformers and generates SQL with parameters.
// Returns SQL string, parameter values (if parameterised), and any error.
func (m *InsertManager) ToSQL(v qom.Visitor) (string, []any, error) {
	return toSQLParams(v, m.toSQLCore)
}

// OnConflictContext guides conflict clause construction.
type OnConflictContext struct {
	manager *InsertManager
	node    *qom.OnConflictNode
}

// DoNothing sets the action to DO NOTHING and returns the InsertManager.
func (c *OnConflictContext) DoNothing() *InsertManager {
	c.node.Action = qom.ConflictDoNothing
	return c.manager
}

// DoUpdate sets the action to DO UPDATE with the given assignments.
// Returns an OnConflictUpdateContext for an optional WHERE clause.
func (c *OnConflictContext) DoUpdate(assignments ...*qom.AssignmentNode) *OnConflictUpdateContext {
	c.node.Action = qom.ConflictDoUpdate
	c.node.Updates = assignments
	return &OnConflictUpdateContext{manager: c.manager, node: c.node}
}

// OnConflictUpdateContext allows adding a WHERE to DO UPDATE.
type OnConflictUpdateContext struct {
	manager *InsertManager
	node    *qom.OnConflictNode
}

// Where adds a condition to the DO UPDATE clause.
func (c *OnConflictUpdateContext) Where(condition qom.Node) *InsertManager {
	c.node.Where = condition
	return c.manager
}
