// Package managers provides high-level fluent APIs for building SQL ASTs.
package managers

import (
	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/rewrite"
)

// SelectManager provides a fluent API for building SELECT queries.
// It wraps a SelectCore and applies transformers before SQL generation.
type SelectManager struct {
	treeManager
	Core *qom.SelectCore
}

// NewSelectManager creates a new SelectManager with the given table as FROM.
// If from is nil, the FROM clause is left unset.
func NewSelectManager(from qom.Node) *SelectManager {
	return &SelectManager{
		Core: &qom.SelectCore{From: from},
	}
}

// Select sets the projection list, replacing any existing projections.
// Pass column attributes, stars, literals, or any Node.
func (m *SelectManager) Select(projections ...qom.Node) *SelectManager {
	m.Core.Projections = projections
	return m
}

// Project is an alias for Select (Ruby Arel uses "project").
func (m *SelectManager) Project(projections ...qom.Node) *SelectManager {
	return m.Select(projections...)
}

// Distinct enables or disables the DISTINCT modifier on the SELECT clause.
func (m *SelectManager) Distinct(on ...bool) *SelectManager {
	if len(on) == 0 || on[0] {
		m.Core.Distinct = true
	} else {
		m.Core.Distinct = false
	}
	return m
}

// DistinctOn sets the DISTINCT ON columns (PostgreSQL).
func (m *SelectManager) DistinctOn(cols ...qom.Node) *SelectManager {
	m.Core.DistinctOn = cols
	return m
}

// Where appends one or more conditions to the WHERE clause.
// Multiple calls to Where are combined with AND at the visitor level.
// Nil and NoCondition entries are dropped during rendering.
func (m *SelectManager) Where(conditions ...qom.Node) *SelectManager {
	m.Core.Wheres = append(m.Core.Wheres, conditions...)
	return m
}

// From sets or changes the FROM source.
func (m *SelectManager) From(table qom.Node) *SelectManager {
	m.Core.From = table
	return m
}

// Join adds a join to the query and returns a JoinContext for specifying
// the ON condition. The default join type is InnerJoin.
func (m *SelectManager) Join(table qom.Node, joinTypes ...qom.JoinType) *JoinContext {
	jt := qom.InnerJoin
	if len(joinTypes) > 0 {
		jt = joinTypes[0]
	}
	join := &qom.JoinNode{
		Left:  m.Core.From,
		Right: table,
		Type:  jt,
	}
	m.Core.Joins = append(m.Core.Joins, join)
	return &JoinContext{manager: m, join: join}
}

// OuterJoin is a convenience for Join with LeftOuterJoin type.
func (m *SelectManager) OuterJoin(table qom.Node) *JoinContext {
	return m.Join(table, qom.LeftOuterJoin)
}

// LateralJoin adds a LATERAL join (PostgreSQL). Default join type is InnerJoin.
func (m *SelectManager) LateralJoin(table qom.Node, joinTypes ...qom.JoinType) *JoinContext {
	jt := qom.InnerJoin
	if len(joinTypes) > 0 {
		jt = joinTypes[0]
	}
	join := &qom.JoinNode{
		Left:    m.Core.From,
		Right:   table,
		Type:    jt,
		Lateral: true,
	}
	m.Core.Joins = append(m.Core.Joins, join)
	return &JoinContext{manager: m, join: join}
}

// StringJoin adds a raw SQL join fragment.
//
// SECURITY: The raw string is injected verbatim into SQL output.
// Never pass user-controlled input to this method.
func (m *SelectManager) StringJoin(raw string) *SelectManager {
	join := &qom.JoinNode{
		Left:  m.Core.From,
		Right: qom.NewSqlLiteral(raw),
		Type:  qom.StringJoin,
	}
	m.Core.Joins = append(m.Core.Joins, join)
	return m
}

// Group appends one or more expressions to the GROUP BY clause.
func (m *SelectManager) Group(columns ...qom.Node) *SelectManager {
	m.Core.Groups = append(m.Core.Groups, columns...)
	return m
}

// Having appends one or more conditions to the HAVING clause.
// Multiple calls to Having are combined with AND at the visitor level.
func (m *SelectManager) Having(conditions ...qom.Node) *SelectManager {
	m.Core.Havings = append(m.Core.Havings, conditions...)
	return m
}

// Window appends one or more named window definitions to the WINDOW clause.
func (m *SelectManager) Window(defs ...*qom.WindowSpec) *SelectManager {
	m.Core.Windows = append(m.Core.Windows, defs...)
	return m
}

// Order appends orderings to the ORDER BY clause. Pass OrderingNode values
// (e.g., table.Col("name").Asc()).
func (m *SelectManager) Order(orderings ...qom.Node) *SelectManager {
	m.Core.Orders = append(m.Core.Orders, orderings...)
	return m
}

// Limit sets the LIMIT value.
func (m *SelectManager) Limit(n int) *SelectManager {
	m.Core.Limit = qom.Literal(n)
	return m
}

// Offset sets the OFFSET value.
func (m *SelectManager) Offset(n int) *SelectManager {
	m.Core.Offset = qom.Literal(n)
	return m
}

// Take is an alias for Limit (Ruby Arel convention).
func (m *SelectManager) Take(n int) *SelectManager {
	return m.Limit(n)
}

// CrossJoin adds a cross join (no ON clause).
func (m *SelectManager) CrossJoin(table qom.Node) *SelectManager {
	join := &qom.JoinNode{
		Left:  m.Core.From,
		Right: table,
		Type:  qom.CrossJoin,
	}
	m.Core.Joins = append(m.Core.Joins, join)
	return m
}

// ForUpdate sets the FOR UPDATE lock mode.
func (m *SelectManager) ForUpdate() *SelectManager {
	m.Core.Lock = qom.ForUpdate
	return m
}

// ForShare sets the FOR SHARE lock mode.
func (m *SelectManager) ForShare() *SelectManager {
	m.Core.Lock = qom.ForShare
	return m
}

// ForNoKeyUpdate sets the FOR NO KEY UPDATE lock mode.
func (m *SelectManager) ForNoKeyUpdate() *SelectManager {
	m.Core.Lock = qom.ForNoKeyUpdate
	return m
}

// ForKeyShare sets the FOR KEY SHARE lock mode.
func (m *SelectManager) ForKeyShare() *SelectManager {
	m.Core.Lock = qom.ForKeyShare
	return m
}

// SkipLocked adds SKIP LOCKED to the current lock mode.
func (m *SelectManager) SkipLocked() *SelectManager {
	m.Core.SkipLocked = true
	return m
}

// Comment sets a query comment (rendered as /* ... */).
// Any occurrence of */ in the text is sanitized to prevent comment breakout.
func (m *SelectManager) Comment(text string) *SelectManager {
	m.Core.Comment = text
	return m
}

// Hint adds an optimizer hint (rendered as /*+ ... */ after SELECT).
// Any occurrence of */ in the hint is sanitized to prevent comment breakout.
func (m *SelectManager) Hint(hint string) *SelectManager {
	m.Core.Hints = append(m.Core.Hints, hint)
	return m
}

// With adds a Common Table Expression (WITH clause).
func (m *SelectManager) With(name string, query qom.Node) *SelectManager {
	m.Core.CTEs = append(m.Core.CTEs, &qom.CTENode{Name: name, Query: query})
	return m
}

// WithRecursive adds a recursive Common Table Expression (WITH RECURSIVE clause).
func (m *SelectManager) WithRecursive(name string, query qom.Node) *SelectManager {
	m.Core.CTEs = append(m.Core.CTEs, &qom.CTENode{Name: name, Query: query, Recursive: true})
	return m
}

// Union creates a UNION set operation between this query and another.
func (m *SelectManager) Union(other *SelectManager) *qom.SetOperationNode {
	return &qom.SetOperationNode{Left: m.Core, Right: other.Core, Type: qom.Union}
}

// UnionAll creates a UNION ALL set operation between this query and another.
func (m *SelectManager) UnionAll(other *SelectManager) *qom.SetOperationNode {
	return &qom.SetOperationNode{Left: m.Core, Right: other.Core, Type: qom.UnionAll}
}

// Intersect creates an INTERSECT set operation between this query and another.
func (m *SelectManager) Intersect(other *SelectManager) *qom.SetOperationNode {
	return &qom.SetOperationNode{Left: m.Core, Right: other.Core, Type: qom.Intersect}
}

// IntersectAll creates an INTERSECT ALL set operation between this query and another.
func (m *SelectManager) IntersectAll(other *SelectManager) *qom.SetOperationNode {
	return &qom.SetOperationNode{Left: m.Core, Right: other.Core, Type: qom.IntersectAll}
}

// Except creates an EXCEPT set operation between this query and another.
func (m *SelectManager) Except(other *SelectManager) *qom.SetOperationNode {
	return &qom.SetOperationNode{Left: m.Core, Right: other.Core, Type: qom.Except}
}

// ExceptAll creates an EXCEPT ALL set operation between this query and another.
func (m *SelectManager) ExceptAll(other *SelectManager) *qom.SetOperationNode {
	return &qom.SetOperationNode{Left: m.Core, Right: other.Core, Type: qom.ExceptAll}
}

// Use registers a transformer to be applied before SQL generation.
func (m *SelectManager) Use(t rewrite.Transformer) *SelectManager {
	m.addTransformer(t)
	return m
}

// toSQLCore applies all registered transformers to a copy of the SelectCore,
// then generates SQL using the given visitor.
func (m *SelectManager) toSQLCore(v qom.Visitor) (string, error) {
	core := m.CloneCore()
	for _, t := range m.transformers {
		var err error
		core, err = t.TransformSelect(core)
		if err != nil {
			return "", err
		}
	}
	return core.Accept(v), nil
}

// ToSQL applies all registered transformers and generates SQL with parameters.
// Returns SQL string, parameter values (if parameterised), and any error.
// Parameters are collected automatically when the visitor has parameterisation enabled.
func (m *SelectManager) ToSQL(v qom.Visitor) (string, []any, error) {
	return toSQLParams(v, m.toSQLCore)
}

// Accept implements the Node interface so that a SelectManager can be
// used as a subquery (e.g., as the right side of a JoinNode).
// It delegates to the underlying SelectCore.
func (m *SelectManager) Accept(v qom.Visitor) string {
	return m.Core.Accept(v)
}

// As wraps the query's SelectCore in a TableAlias, enabling it to be
// used as a named subquery in FROM or JOIN clauses.
func (m *SelectManager) As(name string) *qom.TableAlias {
	return &qom.TableAlias{Relation: m.Core, AliasName: name}
}

// CloneCore returns a copy of the SelectCore with independent clause slices
// so transformers don't modify the original.
func (m *SelectManager) CloneCore() *qom.SelectCore {
	return m.Core.Clone()
}
