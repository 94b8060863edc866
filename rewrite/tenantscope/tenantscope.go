// Package tenantscope provides a Transformer that automatically injects
// "column = tenant" conditions into statements, scoping every query to a
// single tenant.
//
// By default it appends WHERE "tenant_id" = ? for every table referenced
// in the FROM and JOIN clauses of a SELECT, and for the target table of
// UPDATE and DELETE. Both the column name and the set of tables can be
// customised via options.
//
// # Basic usage
//
//	ts := tenantscope.New(42)
//	query := managers.NewSelectManager(table)
//	query.Use(ts)
//	// SELECT * FROM "orders" WHERE "orders"."tenant_id" = $1
//
// # Custom column
//
//	ts := tenantscope.New(42, tenantscope.WithColumn("org_id"))
//	// ... WHERE "orders"."org_id" = $1
//
// # Restrict to specific tables
//
// When a query joins shared reference tables that carry no tenant column:
//
//	ts := tenantscope.New(42, tenantscope.WithTables("orders", "invoices"))
//	// Only orders and invoices get the condition; other tables are unchanged.
package tenantscope

import (
	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/rewrite"
)

// TenantScope is a Transformer that appends an equality condition on a
// tenant column for every referenced table (or a configured subset).
type TenantScope struct {
	rewrite.Base
	Tenant  any
	Column  string
	Columns map[string]string // per-table column overrides (table name → column name)
	tables  map[string]bool   // nil means apply to all tables
}

// Option configures a TenantScope transformer.
type Option func(*TenantScope)

// WithColumn sets the tenant column name. Default is "tenant_id".
func WithColumn(name string) Option {
	return func(ts *TenantScope) { ts.Column = name }
}

// WithTables restricts the transformer to only the named tables.
// By default, the transformer applies to every table in the statement.
func WithTables(names ...string) Option {
	return func(ts *TenantScope) {
		ts.tables = make(map[string]bool, len(names))
		for _, n := range names {
			ts.tables[n] = true
		}
	}
}

// WithTableColumn sets a per-table column override. The table is
// automatically added to the whitelist, restricting the transformer's scope.
func WithTableColumn(table, column string) Option {
	return func(ts *TenantScope) {
		if ts.Columns == nil {
			ts.Columns = make(map[string]string)
		}
		ts.Columns[table] = column
		if ts.tables == nil {
			ts.tables = make(map[string]bool)
		}
		ts.tables[table] = true
	}
}

// New creates a TenantScope transformer binding the given tenant value.
func New(tenant any, opts ...Option) *TenantScope {
	ts := &TenantScope{Tenant: tenant, Column: "tenant_id"}
	for _, o := range opts {
		o(ts)
	}
	return ts
}

// TransformSelect appends "column = tenant" to the WHERE clause for each
// matching table referenced in the query (FROM and JOINs).
func (ts *TenantScope) TransformSelect(core *qom.SelectCore) (*qom.SelectCore, error) {
	for _, ref := range rewrite.CollectTables(core) {
		if ts.appliesTo(ref.Name) {
			core.Wheres = append(core.Wheres, ts.condition(ref.Relation, ref.Name))
		}
	}
	return core, nil
}

// TransformUpdate appends the tenant condition for the target table.
func (ts *TenantScope) TransformUpdate(stmt *qom.UpdateStatement) (*qom.UpdateStatement, error) {
	if stmt.Relation != nil && ts.appliesTo(stmt.Relation.Name) {
		stmt.Wheres = append(stmt.Wheres, ts.condition(stmt.Relation, stmt.Relation.Name))
	}
	return stmt, nil
}

// TransformDelete appends the tenant condition for the target table.
func (ts *TenantScope) TransformDelete(stmt *qom.DeleteStatement) (*qom.DeleteStatement, error) {
	if stmt.Relation != nil && ts.appliesTo(stmt.Relation.Name) {
		stmt.Wheres = append(stmt.Wheres, ts.condition(stmt.Relation, stmt.Relation.Name))
	}
	return stmt, nil
}

func (ts *TenantScope) condition(relation qom.Node, tableName string) qom.Node {
	attr := qom.NewAttribute(relation, ts.columnFor(tableName))
	return attr.Eq(qom.NewBindParam(ts.Tenant))
}

func (ts *TenantScope) appliesTo(tableName string) bool {
	if ts.tables == nil {
		return true
	}
	return ts.tables[tableName]
}

// columnFor returns the column name to use for the given table.
// It checks Columns for a per-table override, falling back to Column.
func (ts *TenantScope) columnFor(tableName string) string {
	if ts.Columns != nil {
		if col, ok := ts.Columns[tableName]; ok {
			return col
		}
	}
	return ts.Column
}
