package tenantscope

import (
	"testing"

	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/render"
)

func toSQL(t *testing.T, node qom.Node) (string, []any) {
	t.Helper()
	v := render.NewPostgresVisitor()
	sql := node.Accept(v)
	if err := v.Err(); err != nil {
		t.Fatalf("unexpected render error: %v", err)
	}
	return sql, v.Params()
}

// --- Default behaviour ---

func TestDefaultColumnTenantID(t *testing.T) {
	t.Parallel()
	orders := qom.NewTable("orders")
	core := &qom.SelectCore{From: orders}

	ts := New(42)
	result, err := ts.TransformSelect(core)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, params := toSQL(t, result)
	expected := `SELECT * FROM "orders" WHERE "orders"."tenant_id" = $1`
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
	if len(params) != 1 || params[0] != 42 {
		t.Errorf("expected params [42], got %v", params)
	}
}

// --- Custom column name ---

func TestCustomColumnName(t *testing.T) {
	t.Parallel()
	orders := qom.NewTable("orders")
	core := &qom.SelectCore{From: orders}

	ts := New(7, WithColumn("org_id"))
	result, err := ts.TransformSelect(core)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := toSQL(t, result)
	expected := `SELECT * FROM "orders" WHERE "orders"."org_id" = $1`
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
}

// --- Preserves existing WHERE conditions ---

func TestPreservesExistingWheres(t *testing.T) {
	t.Parallel()
	orders := qom.NewTable("orders")
	core := &qom.SelectCore{
		From:   orders,
		Wheres: []qom.Node{orders.Col("status").Eq("open")},
	}

	ts := New(42)
	result, err := ts.TransformSelect(core)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, params := toSQL(t, result)
	expected := `SELECT * FROM "orders" WHERE "orders"."status" = $1 AND "orders"."tenant_id" = $2`
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
	if len(params) != 2 || params[0] != "open" || params[1] != 42 {
		t.Errorf("expected params [open 42], got %v", params)
	}
}

// --- Applies to joined tables ---

func TestAppliedToJoinedTables(t *testing.T) {
	t.Parallel()
	orders := qom.NewTable("orders")
	items := qom.NewTable("items")
	core := &qom.SelectCore{
		From: orders,
		Joins: []*qom.JoinNode{
			{
				Left:  orders,
				Right: items,
				Type:  qom.InnerJoin,
				On:    orders.Col("id").Eq(items.Col("order_id")),
			},
		},
	}

	ts := New(42)
	result, err := ts.TransformSelect(core)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := toSQL(t, result)
	expected := `SELECT * FROM "orders" INNER JOIN "items" ON "orders"."id" = "items"."order_id" WHERE "orders"."tenant_id" = $1 AND "items"."tenant_id" = $2`
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
}

// --- Table filtering ---

func TestWithTablesFiltersToSpecifiedTables(t *testing.T) {
	t.Parallel()
	orders := qom.NewTable("orders")
	currencies := qom.NewTable("currencies")
	core := &qom.SelectCore{
		From: orders,
		Joins: []*qom.JoinNode{
			{
				Left:  orders,
				Right: currencies,
				Type:  qom.InnerJoin,
				On:    orders.Col("currency").Eq(currencies.Col("code")),
			},
		},
	}

	// currencies is a shared reference table with no tenant column
	ts := New(42, WithTables("orders"))
	result, err := ts.TransformSelect(core)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := toSQL(t, result)
	expected := `SELECT * FROM "orders" INNER JOIN "currencies" ON "orders"."currency" = "currencies"."code" WHERE "orders"."tenant_id" = $1`
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
}

// --- Table alias ---

func TestAppliedToTableAlias(t *testing.T) {
	t.Parallel()
	orders := qom.NewTable("orders")
	o := orders.Alias("o")
	core := &qom.SelectCore{From: o}

	ts := New(42)
	result, err := ts.TransformSelect(core)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := toSQL(t, result)
	// Column is qualified with the alias
	expected := `SELECT * FROM "orders" AS "o" WHERE "o"."tenant_id" = $1`
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
}

// --- WithTables matches by underlying table name, not alias ---

func TestWithTablesMatchesByUnderlyingName(t *testing.T) {
	t.Parallel()
	orders := qom.NewTable("orders")
	o := orders.Alias("o")
	core := &qom.SelectCore{From: o}

	ts := New(42, WithTables("orders"))
	result, err := ts.TransformSelect(core)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Wheres) != 1 {
		t.Errorf("expected 1 where clause, got %d", len(result.Wheres))
	}
}

// --- Per-table column overrides ---

func TestWithTableColumn(t *testing.T) {
	t.Parallel()
	orders := qom.NewTable("orders")
	legacy := qom.NewTable("legacy_invoices")
	core := &qom.SelectCore{
		From: orders,
		Joins: []*qom.JoinNode{
			{
				Left:  orders,
				Right: legacy,
				Type:  qom.InnerJoin,
				On:    orders.Col("id").Eq(legacy.Col("order_id")),
			},
		},
	}

	ts := New(42,
		WithTableColumn("orders", "tenant_id"),
		WithTableColumn("legacy_invoices", "customer_ref"),
	)
	result, err := ts.TransformSelect(core)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := toSQL(t, result)
	expected := `SELECT * FROM "orders" INNER JOIN "legacy_invoices" ON "orders"."id" = "legacy_invoices"."order_id" WHERE "orders"."tenant_id" = $1 AND "legacy_invoices"."customer_ref" = $2`
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
}

// --- UPDATE and DELETE statements ---

func TestTransformUpdate(t *testing.T) {
	t.Parallel()
	orders := qom.NewTable("orders")
	stmt := &qom.UpdateStatement{
		Relation: orders,
		Values:   []*qom.AssignmentNode{qom.Assign(qom.NewAttribute(nil, "status"), qom.Literal("closed"))},
	}

	ts := New(42)
	result, err := ts.TransformUpdate(stmt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := toSQL(t, result)
	expected := `UPDATE "orders" SET "status" = $1 WHERE "orders"."tenant_id" = $2`
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
}

func TestTransformDelete(t *testing.T) {
	t.Parallel()
	orders := qom.NewTable("orders")
	stmt := &qom.DeleteStatement{Relation: orders}

	ts := New(42)
	result, err := ts.TransformDelete(stmt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, params := toSQL(t, result)
	expected := `DELETE FROM "orders" WHERE "orders"."tenant_id" = $1`
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
	if len(params) != 1 || params[0] != 42 {
		t.Errorf("expected params [42], got %v", params)
	}
}

func TestTransformDeleteSkipsUnlistedTable(t *testing.T) {
	t.Parallel()
	audit := qom.NewTable("audit_log")
	stmt := &qom.DeleteStatement{Relation: audit}

	ts := New(42, WithTables("orders"))
	result, err := ts.TransformDelete(stmt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Wheres) != 0 {
		t.Errorf("expected no wheres, got %d", len(result.Wheres))
	}
}

// --- No tables to process (nil From, no joins) ---

func TestNoTablesIsNoOp(t *testing.T) {
	t.Parallel()
	core := &qom.SelectCore{}

	ts := New(42)
	result, err := ts.TransformSelect(core)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Wheres) != 0 {
		t.Errorf("expected no wheres, got %d", len(result.Wheres))
	}
}
