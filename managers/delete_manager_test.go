package managers

import (
	"testing"

	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/render"
)

// --- NewDeleteManager ---

func TestNewDeleteManager(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	m := NewDeleteManager(users)
	if m.Statement.Relation != users {
		t.Error("expected Relation to be users")
	}
}

// --- Where ---

func TestDeleteWhere(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	m := NewDeleteManager(users).
		Where(users.Col("id").Eq(1))
	if len(m.Statement.Wheres) != 1 {
		t.Errorf("expected 1 where, got %d", len(m.Statement.Wheres))
	}
}

func TestDeleteWhereAppends(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	m := NewDeleteManager(users).
		Where(users.Col("id").Eq(1)).
		Where(users.Col("active").Eq(false))
	if len(m.Statement.Wheres) != 2 {
		t.Errorf("expected 2 wheres, got %d", len(m.Statement.Wheres))
	}
}

// --- Order / Limit ---

func TestDeleteOrderAndLimit(t *testing.T) {
	t.Parallel()
	logs := qom.NewTable("logs")
	m := NewDeleteManager(logs).
		Order(logs.Col("created_at").Asc()).
		Limit(1000)
	if len(m.Statement.Orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(m.Statement.Orders))
	}
	if m.Statement.Limit == nil {
		t.Error("expected limit to be set")
	}
}

// --- Returning ---

func TestDeleteReturning(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	m := NewDeleteManager(users).
		Where(users.Col("id").Eq(1)).
		Returning(users.Col("id"))
	if len(m.Statement.Returning) != 1 {
		t.Errorf("expected 1 returning column, got %d", len(m.Statement.Returning))
	}
}

// --- ToSQL ---

func TestDeleteToSQL(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	m := NewDeleteManager(users).
		Where(users.Col("id").Eq(1))

	sql, params, err := m.ToSQL(render.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `DELETE FROM "users" WHERE "users"."id" = $1`
	if sql != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, sql)
	}
	if len(params) != 1 || params[0] != 1 {
		t.Errorf("expected params [1], got %v", params)
	}
}

func TestDeleteToSQLNoWhere(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	m := NewDeleteManager(users)

	sql, _, err := m.ToSQL(render.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sql != `DELETE FROM "users"` {
		t.Errorf("unexpected SQL: %q", sql)
	}
}

// --- Transformers ---

func TestDeleteTransformerCalled(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	ct := &countingTransformer{}
	m := NewDeleteManager(users).
		Where(users.Col("id").Eq(1))
	m.Use(ct)

	_, _, err := m.ToSQL(render.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ct.called != 1 {
		t.Errorf("expected transformer called once, got %d", ct.called)
	}
}

func TestDeleteTransformerDoesNotModifyOriginal(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	ct := &countingTransformer{}
	m := NewDeleteManager(users).
		Where(users.Col("id").Eq(1))
	m.Use(ct)

	_, _, _ = m.ToSQL(render.NewPostgresVisitor())

	if len(m.Statement.Wheres) != 1 {
		t.Errorf("expected original to have 1 where, got %d", len(m.Statement.Wheres))
	}
}

func TestDeleteTransformerErrorStopsGeneration(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	m := NewDeleteManager(users)
	m.Use(failingTransformer{})

	sql, _, err := m.ToSQL(render.NewPostgresVisitor())
	if err == nil {
		t.Fatal("expected error from failing transformer")
	}
	if sql != "" {
		t.Errorf("expected empty SQL on error, got %q", sql)
	}
}
