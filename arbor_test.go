package arbor_test

import (
	"strings"
	"testing"

	"github.com/evanwray/arbor"
	"github.com/evanwray/arbor/render"
)

// TestSimpleImportStyle demonstrates using the convenience package
func TestSimpleImportStyle(t *testing.T) {
	users := arbor.NewTable("users")

	query := arbor.NewSelect(users).
		Select(users.Col("id"), users.Col("name")).
		Where(users.Col("active").Eq(arbor.Literal(true))).
		Order(users.Col("name").Asc()).
		Limit(10)

	visitor := arbor.NewPostgresVisitor(arbor.WithoutParams())
	sql, _, err := query.ToSQL(visitor)
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	expected := `SELECT "users"."id", "users"."name" FROM "users" WHERE "users"."active" = TRUE ORDER BY "users"."name" ASC LIMIT 10`
	if sql != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, sql)
	}
}

// TestParameterisedQuery demonstrates parameterised queries
func TestParameterisedQuery(t *testing.T) {
	users := arbor.NewTable("users")

	query := arbor.NewSelect(users).
		Select(users.Col("id"), users.Col("name")).
		Where(users.Col("name").Eq(arbor.BindParam("Alice"))).
		Where(users.Col("age").Gt(arbor.BindParam(18)))

	visitor := arbor.NewPostgresVisitor()
	sql, params, err := query.ToSQL(visitor)
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	if !strings.Contains(sql, "$1") || !strings.Contains(sql, "$2") {
		t.Errorf("Expected parameterised SQL, got: %s", sql)
	}

	if len(params) != 2 {
		t.Errorf("Expected 2 params, got %d", len(params))
	}
	if params[0] != "Alice" {
		t.Errorf("Expected first param to be 'Alice', got %v", params[0])
	}
	if params[1] != 18 {
		t.Errorf("Expected second param to be 18, got %v", params[1])
	}
}

// TestAggregateFunctions demonstrates aggregate functions
func TestAggregateFunctions(t *testing.T) {
	users := arbor.NewTable("users")

	query := arbor.NewSelect(users).
		Select(
			users.Col("department"),
			arbor.Count(arbor.Star()).As("total"),
			arbor.Avg(users.Col("salary")).As("avg_salary"),
		).
		Group(users.Col("department"))

	visitor := arbor.NewPostgresVisitor(arbor.WithoutParams())
	sql, _, err := query.ToSQL(visitor)
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}

	if !strings.Contains(sql, "COUNT(*)") {
		t.Errorf("Expected COUNT(*), got: %s", sql)
	}
	if !strings.Contains(sql, "AVG(") {
		t.Errorf("Expected AVG, got: %s", sql)
	}
}

// TestMultipleDialects demonstrates rendering the same query per dialect
func TestMultipleDialects(t *testing.T) {
	users := arbor.NewTable("users")

	tests := []struct {
		name     string
		dialect  arbor.Dialect
		expected string
	}{
		{
			name:     "PostgreSQL",
			dialect:  arbor.Postgres,
			expected: `SELECT "users"."name" FROM "users" WHERE "users"."active" = TRUE`,
		},
		{
			name:     "MySQL",
			dialect:  arbor.MySQL,
			expected: "SELECT `users`.`name` FROM `users` WHERE `users`.`active` = TRUE",
		},
		{
			name:     "MariaDB",
			dialect:  arbor.MariaDB,
			expected: "SELECT `users`.`name` FROM `users` WHERE `users`.`active` = TRUE",
		},
		{
			name:     "SQLite",
			dialect:  arbor.SQLite,
			expected: `SELECT "users"."name" FROM "users" WHERE "users"."active" = TRUE`,
		},
		{
			name:     "SQLServer",
			dialect:  arbor.SQLServer,
			expected: `SELECT [users].[name] FROM [users] WHERE [users].[active] = 1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := arbor.NewSelect(users).
				Select(users.Col("name")).
				Where(users.Col("active").Eq(arbor.Literal(true)))

			cfg := arbor.Config{
				Dialect:  tt.dialect,
				Settings: arbor.Settings{InlineLiterals: true},
			}
			sql, _, err := query.ToSQL(arbor.NewVisitor(cfg))
			if err != nil {
				t.Fatalf("ToSQL failed: %v", err)
			}
			if sql != tt.expected {
				t.Errorf("Expected:\n%s\nGot:\n%s", tt.expected, sql)
			}
		})
	}
}

// TestDMLOperations demonstrates INSERT, UPDATE, DELETE
func TestDMLOperations(t *testing.T) {
	users := arbor.NewTable("users")
	visitor := arbor.NewPostgresVisitor(arbor.WithoutParams())

	// INSERT
	insertQuery := arbor.NewInsert(users).
		Columns(users.Col("name"), users.Col("email")).
		Values("Alice", "alice@example.com")

	sql, _, err := insertQuery.ToSQL(visitor)
	if err != nil {
		t.Fatalf("INSERT ToSQL failed: %v", err)
	}
	if !strings.Contains(sql, "INSERT INTO") {
		t.Errorf("Expected INSERT query, got: %s", sql)
	}

	// UPDATE
	updateQuery := arbor.NewUpdate(users).
		Set(arbor.Column("status"), "inactive").
		Where(users.Col("id").Eq(arbor.Literal(1)))

	sql, _, err = updateQuery.ToSQL(visitor)
	if err != nil {
		t.Fatalf("UPDATE ToSQL failed: %v", err)
	}
	if !strings.Contains(sql, "UPDATE") {
		t.Errorf("Expected UPDATE query, got: %s", sql)
	}

	// DELETE
	deleteQuery := arbor.NewDelete(users).
		Where(users.Col("status").Eq(arbor.Literal("deleted")))

	sql, _, err = deleteQuery.ToSQL(visitor)
	if err != nil {
		t.Fatalf("DELETE ToSQL failed: %v", err)
	}
	if !strings.Contains(sql, "DELETE FROM") {
		t.Errorf("Expected DELETE query, got: %s", sql)
	}
}

// TestRowComparison demonstrates row value expressions across dialects
func TestRowComparison(t *testing.T) {
	books := arbor.NewTable("books")
	cond := arbor.Row(books.Col("author"), books.Col("title")).
		Gt(arbor.Row(arbor.Literal("King"), arbor.Literal("It")))

	query := arbor.NewSelect(books).Where(cond)

	// Native row comparison on Postgres.
	pg, err := arbor.Render(query.CloneCore(), arbor.Config{
		Dialect:  arbor.Postgres,
		Settings: arbor.Settings{InlineLiterals: true},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(pg.SQL, `("books"."author", "books"."title") > ('King', 'It')`) {
		t.Errorf("Expected native row comparison, got: %s", pg.SQL)
	}

	// Expanded lexicographic form on SQL Server.
	ms, err := arbor.Render(query.CloneCore(), arbor.Config{
		Dialect:  arbor.SQLServer,
		Settings: arbor.Settings{InlineLiterals: true},
	})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(ms.SQL, ") > (") {
		t.Errorf("Expected expanded row comparison on SQL Server, got: %s", ms.SQL)
	}
	if !strings.Contains(ms.SQL, "OR") {
		t.Errorf("Expected lexicographic OR expansion, got: %s", ms.SQL)
	}
}

// TestRenderCollectsParams demonstrates the Render entry point
func TestRenderCollectsParams(t *testing.T) {
	users := arbor.NewTable("users")
	query := arbor.NewSelect(users).
		Select(users.Col("id")).
		Where(users.Col("email").Eq(arbor.Literal("a@b.c")))

	r, err := arbor.Render(query.CloneCore(), arbor.Config{Dialect: arbor.Postgres})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	expected := `SELECT "users"."id" FROM "users" WHERE "users"."email" = $1`
	if r.SQL != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, r.SQL)
	}
	if len(r.Params) != 1 || r.Params[0] != "a@b.c" {
		t.Errorf("Expected params [a@b.c], got %v", r.Params)
	}
}

// TestFingerprintDeterminism demonstrates structural equality via fingerprints
func TestFingerprintDeterminism(t *testing.T) {
	build := func() arbor.Node {
		users := arbor.NewTable("users")
		return arbor.NewSelect(users).
			Select(users.Col("id")).
			Where(users.Col("active").Eq(arbor.Literal(true))).
			CloneCore()
	}

	a, b := build(), build()
	if render.Fingerprint(a) != render.Fingerprint(b) {
		t.Error("expected identical queries to share a fingerprint")
	}
	if render.HashKey(a) != render.HashKey(b) {
		t.Error("expected identical queries to share a hash key")
	}

	users := arbor.NewTable("users")
	other := arbor.NewSelect(users).
		Select(users.Col("id")).
		Where(users.Col("active").Eq(arbor.Literal(false))).
		CloneCore()
	if render.Fingerprint(a) == render.Fingerprint(other) {
		t.Error("expected differing queries to differ in fingerprint")
	}
}

// TestAlterTypeFacade demonstrates the ALTER TYPE entry point
func TestAlterTypeFacade(t *testing.T) {
	sql, err := arbor.NewAlterType("mood").
		AddValue("meh").
		ToSQL(arbor.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("ToSQL failed: %v", err)
	}
	expected := `ALTER TYPE "mood" ADD VALUE 'meh'`
	if sql != expected {
		t.Errorf("Expected:\n%s\nGot:\n%s", expected, sql)
	}
}
