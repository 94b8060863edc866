package render

import (
	"strings"
	"testing"

	"github.com/evanwray/arbor/internal/testutil"
	"github.com/evanwray/arbor/qom"
)

func TestFormattingSelectMultiLine(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	core := &qom.SelectCore{
		From:        users,
		Projections: []qom.Node{users.Col("id"), users.Col("name")},
		Wheres:      []qom.Node{users.Col("active").Eq(true)},
		Orders:      []qom.Node{users.Col("name").Asc()},
		Limit:       qom.Literal(10),
	}

	f := NewFormattingVisitor(NewPostgresVisitor(WithoutParams()))
	got := core.Accept(f)

	expected := "SELECT \"users\".\"id\"\n\t,\"users\".\"name\"\n" +
		"FROM \"users\"\n" +
		"WHERE \"users\".\"active\" = TRUE\n" +
		"ORDER BY \"users\".\"name\" ASC\n" +
		"LIMIT 10"
	testutil.AssertEqual(t, got, expected)
}

func TestFormattingCollectsParams(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	core := &qom.SelectCore{
		From:   users,
		Wheres: []qom.Node{users.Col("name").Eq("Alice")},
	}

	f := NewFormattingVisitor(NewPostgresVisitor())
	got := core.Accept(f)

	if !strings.Contains(got, "$1") {
		t.Errorf("expected a placeholder in formatted SQL, got: %s", got)
	}
	testutil.AssertParams(t, f, []any{"Alice"})
}

func TestFormattingSingleClauseWindowStaysInline(t *testing.T) {
	t.Parallel()
	sales := qom.NewTable("sales")
	core := &qom.SelectCore{
		From: sales,
		Windows: []*qom.WindowSpec{
			qom.NewWindowSpec("w").Order(sales.Col("amount").Asc()),
		},
	}

	f := NewFormattingVisitor(NewPostgresVisitor(WithoutParams()))
	got := core.Accept(f)

	if !strings.Contains(got, `"w" AS (ORDER BY "sales"."amount" ASC)`) {
		t.Errorf("expected inline single-clause window, got: %s", got)
	}
}

func TestFormattingMultiClauseWindowIndents(t *testing.T) {
	t.Parallel()
	sales := qom.NewTable("sales")
	core := &qom.SelectCore{
		From: sales,
		Windows: []*qom.WindowSpec{
			qom.NewWindowSpec("w").
				Partition(sales.Col("region")).
				Order(sales.Col("amount").Asc()).
				Rows(qom.Preceding(3), qom.CurrentRow()),
		},
	}

	f := NewFormattingVisitor(NewPostgresVisitor(WithoutParams()))
	got := core.Accept(f)

	want := "(\n\tPARTITION BY \"sales\".\"region\"" +
		"\n\tORDER BY \"sales\".\"amount\" ASC" +
		"\n\tROWS BETWEEN 3 PRECEDING AND CURRENT ROW\n)"
	if !strings.Contains(got, want) {
		t.Errorf("expected indented multi-clause window, got: %s", got)
	}
}

func TestFormattingUpdateStatement(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	stmt := &qom.UpdateStatement{
		Relation: users,
		Values: []*qom.AssignmentNode{
			qom.Assign(qom.NewAttribute(nil, "status"), qom.Literal("inactive")),
		},
		Wheres: []qom.Node{users.Col("id").Eq(1)},
	}

	f := NewFormattingVisitor(NewPostgresVisitor(WithoutParams()))
	got := stmt.Accept(f)

	if !strings.HasPrefix(got, "UPDATE \"users\"\nSET ") {
		t.Errorf("expected multi-line UPDATE, got: %s", got)
	}
	if !strings.Contains(got, "\nWHERE ") {
		t.Errorf("expected WHERE on its own line, got: %s", got)
	}
}

func TestFormattingSetOperation(t *testing.T) {
	t.Parallel()
	op := &qom.SetOperationNode{
		Left:  &qom.SelectCore{From: qom.NewTable("a")},
		Right: &qom.SelectCore{From: qom.NewTable("b")},
		Type:  qom.Union,
	}

	f := NewFormattingVisitor(NewPostgresVisitor(WithoutParams()))
	got := op.Accept(f)

	if !strings.Contains(got, "\nUNION\n") {
		t.Errorf("expected the set operator on its own line, got: %s", got)
	}
}
