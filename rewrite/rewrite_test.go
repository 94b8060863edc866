package rewrite

import (
	"testing"

	"github.com/evanwray/arbor/internal/testutil"
	"github.com/evanwray/arbor/qom"
)

// --- CollectTables ---

func TestCollectTablesFromOnly(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	core := &qom.SelectCore{From: users}

	refs := CollectTables(core)
	if len(refs) != 1 {
		t.Fatalf("expected 1 table ref, got %d", len(refs))
	}
	testutil.AssertEqual(t, refs[0].Name, "users")
	if refs[0].Relation != qom.Node(users) {
		t.Error("expected the FROM relation to be preserved")
	}
}

func TestCollectTablesIncludesJoinTargets(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	orders := qom.NewTable("orders")
	core := &qom.SelectCore{
		From: users,
		Joins: []*qom.JoinNode{{
			Left:  users,
			Right: orders,
			Type:  qom.InnerJoin,
			On:    users.Col("id").Eq(orders.Col("user_id")),
		}},
	}

	refs := CollectTables(core)
	if len(refs) != 2 {
		t.Fatalf("expected 2 table refs, got %d", len(refs))
	}
	testutil.AssertEqual(t, refs[0].Name, "users")
	testutil.AssertEqual(t, refs[1].Name, "orders")
}

func TestCollectTablesLooksThroughAliases(t *testing.T) {
	t.Parallel()
	u := qom.NewTable("users").Alias("u")
	core := &qom.SelectCore{From: u}

	refs := CollectTables(core)
	if len(refs) != 1 {
		t.Fatalf("expected 1 table ref, got %d", len(refs))
	}
	// Name is the underlying table; Relation keeps the alias so column
	// references built from it stay qualified correctly.
	testutil.AssertEqual(t, refs[0].Name, "users")
	if refs[0].Relation != qom.Node(u) {
		t.Error("expected the alias relation to be preserved")
	}
}

func TestCollectTablesSkipsSubqueryJoins(t *testing.T) {
	t.Parallel()
	users := qom.NewTable("users")
	sub := &qom.SelectCore{From: qom.NewTable("orders")}
	core := &qom.SelectCore{
		From:  users,
		Joins: []*qom.JoinNode{{Left: users, Right: sub, Type: qom.InnerJoin}},
	}

	refs := CollectTables(core)
	if len(refs) != 1 {
		t.Fatalf("expected subquery join to be skipped, got %d refs", len(refs))
	}
	testutil.AssertEqual(t, refs[0].Name, "users")
}

func TestCollectTablesAliasedSubqueryFallsBackToAliasName(t *testing.T) {
	t.Parallel()
	sub := &qom.SelectCore{From: qom.NewTable("orders")}
	derived := &qom.TableAlias{Relation: sub, AliasName: "recent"}
	core := &qom.SelectCore{From: derived}

	refs := CollectTables(core)
	if len(refs) != 1 {
		t.Fatalf("expected 1 table ref, got %d", len(refs))
	}
	testutil.AssertEqual(t, refs[0].Name, "recent")
}

// --- Base transformer ---

func TestBaseTransformerIsANoOp(t *testing.T) {
	t.Parallel()
	var b Base

	core := &qom.SelectCore{From: qom.NewTable("users")}
	gotCore, err := b.TransformSelect(core)
	testutil.AssertNoError(t, err)
	if gotCore != core {
		t.Error("expected TransformSelect to return its input unchanged")
	}

	ins := &qom.InsertStatement{Relation: qom.NewTable("users")}
	gotIns, err := b.TransformInsert(ins)
	testutil.AssertNoError(t, err)
	if gotIns != ins {
		t.Error("expected TransformInsert to return its input unchanged")
	}

	upd := &qom.UpdateStatement{Relation: qom.NewTable("users")}
	gotUpd, err := b.TransformUpdate(upd)
	testutil.AssertNoError(t, err)
	if gotUpd != upd {
		t.Error("expected TransformUpdate to return its input unchanged")
	}

	del := &qom.DeleteStatement{Relation: qom.NewTable("users")}
	gotDel, err := b.TransformDelete(del)
	testutil.AssertNoError(t, err)
	if gotDel != del {
		t.Error("expected TransformDelete to return its input unchanged")
	}
}
