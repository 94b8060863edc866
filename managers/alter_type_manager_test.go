package managers

import (
	"errors"
	"testing"

	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/render"
)

func TestAlterTypeRenameTo(t *testing.T) {
	t.Parallel()
	m := NewAlterTypeManager("mood").RenameTo("sentiment")

	sql, err := m.ToSQL(render.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `ALTER TYPE "mood" RENAME TO "sentiment"`
	if sql != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, sql)
	}
}

func TestAlterTypeSetSchema(t *testing.T) {
	t.Parallel()
	m := NewAlterTypeManager("mood").SetSchema("archive")

	sql, err := m.ToSQL(render.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `ALTER TYPE "mood" SET SCHEMA "archive"`
	if sql != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, sql)
	}
}

func TestAlterTypeAddValue(t *testing.T) {
	t.Parallel()
	m := NewAlterTypeManager("mood").AddValue("meh")

	sql, err := m.ToSQL(render.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `ALTER TYPE "mood" ADD VALUE 'meh'`
	if sql != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, sql)
	}
}

func TestAlterTypeAddValueBefore(t *testing.T) {
	t.Parallel()
	m := NewAlterTypeManager("mood").AddValueBefore("meh", "sad")

	sql, err := m.ToSQL(render.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `ALTER TYPE "mood" ADD VALUE 'meh' BEFORE 'sad'`
	if sql != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, sql)
	}
}

func TestAlterTypeAddValueAfter(t *testing.T) {
	t.Parallel()
	m := NewAlterTypeManager("mood").AddValueAfter("meh", "happy")

	sql, err := m.ToSQL(render.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `ALTER TYPE "mood" ADD VALUE 'meh' AFTER 'happy'`
	if sql != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, sql)
	}
}

func TestAlterTypeRenameValue(t *testing.T) {
	t.Parallel()
	m := NewAlterTypeManager("mood").RenameValue("meh", "indifferent")

	sql, err := m.ToSQL(render.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `ALTER TYPE "mood" RENAME VALUE 'meh' TO 'indifferent'`
	if sql != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, sql)
	}
}

func TestAlterTypeInSchema(t *testing.T) {
	t.Parallel()
	m := NewAlterTypeManager("mood").InSchema("app").AddValue("meh")

	sql, err := m.ToSQL(render.NewPostgresVisitor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `ALTER TYPE "app"."mood" ADD VALUE 'meh'`
	if sql != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, sql)
	}
}

func TestAlterTypeLastActionWins(t *testing.T) {
	t.Parallel()
	m := NewAlterTypeManager("mood").
		RenameTo("sentiment").
		AddValue("meh")

	if _, ok := m.Statement.Action.(qom.AddEnumValue); !ok {
		t.Errorf("expected last action to win, got %T", m.Statement.Action)
	}
}

func TestAlterTypeWithoutActionFails(t *testing.T) {
	t.Parallel()
	m := NewAlterTypeManager("mood")

	_, err := m.ToSQL(render.NewPostgresVisitor())
	if err == nil {
		t.Fatal("expected error for missing action")
	}
}

func TestAlterTypeUnsupportedDialect(t *testing.T) {
	t.Parallel()
	m := NewAlterTypeManager("mood").AddValue("meh")

	_, err := m.ToSQL(render.NewMySQLVisitor())
	if err == nil {
		t.Fatal("expected error on mysql")
	}
	var dErr *render.DialectNotSupportedError
	if !errors.As(err, &dErr) {
		t.Errorf("expected DialectNotSupportedError, got %T", err)
	}
}
