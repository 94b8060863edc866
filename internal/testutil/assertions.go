// Package testutil provides small assertion helpers shared by package tests.
package testutil

import (
	"reflect"
	"testing"

	"github.com/evanwray/arbor/qom"
)

// AssertEqual checks that got == want and reports a descriptive error if not.
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("expected:\n  %v\ngot:\n  %v", want, got)
	}
}

// AssertSQL accepts a visitor and node, renders the SQL, and compares it
// with the expected string. A render error recorded by the visitor fails
// the test.
func AssertSQL(t *testing.T, v qom.Visitor, node qom.Node, expected string) {
	t.Helper()
	if p, ok := v.(qom.Parameterizer); ok {
		p.Reset()
	}
	got := node.Accept(v)
	if p, ok := v.(qom.Parameterizer); ok {
		if err := p.Err(); err != nil {
			t.Fatalf("unexpected render error: %v", err)
		}
	}
	if got != expected {
		t.Errorf("expected:\n  %s\ngot:\n  %s", expected, got)
	}
}

// AssertRenderError renders the node and requires the visitor to record an
// error.
func AssertRenderError(t *testing.T, v qom.Visitor, node qom.Node) error {
	t.Helper()
	p, ok := v.(qom.Parameterizer)
	if !ok {
		t.Fatalf("visitor %T does not expose render errors", v)
	}
	p.Reset()
	node.Accept(v)
	err := p.Err()
	if err == nil {
		t.Fatal("expected a render error but got nil")
	}
	return err
}

// AssertParams compares the visitor's collected bind parameters with want.
func AssertParams(t *testing.T, v qom.Visitor, want []any) {
	t.Helper()
	p, ok := v.(qom.Parameterizer)
	if !ok {
		t.Fatalf("visitor %T does not collect parameters", v)
	}
	if got := p.Params(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected params:\n  %v\ngot:\n  %v", want, got)
	}
}

// AssertNoError fails the test if err is non-nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error but got nil")
	}
}
