// Package rewrite defines the Transformer interface for statement
// middleware: hooks that receive a statement copy before rendering and
// return a (possibly) rewritten one.
package rewrite

import "github.com/evanwray/arbor/qom"

// Transformer is the interface that statement transformation middleware
// implements. Implementations embed Base and override only the methods
// they need.
type Transformer interface {
	TransformSelect(core *qom.SelectCore) (*qom.SelectCore, error)
	TransformInsert(stmt *qom.InsertStatement) (*qom.InsertStatement, error)
	TransformUpdate(stmt *qom.UpdateStatement) (*qom.UpdateStatement, error)
	TransformDelete(stmt *qom.DeleteStatement) (*qom.DeleteStatement, error)
}

// Base provides no-op defaults for all Transformer methods.
// Middleware embeds this and overrides only the methods it cares about.
type Base struct{}

func (Base) TransformSelect(c *qom.SelectCore) (*qom.SelectCore, error) {
	return c, nil
}
func (Base) TransformInsert(s *qom.InsertStatement) (*qom.InsertStatement, error) {
	return s, nil
}
func (Base) TransformUpdate(s *qom.UpdateStatement) (*qom.UpdateStatement, error) {
	return s, nil
}
func (Base) TransformDelete(s *qom.DeleteStatement) (*qom.DeleteStatement, error) {
	return s, nil
}
