package render

import (
	"encoding/hex"

	"github.com/evanwray/arbor/dialect"
	"github.com/evanwray/arbor/internal/quoting"
	"github.com/evanwray/arbor/qom"
)

// SQLiteVisitor generates SQLite-dialect SQL.
// Identifiers are quoted with double quotes: "table"."column" (ANSI SQL).
type SQLiteVisitor struct {
	*baseVisitor
}

// NewSQLiteVisitor creates a SQLiteVisitor ready for use.
// Parameterized mode is enabled by default for SQL injection protection.
// Pass WithoutParams() to disable (not recommended for production).
func NewSQLiteVisitor(opts ...Option) *SQLiteVisitor {
	v := &SQLiteVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:        v,
		d:            dialect.SQLite,
		quoteIdent:   quoting.DoubleQuote,
		placeholder:  func(_ int) string { return "?" },
		byteLiteral:  func(b []byte) string { return "X'" + hex.EncodeToString(b) + "'" },
		typeName:     upperTypeName,
		parameterize: true,
	}
	v.applyOptions(opts)
	return v
}

func (v *SQLiteVisitor) VisitComparison(n *qom.ComparisonNode) string {
	switch n.Op {
	case qom.OpRegexp:
		return n.Left.Accept(v.outer) + " REGEXP " + n.Right.Accept(v.outer)
	case qom.OpNotRegexp:
		return n.Left.Accept(v.outer) + " NOT REGEXP " + n.Right.Accept(v.outer)
	case qom.OpCaseSensitiveEq:
		return n.Left.Accept(v.outer) + " = " + n.Right.Accept(v.outer) + " COLLATE BINARY"
	case qom.OpCaseInsensitiveEq:
		return n.Left.Accept(v.outer) + " = " + n.Right.Accept(v.outer) + " COLLATE NOCASE"
	default:
		return v.baseVisitor.VisitComparison(n)
	}
}
