package render

import (
	"encoding/hex"
	"strings"

	"github.com/evanwray/arbor/dialect"
	"github.com/evanwray/arbor/internal/quoting"
	"github.com/evanwray/arbor/qom"
)

// MySQLVisitor generates MySQL-dialect SQL.
// Identifiers are quoted with backticks: `table`.`column`.
type MySQLVisitor struct {
	*baseVisitor
}

// NewMySQLVisitor creates a MySQLVisitor ready for use.
// Parameterized mode is enabled by default for SQL injection protection.
// Pass WithoutParams() to disable (not recommended for production).
func NewMySQLVisitor(opts ...Option) *MySQLVisitor {
	v := &MySQLVisitor{}
	v.baseVisitor = newMySQLBase(v, dialect.MySQL)
	v.applyOptions(opts)
	return v
}

// newMySQLBase builds the MySQL-family baseVisitor shared with MariaDB.
func newMySQLBase(outer qom.Visitor, d dialect.Dialect) *baseVisitor {
	return &baseVisitor{
		outer:        outer,
		d:            d,
		quoteIdent:   quoting.Backtick,
		placeholder:  func(_ int) string { return "?" },
		byteLiteral:  func(b []byte) string { return "X'" + hex.EncodeToString(b) + "'" },
		typeName:     mysqlTypeName,
		parameterize: true,
	}
}

// mysqlTypeName maps semantic types to MySQL CAST target names, which are
// a restricted set distinct from column types.
func mysqlTypeName(t qom.DataType) string {
	switch t {
	case qom.TypeBoolean:
		return "UNSIGNED"
	case qom.TypeInteger, qom.TypeBigint:
		return "SIGNED"
	case qom.TypeNumeric, qom.TypeDouble:
		return "DECIMAL"
	case qom.TypeVarchar:
		return "CHAR"
	case qom.TypeTimestamp:
		return "DATETIME"
	case qom.TypeUUID:
		return "CHAR(36)"
	case qom.TypeBytes:
		return "BINARY"
	default:
		return strings.ToUpper(string(t))
	}
}

func (v *MySQLVisitor) VisitComparison(n *qom.ComparisonNode) string {
	switch n.Op {
	case qom.OpRegexp:
		return n.Left.Accept(v.outer) + " REGEXP " + n.Right.Accept(v.outer)
	case qom.OpNotRegexp:
		return n.Left.Accept(v.outer) + " NOT REGEXP " + n.Right.Accept(v.outer)
	case qom.OpCaseSensitiveEq:
		return n.Left.Accept(v.outer) + " = BINARY " + n.Right.Accept(v.outer)
	case qom.OpCaseInsensitiveEq:
		return n.Left.Accept(v.outer) + " = " + n.Right.Accept(v.outer)
	default:
		return v.baseVisitor.VisitComparison(n)
	}
}

// VisitInfix renders || as CONCAT: MySQL treats || as logical OR by default.
func (v *MySQLVisitor) VisitInfix(n *qom.InfixNode) string {
	if n.Op == qom.OpConcat {
		return "CONCAT(" + n.Left.Accept(v.outer) + ", " + n.Right.Accept(v.outer) + ")"
	}
	return v.baseVisitor.VisitInfix(n)
}
