package render

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/evanwray/arbor/dialect"
	"github.com/evanwray/arbor/internal/quoting"
	"github.com/evanwray/arbor/qom"
)

// SQLServerVisitor generates Transact-SQL.
// Identifiers are quoted with brackets: [table].[column]. Pagination uses
// OFFSET ... FETCH, and predicates with no Boolean literal (TRUE/FALSE,
// row value expressions, DISTINCT predicates) render their expansions.
type SQLServerVisitor struct {
	*baseVisitor
}

// NewSQLServerVisitor creates a SQLServerVisitor ready for use.
// Parameterized mode is enabled by default for SQL injection protection.
// Pass WithoutParams() to disable (not recommended for production).
func NewSQLServerVisitor(opts ...Option) *SQLServerVisitor {
	v := &SQLServerVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:        v,
		d:            dialect.SQLServer,
		quoteIdent:   quoting.Bracket,
		placeholder:  func(i int) string { return fmt.Sprintf("@p%d", i) },
		byteLiteral:  func(b []byte) string { return "0x" + hex.EncodeToString(b) },
		typeName:     sqlserverTypeName,
		parameterize: true,
	}
	v.applyOptions(opts)
	return v
}

// sqlserverTypeName maps semantic types to T-SQL type names.
func sqlserverTypeName(t qom.DataType) string {
	switch t {
	case qom.TypeBoolean:
		return "BIT"
	case qom.TypeInteger:
		return "INT"
	case qom.TypeDouble:
		return "FLOAT"
	case qom.TypeVarchar:
		return "NVARCHAR(MAX)"
	case qom.TypeTimestamp:
		return "DATETIME2"
	case qom.TypeUUID:
		return "UNIQUEIDENTIFIER"
	case qom.TypeBytes:
		return "VARBINARY(MAX)"
	default:
		return strings.ToUpper(string(t))
	}
}

func (v *SQLServerVisitor) VisitComparison(n *qom.ComparisonNode) string {
	switch n.Op {
	case qom.OpRegexp, qom.OpNotRegexp:
		return v.unsupported("regular expression match")
	case qom.OpCaseSensitiveEq:
		return n.Left.Accept(v.outer) + " = " + n.Right.Accept(v.outer) + " COLLATE Latin1_General_CS_AS"
	default:
		return v.baseVisitor.VisitComparison(n)
	}
}

// VisitInfix renders || as +: T-SQL concatenates strings with +.
func (v *SQLServerVisitor) VisitInfix(n *qom.InfixNode) string {
	if n.Op == qom.OpConcat {
		return n.Left.Accept(v.outer) + " + " + n.Right.Accept(v.outer)
	}
	return v.baseVisitor.VisitInfix(n)
}
