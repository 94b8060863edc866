package render

import (
	"encoding/hex"
	"fmt"

	"github.com/evanwray/arbor/dialect"
	"github.com/evanwray/arbor/internal/quoting"
)

// PostgresVisitor generates PostgreSQL-dialect SQL.
// Identifiers are quoted with double quotes: "table"."column".
type PostgresVisitor struct {
	*baseVisitor
}

// NewPostgresVisitor creates a PostgresVisitor ready for use.
// Parameterized mode is enabled by default for SQL injection protection.
// Pass WithoutParams() to disable (not recommended for production).
func NewPostgresVisitor(opts ...Option) *PostgresVisitor {
	v := &PostgresVisitor{}
	v.baseVisitor = &baseVisitor{
		outer:        v,
		d:            dialect.Postgres,
		quoteIdent:   quoting.DoubleQuote,
		placeholder:  func(i int) string { return fmt.Sprintf("$%d", i) },
		byteLiteral:  func(b []byte) string { return `'\x` + hex.EncodeToString(b) + "'" },
		typeName:     upperTypeName,
		parameterize: true,
	}
	v.applyOptions(opts)
	return v
}
