package render

import "github.com/evanwray/arbor/dialect"

// MariaDBVisitor generates MariaDB-dialect SQL. It derives from the MySQL
// visitor; capability sets that name MariaDB directly (RETURNING, the
// implicit window ORDER BY requirements) diverge from MySQL through the
// dialect value alone.
type MariaDBVisitor struct {
	*MySQLVisitor
}

// NewMariaDBVisitor creates a MariaDBVisitor ready for use.
// Parameterized mode is enabled by default for SQL injection protection.
// Pass WithoutParams() to disable (not recommended for production).
func NewMariaDBVisitor(opts ...Option) *MariaDBVisitor {
	v := &MariaDBVisitor{MySQLVisitor: &MySQLVisitor{}}
	v.MySQLVisitor.baseVisitor = newMySQLBase(v, dialect.MariaDB)
	v.applyOptions(opts)
	return v
}
