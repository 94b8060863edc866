// Package arbor provides a fluent, dialect-aware SQL query builder for Go.
//
// This package re-exports commonly used types and functions from subpackages
// for convenience. Advanced users can import subpackages directly:
//   - github.com/evanwray/arbor/managers (query builders)
//   - github.com/evanwray/arbor/qom (query object model nodes)
//   - github.com/evanwray/arbor/render (per-dialect SQL generation)
//   - github.com/evanwray/arbor/dialect (dialect identifiers and capabilities)
//   - github.com/evanwray/arbor/rewrite (statement transformers)
package arbor

import (
	"github.com/evanwray/arbor/dialect"
	"github.com/evanwray/arbor/managers"
	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/render"
)

// --- Manager Types ---

// SelectManager provides a fluent API for building SELECT queries.
type SelectManager = managers.SelectManager

// InsertManager provides a fluent API for building INSERT queries.
type InsertManager = managers.InsertManager

// UpdateManager provides a fluent API for building UPDATE queries.
type UpdateManager = managers.UpdateManager

// DeleteManager provides a fluent API for building DELETE queries.
type DeleteManager = managers.DeleteManager

// AlterTypeManager provides a fluent API for ALTER TYPE statements.
type AlterTypeManager = managers.AlterTypeManager

// --- Manager Constructors ---

// NewSelect creates a new SelectManager with the given table as FROM.
func NewSelect(from qom.Node) *managers.SelectManager {
	return managers.NewSelectManager(from)
}

// NewInsert creates a new InsertManager for inserting into the given table.
func NewInsert(into *qom.Table) *managers.InsertManager {
	return managers.NewInsertManager(into)
}

// NewUpdate creates a new UpdateManager for updating the given table.
func NewUpdate(table *qom.Table) *managers.UpdateManager {
	return managers.NewUpdateManager(table)
}

// NewDelete creates a new DeleteManager for deleting from the given table.
func NewDelete(from *qom.Table) *managers.DeleteManager {
	return managers.NewDeleteManager(from)
}

// NewAlterType creates a new AlterTypeManager for the named enum type.
func NewAlterType(typeName string) *managers.AlterTypeManager {
	return managers.NewAlterTypeManager(typeName)
}

// --- Core Node Types ---

// Table represents a SQL table reference.
type Table = qom.Table

// Attribute represents a column reference (e.g., table.column).
type Attribute = qom.Attribute

// Node is the base interface all query object model nodes implement.
type Node = qom.Node

// --- Common Node Constructors ---

// NewTable creates a new table reference.
func NewTable(name string) *qom.Table {
	return qom.NewTable(name)
}

// Literal creates a SQL literal node (e.g., numbers, strings).
func Literal(value any) qom.Node {
	return qom.Literal(value)
}

// BindParam creates a parameterised placeholder (e.g., $1, ?).
func BindParam(value any) *qom.BindParamNode {
	return qom.NewBindParam(value)
}

// Column creates an unqualified column reference, e.g. for SET clauses.
func Column(name string) *qom.Attribute {
	return qom.NewAttribute(nil, name)
}

// Star creates an unqualified star (*) for SELECT *.
func Star() *qom.StarNode {
	return qom.Star()
}

// Row creates a row value expression, e.g. (a, b) for row comparisons.
func Row(first qom.Node, rest ...qom.Node) *qom.RowNode {
	return qom.Row(first, rest...)
}

// --- Aggregate Functions ---

// Count creates a COUNT(expr) aggregate. Pass nil for COUNT(*).
func Count(expr qom.Node) *qom.AggregateNode {
	return qom.Count(expr)
}

// Sum creates a SUM(expr) aggregate.
func Sum(expr qom.Node) *qom.AggregateNode {
	return qom.Sum(expr)
}

// Avg creates an AVG(expr) aggregate.
func Avg(expr qom.Node) *qom.AggregateNode {
	return qom.Avg(expr)
}

// Min creates a MIN(expr) aggregate.
func Min(expr qom.Node) *qom.AggregateNode {
	return qom.Min(expr)
}

// Max creates a MAX(expr) aggregate.
func Max(expr qom.Node) *qom.AggregateNode {
	return qom.Max(expr)
}

// CountDistinct creates a COUNT(DISTINCT expr) aggregate.
func CountDistinct(expr qom.Node) *qom.AggregateNode {
	return qom.CountDistinct(expr)
}

// --- Rendering ---

// Dialect identifies a SQL dialect.
type Dialect = dialect.Dialect

// Rendering targets.
const (
	Postgres  = dialect.Postgres
	MySQL     = dialect.MySQL
	MariaDB   = dialect.MariaDB
	SQLite    = dialect.SQLite
	SQLServer = dialect.SQLServer
)

// Config selects the target dialect and rendering settings.
type Config = render.Config

// Settings adjusts rendering behaviour independently of the dialect.
type Settings = render.Settings

// Rendered is the result of rendering a statement: SQL plus bind parameters.
type Rendered = render.Rendered

// Render walks the node with a fresh visitor for the configured dialect.
func Render(node qom.Node, cfg Config) (Rendered, error) {
	return render.Render(node, cfg)
}

// NewVisitor creates a visitor for the configured dialect. The returned
// visitor also implements qom.Parameterizer.
func NewVisitor(cfg Config) qom.Visitor {
	return render.New(cfg)
}

// --- Visitor Constructors ---

// NewPostgresVisitor creates a new PostgreSQL visitor.
func NewPostgresVisitor(opts ...render.Option) *render.PostgresVisitor {
	return render.NewPostgresVisitor(opts...)
}

// NewMySQLVisitor creates a new MySQL visitor.
func NewMySQLVisitor(opts ...render.Option) *render.MySQLVisitor {
	return render.NewMySQLVisitor(opts...)
}

// NewMariaDBVisitor creates a new MariaDB visitor.
func NewMariaDBVisitor(opts ...render.Option) *render.MariaDBVisitor {
	return render.NewMariaDBVisitor(opts...)
}

// NewSQLiteVisitor creates a new SQLite visitor.
func NewSQLiteVisitor(opts ...render.Option) *render.SQLiteVisitor {
	return render.NewSQLiteVisitor(opts...)
}

// NewSQLServerVisitor creates a new SQL Server visitor.
func NewSQLServerVisitor(opts ...render.Option) *render.SQLServerVisitor {
	return render.NewSQLServerVisitor(opts...)
}

// --- Visitor Options ---

// WithoutParams disables parameterised query mode: literals are escaped into
// the SQL text instead of being collected as bind parameters.
//
// ⚠️ WARNING: Disables SQL injection protection. Only use for debugging or when
// you're certain all values are trusted. Production code should NEVER use this option.
func WithoutParams() render.Option {
	return render.WithoutParams()
}

// WithInListPadding pads IN list placeholders to the next power of two so
// prepared statement caches see fewer distinct SQL shapes.
func WithInListPadding() render.Option {
	return render.WithInListPadding()
}
