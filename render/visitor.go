// Package render provides SQL dialect generators that walk the query
// object model. Each dialect visitor renders constructs natively where the
// dialect has the syntax and falls back to a Boolean or functional
// emulation where it does not.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/evanwray/arbor/dialect"
	"github.com/evanwray/arbor/internal/quoting"
	"github.com/evanwray/arbor/qom"
)

// Operator SQL strings for InfixOp values.
var infixOpSQL = [...]string{
	qom.OpPlus:       "+",
	qom.OpMinus:      "-",
	qom.OpMultiply:   "*",
	qom.OpDivide:     "/",
	qom.OpBitwiseAnd: "&",
	qom.OpBitwiseOr:  "|",
	qom.OpBitwiseXor: "^",
	qom.OpShiftLeft:  "<<",
	qom.OpShiftRight: ">>",
	qom.OpConcat:     "||",
}

// needsParens returns true if the node should be wrapped in parentheses
// when used as a child of an infix or unary math expression.
func needsParens(n qom.Node) bool {
	switch n.(type) {
	case *qom.InfixNode, *qom.UnaryMathNode:
		return true
	}
	return false
}

// Operator SQL strings for ComparisonOp values.
var comparisonOpSQL = [...]string{
	qom.OpEq:                "=",
	qom.OpNotEq:             "<>",
	qom.OpGt:                ">",
	qom.OpGtEq:              ">=",
	qom.OpLt:                "<",
	qom.OpLtEq:              "<=",
	qom.OpLike:              "LIKE",
	qom.OpNotLike:           "NOT LIKE",
	qom.OpRegexp:            "~",
	qom.OpNotRegexp:         "!~",
	qom.OpDistinctFrom:      "IS DISTINCT FROM",
	qom.OpNotDistinctFrom:   "IS NOT DISTINCT FROM",
	qom.OpCaseSensitiveEq:   "=",
	qom.OpCaseInsensitiveEq: "=",
}

// SQL keywords for JoinType values.
var joinTypeSQL = [...]string{
	qom.InnerJoin:      "INNER JOIN",
	qom.LeftOuterJoin:  "LEFT OUTER JOIN",
	qom.RightOuterJoin: "RIGHT OUTER JOIN",
	qom.FullOuterJoin:  "FULL OUTER JOIN",
	qom.CrossJoin:      "CROSS JOIN",
	qom.StringJoin:     "",
}

// SQL keywords for SetOpType values.
var setOpTypeSQL = [...]string{
	qom.Union:        "UNION",
	qom.UnionAll:     "UNION ALL",
	qom.Intersect:    "INTERSECT",
	qom.IntersectAll: "INTERSECT ALL",
	qom.Except:       "EXCEPT",
	qom.ExceptAll:    "EXCEPT ALL",
}

// Option configures a visitor at construction time.
type Option func(*baseVisitor)

// WithoutParams disables parameterized query mode.
//
// ⚠️ WARNING: Disables SQL injection protection. Only use for debugging or when
// you're certain all values are trusted. Production code should NEVER use this option.
//
// When disabled, literal values are interpolated directly into the SQL string
// with basic escaping only. This is convenient for debugging but creates serious
// security vulnerabilities with untrusted input.
func WithoutParams() Option {
	return func(b *baseVisitor) {
		b.parameterize = false
	}
}

// WithInListPadding pads IN lists to the next power of two by repeating the
// last element. Queries whose IN lists differ only in length then share an
// execution plan cache entry.
func WithInListPadding() Option {
	return func(b *baseVisitor) {
		b.inListPadding = true
	}
}

// baseVisitor implements the shared SQL generation logic used by all dialects.
// Dialect-specific visitors embed *baseVisitor and set the outer field to
// themselves, enabling correct virtual dispatch through the Visitor interface.
type baseVisitor struct {
	// outer is the concrete dialect visitor. All recursive Accept calls
	// go through outer so that dialect overrides are respected.
	outer qom.Visitor

	// d is the target dialect, consulted through capability sets.
	d dialect.Dialect

	// quoteIdent quotes a SQL identifier (table name, column name).
	quoteIdent func(string) string

	// placeholder returns the bind placeholder for a given parameter index.
	// PostgreSQL uses $1, $2; MySQL/SQLite use ?; SQL Server uses @p1, @p2.
	placeholder func(int) string

	// byteLiteral renders a binary literal in inline mode.
	byteLiteral func([]byte) string

	// typeName maps a semantic data type to the dialect's CAST target name.
	typeName func(qom.DataType) string

	// parameterize enables bind-parameter mode.
	parameterize bool

	// inListPadding enables IN list padding to powers of two.
	inListPadding bool

	// params accumulates bind parameter values during SQL generation.
	params []any

	// paramIndex tracks the next parameter number (1-based).
	paramIndex int

	// err holds the first render failure. Once set, visit results are
	// meaningless and the caller must discard the SQL string.
	err error

	// windowFunc is the function whose OVER clause is currently being
	// rendered, nil outside a window specification. It decides whether an
	// implicit ORDER BY must be injected for the dialect.
	windowFunc *qom.WindowFunc
}

// applyOptions applies functional options to the baseVisitor.
func (b *baseVisitor) applyOptions(opts []Option) {
	for _, o := range opts {
		o(b)
	}
}

// Params returns the collected bind parameters from the last SQL generation.
func (b *baseVisitor) Params() []any {
	return b.params
}

// Reset clears collected parameters and any recorded error for reuse.
func (b *baseVisitor) Reset() {
	b.params = nil
	b.paramIndex = 0
	b.err = nil
}

// Err returns the first error recorded during the last SQL generation.
// A non-nil result means the SQL string must be discarded.
func (b *baseVisitor) Err() error {
	return b.err
}

// fail records the first render error and returns an empty fragment.
func (b *baseVisitor) fail(err error) string {
	if b.err == nil {
		b.err = err
	}
	return ""
}

// unsupported records a DialectNotSupportedError for the construct.
func (b *baseVisitor) unsupported(construct string) string {
	return b.fail(&DialectNotSupportedError{Construct: construct, Dialect: b.d})
}

func (b *baseVisitor) VisitTable(n *qom.Table) string {
	return b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitTableAlias(n *qom.TableAlias) string {
	if tbl, ok := n.Relation.(*qom.Table); ok {
		return b.quoteIdent(tbl.Name) + " AS " + b.quoteIdent(n.AliasName)
	}
	return "(" + n.Relation.Accept(b.outer) + ") AS " + b.quoteIdent(n.AliasName)
}

func (b *baseVisitor) VisitAttribute(n *qom.Attribute) string {
	if n.Relation == nil {
		return b.quoteIdent(n.Name)
	}
	return b.quoteIdent(qom.RelationName(n.Relation)) + "." + b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitLiteral(n *qom.LiteralNode) string {
	return b.literalToSQL(n.Value)
}

func (b *baseVisitor) literalToSQL(val any) string {
	// nil always renders as NULL keyword, never parameterized.
	if val == nil {
		return "NULL"
	}

	// In parameterize mode, emit a placeholder and collect the value.
	if b.parameterize {
		b.paramIndex++
		b.params = append(b.params, val)
		return b.placeholder(b.paramIndex)
	}

	switch v := val.(type) {
	case string:
		return "'" + quoting.EscapeString(v) + "'"
	case bool:
		if !dialect.BooleanLiterals.Contains(b.d) {
			if v {
				return "1"
			}
			return "0"
		}
		if v {
			return "TRUE"
		}
		return "FALSE"
	case int:
		return strconv.Itoa(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint8:
		return strconv.FormatUint(uint64(v), 10)
	case uint16:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case decimal.Decimal:
		return v.String()
	case uuid.UUID:
		return "'" + v.String() + "'"
	case time.Time:
		return "'" + v.Format("2006-01-02 15:04:05.999999") + "'"
	case []byte:
		return b.byteLiteral(v)
	default:
		return b.fail(&qom.IllegalStateError{
			Construct: "literal",
			Detail:    fmt.Sprintf("unsupported literal type %T", v),
		})
	}
}

func (b *baseVisitor) VisitStar(n *qom.StarNode) string {
	if n.Table != nil {
		return b.quoteIdent(n.Table.Name) + ".*"
	}
	return "*"
}

func (b *baseVisitor) VisitSqlLiteral(n *qom.SqlLiteral) string {
	if b.parameterize && len(n.Binds) > 0 {
		b.params = append(b.params, n.Binds...)
		for range n.Binds {
			b.paramIndex++
		}
	}
	return n.Raw
}

func (b *baseVisitor) VisitComparison(n *qom.ComparisonNode) string {
	switch n.Op {
	case qom.OpDistinctFrom:
		return b.distinctSQL(n.Left, n.Right, true)
	case qom.OpNotDistinctFrom:
		return b.distinctSQL(n.Left, n.Right, false)
	case qom.OpCaseInsensitiveEq:
		return "LOWER(" + n.Left.Accept(b.outer) + ") = LOWER(" + n.Right.Accept(b.outer) + ")"
	}
	left := n.Left.Accept(b.outer)
	right := n.Right.Accept(b.outer)
	return left + " " + comparisonOpSQL[n.Op] + " " + right
}

// distinctSQL renders a NULL-safe (in)equality using whatever the dialect
// offers: the DISTINCT predicate, <=>, the IS operator, or a Boolean
// expansion that is TRUE or FALSE for every input, never NULL.
func (b *baseVisitor) distinctSQL(l, r qom.Node, negate bool) string {
	switch {
	case dialect.DistinctPredicate.Contains(b.d):
		op := " IS NOT DISTINCT FROM "
		if negate {
			op = " IS DISTINCT FROM "
		}
		return l.Accept(b.outer) + op + r.Accept(b.outer)
	case dialect.NullSafeEqualOperator.Contains(b.d):
		s := l.Accept(b.outer) + " <=> " + r.Accept(b.outer)
		if negate {
			return "NOT (" + s + ")"
		}
		return s
	case dialect.NullSafeIsOperator.Contains(b.d):
		op := " IS "
		if negate {
			op = " IS NOT "
		}
		return l.Accept(b.outer) + op + r.Accept(b.outer)
	default:
		s := b.notDistinctExpansion(l, r)
		if negate {
			return "NOT " + s
		}
		return s
	}
}

// notDistinctExpansion renders the three-valued-logic-proof equivalent of
// IS NOT DISTINCT FROM. Operands are visited in textual order so bind
// parameters line up with their placeholders.
func (b *baseVisitor) notDistinctExpansion(l, r qom.Node) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(l.Accept(b.outer))
	sb.WriteString(" = ")
	sb.WriteString(r.Accept(b.outer))
	sb.WriteString(" AND ")
	sb.WriteString(l.Accept(b.outer))
	sb.WriteString(" IS NOT NULL AND ")
	sb.WriteString(r.Accept(b.outer))
	sb.WriteString(" IS NOT NULL OR ")
	sb.WriteString(l.Accept(b.outer))
	sb.WriteString(" IS NULL AND ")
	sb.WriteString(r.Accept(b.outer))
	sb.WriteString(" IS NULL)")
	return sb.String()
}

func (b *baseVisitor) VisitUnary(n *qom.UnaryNode) string {
	expr := n.Expr.Accept(b.outer)
	switch n.Op {
	case qom.OpIsNull:
		return expr + " IS NULL"
	case qom.OpIsNotNull:
		return expr + " IS NOT NULL"
	default:
		return expr
	}
}

func (b *baseVisitor) VisitAnd(n *qom.AndNode) string {
	left := n.Left.Accept(b.outer)
	right := n.Right.Accept(b.outer)
	return left + " AND " + right
}

func (b *baseVisitor) VisitOr(n *qom.OrNode) string {
	left := n.Left.Accept(b.outer)
	right := n.Right.Accept(b.outer)
	return left + " OR " + right
}

func (b *baseVisitor) VisitNot(n *qom.NotNode) string {
	return "NOT (" + n.Expr.Accept(b.outer) + ")"
}

func (b *baseVisitor) VisitBool(n *qom.BoolNode) string {
	// NoCondition is eliminated during composition; if one survives to
	// rendering it behaves as the neutral TRUE.
	truth := n.Kind != qom.KindFalse
	if dialect.BooleanLiterals.Contains(b.d) {
		if truth {
			return "TRUE"
		}
		return "FALSE"
	}
	if truth {
		return "1 = 1"
	}
	return "1 = 0"
}

func (b *baseVisitor) VisitIn(n *qom.InNode) string {
	expr := n.Expr.Accept(b.outer)
	items := n.Vals
	if b.inListPadding {
		items = padInList(items)
	}
	vals := make([]string, len(items))
	for i, v := range items {
		vals[i] = v.Accept(b.outer)
	}
	keyword := "IN"
	if n.Negate {
		keyword = "NOT IN"
	}
	return expr + " " + keyword + " (" + strings.Join(vals, ", ") + ")"
}

// padInList pads the list to the next power of two by repeating the last
// element. Result semantics are unchanged; plan caches see fewer distinct
// list lengths.
func padInList[T any](items []T) []T {
	n := len(items)
	if n < 2 {
		return items
	}
	target := 1
	for target < n {
		target <<= 1
	}
	if target == n {
		return items
	}
	out := make([]T, 0, target)
	out = append(out, items...)
	last := items[n-1]
	for len(out) < target {
		out = append(out, last)
	}
	return out
}

func (b *baseVisitor) VisitBetween(n *qom.BetweenNode) string {
	if n.Symmetric && !dialect.BetweenSymmetric.Contains(b.d) {
		// (expr BETWEEN low AND high OR expr BETWEEN high AND low)
		var sb strings.Builder
		sb.WriteString("(")
		sb.WriteString(n.Expr.Accept(b.outer))
		sb.WriteString(" BETWEEN ")
		sb.WriteString(n.Low.Accept(b.outer))
		sb.WriteString(" AND ")
		sb.WriteString(n.High.Accept(b.outer))
		sb.WriteString(" OR ")
		sb.WriteString(n.Expr.Accept(b.outer))
		sb.WriteString(" BETWEEN ")
		sb.WriteString(n.High.Accept(b.outer))
		sb.WriteString(" AND ")
		sb.WriteString(n.Low.Accept(b.outer))
		sb.WriteString(")")
		if n.Negate {
			return "NOT " + sb.String()
		}
		return sb.String()
	}

	expr := n.Expr.Accept(b.outer)
	low := n.Low.Accept(b.outer)
	high := n.High.Accept(b.outer)
	keyword := "BETWEEN"
	if n.Negate {
		keyword = "NOT BETWEEN"
	}
	if n.Symmetric {
		keyword += " SYMMETRIC"
	}
	return expr + " " + keyword + " " + low + " AND " + high
}

func (b *baseVisitor) VisitRow(n *qom.RowNode) string {
	vals := make([]string, len(n.Exprs))
	for i, e := range n.Exprs {
		vals[i] = e.Accept(b.outer)
	}
	return "(" + strings.Join(vals, ", ") + ")"
}

func (b *baseVisitor) VisitRowComparison(n *qom.RowComparisonNode) string {
	right, ok := n.Right.(*qom.RowNode)
	if !ok {
		// Subquery comparand: native row syntax only, no expansion exists.
		if !dialect.RowValueExpressions.Contains(b.d) {
			return b.unsupported("row value expression")
		}
		rightSQL := n.Right.Accept(b.outer)
		if _, sub := n.Right.(*qom.SelectCore); sub {
			rightSQL = "(" + rightSQL + ")"
		}
		return n.Row.Accept(b.outer) + " " + comparisonOpSQL[n.Op] + " " + rightSQL
	}
	return b.rowCompareSQL(n.Row, right, n.Op)
}

// rowCompareSQL renders a row-to-row comparison, natively where the dialect
// has row value expressions and as the equivalent Boolean expansion where
// it does not. Degree mismatches fail here for comparisons built without
// the eager Compare check.
func (b *baseVisitor) rowCompareSQL(l, r *qom.RowNode, op qom.ComparisonOp) string {
	if l.Degree() != r.Degree() {
		return b.fail(&qom.DegreeMismatchError{Left: l.Degree(), Right: r.Degree()})
	}

	if op == qom.OpDistinctFrom || op == qom.OpNotDistinctFrom {
		if dialect.RowValueExpressions.Contains(b.d) && dialect.DistinctPredicate.Contains(b.d) {
			return l.Accept(b.outer) + " " + comparisonOpSQL[op] + " " + r.Accept(b.outer)
		}
		// Pairwise NULL-safe equality, AND-combined; DISTINCT negates.
		parts := make([]string, l.Degree())
		for i := range l.Exprs {
			parts[i] = b.distinctSQL(l.Exprs[i], r.Exprs[i], false)
		}
		s := "(" + strings.Join(parts, " AND ") + ")"
		if op == qom.OpDistinctFrom {
			return "NOT " + s
		}
		return s
	}

	if dialect.RowValueExpressions.Contains(b.d) {
		return l.Accept(b.outer) + " " + comparisonOpSQL[op] + " " + r.Accept(b.outer)
	}

	switch op {
	case qom.OpEq:
		return b.rowEqExpansion(l, r)
	case qom.OpNotEq:
		return "NOT " + b.rowEqExpansion(l, r)
	default:
		return "(" + b.rowOrderingExpansion(l, r, op, 0) + ")"
	}
}

// rowEqExpansion renders (l1 = r1 AND l2 = r2 AND ...).
func (b *baseVisitor) rowEqExpansion(l, r *qom.RowNode) string {
	parts := make([]string, l.Degree())
	for i := range l.Exprs {
		parts[i] = l.Exprs[i].Accept(b.outer) + " = " + r.Exprs[i].Accept(b.outer)
	}
	return "(" + strings.Join(parts, " AND ") + ")"
}

// rowOrderingExpansion renders the lexicographic expansion of an ordering
// comparison from component i on. Only the last component keeps the
// original operator; earlier ones use its strict form, e.g. (a, b) <= (x, y)
// becomes a < x OR (a = x AND (b <= y)). The recursive tail is always
// parenthesised so the equality guard covers all of it: without the parens,
// AND binding tighter than OR would detach the guard from the tail's later
// disjuncts at degree >= 3.
func (b *baseVisitor) rowOrderingExpansion(l, r *qom.RowNode, op qom.ComparisonOp, i int) string {
	if i == l.Degree()-1 {
		return l.Exprs[i].Accept(b.outer) + " " + comparisonOpSQL[op] + " " + r.Exprs[i].Accept(b.outer)
	}
	var sb strings.Builder
	sb.WriteString(l.Exprs[i].Accept(b.outer))
	sb.WriteString(" " + comparisonOpSQL[op.Strict()] + " ")
	sb.WriteString(r.Exprs[i].Accept(b.outer))
	sb.WriteString(" OR (")
	sb.WriteString(l.Exprs[i].Accept(b.outer))
	sb.WriteString(" = ")
	sb.WriteString(r.Exprs[i].Accept(b.outer))
	sb.WriteString(" AND (")
	sb.WriteString(b.rowOrderingExpansion(l, r, op, i+1))
	sb.WriteString("))")
	return sb.String()
}

func (b *baseVisitor) VisitRowIn(n *qom.RowInNode) string {
	keyword := "IN"
	if n.Negate {
		keyword = "NOT IN"
	}

	// Subquery predicates always render natively, never expanded.
	if n.Subquery != nil {
		if !dialect.RowValueExpressions.Contains(b.d) {
			return b.unsupported("row value expression")
		}
		return n.Row.Accept(b.outer) + " " + keyword + " (" + n.Subquery.Accept(b.outer) + ")"
	}

	rows := n.Rows
	if b.inListPadding {
		rows = padInList(rows)
	}

	if dialect.RowInLists.Contains(b.d) {
		vals := make([]string, len(rows))
		for i, r := range rows {
			vals[i] = r.Accept(b.outer)
		}
		return n.Row.Accept(b.outer) + " " + keyword + " (" + strings.Join(vals, ", ") + ")"
	}

	// OR of pairwise equality expansions.
	parts := make([]string, len(rows))
	for i, r := range rows {
		parts[i] = b.rowCompareSQL(n.Row, r, qom.OpEq)
	}
	s := "(" + strings.Join(parts, " OR ") + ")"
	if n.Negate {
		return "NOT " + s
	}
	return s
}

func (b *baseVisitor) VisitRowBetween(n *qom.RowBetweenNode) string {
	lower := func(low, high *qom.RowNode) string {
		return "(" + b.rowCompareSQL(n.Row, low, qom.OpGtEq) +
			" AND " + b.rowCompareSQL(n.Row, high, qom.OpLtEq) + ")"
	}
	s := lower(n.Low, n.High)
	if n.Symmetric {
		s = "(" + s + " OR " + lower(n.High, n.Low) + ")"
	}
	if n.Negate {
		return "NOT " + s
	}
	return s
}

func (b *baseVisitor) VisitGrouping(n *qom.GroupingNode) string {
	return "(" + n.Expr.Accept(b.outer) + ")"
}

func (b *baseVisitor) VisitOrdering(n *qom.OrderingNode) string {
	expr := n.Expr.Accept(b.outer)
	if n.Direction == qom.Desc {
		expr += " DESC"
	} else {
		expr += " ASC"
	}
	switch n.Nulls {
	case qom.NullsFirst:
		expr += " NULLS FIRST"
	case qom.NullsLast:
		expr += " NULLS LAST"
	}
	return expr
}

func (b *baseVisitor) VisitJoin(n *qom.JoinNode) string {
	// StringJoin: raw SQL fragment, output directly.
	if n.Type == qom.StringJoin {
		return n.Right.Accept(b.outer)
	}

	rightSQL := n.Right.Accept(b.outer)

	// Wrap subqueries in parentheses.
	if _, ok := n.Right.(*qom.SelectCore); ok {
		rightSQL = "(" + rightSQL + ")"
	}

	var sb strings.Builder
	sb.WriteString(joinTypeSQL[n.Type])
	if n.Lateral {
		sb.WriteString(" LATERAL")
	}
	sb.WriteString(" ")
	sb.WriteString(rightSQL)

	if n.On != nil {
		sb.WriteString(" ON ")
		sb.WriteString(n.On.Accept(b.outer))
	}

	return sb.String()
}

// attributeName returns the quoted name of a node in column-name position,
// recording an IllegalStateError for any non-attribute node instead of
// panicking.
func (b *baseVisitor) attributeName(n qom.Node, construct string) string {
	attr, ok := n.(*qom.Attribute)
	if !ok {
		return b.fail(&qom.IllegalStateError{
			Construct: construct,
			Detail:    fmt.Sprintf("expected a column reference, got %T", n),
		})
	}
	return b.quoteIdent(attr.Name)
}

func (b *baseVisitor) VisitInsertStatement(n *qom.InsertStatement) string {
	var sb strings.Builder

	b.writeCTEs(&sb, n.CTEs)
	sb.WriteString("INSERT INTO ")
	sb.WriteString(n.Relation.Accept(b.outer))

	// Columns
	if len(n.Columns) > 0 {
		sb.WriteString(" (")
		cols := make([]string, len(n.Columns))
		for i, c := range n.Columns {
			cols[i] = b.attributeName(c, "insert column list")
		}
		sb.WriteString(strings.Join(cols, ", "))
		sb.WriteString(")")
	}

	// INSERT FROM SELECT
	if n.Select != nil {
		sb.WriteString(" ")
		sb.WriteString(n.Select.Accept(b.outer))
	} else if len(n.Values) > 0 {
		sb.WriteString(" VALUES ")
		rows := make([]string, len(n.Values))
		for i, row := range n.Values {
			vals := make([]string, len(row))
			for j, v := range row {
				vals[j] = v.Accept(b.outer)
			}
			rows[i] = "(" + strings.Join(vals, ", ") + ")"
		}
		sb.WriteString(strings.Join(rows, ", "))
	}

	if n.Conflict != nil {
		sb.WriteString(" ")
		sb.WriteString(b.conflictSQL(n))
	}

	if !b.writeReturning(&sb, n.Returning) {
		return ""
	}

	return sb.String()
}

// conflictSQL renders the conflict clause natively where ON CONFLICT
// exists, as ON DUPLICATE KEY UPDATE on the MySQL family, and fails
// elsewhere.
func (b *baseVisitor) conflictSQL(n *qom.InsertStatement) string {
	c := n.Conflict
	if dialect.OnConflictClause.Contains(b.d) {
		var sb strings.Builder
		sb.WriteString("ON CONFLICT")
		if len(c.Targets) > 0 {
			sb.WriteString(" (")
			cols := make([]string, len(c.Targets))
			for i, t := range c.Targets {
				cols[i] = b.attributeName(t, "conflict target")
			}
			sb.WriteString(strings.Join(cols, ", "))
			sb.WriteString(")")
		}
		if c.Action == qom.ConflictDoNothing {
			sb.WriteString(" DO NOTHING")
			return sb.String()
		}
		sb.WriteString(" DO UPDATE SET ")
		assigns := make([]string, len(c.Updates))
		for i, a := range c.Updates {
			assigns[i] = a.Accept(b.outer)
		}
		sb.WriteString(strings.Join(assigns, ", "))
		if c.Where != nil {
			sb.WriteString(" WHERE ")
			sb.WriteString(c.Where.Accept(b.outer))
		}
		return sb.String()
	}

	if b.d.Family() == dialect.FamilyMySQL {
		var sb strings.Builder
		sb.WriteString("ON DUPLICATE KEY UPDATE ")
		if c.Action == qom.ConflictDoNothing {
			// No DO NOTHING equivalent: assign a key column to itself.
			var col qom.Node
			switch {
			case len(c.Targets) > 0:
				col = c.Targets[0]
			case len(n.Columns) > 0:
				col = n.Columns[0]
			default:
				return b.fail(&qom.IllegalStateError{
					Construct: "conflict clause",
					Detail:    "DO NOTHING needs a conflict target or insert column on " + b.d.String(),
				})
			}
			name := b.attributeName(col, "conflict clause")
			sb.WriteString(name + " = " + name)
			return sb.String()
		}
		if c.Where != nil {
			return b.unsupported("conflict update condition")
		}
		assigns := make([]string, len(c.Updates))
		for i, a := range c.Updates {
			assigns[i] = a.Accept(b.outer)
		}
		sb.WriteString(strings.Join(assigns, ", "))
		return sb.String()
	}

	return b.unsupported("conflict clause")
}

// writeReturning appends a RETURNING clause, reporting false after
// recording an error on dialects without one.
func (b *baseVisitor) writeReturning(sb *strings.Builder, returning []qom.Node) bool {
	if len(returning) == 0 {
		return true
	}
	if !dialect.ReturningClause.Contains(b.d) {
		b.unsupported("RETURNING clause")
		return false
	}
	sb.WriteString(" RETURNING ")
	rets := make([]string, len(returning))
	for i, r := range returning {
		rets[i] = r.Accept(b.outer)
	}
	sb.WriteString(strings.Join(rets, ", "))
	return true
}

func (b *baseVisitor) VisitUpdateStatement(n *qom.UpdateStatement) string {
	var sb strings.Builder

	b.writeCTEs(&sb, n.CTEs)
	sb.WriteString("UPDATE ")
	sb.WriteString(n.Relation.Accept(b.outer))

	if len(n.Values) > 0 {
		sb.WriteString(" SET ")
		assigns := make([]string, len(n.Values))
		for i, a := range n.Values {
			assigns[i] = a.Accept(b.outer)
		}
		sb.WriteString(strings.Join(assigns, ", "))
	}

	b.writeWheres(&sb, n.Wheres)
	b.writeClause(&sb, " ORDER BY ", n.Orders, ", ")
	b.writeNodeClause(&sb, " LIMIT ", n.Limit)

	if !b.writeReturning(&sb, n.Returning) {
		return ""
	}

	return sb.String()
}

func (b *baseVisitor) VisitDeleteStatement(n *qom.DeleteStatement) string {
	var sb strings.Builder

	b.writeCTEs(&sb, n.CTEs)
	sb.WriteString("DELETE FROM ")
	sb.WriteString(n.Relation.Accept(b.outer))

	b.writeWheres(&sb, n.Wheres)
	b.writeClause(&sb, " ORDER BY ", n.Orders, ", ")
	b.writeNodeClause(&sb, " LIMIT ", n.Limit)

	if !b.writeReturning(&sb, n.Returning) {
		return ""
	}

	return sb.String()
}

func (b *baseVisitor) VisitAssignment(n *qom.AssignmentNode) string {
	left := n.Column.Accept(b.outer)
	right := n.Value.Accept(b.outer)
	return left + " = " + right
}

func (b *baseVisitor) VisitOnConflict(n *qom.OnConflictNode) string {
	// Rendered through the owning INSERT; visiting directly assumes the
	// native clause is available.
	if !dialect.OnConflictClause.Contains(b.d) {
		return b.unsupported("conflict clause")
	}
	return b.conflictSQL(&qom.InsertStatement{Conflict: n})
}

func (b *baseVisitor) VisitAlterType(n *qom.AlterTypeNode) string {
	if !dialect.AlterTypeStatement.Contains(b.d) {
		return b.unsupported("ALTER TYPE statement")
	}

	var sb strings.Builder
	sb.WriteString("ALTER TYPE ")
	if n.Schema != "" {
		sb.WriteString(b.quoteIdent(n.Schema))
		sb.WriteString(".")
	}
	sb.WriteString(b.quoteIdent(n.TypeName))

	// Enum values are part of DDL text and always inlined.
	enumLit := func(s string) string { return "'" + quoting.EscapeString(s) + "'" }

	switch a := n.Action.(type) {
	case qom.RenameTypeTo:
		sb.WriteString(" RENAME TO ")
		sb.WriteString(b.quoteIdent(a.NewName))
	case qom.SetTypeSchema:
		sb.WriteString(" SET SCHEMA ")
		sb.WriteString(b.quoteIdent(a.Schema))
	case qom.AddEnumValue:
		sb.WriteString(" ADD VALUE ")
		sb.WriteString(enumLit(a.Value))
		if a.Before != "" {
			sb.WriteString(" BEFORE ")
			sb.WriteString(enumLit(a.Before))
		} else if a.After != "" {
			sb.WriteString(" AFTER ")
			sb.WriteString(enumLit(a.After))
		}
	case qom.RenameEnumValue:
		sb.WriteString(" RENAME VALUE ")
		sb.WriteString(enumLit(a.From))
		sb.WriteString(" TO ")
		sb.WriteString(enumLit(a.To))
	default:
		return b.fail(&qom.IllegalStateError{
			Construct: "ALTER TYPE statement",
			Detail:    "no action specified",
		})
	}

	return sb.String()
}

func (b *baseVisitor) VisitInfix(n *qom.InfixNode) string {
	left := n.Left.Accept(b.outer)
	if needsParens(n.Left) {
		left = "(" + left + ")"
	}
	right := n.Right.Accept(b.outer)
	if needsParens(n.Right) {
		right = "(" + right + ")"
	}
	return left + " " + infixOpSQL[n.Op] + " " + right
}

func (b *baseVisitor) VisitUnaryMath(n *qom.UnaryMathNode) string {
	expr := n.Expr.Accept(b.outer)
	if needsParens(n.Expr) {
		expr = "(" + expr + ")"
	}
	return "~" + expr
}

// Aggregate function SQL names.
var aggregateFuncSQL = [...]string{
	qom.AggCount: "COUNT",
	qom.AggSum:   "SUM",
	qom.AggAvg:   "AVG",
	qom.AggMin:   "MIN",
	qom.AggMax:   "MAX",
}

func (b *baseVisitor) VisitAggregate(n *qom.AggregateNode) string {
	var sb strings.Builder
	sb.WriteString(aggregateFuncSQL[n.Func])
	sb.WriteString("(")
	if n.Distinct {
		sb.WriteString("DISTINCT ")
	}
	if n.Expr == nil {
		sb.WriteString("*")
	} else {
		sb.WriteString(n.Expr.Accept(b.outer))
	}
	sb.WriteString(")")
	if n.Filter != nil {
		sb.WriteString(" FILTER (WHERE ")
		sb.WriteString(n.Filter.Accept(b.outer))
		sb.WriteString(")")
	}
	return sb.String()
}

// Extract field SQL names.
var extractFieldSQL = [...]string{
	qom.ExtractYear:    "YEAR",
	qom.ExtractMonth:   "MONTH",
	qom.ExtractDay:     "DAY",
	qom.ExtractHour:    "HOUR",
	qom.ExtractMinute:  "MINUTE",
	qom.ExtractSecond:  "SECOND",
	qom.ExtractDow:     "DOW",
	qom.ExtractDoy:     "DOY",
	qom.ExtractEpoch:   "EPOCH",
	qom.ExtractQuarter: "QUARTER",
	qom.ExtractWeek:    "WEEK",
}

func (b *baseVisitor) VisitExtract(n *qom.ExtractNode) string {
	return "EXTRACT(" + extractFieldSQL[n.Field] + " FROM " + n.Expr.Accept(b.outer) + ")"
}

// Window function SQL names.
var windowFuncSQL = [...]string{
	qom.WinRowNumber:   "ROW_NUMBER",
	qom.WinRank:        "RANK",
	qom.WinDenseRank:   "DENSE_RANK",
	qom.WinNtile:       "NTILE",
	qom.WinLag:         "LAG",
	qom.WinLead:        "LEAD",
	qom.WinFirstValue:  "FIRST_VALUE",
	qom.WinLastValue:   "LAST_VALUE",
	qom.WinNthValue:    "NTH_VALUE",
	qom.WinCumeDist:    "CUME_DIST",
	qom.WinPercentRank: "PERCENT_RANK",
}

func (b *baseVisitor) VisitWindowFunction(n *qom.WindowFuncNode) string {
	var sb strings.Builder
	sb.WriteString(windowFuncSQL[n.Func])
	sb.WriteString("(")
	for i, arg := range n.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Accept(b.outer))
	}
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitOver(n *qom.OverNode) string {
	exprSQL := n.Expr.Accept(b.outer)
	if n.WindowName != "" {
		return exprSQL + " OVER " + b.quoteIdent(n.WindowName)
	}
	saved := b.windowFunc
	if wf, ok := n.Expr.(*qom.WindowFuncNode); ok {
		f := wf.Func
		b.windowFunc = &f
	} else {
		b.windowFunc = nil
	}
	spec := b.RenderWindowSpec(n.Spec)
	b.windowFunc = saved
	return exprSQL + " OVER " + spec
}

// requiresOrderBy reports whether the dialect demands an ORDER BY in the
// window of the given function.
func (b *baseVisitor) requiresOrderBy(f qom.WindowFunc) bool {
	switch f {
	case qom.WinLag, qom.WinLead:
		return dialect.RequiresOrderByInLeadLag.Contains(b.d)
	case qom.WinNtile:
		return dialect.RequiresOrderByInNtile.Contains(b.d)
	case qom.WinRank, qom.WinDenseRank:
		return dialect.RequiresOrderByInRankDenseRank.Contains(b.d)
	case qom.WinPercentRank, qom.WinCumeDist:
		return dialect.RequiresOrderByInPercentRankCumeDist.Contains(b.d)
	}
	return false
}

// RenderWindowSpec renders a window specification as SQL:
// (extends PARTITION BY ... ORDER BY ... ROWS/RANGE/GROUPS ... EXCLUDE ...)
func (b *baseVisitor) RenderWindowSpec(w *qom.WindowSpec) string {
	return "(" + strings.Join(b.windowSpecClauses(w), " ") + ")"
}

// windowSpecClauses renders the individual clauses of a window specification
// in order. The formatting wrapper joins them with newlines when two or more
// are present.
func (b *baseVisitor) windowSpecClauses(w *qom.WindowSpec) []string {
	if w == nil {
		w = &qom.WindowSpec{}
	}
	var clauses []string

	if w.Extends != "" {
		clauses = append(clauses, b.quoteIdent(w.Extends))
	}

	switch {
	case w.PartitionByOne:
		// A constant partition means "one partition over everything";
		// dialects that misread the constant get no clause at all, which
		// has the same meaning.
		if !dialect.OmitPartitionByOne.Contains(b.d) {
			clauses = append(clauses, "PARTITION BY 1")
		}
	case len(w.PartitionBy) > 0:
		parts := make([]string, len(w.PartitionBy))
		for i, p := range w.PartitionBy {
			parts[i] = p.Accept(b.outer)
		}
		clauses = append(clauses, "PARTITION BY "+strings.Join(parts, ", "))
	}

	if len(w.OrderBy) > 0 {
		orders := make([]string, len(w.OrderBy))
		for i, o := range w.OrderBy {
			orders[i] = o.Accept(b.outer)
		}
		clauses = append(clauses, "ORDER BY "+strings.Join(orders, ", "))
	} else if b.windowFunc != nil && b.requiresOrderBy(*b.windowFunc) {
		clauses = append(clauses, "ORDER BY (SELECT 1)")
	}

	if frame := b.renderFrame(w); frame != "" {
		clauses = append(clauses, frame)
	}

	return clauses
}

// Frame unit SQL keywords.
var frameUnitsSQL = [...]string{
	qom.UnitsRows:   "ROWS",
	qom.UnitsRange:  "RANGE",
	qom.UnitsGroups: "GROUPS",
}

// Frame EXCLUDE clause SQL.
var frameExcludeSQL = [...]string{
	qom.ExcludeNone:       "",
	qom.ExcludeCurrentRow: "EXCLUDE CURRENT ROW",
	qom.ExcludeGroup:      "EXCLUDE GROUP",
	qom.ExcludeTies:       "EXCLUDE TIES",
	qom.ExcludeNoOthers:   "EXCLUDE NO OTHERS",
}

// renderFrame renders the frame clause of a window, or "" without one.
func (b *baseVisitor) renderFrame(w *qom.WindowSpec) string {
	if w.FrameStart == nil {
		if w.FrameEnd != nil {
			return b.fail(&qom.IllegalStateError{
				Construct: "window frame",
				Detail:    "end bound without a start bound",
			})
		}
		if w.Exclude != qom.ExcludeNone {
			return b.fail(&qom.IllegalStateError{
				Construct: "window frame",
				Detail:    "EXCLUDE clause without a frame",
			})
		}
		return ""
	}

	if w.Units == qom.UnitsGroups && !dialect.GroupsFrameUnits.Contains(b.d) {
		return b.unsupported("GROUPS frame units")
	}

	var sb strings.Builder
	sb.WriteString(frameUnitsSQL[w.Units])
	if w.FrameEnd != nil {
		sb.WriteString(" BETWEEN ")
		sb.WriteString(frameBoundSQL(*w.FrameStart))
		sb.WriteString(" AND ")
		sb.WriteString(frameBoundSQL(*w.FrameEnd))
	} else {
		sb.WriteString(" ")
		sb.WriteString(frameBoundSQL(*w.FrameStart))
	}

	if w.Exclude != qom.ExcludeNone {
		if !dialect.FrameExclusion.Contains(b.d) {
			return b.unsupported("frame exclusion")
		}
		sb.WriteString(" ")
		sb.WriteString(frameExcludeSQL[w.Exclude])
	}

	return sb.String()
}

// frameBoundSQL renders a signed frame bound offset.
func frameBoundSQL(bound int) string {
	switch {
	case bound == qom.UnboundedPreceding:
		return "UNBOUNDED PRECEDING"
	case bound == qom.UnboundedFollowing:
		return "UNBOUNDED FOLLOWING"
	case bound < 0:
		return strconv.Itoa(-bound) + " PRECEDING"
	case bound > 0:
		return strconv.Itoa(bound) + " FOLLOWING"
	default:
		return "CURRENT ROW"
	}
}

func (b *baseVisitor) VisitPosition(n *qom.PositionNode) string {
	switch {
	case dialect.PositionViaInstr.Contains(b.d):
		return "INSTR(" + n.In.Accept(b.outer) + ", " + n.Search.Accept(b.outer) + ")"
	case dialect.PositionViaCharIndex.Contains(b.d):
		return "CHARINDEX(" + n.Search.Accept(b.outer) + ", " + n.In.Accept(b.outer) + ")"
	default:
		return "POSITION(" + n.Search.Accept(b.outer) + " IN " + n.In.Accept(b.outer) + ")"
	}
}

func (b *baseVisitor) VisitExists(n *qom.ExistsNode) string {
	var sb strings.Builder
	if n.Negated {
		sb.WriteString("NOT ")
	}
	sb.WriteString("EXISTS (")
	sb.WriteString(n.Subquery.Accept(b.outer))
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitScalarSubquery(n *qom.ScalarSubqueryNode) string {
	return "(" + n.Query.Accept(b.outer) + ")"
}

func (b *baseVisitor) VisitSetOperation(n *qom.SetOperationNode) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(n.Left.Accept(b.outer))
	sb.WriteString(") ")
	sb.WriteString(setOpTypeSQL[n.Type])
	sb.WriteString(" (")
	sb.WriteString(n.Right.Accept(b.outer))
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitCTE(n *qom.CTENode) string {
	var sb strings.Builder
	sb.WriteString(b.quoteIdent(n.Name))
	if len(n.Columns) > 0 {
		sb.WriteString(" (")
		quoted := make([]string, len(n.Columns))
		for i, c := range n.Columns {
			quoted[i] = b.quoteIdent(c)
		}
		sb.WriteString(strings.Join(quoted, ", "))
		sb.WriteString(")")
	}
	sb.WriteString(" AS (")
	sb.WriteString(n.Query.Accept(b.outer))
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitNamedFunction(n *qom.NamedFunctionNode) string {
	var sb strings.Builder
	validateSQLFunctionName(n.Name)
	// Special case: CAST(expr AS type)
	if n.Name == "CAST" && len(n.Args) == 2 {
		sb.WriteString("CAST(")
		sb.WriteString(n.Args[0].Accept(b.outer))
		sb.WriteString(" AS ")
		sb.WriteString(n.Args[1].Accept(b.outer))
		sb.WriteString(")")
		return sb.String()
	}
	sb.WriteString(n.Name)
	sb.WriteString("(")
	if n.Distinct {
		sb.WriteString("DISTINCT ")
	}
	for i, arg := range n.Args {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Accept(b.outer))
	}
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitCase(n *qom.CaseNode) string {
	var sb strings.Builder
	sb.WriteString("CASE")
	if n.Operand != nil {
		sb.WriteString(" ")
		sb.WriteString(n.Operand.Accept(b.outer))
	}
	for _, w := range n.Whens {
		sb.WriteString(" WHEN ")
		sb.WriteString(w.Condition.Accept(b.outer))
		sb.WriteString(" THEN ")
		sb.WriteString(w.Result.Accept(b.outer))
	}
	if n.ElseVal != nil {
		sb.WriteString(" ELSE ")
		sb.WriteString(n.ElseVal.Accept(b.outer))
	}
	sb.WriteString(" END")
	return sb.String()
}

// Grouping set type SQL keywords.
var groupingSetTypeSQL = [...]string{
	qom.Cube:         "CUBE",
	qom.Rollup:       "ROLLUP",
	qom.GroupingSets: "GROUPING SETS",
}

func (b *baseVisitor) VisitGroupingSet(n *qom.GroupingSetNode) string {
	var sb strings.Builder
	sb.WriteString(groupingSetTypeSQL[n.Type])
	sb.WriteString("(")
	if n.Type == qom.GroupingSets {
		// GROUPING SETS ((col1, col2), (col3), ())
		for i, set := range n.Sets {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("(")
			for j, col := range set {
				if j > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(col.Accept(b.outer))
			}
			sb.WriteString(")")
		}
	} else {
		// CUBE(col1, col2) or ROLLUP(col1, col2)
		for i, col := range n.Columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(col.Accept(b.outer))
		}
	}
	sb.WriteString(")")
	return sb.String()
}

func (b *baseVisitor) VisitAlias(n *qom.AliasNode) string {
	return n.Expr.Accept(b.outer) + " AS " + b.quoteIdent(n.Name)
}

func (b *baseVisitor) VisitBindParam(n *qom.BindParamNode) string {
	// Always parameterize if in param mode, otherwise render as literal.
	if b.parameterize {
		b.paramIndex++
		b.params = append(b.params, n.Value)
		return b.placeholder(b.paramIndex)
	}
	return b.literalToSQL(n.Value)
}

func (b *baseVisitor) VisitCasted(n *qom.CastedNode) string {
	valSQL := b.literalToSQL(n.Value)
	if n.Type != "" {
		return "CAST(" + valSQL + " AS " + b.typeName(n.Type) + ")"
	}
	return valSQL
}

func (b *baseVisitor) VisitComposite(n *qom.CompositeNode) string {
	// Dialects without structured binds get the literal inlined even in
	// parameter mode, as does any composite with inlining forced.
	saved := b.parameterize
	if n.Inline || !dialect.StructuredTypeBinds.Contains(b.d) {
		b.parameterize = false
	}
	vals := make([]string, len(n.Values))
	for i, v := range n.Values {
		vals[i] = v.Accept(b.outer)
	}
	b.parameterize = saved

	s := "ROW(" + strings.Join(vals, ", ") + ")"
	if n.Qualifier != "" {
		validateSQLTypeName(n.Qualifier)
		s = "CAST(" + s + " AS " + n.Qualifier + ")"
	}
	return s
}

// validateSQLTypeName panics if the type name contains characters outside
// the set of letters, digits, spaces, dots, parentheses, and commas.
// This prevents SQL injection through crafted type names.
func validateSQLTypeName(name string) {
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') &&
			(c < '0' || c > '9') && c != ' ' && c != '(' &&
			c != ')' && c != ',' && c != '_' && c != '.' {
			panic(fmt.Sprintf("arbor: invalid SQL type name character %q in %q", string(c), name))
		}
	}
}

// validateSQLFunctionName panics if the function name contains characters
// outside the set of letters, digits, and underscores.
// This prevents SQL injection through crafted function names.
func validateSQLFunctionName(name string) {
	for _, c := range name {
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') &&
			(c < '0' || c > '9') && c != '_' {
			panic(fmt.Sprintf("arbor: invalid SQL function name character %q in %q", string(c), name))
		}
	}
}

// SQL keywords for LockMode values.
var lockModeSQL = [...]string{
	qom.NoLock:         "",
	qom.ForUpdate:      "FOR UPDATE",
	qom.ForShare:       "FOR SHARE",
	qom.ForNoKeyUpdate: "FOR NO KEY UPDATE",
	qom.ForKeyShare:    "FOR KEY SHARE",
}

func (b *baseVisitor) VisitSelectCore(n *qom.SelectCore) string {
	var sb strings.Builder

	b.writeCTEs(&sb, n.CTEs)
	b.writeComment(&sb, n.Comment)
	sb.WriteString("SELECT ")
	b.writeHints(&sb, n.Hints)
	b.writeDistinct(&sb, n.Distinct, n.DistinctOn)
	b.writeProjections(&sb, n.Projections)
	b.writeFrom(&sb, n.From)
	b.writeJoins(&sb, n.Joins)
	b.writeWheres(&sb, n.Wheres)
	b.writeClause(&sb, " GROUP BY ", n.Groups, ", ")
	b.writeClause(&sb, " HAVING ", n.Havings, " AND ")
	b.writeWindowClause(&sb, n.Windows)
	b.writeClause(&sb, " ORDER BY ", n.Orders, ", ")
	b.writeLimitOffset(&sb, n)
	b.writeLock(&sb, n.Lock, n.SkipLocked)

	return sb.String()
}

// writeLimitOffset renders pagination: LIMIT/OFFSET, or the OFFSET ...
// FETCH form on dialects without LIMIT. The latter is only valid after an
// ORDER BY, so one is injected when the query has none.
func (b *baseVisitor) writeLimitOffset(sb *strings.Builder, n *qom.SelectCore) {
	if !dialect.OffsetFetchLimit.Contains(b.d) {
		b.writeNodeClause(sb, " LIMIT ", n.Limit)
		b.writeNodeClause(sb, " OFFSET ", n.Offset)
		return
	}
	if n.Limit == nil && n.Offset == nil {
		return
	}
	if len(n.Orders) == 0 {
		sb.WriteString(" ORDER BY (SELECT 1)")
	}
	sb.WriteString(" OFFSET ")
	if n.Offset != nil {
		sb.WriteString(n.Offset.Accept(b.outer))
	} else {
		sb.WriteString("0")
	}
	sb.WriteString(" ROWS")
	if n.Limit != nil {
		sb.WriteString(" FETCH NEXT ")
		sb.WriteString(n.Limit.Accept(b.outer))
		sb.WriteString(" ROWS ONLY")
	}
}

// writeClause writes "keyword item1 sep item2 sep ..." if items is non-empty.
func (b *baseVisitor) writeClause(sb *strings.Builder, keyword string, items []qom.Node, sep string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(keyword)
	for i, item := range items {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(item.Accept(b.outer))
	}
}

// writeWheres writes the WHERE clause, dropping NoCondition entries.
func (b *baseVisitor) writeWheres(sb *strings.Builder, wheres []qom.Node) {
	effective := wheres[:0:0]
	for _, w := range wheres {
		if w == nil || qom.IsNoCondition(w) {
			continue
		}
		effective = append(effective, w)
	}
	b.writeClause(sb, " WHERE ", effective, " AND ")
}

// writeNodeClause writes "keyword node" if node is non-nil.
func (b *baseVisitor) writeNodeClause(sb *strings.Builder, keyword string, n qom.Node) {
	if n != nil {
		sb.WriteString(keyword)
		sb.WriteString(n.Accept(b.outer))
	}
}

func (b *baseVisitor) writeCTEs(sb *strings.Builder, ctes []*qom.CTENode) {
	if len(ctes) == 0 {
		return
	}
	hasRecursive := false
	for _, cte := range ctes {
		if cte.Recursive {
			hasRecursive = true
			break
		}
	}
	if hasRecursive {
		sb.WriteString("WITH RECURSIVE ")
	} else {
		sb.WriteString("WITH ")
	}
	for i, cte := range ctes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(cte.Accept(b.outer))
	}
	sb.WriteString(" ")
}

func (b *baseVisitor) writeComment(sb *strings.Builder, comment string) {
	if comment != "" {
		sb.WriteString("/* ")
		sb.WriteString(strings.ReplaceAll(comment, "*/", "* /"))
		sb.WriteString(" */ ")
	}
}

func (b *baseVisitor) writeHints(sb *strings.Builder, hints []string) {
	if len(hints) == 0 {
		return
	}
	sb.WriteString("/*+ ")
	for i, h := range hints {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strings.ReplaceAll(h, "*/", "* /"))
	}
	sb.WriteString(" */ ")
}

func (b *baseVisitor) writeDistinct(sb *strings.Builder, distinct bool, distinctOn []qom.Node) {
	if len(distinctOn) > 0 {
		sb.WriteString("DISTINCT ON (")
		for i, c := range distinctOn {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(c.Accept(b.outer))
		}
		sb.WriteString(") ")
	} else if distinct {
		sb.WriteString("DISTINCT ")
	}
}

func (b *baseVisitor) writeProjections(sb *strings.Builder, projections []qom.Node) {
	if len(projections) == 0 {
		sb.WriteString("*")
		return
	}
	for i, p := range projections {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Accept(b.outer))
	}
}

func (b *baseVisitor) writeFrom(sb *strings.Builder, from qom.Node) {
	if from != nil {
		sb.WriteString(" FROM ")
		sb.WriteString(from.Accept(b.outer))
	}
}

func (b *baseVisitor) writeJoins(sb *strings.Builder, joins []*qom.JoinNode) {
	for _, j := range joins {
		sb.WriteString(" ")
		sb.WriteString(j.Accept(b.outer))
	}
}

func (b *baseVisitor) writeWindowClause(sb *strings.Builder, windows []*qom.WindowSpec) {
	if len(windows) == 0 {
		return
	}
	sb.WriteString(" WINDOW ")
	for i, w := range windows {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.quoteIdent(w.Name))
		sb.WriteString(" AS ")
		sb.WriteString(b.RenderWindowSpec(w))
	}
}

func (b *baseVisitor) writeLock(sb *strings.Builder, lock qom.LockMode, skipLocked bool) {
	if lock == qom.NoLock {
		return
	}
	if !dialect.RowLocking.Contains(b.d) {
		b.unsupported("row locking")
		return
	}
	sb.WriteString(" ")
	sb.WriteString(lockModeSQL[lock])
	if skipLocked {
		sb.WriteString(" SKIP LOCKED")
	}
}

// upperTypeName is the default CAST target mapping: the semantic type name
// uppercased.
func upperTypeName(t qom.DataType) string {
	return strings.ToUpper(string(t))
}
