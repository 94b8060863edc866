package render

import (
	"strings"

	"github.com/evanwray/arbor/qom"
)

// windowSpecRenderer is implemented by the dialect visitors; the formatting
// wrapper borrows it for the WINDOW clause.
type windowSpecRenderer interface {
	RenderWindowSpec(*qom.WindowSpec) string
	windowSpecClauses(*qom.WindowSpec) []string
}

// columnNamer is implemented by the dialect visitors; the formatting wrapper
// borrows it for column-name positions so non-column nodes surface as render
// errors rather than panics.
type columnNamer interface {
	attributeName(qom.Node, string) string
}

// FormattingVisitor wraps a dialect visitor and produces human-readable
// multi-line SQL. VisitSelectCore, VisitSetOperation, VisitInsertStatement,
// VisitUpdateStatement, and VisitDeleteStatement render each major clause
// on its own line; every other construct delegates to the wrapped visitor.
//
// It is a debugging aid: dialect capability checks still apply to child
// expressions, but statement-level clause shapes (LIMIT, RETURNING) render
// in their common form.
type FormattingVisitor struct {
	// Expression visits are promoted from the wrapped dialect visitor.
	qom.Visitor
}

var _ qom.Visitor = (*FormattingVisitor)(nil)
var _ qom.Parameterizer = (*FormattingVisitor)(nil)

// NewFormattingVisitor constructs a FormattingVisitor wrapping the given
// dialect visitor.
func NewFormattingVisitor(inner qom.Visitor) *FormattingVisitor {
	if inner == nil {
		panic("arbor: FormattingVisitor requires a non-nil inner visitor")
	}
	return &FormattingVisitor{Visitor: inner}
}

// Params delegates to the inner visitor if it implements qom.Parameterizer,
// otherwise returns nil.
func (f *FormattingVisitor) Params() []any {
	if p, ok := f.Visitor.(qom.Parameterizer); ok {
		return p.Params()
	}
	return nil
}

// Reset delegates to the inner visitor if it implements qom.Parameterizer.
func (f *FormattingVisitor) Reset() {
	if p, ok := f.Visitor.(qom.Parameterizer); ok {
		p.Reset()
	}
}

// Err delegates to the inner visitor if it implements qom.Parameterizer,
// otherwise returns nil.
func (f *FormattingVisitor) Err() error {
	if p, ok := f.Visitor.(qom.Parameterizer); ok {
		return p.Err()
	}
	return nil
}

// VisitSelectCore renders a SELECT statement in multi-line formatted style.
// Projections use leading-comma continuation; all major clauses begin on a
// new line. Child expressions are rendered via the wrapped dialect visitor.
func (f *FormattingVisitor) VisitSelectCore(node *qom.SelectCore) string {
	var sb strings.Builder

	// WITH / WITH RECURSIVE
	if len(node.CTEs) > 0 {
		hasRecursive := false
		for _, cte := range node.CTEs {
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
		for i, cte := range node.CTEs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(cte.Accept(f))
		}
		sb.WriteString("\n")
	}

	if node.Comment != "" {
		sb.WriteString("/* ")
		sb.WriteString(strings.ReplaceAll(node.Comment, "*/", "* /"))
		sb.WriteString(" */\n")
	}

	sb.WriteString("SELECT")

	// Optimizer hints after the SELECT keyword
	if len(node.Hints) > 0 {
		sb.WriteString(" /*+ ")
		for i, h := range node.Hints {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(strings.ReplaceAll(h, "*/", "* /"))
		}
		sb.WriteString(" */")
	}

	// DISTINCT / DISTINCT ON
	if len(node.DistinctOn) > 0 {
		sb.WriteString(" DISTINCT ON (")
		for i, c := range node.DistinctOn {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(c.Accept(f.Visitor))
		}
		sb.WriteString(")")
	} else if node.Distinct {
		sb.WriteString(" DISTINCT")
	}

	// Projections, leading-comma style
	if len(node.Projections) == 0 {
		sb.WriteString(" *")
	} else {
		sb.WriteString(" ")
		sb.WriteString(node.Projections[0].Accept(f.Visitor))
		for _, p := range node.Projections[1:] {
			sb.WriteString("\n\t,")
			sb.WriteString(p.Accept(f.Visitor))
		}
	}

	if node.From != nil {
		sb.WriteString("\nFROM ")
		sb.WriteString(node.From.Accept(f.Visitor))
	}

	for _, j := range node.Joins {
		sb.WriteString("\n")
		sb.WriteString(j.Accept(f.Visitor))
	}

	f.writeWheres(&sb, node.Wheres)

	// GROUP BY, leading-comma style
	if len(node.Groups) > 0 {
		sb.WriteString("\nGROUP BY ")
		sb.WriteString(node.Groups[0].Accept(f.Visitor))
		for _, g := range node.Groups[1:] {
			sb.WriteString("\n\t,")
			sb.WriteString(g.Accept(f.Visitor))
		}
	}

	if len(node.Havings) > 0 {
		sb.WriteString("\nHAVING ")
		sb.WriteString(node.Havings[0].Accept(f.Visitor))
		for _, h := range node.Havings[1:] {
			sb.WriteString("\n\tAND ")
			sb.WriteString(h.Accept(f.Visitor))
		}
	}

	if len(node.Windows) > 0 {
		sb.WriteString("\nWINDOW ")
		for i, w := range node.Windows {
			if i > 0 {
				sb.WriteString(", ")
			}
			// Render the window name via the inner visitor for correct
			// quoting, then the parenthesised specification.
			sb.WriteString(qom.NewTable(w.Name).Accept(f.Visitor))
			sb.WriteString(" AS ")
			if wr, ok := f.Visitor.(windowSpecRenderer); ok {
				sb.WriteString(formatWindowSpec(wr.windowSpecClauses(w)))
			}
		}
	}

	// ORDER BY, leading-comma style
	if len(node.Orders) > 0 {
		sb.WriteString("\nORDER BY ")
		sb.WriteString(node.Orders[0].Accept(f.Visitor))
		for _, o := range node.Orders[1:] {
			sb.WriteString("\n\t,")
			sb.WriteString(o.Accept(f.Visitor))
		}
	}

	if node.Limit != nil {
		sb.WriteString("\nLIMIT ")
		sb.WriteString(node.Limit.Accept(f.Visitor))
	}

	if node.Offset != nil {
		sb.WriteString("\nOFFSET ")
		sb.WriteString(node.Offset.Accept(f.Visitor))
	}

	if node.Lock != qom.NoLock {
		sb.WriteString("\n")
		sb.WriteString(node.Lock.String())
		if node.SkipLocked {
			sb.WriteString(" SKIP LOCKED")
		}
	}

	return sb.String()
}

// VisitSetOperation renders each leg of a set operation in parentheses with
// the operator keyword on its own line between them.
func (f *FormattingVisitor) VisitSetOperation(n *qom.SetOperationNode) string {
	var sb strings.Builder
	sb.WriteString("(\n")
	sb.WriteString(n.Left.Accept(f))
	sb.WriteString("\n)\n")
	sb.WriteString(setOpTypeSQL[n.Type])
	sb.WriteString("\n(\n")
	sb.WriteString(n.Right.Accept(f))
	sb.WriteString("\n)")
	return sb.String()
}

// VisitInsertStatement renders INSERT with each major clause on its own line.
func (f *FormattingVisitor) VisitInsertStatement(n *qom.InsertStatement) string {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(n.Relation.Accept(f.Visitor))

	if len(n.Columns) > 0 {
		sb.WriteString(" (")
		for i, c := range n.Columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			if cn, ok := f.Visitor.(columnNamer); ok {
				sb.WriteString(cn.attributeName(c, "insert column list"))
			} else {
				sb.WriteString(c.Accept(f.Visitor))
			}
		}
		sb.WriteString(")")
	}

	if n.Select != nil {
		sb.WriteString("\n")
		sb.WriteString(n.Select.Accept(f))
	} else if len(n.Values) > 0 {
		sb.WriteString("\nVALUES ")
		rows := make([]string, len(n.Values))
		for i, row := range n.Values {
			vals := make([]string, len(row))
			for j, v := range row {
				vals[j] = v.Accept(f.Visitor)
			}
			rows[i] = "(" + strings.Join(vals, ", ") + ")"
		}
		sb.WriteString(strings.Join(rows, ", "))
	}

	if n.Conflict != nil {
		sb.WriteString("\n")
		sb.WriteString(n.Conflict.Accept(f.Visitor))
	}

	f.writeReturning(&sb, n.Returning)

	return sb.String()
}

// VisitUpdateStatement renders UPDATE with each clause on its own line and
// leading-comma style for multiple SET assignments.
func (f *FormattingVisitor) VisitUpdateStatement(n *qom.UpdateStatement) string {
	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(n.Relation.Accept(f.Visitor))

	if len(n.Values) > 0 {
		sb.WriteString("\nSET ")
		for i, a := range n.Values {
			if i == 0 {
				sb.WriteString(a.Accept(f.Visitor))
			} else {
				sb.WriteString("\n\t,")
				sb.WriteString(a.Accept(f.Visitor))
			}
		}
	}

	f.writeWheres(&sb, n.Wheres)
	f.writeReturning(&sb, n.Returning)

	return sb.String()
}

// VisitDeleteStatement renders DELETE FROM with each clause on its own line.
func (f *FormattingVisitor) VisitDeleteStatement(n *qom.DeleteStatement) string {
	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(n.Relation.Accept(f.Visitor))

	f.writeWheres(&sb, n.Wheres)
	f.writeReturning(&sb, n.Returning)

	return sb.String()
}

// formatWindowSpec keeps a single-clause specification inline; two or more
// clauses go one per line.
func formatWindowSpec(clauses []string) string {
	if len(clauses) < 2 {
		return "(" + strings.Join(clauses, " ") + ")"
	}
	return "(\n\t" + strings.Join(clauses, "\n\t") + "\n)"
}

func (f *FormattingVisitor) writeWheres(sb *strings.Builder, wheres []qom.Node) {
	first := true
	for _, w := range wheres {
		if w == nil || qom.IsNoCondition(w) {
			continue
		}
		if first {
			sb.WriteString("\nWHERE ")
			first = false
		} else {
			sb.WriteString("\n\tAND ")
		}
		sb.WriteString(w.Accept(f.Visitor))
	}
}

func (f *FormattingVisitor) writeReturning(sb *strings.Builder, returning []qom.Node) {
	if len(returning) == 0 {
		return
	}
	sb.WriteString("\nRETURNING ")
	for i, r := range returning {
		if i == 0 {
			sb.WriteString(r.Accept(f.Visitor))
		} else {
			sb.WriteString("\n\t,")
			sb.WriteString(r.Accept(f.Visitor))
		}
	}
}
