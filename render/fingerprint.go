package render

import (
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/evanwray/arbor/qom"
)

// Fingerprint returns a canonical s-expression for the node's structure and
// values. Two nodes are structurally identical exactly when their
// fingerprints are equal, independent of dialect and settings. The walk is
// a standalone type switch so node types stay free of equality methods.
func Fingerprint(node qom.Node) string {
	var sb strings.Builder
	fingerprintNode(&sb, node)
	return sb.String()
}

// HashKey returns a 64-bit FNV-1a hash of the fingerprint, suitable as a
// statement cache key.
func HashKey(node qom.Node) uint64 {
	h := fnv.New64a()
	h.Write([]byte(Fingerprint(node)))
	return h.Sum64()
}

func fingerprintNode(sb *strings.Builder, node qom.Node) {
	if node == nil {
		sb.WriteString("nil")
		return
	}

	open := func(tag string) { sb.WriteString("(" + tag) }
	child := func(n qom.Node) {
		sb.WriteString(" ")
		fingerprintNode(sb, n)
	}
	children := func(ns []qom.Node) {
		for _, n := range ns {
			child(n)
		}
	}
	attr := func(s string) { sb.WriteString(" " + strconv.Quote(s)) }
	num := func(i int) { sb.WriteString(" " + strconv.Itoa(i)) }
	flag := func(b bool) {
		if b {
			sb.WriteString(" t")
		} else {
			sb.WriteString(" f")
		}
	}

	switch n := node.(type) {
	case *qom.Table:
		open("table")
		attr(n.Name)
	case *qom.TableAlias:
		open("alias-rel")
		child(n.Relation)
		attr(n.AliasName)
	case *qom.Attribute:
		open("attr")
		if n.Relation != nil {
			attr(qom.RelationName(n.Relation))
		} else {
			attr("")
		}
		attr(n.Name)
		attr(string(n.Type))
	case *qom.LiteralNode:
		open("lit")
		attr(fmt.Sprintf("%T:%v", n.Value, n.Value))
	case *qom.StarNode:
		open("star")
		if n.Table != nil {
			attr(n.Table.Name)
		}
	case *qom.SqlLiteral:
		open("raw")
		attr(n.Raw)
		num(len(n.Binds))
	case *qom.BindParamNode:
		open("bind")
		attr(fmt.Sprintf("%T:%v", n.Value, n.Value))
		attr(string(n.Type))
	case *qom.CastedNode:
		open("casted")
		attr(fmt.Sprintf("%T:%v", n.Value, n.Value))
		attr(string(n.Type))
	case *qom.CompositeNode:
		open("composite")
		attr(n.Qualifier)
		flag(n.Inline)
		children(n.Values)
	case *qom.ComparisonNode:
		open("cmp")
		num(int(n.Op))
		child(n.Left)
		child(n.Right)
	case *qom.UnaryNode:
		open("unary")
		num(int(n.Op))
		child(n.Expr)
	case *qom.AndNode:
		open("and")
		child(n.Left)
		child(n.Right)
	case *qom.OrNode:
		open("or")
		child(n.Left)
		child(n.Right)
	case *qom.NotNode:
		open("not")
		child(n.Expr)
	case *qom.BoolNode:
		open("bool")
		num(int(n.Kind))
	case *qom.GroupingNode:
		open("group")
		child(n.Expr)
	case *qom.InNode:
		open("in")
		flag(n.Negate)
		child(n.Expr)
		children(n.Vals)
	case *qom.BetweenNode:
		open("between")
		flag(n.Negate)
		flag(n.Symmetric)
		child(n.Expr)
		child(n.Low)
		child(n.High)
	case *qom.RowNode:
		open("row")
		children(n.Exprs)
	case *qom.RowComparisonNode:
		open("row-cmp")
		num(int(n.Op))
		child(n.Row)
		child(n.Right)
	case *qom.RowInNode:
		open("row-in")
		flag(n.Negate)
		child(n.Row)
		for _, r := range n.Rows {
			child(r)
		}
		if n.Subquery != nil {
			child(n.Subquery)
		}
	case *qom.RowBetweenNode:
		open("row-between")
		flag(n.Negate)
		flag(n.Symmetric)
		child(n.Row)
		child(n.Low)
		child(n.High)
	case *qom.JoinNode:
		open("join")
		num(int(n.Type))
		flag(n.Lateral)
		child(n.Right)
		child(n.On)
	case *qom.OrderingNode:
		open("order")
		num(int(n.Direction))
		num(int(n.Nulls))
		child(n.Expr)
	case *qom.InfixNode:
		open("infix")
		num(int(n.Op))
		child(n.Left)
		child(n.Right)
	case *qom.UnaryMathNode:
		open("unary-math")
		num(int(n.Op))
		child(n.Expr)
	case *qom.AggregateNode:
		open("agg")
		num(int(n.Func))
		flag(n.Distinct)
		child(n.Expr)
		child(n.Filter)
	case *qom.ExtractNode:
		open("extract")
		num(int(n.Field))
		child(n.Expr)
	case *qom.WindowFuncNode:
		open("winfunc")
		num(int(n.Func))
		children(n.Args)
	case *qom.OverNode:
		open("over")
		attr(n.WindowName)
		child(n.Expr)
		fingerprintWindowSpec(sb, n.Spec)
	case *qom.PositionNode:
		open("position")
		child(n.Search)
		child(n.In)
	case *qom.ExistsNode:
		open("exists")
		flag(n.Negated)
		child(n.Subquery)
	case *qom.ScalarSubqueryNode:
		open("scalar-sub")
		child(n.Query)
	case *qom.SetOperationNode:
		open("setop")
		num(int(n.Type))
		child(n.Left)
		child(n.Right)
	case *qom.CTENode:
		open("cte")
		attr(n.Name)
		flag(n.Recursive)
		for _, c := range n.Columns {
			attr(c)
		}
		child(n.Query)
	case *qom.NamedFunctionNode:
		open("func")
		attr(n.Name)
		flag(n.Distinct)
		children(n.Args)
	case *qom.CaseNode:
		open("case")
		child(n.Operand)
		for _, w := range n.Whens {
			child(w.Condition)
			child(w.Result)
		}
		child(n.ElseVal)
	case *qom.GroupingSetNode:
		open("grouping-set")
		num(int(n.Type))
		children(n.Columns)
		for _, set := range n.Sets {
			sb.WriteString(" (set")
			children(set)
			sb.WriteString(")")
		}
	case *qom.AliasNode:
		open("alias")
		attr(n.Name)
		child(n.Expr)
	case *qom.AssignmentNode:
		open("assign")
		child(n.Column)
		child(n.Value)
	case *qom.OnConflictNode:
		open("conflict")
		num(int(n.Action))
		children(n.Targets)
		for _, u := range n.Updates {
			child(u)
		}
		child(n.Where)
	case *qom.AlterTypeNode:
		open("alter-type")
		attr(n.Schema)
		attr(n.TypeName)
		attr(fmt.Sprintf("%#v", n.Action))
	case *qom.SelectCore:
		open("select")
		flag(n.Distinct)
		num(int(n.Lock))
		flag(n.SkipLocked)
		attr(n.Comment)
		for _, h := range n.Hints {
			attr(h)
		}
		for _, c := range n.CTEs {
			child(c)
		}
		child(n.From)
		children(n.Projections)
		children(n.DistinctOn)
		for _, j := range n.Joins {
			child(j)
		}
		children(n.Wheres)
		children(n.Groups)
		children(n.Havings)
		for _, w := range n.Windows {
			fingerprintWindowSpec(sb, w)
		}
		children(n.Orders)
		child(n.Limit)
		child(n.Offset)
	case *qom.InsertStatement:
		open("insert")
		child(n.Relation)
		children(n.Columns)
		for _, row := range n.Values {
			sb.WriteString(" (vals")
			children(row)
			sb.WriteString(")")
		}
		child(n.Select)
		child(n.Conflict)
		children(n.Returning)
		for _, c := range n.CTEs {
			child(c)
		}
	case *qom.UpdateStatement:
		open("update")
		child(n.Relation)
		for _, a := range n.Values {
			child(a)
		}
		children(n.Wheres)
		children(n.Orders)
		child(n.Limit)
		children(n.Returning)
		for _, c := range n.CTEs {
			child(c)
		}
	case *qom.DeleteStatement:
		open("delete")
		child(n.Relation)
		children(n.Wheres)
		children(n.Orders)
		child(n.Limit)
		children(n.Returning)
		for _, c := range n.CTEs {
			child(c)
		}
	default:
		open("unknown")
		attr(fmt.Sprintf("%T", node))
	}
	sb.WriteString(")")
}

func fingerprintWindowSpec(sb *strings.Builder, w *qom.WindowSpec) {
	if w == nil {
		sb.WriteString(" nil")
		return
	}
	sb.WriteString(" (window " + strconv.Quote(w.Name) + " " + strconv.Quote(w.Extends))
	if w.PartitionByOne {
		sb.WriteString(" p1")
	}
	for _, p := range w.PartitionBy {
		sb.WriteString(" ")
		fingerprintNode(sb, p)
	}
	sb.WriteString(" |")
	for _, o := range w.OrderBy {
		sb.WriteString(" ")
		fingerprintNode(sb, o)
	}
	sb.WriteString(" " + strconv.Itoa(int(w.Units)))
	if w.FrameStart != nil {
		sb.WriteString(" s" + strconv.Itoa(*w.FrameStart))
	}
	if w.FrameEnd != nil {
		sb.WriteString(" e" + strconv.Itoa(*w.FrameEnd))
	}
	sb.WriteString(" x" + strconv.Itoa(int(w.Exclude)) + ")")
}
