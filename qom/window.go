package qom

import "math"

// WindowFunc identifies the window function.
type WindowFunc int

const (
	WinRowNumber WindowFunc = iota
	WinRank
	WinDenseRank
	WinNtile
	WinLag
	WinLead
	WinFirstValue
	WinLastValue
	WinNthValue
	WinCumeDist
	WinPercentRank
)

// FrameUnits specifies ROWS, RANGE, or GROUPS for a window frame.
type FrameUnits int

const (
	UnitsRows FrameUnits = iota
	UnitsRange
	UnitsGroups
)

// FrameExclude specifies the frame EXCLUDE clause.
type FrameExclude int

const (
	ExcludeNone FrameExclude = iota
	ExcludeCurrentRow
	ExcludeGroup
	ExcludeTies
	ExcludeNoOthers
)

// Frame bounds are signed offsets relative to the current row: negative
// offsets mean PRECEDING, positive mean FOLLOWING, zero means CURRENT ROW,
// and the two sentinels mean UNBOUNDED PRECEDING / FOLLOWING.
const (
	UnboundedPreceding = math.MinInt32
	UnboundedFollowing = math.MaxInt32
)

// Preceding returns the frame bound offset for n PRECEDING.
func Preceding(n int) int { return -n }

// Following returns the frame bound offset for n FOLLOWING.
func Following(n int) int { return n }

// CurrentRow returns the frame bound offset for CURRENT ROW.
func CurrentRow() int { return 0 }

// WindowSpec describes a window specification: an optional extended named
// window, partitioning, ordering, and a frame clause. The frame end is only
// meaningful when the frame start is set.
type WindowSpec struct {
	Name           string // set when used as a named WINDOW clause entry
	Extends        string // named window this specification extends
	PartitionBy    []Node
	PartitionByOne bool // PARTITION BY 1: compute over the whole result set
	OrderBy        []Node
	Units          FrameUnits
	FrameStart     *int
	FrameEnd       *int
	Exclude        FrameExclude
}

// NewWindowSpec creates a WindowSpec with an optional name.
func NewWindowSpec(name ...string) *WindowSpec {
	w := &WindowSpec{}
	if len(name) > 0 {
		w.Name = name[0]
	}
	return w
}

// ExtendsWindow records the named window this specification extends.
func (w *WindowSpec) ExtendsWindow(name string) *WindowSpec {
	w.Extends = name
	return w
}

// Partition sets the PARTITION BY expressions.
func (w *WindowSpec) Partition(cols ...Node) *WindowSpec {
	w.PartitionBy = cols
	w.PartitionByOne = false
	return w
}

// PartitionOne sets PARTITION BY 1. Dialects that misinterpret a constant
// partition expression omit the clause entirely.
func (w *WindowSpec) PartitionOne() *WindowSpec {
	w.PartitionBy = nil
	w.PartitionByOne = true
	return w
}

// Order sets the ORDER BY expressions.
func (w *WindowSpec) Order(orderings ...Node) *WindowSpec {
	w.OrderBy = orderings
	return w
}

func (w *WindowSpec) frame(units FrameUnits, start int, end ...int) *WindowSpec {
	w.Units = units
	s := start
	w.FrameStart = &s
	w.FrameEnd = nil
	if len(end) > 0 {
		e := end[0]
		w.FrameEnd = &e
	}
	return w
}

// Rows sets a ROWS frame with a start bound and optional end bound.
func (w *WindowSpec) Rows(start int, end ...int) *WindowSpec {
	return w.frame(UnitsRows, start, end...)
}

// Range sets a RANGE frame with a start bound and optional end bound.
func (w *WindowSpec) Range(start int, end ...int) *WindowSpec {
	return w.frame(UnitsRange, start, end...)
}

// Groups sets a GROUPS frame with a start bound and optional end bound.
func (w *WindowSpec) Groups(start int, end ...int) *WindowSpec {
	return w.frame(UnitsGroups, start, end...)
}

// ExcludeClause sets the frame EXCLUDE clause.
func (w *WindowSpec) ExcludeClause(e FrameExclude) *WindowSpec {
	w.Exclude = e
	return w
}

// Clone returns an independent copy of the specification.
func (w *WindowSpec) Clone() *WindowSpec {
	c := *w
	c.PartitionBy = append([]Node(nil), w.PartitionBy...)
	c.OrderBy = append([]Node(nil), w.OrderBy...)
	if w.FrameStart != nil {
		s := *w.FrameStart
		c.FrameStart = &s
	}
	if w.FrameEnd != nil {
		e := *w.FrameEnd
		c.FrameEnd = &e
	}
	return &c
}

// WindowFuncNode represents a window function call (e.g. ROW_NUMBER()).
// It is always wrapped by OverNode for the OVER clause.
type WindowFuncNode struct {
	Func WindowFunc
	Args []Node
}

func (n *WindowFuncNode) Accept(v Visitor) string { return v.VisitWindowFunction(n) }

// OverNode wraps an expression (window function or aggregate) with an OVER
// clause referencing either an inline specification or a named window.
type OverNode struct {
	Predications
	Arithmetics
	Combinable
	Expr       Node        // WindowFuncNode or AggregateNode
	Spec       *WindowSpec // inline specification (nil if using WindowName)
	WindowName string      // named window reference (empty if using Spec)
}

func (n *OverNode) Accept(v Visitor) string { return v.VisitOver(n) }

// NewOverNode creates an OverNode with properly initialised embedded structs.
func NewOverNode(expr Node) *OverNode {
	o := &OverNode{Expr: expr}
	o.Predications.self = o
	o.Arithmetics.self = o
	o.Combinable.self = o
	return o
}

// --- Window function constructors ---

// RowNumber creates a ROW_NUMBER() window function node.
func RowNumber() *WindowFuncNode {
	return &WindowFuncNode{Func: WinRowNumber}
}

// Rank creates a RANK() window function node.
func Rank() *WindowFuncNode {
	return &WindowFuncNode{Func: WinRank}
}

// DenseRank creates a DENSE_RANK() window function node.
func DenseRank() *WindowFuncNode {
	return &WindowFuncNode{Func: WinDenseRank}
}

// CumeDist creates a CUME_DIST() window function node.
func CumeDist() *WindowFuncNode {
	return &WindowFuncNode{Func: WinCumeDist}
}

// PercentRank creates a PERCENT_RANK() window function node.
func PercentRank() *WindowFuncNode {
	return &WindowFuncNode{Func: WinPercentRank}
}

// Ntile creates an NTILE(n) window function node.
func Ntile(n Node) *WindowFuncNode {
	return &WindowFuncNode{Func: WinNtile, Args: []Node{n}}
}

// FirstValue creates a FIRST_VALUE(expr) window function node.
func FirstValue(expr Node) *WindowFuncNode {
	return &WindowFuncNode{Func: WinFirstValue, Args: []Node{expr}}
}

// LastValue creates a LAST_VALUE(expr) window function node.
func LastValue(expr Node) *WindowFuncNode {
	return &WindowFuncNode{Func: WinLastValue, Args: []Node{expr}}
}

// Lag creates a LAG(expr [, offset [, default]]) window function node.
func Lag(args ...Node) *WindowFuncNode {
	return &WindowFuncNode{Func: WinLag, Args: args}
}

// Lead creates a LEAD(expr [, offset [, default]]) window function node.
func Lead(args ...Node) *WindowFuncNode {
	return &WindowFuncNode{Func: WinLead, Args: args}
}

// NthValue creates an NTH_VALUE(expr, n) window function node.
func NthValue(args ...Node) *WindowFuncNode {
	return &WindowFuncNode{Func: WinNthValue, Args: args}
}

// Over wraps the window function with an inline window specification.
func (n *WindowFuncNode) Over(spec *WindowSpec) *OverNode {
	o := NewOverNode(n)
	o.Spec = spec
	return o
}

// OverName wraps the window function with a named window reference.
func (n *WindowFuncNode) OverName(name string) *OverNode {
	o := NewOverNode(n)
	o.WindowName = name
	return o
}
