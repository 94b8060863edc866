// Package qom defines the query object model: the immutable AST node types
// used to represent SQL statements and expressions prior to rendering.
package qom

// Node is the interface that all AST nodes implement.
type Node interface {
	Accept(visitor Visitor) string
}

// Visitor defines the interface for walking the AST and producing output.
// Concrete visitors (e.g., Postgres, SQLServer) implement this interface.
type Visitor interface {
	VisitTable(node *Table) string
	VisitTableAlias(node *TableAlias) string
	VisitAttribute(node *Attribute) string
	VisitLiteral(node *LiteralNode) string
	VisitStar(node *StarNode) string
	VisitSqlLiteral(node *SqlLiteral) string
	VisitComparison(node *ComparisonNode) string
	VisitUnary(node *UnaryNode) string
	VisitAnd(node *AndNode) string
	VisitOr(node *OrNode) string
	VisitNot(node *NotNode) string
	VisitBool(node *BoolNode) string
	VisitIn(node *InNode) string
	VisitBetween(node *BetweenNode) string
	VisitRow(node *RowNode) string
	VisitRowComparison(node *RowComparisonNode) string
	VisitRowIn(node *RowInNode) string
	VisitRowBetween(node *RowBetweenNode) string
	VisitGrouping(node *GroupingNode) string
	VisitJoin(node *JoinNode) string
	VisitOrdering(node *OrderingNode) string
	VisitSelectCore(node *SelectCore) string
	VisitInsertStatement(node *InsertStatement) string
	VisitUpdateStatement(node *UpdateStatement) string
	VisitDeleteStatement(node *DeleteStatement) string
	VisitAlterType(node *AlterTypeNode) string
	VisitAssignment(node *AssignmentNode) string
	VisitOnConflict(node *OnConflictNode) string
	VisitInfix(node *InfixNode) string
	VisitUnaryMath(node *UnaryMathNode) string
	VisitAggregate(node *AggregateNode) string
	VisitExtract(node *ExtractNode) string
	VisitWindowFunction(node *WindowFuncNode) string
	VisitOver(node *OverNode) string
	VisitPosition(node *PositionNode) string
	VisitExists(node *ExistsNode) string
	VisitScalarSubquery(node *ScalarSubqueryNode) string
	VisitSetOperation(node *SetOperationNode) string
	VisitCTE(node *CTENode) string
	VisitNamedFunction(node *NamedFunctionNode) string
	VisitCase(node *CaseNode) string
	VisitGroupingSet(node *GroupingSetNode) string
	VisitAlias(node *AliasNode) string
	VisitBindParam(node *BindParamNode) string
	VisitCasted(node *CastedNode) string
	VisitComposite(node *CompositeNode) string
}

// Parameterizer is implemented by visitors that support parameterized
// queries and deferred render errors. Callers use type assertion to extract
// collected parameters (and any render failure) after SQL generation.
type Parameterizer interface {
	Params() []any
	Reset()
	Err() error
}

// Literal wraps a raw Go value into a LiteralNode. If val already
// implements Node, it is returned as-is.
func Literal(val any) Node {
	if n, ok := val.(Node); ok {
		return n
	}
	lit := &LiteralNode{Value: val}
	lit.Predications.self = lit
	lit.Combinable.self = lit
	return lit
}
