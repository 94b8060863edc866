package dialect

// Capability sets. Each variable names a syntax feature or quirk and lists
// the dialects (or families) that have it. Renderers consult these instead
// of hard-coding dialect checks at the point of use.
var (
	// RowValueExpressions: (a, b) = (x, y) and friends are valid syntax.
	// SQL Server has no row value expression support at all.
	RowValueExpressions = SupportedBy(FamilyPostgres, FamilyMySQL, FamilySQLite)

	// RowInLists: (a, b) IN ((1, 2), (3, 4)) is valid syntax.
	RowInLists = SupportedBy(FamilyPostgres, FamilyMySQL, FamilySQLite)

	// DistinctPredicate: IS DISTINCT FROM / IS NOT DISTINCT FROM exist.
	DistinctPredicate = SupportedBy(FamilyPostgres)

	// NullSafeEqualOperator: the <=> null-safe equality operator exists.
	NullSafeEqualOperator = SupportedBy(FamilyMySQL)

	// NullSafeIsOperator: a IS b / a IS NOT b compare null-safely.
	NullSafeIsOperator = SupportedBy(FamilySQLite)

	// BetweenSymmetric: BETWEEN SYMMETRIC is native syntax.
	BetweenSymmetric = SupportedBy(FamilyPostgres)

	// BooleanLiterals: TRUE and FALSE are valid standalone predicates.
	// SQL Server has no boolean type in predicate position.
	BooleanLiterals = SupportedBy(FamilyPostgres, FamilyMySQL, FamilySQLite)

	// OmitPartitionByOne: the dialect misreads PARTITION BY <constant>, so a
	// whole-result-set partition renders as no PARTITION BY clause at all.
	OmitPartitionByOne = SupportedBy(MySQL, FamilySQLite)

	// RequiresOrderByInLeadLag: LEAD/LAG demand an ORDER BY in the window.
	RequiresOrderByInLeadLag = SupportedBy(MariaDB, FamilySQLServer)

	// RequiresOrderByInNtile: NTILE demands an ORDER BY in the window.
	RequiresOrderByInNtile = SupportedBy(MariaDB, FamilySQLServer)

	// RequiresOrderByInRankDenseRank: RANK/DENSE_RANK demand an ORDER BY.
	RequiresOrderByInRankDenseRank = SupportedBy(MariaDB, FamilySQLServer)

	// RequiresOrderByInPercentRankCumeDist: PERCENT_RANK/CUME_DIST demand
	// an ORDER BY in the window.
	RequiresOrderByInPercentRankCumeDist = SupportedBy(MariaDB, FamilySQLServer)

	// GroupsFrameUnits: the GROUPS frame unit is supported.
	GroupsFrameUnits = SupportedBy(FamilyPostgres, FamilySQLite)

	// FrameExclusion: the frame EXCLUDE clause is supported.
	FrameExclusion = SupportedBy(FamilyPostgres, FamilySQLite)

	// ReturningClause: INSERT/UPDATE/DELETE ... RETURNING is supported.
	ReturningClause = SupportedBy(FamilyPostgres, FamilySQLite, MariaDB)

	// OnConflictClause: INSERT ... ON CONFLICT is native syntax. MySQL and
	// MariaDB render ON DUPLICATE KEY UPDATE instead.
	OnConflictClause = SupportedBy(FamilyPostgres, FamilySQLite)

	// OffsetFetchLimit: pagination renders as OFFSET n ROWS FETCH NEXT m
	// ROWS ONLY instead of LIMIT/OFFSET.
	OffsetFetchLimit = SupportedBy(FamilySQLServer)

	// StructuredTypeBinds: composite values may be sent as single bind
	// parameters. Elsewhere they are inlined as ROW-style literals.
	StructuredTypeBinds = SupportedBy(FamilyPostgres)

	// RowLocking: SELECT ... FOR UPDATE/SHARE is supported.
	RowLocking = SupportedBy(FamilyPostgres, FamilyMySQL)

	// AlterTypeStatement: ALTER TYPE (enum maintenance) is supported.
	AlterTypeStatement = SupportedBy(FamilyPostgres)

	// PositionViaInstr: POSITION renders as INSTR(in, search).
	PositionViaInstr = SupportedBy(FamilySQLite)

	// PositionViaCharIndex: POSITION renders as CHARINDEX(search, in).
	PositionViaCharIndex = SupportedBy(FamilySQLServer)
)
