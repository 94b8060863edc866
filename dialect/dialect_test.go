package dialect

import (
	"testing"
)

// --- Parsing ---

func TestParseCanonicalNames(t *testing.T) {
	t.Parallel()
	for _, d := range All() {
		got, err := Parse(d.String())
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", d.String(), err)
		}
		if got != d {
			t.Errorf("Parse(%q): expected %v, got %v", d.String(), d, got)
		}
	}
}

func TestParseAliases(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		want Dialect
	}{
		{"pg", Postgres},
		{"postgresql", Postgres},
		{"POSTGRES", Postgres},
		{" mysql ", MySQL},
		{"maria", MariaDB},
		{"sqlite3", SQLite},
		{"mssql", SQLServer},
		{"tsql", SQLServer},
	}
	for _, tt := range tests {
		got, err := Parse(tt.name)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestParseUnknownName(t *testing.T) {
	t.Parallel()
	_, err := Parse("oracle")
	if err == nil {
		t.Fatal("expected an error for an unknown dialect name")
	}
}

func TestStringOfUnknownDialect(t *testing.T) {
	t.Parallel()
	if got := Dialect(99).String(); got != "dialect(99)" {
		t.Errorf("expected dialect(99), got %q", got)
	}
}

// --- Families ---

func TestFamilyMembership(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    Dialect
		want Family
	}{
		{Postgres, FamilyPostgres},
		{MySQL, FamilyMySQL},
		{MariaDB, FamilyMySQL},
		{SQLite, FamilySQLite},
		{SQLServer, FamilySQLServer},
	}
	for _, tt := range tests {
		if got := tt.d.Family(); got != tt.want {
			t.Errorf("%v.Family(): expected %v, got %v", tt.d, tt.want, got)
		}
	}
}

// --- Capability sets ---

func TestSetContainsByFamily(t *testing.T) {
	t.Parallel()
	s := SupportedBy(FamilyMySQL)
	if !s.Contains(MySQL) {
		t.Error("expected MySQL in a FamilyMySQL set")
	}
	if !s.Contains(MariaDB) {
		t.Error("expected MariaDB to inherit FamilyMySQL membership")
	}
	if s.Contains(Postgres) {
		t.Error("did not expect Postgres in a FamilyMySQL set")
	}
}

func TestSetContainsByExactDialect(t *testing.T) {
	t.Parallel()
	// Listing a dialect directly does not pull in its family siblings.
	s := SupportedBy(MariaDB)
	if !s.Contains(MariaDB) {
		t.Error("expected MariaDB in the set")
	}
	if s.Contains(MySQL) {
		t.Error("did not expect MySQL to inherit a MariaDB-only membership")
	}
}

func TestCapabilityExceptions(t *testing.T) {
	t.Parallel()
	// RETURNING: MariaDB has it, MySQL does not.
	if !ReturningClause.Contains(MariaDB) {
		t.Error("expected MariaDB to support RETURNING")
	}
	if ReturningClause.Contains(MySQL) {
		t.Error("did not expect MySQL to support RETURNING")
	}

	// Boolean literals: everyone but SQL Server.
	for _, d := range All() {
		want := d != SQLServer
		if got := BooleanLiterals.Contains(d); got != want {
			t.Errorf("BooleanLiterals.Contains(%v): expected %v, got %v", d, want, got)
		}
	}

	// Row value expressions: everyone but SQL Server.
	if RowValueExpressions.Contains(SQLServer) {
		t.Error("did not expect SQL Server to support row value expressions")
	}

	// PARTITION BY <constant> misread: MySQL and SQLite, but not MariaDB.
	if !OmitPartitionByOne.Contains(MySQL) || !OmitPartitionByOne.Contains(SQLite) {
		t.Error("expected MySQL and SQLite to omit constant partitions")
	}
	if OmitPartitionByOne.Contains(MariaDB) {
		t.Error("did not expect MariaDB to omit constant partitions")
	}
}
