// Package dialect enumerates the supported SQL dialects and the capability
// sets that drive conditional rendering. A renderer asks whether its dialect
// is in a capability set instead of switching on dialect names inline.
package dialect

import (
	"fmt"
	"strings"
)

// Dialect identifies a concrete target database.
type Dialect int

const (
	Postgres Dialect = iota
	MySQL
	MariaDB
	SQLite
	SQLServer
)

// Family identifies the syntax family a dialect descends from. Derived
// dialects inherit membership in a capability set through their family.
type Family int

const (
	FamilyPostgres Family = iota
	FamilyMySQL
	FamilySQLite
	FamilySQLServer
)

var dialectNames = map[Dialect]string{
	Postgres:  "postgres",
	MySQL:     "mysql",
	MariaDB:   "mariadb",
	SQLite:    "sqlite",
	SQLServer: "sqlserver",
}

// String returns the canonical lowercase name of the dialect.
func (d Dialect) String() string {
	if s, ok := dialectNames[d]; ok {
		return s
	}
	return fmt.Sprintf("dialect(%d)", int(d))
}

// Family returns the syntax family of the dialect. MariaDB belongs to the
// MySQL family and inherits its capabilities unless a set names it directly.
func (d Dialect) Family() Family {
	switch d {
	case MySQL, MariaDB:
		return FamilyMySQL
	case SQLite:
		return FamilySQLite
	case SQLServer:
		return FamilySQLServer
	default:
		return FamilyPostgres
	}
}

// All lists every supported dialect.
func All() []Dialect {
	return []Dialect{Postgres, MySQL, MariaDB, SQLite, SQLServer}
}

// Parse resolves a dialect from its name. Common aliases are accepted.
func Parse(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "postgres", "postgresql", "pg":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	case "mariadb", "maria":
		return MariaDB, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "sqlserver", "mssql", "tsql":
		return SQLServer, nil
	default:
		return Postgres, fmt.Errorf("arbor: unknown dialect %q", name)
	}
}

// Set is a capability: the group of dialects that share a syntax feature or
// quirk. Membership is resolved by exact dialect first, then by family, so a
// set may include a family while excluding one of its members by not listing
// it explicitly.
type Set struct {
	dialects map[Dialect]bool
	families map[Family]bool
}

// SupportedBy builds a capability set from dialects and families. Arguments
// may be Dialect or Family values, mixed freely.
func SupportedBy(members ...any) Set {
	s := Set{
		dialects: make(map[Dialect]bool),
		families: make(map[Family]bool),
	}
	for _, m := range members {
		switch v := m.(type) {
		case Dialect:
			s.dialects[v] = true
		case Family:
			s.families[v] = true
		default:
			panic(fmt.Sprintf("dialect.SupportedBy: unsupported member type %T", m))
		}
	}
	return s
}

// Contains reports whether d is a member of the set, either directly or
// through its family.
func (s Set) Contains(d Dialect) bool {
	if s.dialects[d] {
		return true
	}
	return s.families[d.Family()]
}
