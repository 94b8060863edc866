package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ergochat/readline"

	"github.com/evanwray/arbor/dialect"
	"github.com/evanwray/arbor/managers"
	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/render"
	"github.com/evanwray/arbor/rewrite/tenantscope"
)

// Session holds the REPL state: the target dialect, the current query under
// construction, and an optional live database connection.
type Session struct {
	d      dialect.Dialect
	rl     *readline.Instance
	conn   *dbConn
	query  *managers.SelectManager
	from   *qom.Table
	inline bool
}

func NewSession(d dialect.Dialect, rl *readline.Instance) *Session {
	return &Session{d: d, rl: rl}
}

func (s *Session) visitor() qom.Visitor {
	return render.New(render.Config{
		Dialect:  s.d,
		Settings: render.Settings{InlineLiterals: s.inline},
	})
}

// Execute runs a single REPL command line.
func (s *Session) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help":
		s.printHelp()
		return nil
	case "dialect":
		return s.cmdDialect(args)
	case "dialects":
		for _, d := range dialect.All() {
			marker := "  "
			if d == s.d {
				marker = "* "
			}
			fmt.Printf("%s%s\n", marker, d)
		}
		return nil
	case "inline":
		return s.cmdInline(args)
	case "connect":
		return s.cmdConnect(args)
	case "disconnect":
		return s.cmdDisconnect()
	case "tables":
		return s.cmdTables()
	case "columns":
		return s.cmdColumns(args)
	case "from":
		return s.cmdFrom(args)
	case "select":
		return s.cmdSelect(args)
	case "where":
		return s.cmdWhere(args)
	case "join":
		return s.cmdJoin(args)
	case "order":
		return s.cmdOrder(args)
	case "limit":
		return s.cmdLimitOffset(args, "limit")
	case "offset":
		return s.cmdLimitOffset(args, "offset")
	case "distinct":
		return s.cmdDistinct()
	case "tenant":
		return s.cmdTenant(args)
	case "sql":
		return s.cmdSQL(false)
	case "explain":
		return s.cmdSQL(true)
	case "run":
		return s.cmdRun()
	case "reset":
		s.query = nil
		s.from = nil
		fmt.Println("  Query cleared")
		return nil
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func (s *Session) printHelp() {
	fmt.Print(`Commands:
  from <table>              start a new query on a table
  select <col> [col...]     set the projection (* for all)
  where <col> <op> <value>  add a condition (=, !=, >, >=, <, <=, like)
  join <table> on <l> <r>   inner join on left = right columns
  order <col> [asc|desc]    add an ordering
  limit <n> / offset <n>    paginate
  distinct                  toggle DISTINCT on
  tenant <value> [column]   scope every table to a tenant value
  sql                       render the query for the current dialect
  explain                   render in multi-line formatted style
  run                       execute against the connected database
  reset                     discard the current query

  dialect [name]            show or switch the target dialect
  dialects                  list available dialects
  inline on|off             inline literals instead of bind parameters
  connect <dsn>             connect to a database
  disconnect                close the connection
  tables / columns <table>  browse the connected schema
  exit                      quit
`)
}

func (s *Session) cmdDialect(args []string) error {
	if len(args) == 0 {
		fmt.Printf("  Dialect: %s\n", s.d)
		return nil
	}
	d, err := dialect.Parse(args[0])
	if err != nil {
		return err
	}
	s.d = d
	fmt.Printf("  Dialect set to %s\n", d)
	return nil
}

func (s *Session) cmdInline(args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return fmt.Errorf("usage: inline on|off")
	}
	s.inline = args[0] == "on"
	fmt.Printf("  Inline literals: %s\n", args[0])
	return nil
}

func (s *Session) cmdConnect(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: connect <dsn>")
	}
	if s.conn != nil {
		_ = s.conn.close()
		s.conn = nil
	}
	conn, err := connect(s.d, strings.Join(args, " "))
	if err != nil {
		return err
	}
	s.conn = conn
	fmt.Printf("  Connected (%s)\n", sanitizeDSN(conn.dsn))
	return nil
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return fmt.Errorf("not connected")
	}
	err := s.conn.close()
	s.conn = nil
	fmt.Println("  Disconnected")
	return err
}

func (s *Session) cmdTables() error {
	if s.conn == nil {
		return fmt.Errorf("not connected")
	}
	for _, t := range s.conn.schemaTables() {
		fmt.Printf("  %s\n", t)
	}
	return nil
}

func (s *Session) cmdColumns(args []string) error {
	if s.conn == nil {
		return fmt.Errorf("not connected")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: columns <table>")
	}
	for _, c := range s.conn.schemaColumns(args[0]) {
		fmt.Printf("  %s\n", c)
	}
	return nil
}

func (s *Session) cmdFrom(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: from <table>")
	}
	s.from = qom.NewTable(args[0])
	s.query = managers.NewSelectManager(s.from)
	fmt.Printf("  Query on %q started\n", args[0])
	return nil
}

func (s *Session) needQuery() error {
	if s.query == nil {
		return fmt.Errorf("no query in progress (use 'from <table>' first)")
	}
	return nil
}

func (s *Session) cmdSelect(args []string) error {
	if err := s.needQuery(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: select <col> [col...]")
	}
	var cols []qom.Node
	for _, a := range args {
		if a == "*" {
			cols = append(cols, qom.Star())
			continue
		}
		cols = append(cols, s.column(a))
	}
	s.query.Select(cols...)
	return nil
}

func (s *Session) cmdWhere(args []string) error {
	if err := s.needQuery(); err != nil {
		return err
	}
	if len(args) != 3 {
		return fmt.Errorf("usage: where <col> <op> <value>")
	}
	col := s.column(args[0])
	val := parseValue(args[2])
	var cond qom.Node
	switch args[1] {
	case "=":
		cond = col.Eq(val)
	case "!=", "<>":
		cond = col.NotEq(val)
	case ">":
		cond = col.Gt(val)
	case ">=":
		cond = col.GtEq(val)
	case "<":
		cond = col.Lt(val)
	case "<=":
		cond = col.LtEq(val)
	case "like":
		cond = col.Like(val)
	default:
		return fmt.Errorf("unknown operator %q", args[1])
	}
	s.query.Where(cond)
	return nil
}

func (s *Session) cmdJoin(args []string) error {
	if err := s.needQuery(); err != nil {
		return err
	}
	if len(args) != 4 || args[1] != "on" {
		return fmt.Errorf("usage: join <table> on <left-col> <right-col>")
	}
	right := qom.NewTable(args[0])
	s.query.Join(right).On(s.column(args[2]).Eq(columnOn(right, args[3])))
	return nil
}

func (s *Session) cmdOrder(args []string) error {
	if err := s.needQuery(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: order <col> [asc|desc]")
	}
	col := s.column(args[0])
	if len(args) > 1 && strings.EqualFold(args[1], "desc") {
		s.query.Order(col.Desc())
	} else {
		s.query.Order(col.Asc())
	}
	return nil
}

func (s *Session) cmdLimitOffset(args []string, which string) error {
	if err := s.needQuery(); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <n>", which)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%s must be an integer", which)
	}
	if which == "limit" {
		s.query.Limit(n)
	} else {
		s.query.Offset(n)
	}
	return nil
}

func (s *Session) cmdDistinct() error {
	if err := s.needQuery(); err != nil {
		return err
	}
	s.query.Distinct()
	return nil
}

func (s *Session) cmdTenant(args []string) error {
	if err := s.needQuery(); err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("usage: tenant <value> [column]")
	}
	var opts []tenantscope.Option
	if len(args) > 1 {
		opts = append(opts, tenantscope.WithColumn(args[1]))
	}
	s.query.Use(tenantscope.New(parseValue(args[0]), opts...))
	fmt.Println("  Tenant scope attached")
	return nil
}

func (s *Session) cmdSQL(formatted bool) error {
	if err := s.needQuery(); err != nil {
		return err
	}
	v := s.visitor()
	if formatted {
		v = render.NewFormattingVisitor(v)
	}
	sql, params, err := s.query.ToSQL(v)
	if err != nil {
		return err
	}
	fmt.Printf("  %s\n", sql)
	if len(params) > 0 {
		fmt.Printf("  params: %v\n", params)
	}
	return nil
}

func (s *Session) cmdRun() error {
	if err := s.needQuery(); err != nil {
		return err
	}
	if s.conn == nil {
		return fmt.Errorf("not connected (use 'connect <dsn>')")
	}
	sql, params, err := s.query.ToSQL(s.visitor())
	if err != nil {
		return err
	}
	out, err := s.conn.execQuery(sql, params)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// column resolves "col" against the current FROM table and "table.col"
// against the named table.
func (s *Session) column(ref string) *qom.Attribute {
	if tbl, col, ok := strings.Cut(ref, "."); ok {
		return qom.NewTable(tbl).Col(col)
	}
	if s.from != nil {
		return s.from.Col(ref)
	}
	return qom.NewAttribute(nil, ref)
}

func columnOn(t *qom.Table, ref string) *qom.Attribute {
	if tbl, col, ok := strings.Cut(ref, "."); ok {
		return qom.NewTable(tbl).Col(col)
	}
	return t.Col(ref)
}

// parseValue interprets a token as an int, float, bool, or string.
// Single quotes force a string.
func parseValue(tok string) any {
	if len(tok) >= 2 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		return tok[1 : len(tok)-1]
	}
	if n, err := strconv.Atoi(tok); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return f
	}
	switch strings.ToLower(tok) {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	return tok
}
