package main

import (
	"sort"
	"strings"

	"github.com/evanwray/arbor/dialect"
)

var commandNames = []string{
	"columns", "connect", "dialect", "dialects", "disconnect", "distinct",
	"exit", "explain", "from", "help", "inline", "join", "limit", "offset",
	"order", "reset", "run", "select", "sql", "tables", "tenant", "where",
}

// Commands whose next argument is a table name or a column reference.
var (
	tableArgCommands  = []string{"from ", "join ", "columns "}
	columnArgCommands = []string{"select ", "where ", "order "}
)

// replCompleter implements readline's AutoCompleter interface, completing
// command names plus table and column names from the connected schema.
type replCompleter struct {
	sess *Session
}

// Do returns completion candidates for the current line/cursor position.
// length is the number of chars from end of line[:pos] that form the prefix
// being completed; newLine contains the suffixes to append per candidate.
func (c *replCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])
	lower := strings.ToLower(lineStr)

	var candidates []string
	var prefix string
	switch {
	case hasCommandPrefix(lower, tableArgCommands):
		prefix = lastToken(lineStr)
		candidates = c.completeTables(prefix)
	case hasCommandPrefix(lower, columnArgCommands):
		prefix = lastToken(lineStr)
		candidates = c.completeColumnRef(prefix)
	case strings.HasPrefix(lower, "dialect "):
		prefix = lastToken(lineStr)
		candidates = filterPrefix(dialectNames(), prefix)
	case strings.HasPrefix(lower, "inline "):
		prefix = lastToken(lineStr)
		candidates = filterPrefix([]string{"on", "off"}, prefix)
	default:
		prefix = strings.TrimSpace(lineStr)
		candidates = filterPrefix(commandNames, prefix)
	}

	for _, cand := range candidates {
		newLine = append(newLine, []rune(cand[len(prefix):]+" "))
	}
	length = len([]rune(prefix))
	return
}

func (c *replCompleter) completeTables(prefix string) []string {
	if c.sess.conn == nil {
		return nil
	}
	names := append([]string(nil), c.sess.conn.schemaTables()...)
	sort.Strings(names)
	return filterPrefix(names, prefix)
}

// completeColumnRef handles bare column names, table names, and table.column.
func (c *replCompleter) completeColumnRef(prefix string) []string {
	if tbl, _, ok := strings.Cut(prefix, "."); ok {
		if c.sess.conn == nil {
			return nil
		}
		var candidates []string
		for _, col := range c.sess.conn.schemaColumns(tbl) {
			candidates = append(candidates, tbl+"."+col)
		}
		return filterPrefix(candidates, prefix)
	}

	var candidates []string
	if c.sess.from != nil && c.sess.conn != nil {
		candidates = append(candidates, c.sess.conn.schemaColumns(c.sess.from.Name)...)
	}
	candidates = append(candidates, c.completeTables(prefix)...)
	return filterPrefix(candidates, prefix)
}

func dialectNames() []string {
	var names []string
	for _, d := range dialect.All() {
		names = append(names, d.String())
	}
	return names
}

func hasCommandPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// filterPrefix returns items that start with prefix (case-insensitive).
func filterPrefix(items []string, prefix string) []string {
	if prefix == "" {
		result := make([]string, len(items))
		copy(result, items)
		return result
	}
	lowerPrefix := strings.ToLower(prefix)
	var result []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), lowerPrefix) {
			result = append(result, item)
		}
	}
	return result
}

// lastToken returns the last whitespace- or comma-separated token.
func lastToken(s string) string {
	lastSep := -1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' || s[i] == ',' || s[i] == '\t' {
			lastSep = i
			break
		}
	}
	if lastSep >= 0 {
		return s[lastSep+1:]
	}
	return s
}
