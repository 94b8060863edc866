// REPL binary for interactively building and executing SQL queries.
//
// Configuration (env vars):
//
//	ARBOR_DIALECT=postgres|mysql|mariadb|sqlite|sqlserver  (optional, default postgres)
//	DATABASE_URL=<dsn>                                     (optional, auto-connects if set)
//
// Usage:
//
//	go run ./cmd/repl
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"

	"github.com/evanwray/arbor/dialect"
)

func main() {
	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "arbor> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	sess := NewSession(loadDialect(), rl)

	comp := &replCompleter{sess: sess}
	_ = rl.SetConfig(&readline.Config{
		Prompt:          "arbor> ",
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		AutoComplete:    comp,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		fmt.Printf("[Config] Connecting via DATABASE_URL...\n")
		if err := sess.Execute("connect " + dsn); err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: DATABASE_URL connect failed: %v\n", err)
		}
	}

	fmt.Println()
	fmt.Println("Arbor REPL. Type 'help' for commands, 'exit' to quit.")
	fmt.Println()

	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	if sess.conn != nil {
		_ = sess.conn.close()
	}
	fmt.Println()
}

func loadDialect() dialect.Dialect {
	name := strings.TrimSpace(os.Getenv("ARBOR_DIALECT"))
	if name == "" {
		fmt.Println("[Config] Dialect: postgres")
		return dialect.Postgres
	}
	d, err := dialect.Parse(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid ARBOR_DIALECT=%q, defaulting to postgres\n", name)
		return dialect.Postgres
	}
	fmt.Printf("[Config] Dialect: %s (from ARBOR_DIALECT)\n", d)
	return d
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arbor_history")
}
