package render

import (
	"github.com/evanwray/arbor/dialect"
	"github.com/evanwray/arbor/qom"
)

// Settings adjusts rendering behaviour independently of the dialect.
type Settings struct {
	// InlineLiterals disables bind parameters: values are escaped into the
	// SQL text. Debugging only; see WithoutParams.
	InlineLiterals bool

	// InListPadding pads IN lists to the next power of two; see
	// WithInListPadding.
	InListPadding bool
}

// Config selects the target dialect and rendering settings.
type Config struct {
	Dialect  dialect.Dialect
	Settings Settings
}

// Rendered is the result of rendering a statement: the SQL text and the
// bind parameters collected for it, in placeholder order.
type Rendered struct {
	SQL    string
	Params []any
}

// New creates a visitor for the configured dialect. The returned visitor
// also implements qom.Parameterizer.
func New(cfg Config) qom.Visitor {
	var opts []Option
	if cfg.Settings.InlineLiterals {
		opts = append(opts, WithoutParams())
	}
	if cfg.Settings.InListPadding {
		opts = append(opts, WithInListPadding())
	}
	switch cfg.Dialect {
	case dialect.MySQL:
		return NewMySQLVisitor(opts...)
	case dialect.MariaDB:
		return NewMariaDBVisitor(opts...)
	case dialect.SQLite:
		return NewSQLiteVisitor(opts...)
	case dialect.SQLServer:
		return NewSQLServerVisitor(opts...)
	default:
		return NewPostgresVisitor(opts...)
	}
}

// Render walks the node with a fresh visitor for the configured dialect.
// On failure no partial SQL is returned. Rendering the same node with the
// same configuration is deterministic.
func Render(node qom.Node, cfg Config) (Rendered, error) {
	v := New(cfg)
	sql := node.Accept(v)
	p := v.(qom.Parameterizer)
	if err := p.Err(); err != nil {
		return Rendered{}, err
	}
	return Rendered{SQL: sql, Params: p.Params()}, nil
}
