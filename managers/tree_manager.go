package managers

import (
	"github.com/evanwray/arbor/qom"
	"github.com/evanwray/arbor/rewrite"
)

// treeManager is the shared base for all manager types. It holds the
// transformer pipeline common to Select, Insert, Update, and Delete managers.
type treeManager struct {
	transformers []rewrite.Transformer
}

// addTransformer appends a transformer to the pipeline.
func (tm *treeManager) addTransformer(t rewrite.Transformer) {
	tm.transformers = append(tm.transformers, t)
}

// Transformers returns the registered transformer pipeline.
func (tm *treeManager) Transformers() []rewrite.Transformer {
	return tm.transformers
}

// toSQLParams is a helper that resets a parameterizer (if present), calls
// the provided generate function, surfaces any rendering error, and returns
// SQL + params.
func toSQLParams(v qom.Visitor, generate func(qom.Visitor) (string, error)) (string, []any, error) {
	p, _ := v.(qom.Parameterizer)
	if p != nil {
		p.Reset()
	}

	sql, err := generate(v)
	if err != nil {
		return "", nil, err
	}

	if p != nil {
		if err := p.Err(); err != nil {
			return "", nil, err
		}
		return sql, p.Params(), nil
	}
	return sql, nil, nil
}
