package render

import (
	"fmt"

	"github.com/evanwray/arbor/dialect"
)

// DialectNotSupportedError reports a construct that the target dialect can
// neither render natively nor emulate. Rendering stops at the first such
// construct and no partial SQL is returned.
type DialectNotSupportedError struct {
	Construct string
	Dialect   dialect.Dialect
}

func (e *DialectNotSupportedError) Error() string {
	return fmt.Sprintf("arbor: %s is not supported on %s", e.Construct, e.Dialect)
}
