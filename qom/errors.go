package qom

import "fmt"

// InvalidArityError reports a node constructed with the wrong number of
// children for its declared shape (e.g., a zero-degree row).
type InvalidArityError struct {
	Construct string
	Got       int
	Want      string
}

func (e *InvalidArityError) Error() string {
	return fmt.Sprintf("arbor: invalid arity for %s: got %d children, want %s", e.Construct, e.Got, e.Want)
}

// DegreeMismatchError reports a comparison between rows of unequal degree.
type DegreeMismatchError struct {
	Left  int
	Right int
}

func (e *DegreeMismatchError) Error() string {
	return fmt.Sprintf("arbor: row degree mismatch: %d vs %d", e.Left, e.Right)
}

// IllegalStateError reports a statement whose clause slots are in a state
// no rendering rule can resolve (e.g., an ALTER TYPE with no action, or a
// window frame end bound without a start bound).
type IllegalStateError struct {
	Construct string
	Detail    string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("arbor: illegal state in %s: %s", e.Construct, e.Detail)
}
