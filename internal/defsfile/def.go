// Package defsfile houses low-level decoders for offset definition sources.
// The goal is to keep the parsing focused and independent from the public
// API so the offsets package can orchestrate the rows into an immutable
// registry. Two source flavors are supported:
//
//   - a pipe-delimited table, one row per symbolic offset:
//     name | kind | value-expression | captured_version | note
//   - a YAML document carrying the same fields per entry.
//
// Scalar value-expressions may be written as a derivation from another
// known constant ("0x224c - 0x8"); the parser folds the expression but the
// raw text survives in Def.Expr for provenance.
package defsfile

import (
	"fmt"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// Row kinds as they appear in definition sources.
const (
	KindScalar    = "Scalar"
	KindComposite = "Composite"
)

// Def is one decoded definition row. It is a raw decode product: the
// registry layer enforces cross-row invariants (unique names) on top.
type Def struct {
	Name    string
	Kind    string // KindScalar or KindComposite
	Offset  int64  // scalar relative offset (signed)
	Base    int64  // composite base offset
	Stride  int64  // composite stride, never 0
	Sub     int64  // composite sub-offset within an element
	Count   int    // composite element count, 0 = unbounded
	Version string // captured target version tag
	Note    string // free-text provenance, not interpreted
	Expr    string // raw value-expression as written in the source
}

// defErr wraps ErrMalformedDefinition with positional context.
func defErr(line int, format string, args ...any) error {
	return &types.Error{
		Kind: types.ErrKindFormat,
		Msg:  fmt.Sprintf("defs: line %d: %s", line, fmt.Sprintf(format, args...)),
		Err:  types.ErrMalformedDefinition,
	}
}
