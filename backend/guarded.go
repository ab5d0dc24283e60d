package backend

import (
	"github.com/joshuapare/offsetkit/offsets"
	"github.com/joshuapare/offsetkit/pkg/types"
)

// GuardedWriter enforces the freshness policy on the write path: a write
// through a resolved address whose classification is anything other than
// Fresh is refused with ErrStaleWrite. Reads pass through regardless but
// always hand the classification back, so a drifted read can be surfaced
// to the end consumer instead of being silently masked.
type GuardedWriter struct {
	b Backend
}

// NewGuardedWriter wraps a backend.
func NewGuardedWriter(b Backend) *GuardedWriter {
	return &GuardedWriter{b: b}
}

// Write copies data through a resolved address, refusing anything not
// classified Fresh. The refusal names both versions so the operator knows
// which capture to redo.
func (g *GuardedWriter) Write(ra offsets.ResolvedAddress, data []byte) error {
	if !ra.Freshness.IsFresh() {
		return &types.Error{
			Kind: types.ErrKindState,
			Msg:  "write " + ra.Symbol + " at " + ra.Address.String() + ": " + ra.Freshness.String(),
			Err:  types.ErrStaleWrite,
		}
	}
	_, err := g.b.WriteMemory(ra.Address, data)
	return err
}

// Read fills buf from a resolved address and returns the freshness
// classification alongside the data. Reading on drift is allowed for
// diagnostics; acting on the value without checking the returned
// classification is the caller's bug.
func (g *GuardedWriter) Read(ra offsets.ResolvedAddress, buf []byte) (offsets.Freshness, error) {
	_, err := g.b.ReadMemory(buf, ra.Address)
	return ra.Freshness, err
}
