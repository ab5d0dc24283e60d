package offsets

import (
	"fmt"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// ResolveScalar returns base + entry.Offset for a scalar entry. The
// arithmetic is 64-bit unsigned with the signed offset folded in
// two's-complement, so negative offsets subtract without wraparound
// surprises for any realistic base.
func ResolveScalar(base types.Address, e *Entry) (types.Address, error) {
	if e.Kind != KindScalar {
		return 0, kindErr(e, KindScalar)
	}
	return base + types.Address(e.Offset), nil
}

// ResolveElement returns base + entry.Base + entry.Stride*index + entry.Sub
// for a composite entry. The index is checked against the entry's recorded
// element count when one was captured; entries without a count are
// unbounded here and an invalid index surfaces as an invalid read at the
// backend instead.
func ResolveElement(base types.Address, e *Entry, index int) (types.Address, error) {
	if e.Kind != KindComposite {
		return 0, kindErr(e, KindComposite)
	}
	if index < 0 {
		return 0, indexErr(e, index)
	}
	if e.Count > 0 && index >= e.Count {
		return 0, indexErr(e, index)
	}
	addr := base + types.Address(e.Base)
	addr += types.Address(e.Stride) * types.Address(index)
	addr += types.Address(e.Sub)
	return addr, nil
}

func kindErr(e *Entry, want Kind) error {
	return &types.Error{
		Kind: types.ErrKindType,
		Msg:  fmt.Sprintf("resolve %q: entry is %s, not %s", e.Name, e.Kind, want),
		Err:  types.ErrTypeMismatch,
	}
}

func indexErr(e *Entry, index int) error {
	return &types.Error{
		Kind: types.ErrKindBounds,
		Msg:  fmt.Sprintf("resolve %q: index %d outside [0,%d)", e.Name, index, e.Count),
		Err:  types.ErrIndexOutOfRange,
	}
}
