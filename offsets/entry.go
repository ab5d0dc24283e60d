package offsets

import (
	"fmt"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// Kind discriminates the two entry shapes in a registry.
type Kind uint8

const (
	// KindScalar is a single signed displacement from a base address.
	KindScalar Kind = iota
	// KindComposite is an array-of-structures formula:
	// base + Base + Stride*index + Sub.
	KindComposite
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "Scalar"
	case KindComposite:
		return "Composite"
	default:
		return fmt.Sprintf("UNKNOWN_KIND_%d", uint8(k))
	}
}

// Entry is one symbolic offset binding. Offsets are signed: captures
// regularly express a field as an adjustment to a related known field
// (e.g. "0x224c - 0x8"), and the folded value may be negative.
//
// Scalar entries use Offset; Composite entries use Base/Stride/Sub and an
// optional Count. Entries are plain data and never mutated after load.
type Entry struct {
	Name string
	Kind Kind

	// Scalar displacement from the caller's base address.
	Offset int64

	// Composite addressing: base + Base + Stride*index + Sub.
	Base   int64
	Stride int64
	Sub    int64
	// Count bounds the element index when known. 0 means the capture
	// recorded no bound and index checking is delegated to the backend.
	Count int

	// CapturedVersion is the target binary version this offset was
	// captured against. Compared exactly, never parsed.
	CapturedVersion types.VersionTag

	// Note carries free-text provenance (capture dates, the field the
	// offset was derived from). Never interpreted.
	Note string
}

// validate enforces per-entry invariants at load time.
func (e *Entry) validate() error {
	if e.Name == "" {
		return loadErr("entry with empty name")
	}
	if e.CapturedVersion == "" {
		return loadErr("entry %q: empty captured version", e.Name)
	}
	switch e.Kind {
	case KindScalar:
		// any signed offset is legitimate, including negative ones
	case KindComposite:
		if e.Stride == 0 {
			return loadErr("entry %q: composite stride is zero", e.Name)
		}
		if e.Count < 0 {
			return loadErr("entry %q: negative element count", e.Name)
		}
	default:
		return loadErr("entry %q: unknown kind %d", e.Name, e.Kind)
	}
	return nil
}

// loadErr wraps ErrMalformedDefinition with context.
func loadErr(format string, args ...any) error {
	return &types.Error{
		Kind: types.ErrKindFormat,
		Msg:  "registry: " + fmt.Sprintf(format, args...),
		Err:  types.ErrMalformedDefinition,
	}
}
