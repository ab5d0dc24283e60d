package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat   ErrKind = iota // malformed definitions source (bad row, dup name, zero stride)
	ErrKindNotFound                // symbol not present in the registry
	ErrKindType                    // Scalar/Composite confusion on a resolve call
	ErrKindBounds                  // composite index beyond a recorded element count
	ErrKindBackend                 // memory backend failure (access, address, target gone)
	ErrKindState                   // invalid operation for current state (e.g., unsupported platform)
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrMalformedDefinition indicates the definitions source could not be
	// loaded into a registry. Load-time only; a registry is never partially
	// usable after this.
	ErrMalformedDefinition = &Error{Kind: ErrKindFormat, Msg: "malformed offset definition"}
	// ErrUnknownSymbol indicates a lookup for a name the registry doesn't hold.
	ErrUnknownSymbol = &Error{Kind: ErrKindNotFound, Msg: "unknown symbol"}
	// ErrTypeMismatch indicates a scalar resolve on a composite entry or vice versa.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "entry has different kind"}
	// ErrIndexOutOfRange indicates a composite index beyond the entry's recorded count.
	ErrIndexOutOfRange = &Error{Kind: ErrKindBounds, Msg: "element index out of range"}

	// ErrAccessDenied indicates the backend was refused access to the target.
	ErrAccessDenied = &Error{Kind: ErrKindBackend, Msg: "access denied"}
	// ErrInvalidAddress indicates a read/write touched unmapped target memory.
	ErrInvalidAddress = &Error{Kind: ErrKindBackend, Msg: "invalid address"}
	// ErrTargetExited indicates the target process is gone.
	ErrTargetExited = &Error{Kind: ErrKindBackend, Msg: "target exited"}
	// ErrUnsupported indicates the operation isn't available on this platform
	// or for this backend (e.g., version probing outside Windows).
	ErrUnsupported = &Error{Kind: ErrKindState, Msg: "unsupported operation"}

	// ErrStaleWrite indicates a write was refused because the resolved
	// address was not classified Fresh against the live target version.
	ErrStaleWrite = &Error{Kind: ErrKindState, Msg: "refusing write through non-fresh address"}
)

// -----------------------------------------------------------------------------
// Core Identifiers & Metadata
// -----------------------------------------------------------------------------

// Address is an absolute address in the target process, wide enough for any
// 64-bit address space. All resolver arithmetic happens in this type so
// signed relative offsets fold in without wraparound surprises.
type Address uint64

// String formats the address the way it appears in capture notes and
// debugger output.
func (a Address) String() string { return fmt.Sprintf("0x%X", uint64(a)) }

// VersionTag is the opaque version identifier of a target binary, recorded
// at capture time and probed from the live target. Comparison is exact;
// tags are never parsed or normalized.
type VersionTag string
