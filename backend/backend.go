// Package backend provides the memory backends the resolved addresses are
// fed to: live process backends for Windows and Linux, an in-memory
// backend for tests and offline analysis, and a guarded writer that
// enforces the freshness policy on writes.
//
// The Backend interface is deliberately narrow. The registry and resolver
// never touch it; they hand the caller an absolute address and the caller
// decides which backend to push it through.
package backend

import "github.com/joshuapare/offsetkit/pkg/types"

// Backend reads and writes absolute addresses in a target's address space
// and probes the target's live version tag. Calls may block and may fail
// at any time (the target can exit between calls); implementations report
// failures through the typed backend sentinels.
type Backend interface {
	// ReadMemory fills buf from target memory starting at addr. Like
	// io.ReaderAt but addressed with a full 64-bit address. A short read
	// is an error; n < len(buf) only alongside a non-nil error.
	ReadMemory(buf []byte, addr types.Address) (n int, err error)

	// WriteMemory copies data into target memory at addr.
	WriteMemory(addr types.Address, data []byte) (n int, err error)

	// LiveVersion reports the target binary's version tag, or
	// ErrUnsupported where the platform offers no version metadata.
	LiveVersion() (types.VersionTag, error)

	// Close releases the target handle.
	Close() error
}
