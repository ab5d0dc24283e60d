// Package offsets implements the offset registry and layout resolver: an
// immutable catalog of symbolic-name → relative-offset bindings captured
// against a specific target binary version, plus the pure arithmetic that
// turns a base address and an entry into an absolute address in the
// target's address space.
//
// # Overview
//
// Offsets are data, not code. They drift every time the target binary is
// recompiled, so every entry records the version it was captured against
// and resolution results carry a freshness classification instead of
// silently computing an address that may no longer point at the field.
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Entry: one symbolic binding, Scalar (base + offset) or Composite
//     (base + stride*index + sub, for array-of-struct layouts)
//   - Registry: an immutable-after-load catalog of entries, keyed by name
//   - Freshness / ResolvedAddress: the classified result of a resolution
//   - Guard: compares captured versions against the live target's version
//   - Store: an atomically swappable registry snapshot for live reloads
//   - Watcher: reloads a Store when its definitions file changes on disk
//
// # Loading a Registry
//
// Registries load once from a definitions source and never mutate:
//
//	reg, err := offsets.LoadFile("apex.offsets")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	e, err := reg.Lookup("ItemId")
//
// # Resolving Addresses
//
// Resolution is pure; no I/O happens here:
//
//	addr, err := offsets.ResolveScalar(base, e)
//	addr, err = offsets.ResolveElement(highlightBase, h, context)
//
// Callers that write through a resolved address must refuse anything other
// than a Fresh classification; see the backend package's GuardedWriter.
package offsets
