// Package types defines the shared API types for the offset registry:
// absolute addresses, opaque version tags, and the typed error taxonomy
// used across the registry, resolver, and memory backends.
//
// Design goals:
//   - Typed errors with stable categories (format/not-found/type/bounds/...).
//   - A wrong address is worse than no address; resolution-time errors are
//     returned, never logged and swallowed.
//   - Version tags are opaque; equality is exact, never normalized.
//
// This package has no dependencies beyond the standard library.
package types
