package offsets

import (
	"fmt"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// FreshState classifies whether a captured offset still matches the live
// target's binary version.
type FreshState uint8

const (
	// Fresh means the live version matches the entry's captured version
	// exactly; the offset is trustworthy.
	Fresh FreshState = iota
	// Drifted means the live target runs a different version than the one
	// the offset was captured against. The computed address may still be
	// wanted for read-only diagnostics, so drift is a classification, not
	// an error — but writers must treat it as fatal.
	Drifted
	// Unknown means the live version could not be determined (probe
	// unsupported or the target is gone).
	Unknown
)

// String implements the Stringer interface for FreshState.
func (s FreshState) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case Drifted:
		return "Drifted"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("UNKNOWN_STATE_%d", uint8(s))
	}
}

// Freshness is the classified comparison of a captured version against the
// live target's version. Expected and Actual are populated for Drifted so
// the consumer can report exactly what moved.
type Freshness struct {
	State    FreshState
	Expected types.VersionTag // version the offset was captured against
	Actual   types.VersionTag // version the live target reported
}

// IsFresh reports whether a write through the associated address is safe.
func (f Freshness) IsFresh() bool { return f.State == Fresh }

func (f Freshness) String() string {
	if f.State == Drifted {
		return fmt.Sprintf("Drifted{expected:%s, actual:%s}", f.Expected, f.Actual)
	}
	return f.State.String()
}

// CheckTag classifies an entry against a known live version tag. The match
// is exact — no normalization, no semver smarts; a rebuilt binary with the
// same declared version is the capture process's problem, not this one's.
// An empty live tag classifies as Unknown.
func CheckTag(e *Entry, live types.VersionTag) Freshness {
	if live == "" {
		return Freshness{State: Unknown, Expected: e.CapturedVersion}
	}
	if live == e.CapturedVersion {
		return Freshness{State: Fresh, Expected: e.CapturedVersion, Actual: live}
	}
	return Freshness{State: Drifted, Expected: e.CapturedVersion, Actual: live}
}

// ResolvedAddress is the product of one resolution call: the symbol it was
// derived from, the absolute address, and the freshness classification.
// Never cached — base addresses and the live version can change between
// calls.
type ResolvedAddress struct {
	Symbol    string
	Address   types.Address
	Freshness Freshness
}

// VersionProbe reports the live target's version tag. The memory backend
// satisfies this; the guard itself never knows how the tag is obtained.
type VersionProbe interface {
	LiveVersion() (types.VersionTag, error)
}

// Guard annotates resolved addresses with a freshness classification
// obtained from a live-version probe. Probe failures classify as Unknown
// rather than erroring: staleness is not transient, and the caller decides
// whether an Unknown address is usable.
type Guard struct {
	probe VersionProbe
}

// NewGuard returns a guard backed by the given probe.
func NewGuard(probe VersionProbe) *Guard {
	return &Guard{probe: probe}
}

// Check classifies a single entry against the probe's current version.
func (g *Guard) Check(e *Entry) Freshness {
	live, err := g.probe.LiveVersion()
	if err != nil {
		return Freshness{State: Unknown, Expected: e.CapturedVersion}
	}
	return CheckTag(e, live)
}

// ResolveScalar looks up a scalar symbol, resolves it against base, and
// classifies the result in one call.
func (g *Guard) ResolveScalar(reg *Registry, base types.Address, name string) (ResolvedAddress, error) {
	e, err := reg.Lookup(name)
	if err != nil {
		return ResolvedAddress{}, err
	}
	addr, err := ResolveScalar(base, e)
	if err != nil {
		return ResolvedAddress{}, err
	}
	return ResolvedAddress{Symbol: name, Address: addr, Freshness: g.Check(e)}, nil
}

// ResolveElement is the composite counterpart of ResolveScalar.
func (g *Guard) ResolveElement(reg *Registry, base types.Address, name string, index int) (ResolvedAddress, error) {
	e, err := reg.Lookup(name)
	if err != nil {
		return ResolvedAddress{}, err
	}
	addr, err := ResolveElement(base, e, index)
	if err != nil {
		return ResolvedAddress{}, err
	}
	return ResolvedAddress{Symbol: name, Address: addr, Freshness: g.Check(e)}, nil
}
