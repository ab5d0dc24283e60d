package offsets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// fakeProbe satisfies VersionProbe with a fixed tag or error.
type fakeProbe struct {
	tag types.VersionTag
	err error
}

func (p fakeProbe) LiveVersion() (types.VersionTag, error) { return p.tag, p.err }

func TestCheckTag_ExactMatchOnly(t *testing.T) {
	e := &Entry{Name: "ItemId", Kind: KindScalar, Offset: 0x1568, CapturedVersion: "v3.0.75.30"}

	f := CheckTag(e, "v3.0.75.30")
	require.Equal(t, Fresh, f.State)
	require.True(t, f.IsFresh())

	f = CheckTag(e, "v3.0.76.0")
	require.Equal(t, Drifted, f.State)
	require.Equal(t, types.VersionTag("v3.0.75.30"), f.Expected)
	require.Equal(t, types.VersionTag("v3.0.76.0"), f.Actual)
	require.False(t, f.IsFresh())

	// no normalization: whitespace and case differences drift
	require.Equal(t, Drifted, CheckTag(e, "V3.0.75.30").State)
	require.Equal(t, Drifted, CheckTag(e, "v3.0.75.30 ").State)

	require.Equal(t, Unknown, CheckTag(e, "").State)
}

func TestGuard_ProbeFailureIsUnknown(t *testing.T) {
	e := &Entry{Name: "ItemId", Kind: KindScalar, Offset: 0x1568, CapturedVersion: "v1"}

	g := NewGuard(fakeProbe{err: types.ErrTargetExited})
	f := g.Check(e)
	require.Equal(t, Unknown, f.State)
	require.Equal(t, types.VersionTag("v1"), f.Expected)
}

func TestGuard_ResolveScalar(t *testing.T) {
	reg, err := Load([]Entry{
		{Name: "ItemId", Kind: KindScalar, Offset: 0x1568, CapturedVersion: "v3.0.75.30"},
	})
	require.NoError(t, err)

	g := NewGuard(fakeProbe{tag: "v3.0.75.30"})
	ra, err := g.ResolveScalar(reg, 0x10000000, "ItemId")
	require.NoError(t, err)
	require.Equal(t, "ItemId", ra.Symbol)
	require.Equal(t, types.Address(0x10001568), ra.Address)
	require.Equal(t, Fresh, ra.Freshness.State)

	// drift is annotated, not raised
	g = NewGuard(fakeProbe{tag: "v3.0.76.0"})
	ra, err = g.ResolveScalar(reg, 0x10000000, "ItemId")
	require.NoError(t, err)
	require.Equal(t, types.Address(0x10001568), ra.Address)
	require.Equal(t, Drifted, ra.Freshness.State)

	_, err = g.ResolveScalar(reg, 0x10000000, "Nope")
	require.ErrorIs(t, err, types.ErrUnknownSymbol)
}

func TestGuard_ResolveElement(t *testing.T) {
	reg, err := Load([]Entry{
		{Name: "HighlightColor", Kind: KindComposite, Base: 0x0, Stride: 0x34, Sub: 0x4,
			CapturedVersion: "v3.0.75.30"},
	})
	require.NoError(t, err)

	g := NewGuard(fakeProbe{tag: "v3.0.75.30"})
	ra, err := g.ResolveElement(reg, 0x20000000, "HighlightColor", 2)
	require.NoError(t, err)
	require.Equal(t, types.Address(0x2000006C), ra.Address)
	require.True(t, ra.Freshness.IsFresh())
}

func TestFreshness_String(t *testing.T) {
	require.Equal(t, "Fresh", Freshness{State: Fresh}.String())
	require.Equal(t, "Unknown", Freshness{State: Unknown}.String())
	require.Equal(t,
		"Drifted{expected:v1, actual:v2}",
		Freshness{State: Drifted, Expected: "v1", Actual: "v2"}.String())
}
