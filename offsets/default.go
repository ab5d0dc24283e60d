package offsets

import "sync"

// capturedVersion tags the bundled table below. Captured 7/29/2024.
const capturedVersion = "v3.0.75.30"

// defaultEntries is the bundled capture the package ships with, carried
// over field by field from the last published offsets header. Notes keep
// the original derivation and update dates verbatim.
var defaultEntries = []Entry{
	{Name: "ItemId", Kind: KindScalar, Offset: 0x1568,
		CapturedVersion: capturedVersion, Note: "item id? RecvTable.DT_OverlayVars, updated 11/1/2023"},
	{Name: "CustomScriptInt", Kind: KindScalar, Offset: 0x1568,
		CapturedVersion: capturedVersion, Note: "m_customScriptInt, updated 1/10/2024"},
	{Name: "Yaw", Kind: KindScalar, Offset: 0x224c - 0x8,
		CapturedVersion: capturedVersion, Note: "m_currentFramePlayer.m_ammoPoolCount - 0x8, updated 7/29/2024"},

	{Name: "HighlightSettings", Kind: KindScalar, Offset: 0xb0cf370,
		CapturedVersion: capturedVersion, Note: "updated 7/29/2024"},
	{Name: "GlowHighlightId", Kind: KindScalar, Offset: 0x29c,
		CapturedVersion: capturedVersion, Note: "updated 7/29/2024, was 0x28c"},
	{Name: "GlowThroughWalls", Kind: KindScalar, Offset: 0x26c,
		CapturedVersion: capturedVersion, Note: "updated 1/25/2024"},
	{Name: "GlowFix", Kind: KindScalar, Offset: 0x268,
		CapturedVersion: capturedVersion, Note: "updated 1/25/2024"},
	{Name: "GlowEnable", Kind: KindScalar, Offset: 0x26c,
		CapturedVersion: capturedVersion},
	{Name: "GlowDistance", Kind: KindScalar, Offset: 0x264,
		CapturedVersion: capturedVersion},

	// Per-context highlight records are 0x34 bytes apart off
	// HighlightSettings; Mode sits at +0x0 in each record, Color at +0x4.
	{Name: "HighlightMode", Kind: KindComposite, Base: 0x0, Stride: 0x34, Sub: 0x0,
		CapturedVersion: capturedVersion, Note: "HighlightSettings + 0x34*context + 0x0"},
	{Name: "HighlightColor", Kind: KindComposite, Base: 0x0, Stride: 0x34, Sub: 0x4,
		CapturedVersion: capturedVersion, Note: "HighlightSettings + 0x34*context + 0x4"},

	{Name: "Grade", Kind: KindScalar, Offset: 0x0348,
		CapturedVersion: capturedVersion, Note: "m_grade"},
	{Name: "LastChargeLevel", Kind: KindScalar, Offset: 0x16f0,
		CapturedVersion: capturedVersion, Note: "m_lastChargeLevel, updated 7/29/2024"},
}

var loadDefault = sync.OnceValue(func() *Registry {
	reg, err := Load(defaultEntries)
	if err != nil {
		panic("offsets: bundled table is malformed: " + err.Error())
	}
	return reg
})

// Default returns the registry built from the bundled capture. Useful as a
// starting snapshot before a site-local definitions file is published.
func Default() *Registry {
	return loadDefault()
}
