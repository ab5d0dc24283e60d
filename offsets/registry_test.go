package offsets

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/offsetkit/pkg/types"
)

func testEntries() []Entry {
	return []Entry{
		{Name: "ItemId", Kind: KindScalar, Offset: 0x1568, CapturedVersion: "v3.0.75.30"},
		{Name: "Yaw", Kind: KindScalar, Offset: 0x224c - 0x8, CapturedVersion: "v3.0.75.30"},
		{Name: "Highlight", Kind: KindComposite, Base: 0x0, Stride: 0x34, Sub: 0x4, CapturedVersion: "v3.0.75.30"},
	}
}

func TestLoad_LookupEveryName(t *testing.T) {
	reg, err := Load(testEntries())
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	for _, name := range []string{"ItemId", "Yaw", "Highlight"} {
		e, err := reg.Lookup(name)
		require.NoError(t, err)
		require.Equal(t, name, e.Name)
	}
}

func TestLoad_DuplicateName(t *testing.T) {
	defs := testEntries()
	defs = append(defs, Entry{Name: "ItemId", Kind: KindScalar, Offset: 0x1, CapturedVersion: "v1"})

	_, err := Load(defs)
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrMalformedDefinition)
}

func TestLoad_ZeroStride(t *testing.T) {
	_, err := Load([]Entry{
		{Name: "H", Kind: KindComposite, Base: 0x0, Stride: 0, Sub: 0x4, CapturedVersion: "v1"},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrMalformedDefinition)
}

func TestLoad_MissingVersion(t *testing.T) {
	_, err := Load([]Entry{{Name: "A", Kind: KindScalar, Offset: 0x1}})
	require.ErrorIs(t, err, types.ErrMalformedDefinition)
}

func TestLookup_UnknownSymbol(t *testing.T) {
	reg, err := Load(testEntries())
	require.NoError(t, err)

	_, err = reg.Lookup("Pitch")
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrUnknownSymbol)
}

func TestAll_RestartableAndComplete(t *testing.T) {
	reg, err := Load(testEntries())
	require.NoError(t, err)

	drain := func() map[string]int {
		seen := map[string]int{}
		it := reg.All()
		for {
			e, err := it.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			seen[e.Name]++
		}
		return seen
	}

	// two independent iterations see every name exactly once
	for i := 0; i < 2; i++ {
		seen := drain()
		require.Len(t, seen, 3)
		for name, n := range seen {
			require.Equal(t, 1, n, name)
		}
	}
}

func TestNames_Sorted(t *testing.T) {
	reg, err := Load(testEntries())
	require.NoError(t, err)
	require.Equal(t, []string{"Highlight", "ItemId", "Yaw"}, reg.Names())
}

func TestLoadTable_EndToEnd(t *testing.T) {
	src := `
ItemId    | Scalar    | 0x1568         | v3.0.75.30 | RecvTable.DT_OverlayVars
Yaw       | Scalar    | 0x224c - 0x8   | v3.0.75.30
Highlight | Composite | 0x0, 0x34, 0x4 | v3.0.75.30 | Color field per context
`
	reg, err := LoadTable(strings.NewReader(src))
	require.NoError(t, err)

	yaw, err := reg.Lookup("Yaw")
	require.NoError(t, err)
	require.Equal(t, int64(0x2244), yaw.Offset)

	h, err := reg.Lookup("Highlight")
	require.NoError(t, err)
	require.Equal(t, KindComposite, h.Kind)
	require.Equal(t, int64(0x34), h.Stride)
}

func TestLoadYAML_EndToEnd(t *testing.T) {
	src := `
offsets:
  - name: ItemId
    kind: Scalar
    offset: "0x1568"
    captured_version: v3.0.75.30
`
	reg, err := LoadYAML(strings.NewReader(src))
	require.NoError(t, err)

	e, err := reg.Lookup("ItemId")
	require.NoError(t, err)
	require.Equal(t, int64(0x1568), e.Offset)
	require.Equal(t, types.VersionTag("v3.0.75.30"), e.CapturedVersion)
}

func TestLoadFile_ByExtension(t *testing.T) {
	dir := t.TempDir()

	tablePath := dir + "/apex.offsets"
	require.NoError(t, writeFile(tablePath, "ItemId | Scalar | 0x1568 | v1\n"))
	reg, err := LoadFile(tablePath)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	yamlPath := dir + "/apex.yaml"
	require.NoError(t, writeFile(yamlPath, "offsets:\n  - name: ItemId\n    kind: Scalar\n    offset: \"0x1568\"\n    captured_version: v1\n"))
	reg, err = LoadFile(yamlPath)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	_, err = LoadFile(dir + "/missing.offsets")
	require.Error(t, err)
}
