package offsets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/offsetkit/pkg/types"
)

func TestDefault_Loads(t *testing.T) {
	reg := Default()
	require.NotNil(t, reg)
	require.Equal(t, len(defaultEntries), reg.Len())

	// the derived Yaw offset folded at capture time
	yaw, err := reg.Lookup("Yaw")
	require.NoError(t, err)
	require.Equal(t, int64(0x2244), yaw.Offset)

	color, err := reg.Lookup("HighlightColor")
	require.NoError(t, err)
	require.Equal(t, KindComposite, color.Kind)
	addr, err := ResolveElement(0x20000000, color, 2)
	require.NoError(t, err)
	require.Equal(t, types.Address(0x2000006C), addr)
}

func TestDefault_AllTaggedWithCaptureVersion(t *testing.T) {
	for _, name := range Default().Names() {
		e, err := Default().Lookup(name)
		require.NoError(t, err)
		require.Equal(t, types.VersionTag(capturedVersion), e.CapturedVersion, name)
	}
}
