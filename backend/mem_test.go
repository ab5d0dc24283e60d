package backend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/offsetkit/pkg/types"
)

func TestMemBackend_ReadWrite(t *testing.T) {
	b := NewMemBackend("v1")
	b.Map(0x10000000, make([]byte, 0x2000))

	_, err := b.WriteMemory(0x10001568, []byte{0xEF, 0xBE, 0xAD, 0xDE})
	require.NoError(t, err)

	buf := make([]byte, 4)
	n, err := b.ReadMemory(buf, 0x10001568)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, []byte{0xEF, 0xBE, 0xAD, 0xDE}, buf)
}

func TestMemBackend_UnmappedAddress(t *testing.T) {
	b := NewMemBackend("v1")
	b.Map(0x1000, make([]byte, 0x100))

	buf := make([]byte, 8)

	_, err := b.ReadMemory(buf, 0x2000)
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	// read straddling the end of a region fails too
	_, err = b.ReadMemory(buf, 0x10FC)
	require.ErrorIs(t, err, types.ErrInvalidAddress)

	_, err = b.WriteMemory(0x2000, buf)
	require.ErrorIs(t, err, types.ErrInvalidAddress)
}

func TestMemBackend_Version(t *testing.T) {
	b := NewMemBackend("v3.0.75.30")
	v, err := b.LiveVersion()
	require.NoError(t, err)
	require.Equal(t, types.VersionTag("v3.0.75.30"), v)

	b.SetVersion("v3.0.76.0")
	v, err = b.LiveVersion()
	require.NoError(t, err)
	require.Equal(t, types.VersionTag("v3.0.76.0"), v)

	_, err = NewMemBackend("").LiveVersion()
	require.ErrorIs(t, err, types.ErrUnsupported)
}

func TestMemBackend_Closed(t *testing.T) {
	b := NewMemBackend("v1")
	b.Map(0x1000, make([]byte, 0x10))
	require.NoError(t, b.Close())

	_, err := b.ReadMemory(make([]byte, 1), 0x1000)
	require.ErrorIs(t, err, types.ErrTargetExited)
	_, err = b.WriteMemory(0x1000, []byte{1})
	require.ErrorIs(t, err, types.ErrTargetExited)
	_, err = b.LiveVersion()
	require.ErrorIs(t, err, types.ErrTargetExited)
}
