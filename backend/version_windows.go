//go:build windows

package backend

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// LiveVersion probes the target executable's file version resource and
// formats it the way captures record versions: "vA.B.C.D". Targets
// without a version resource report ErrUnsupported and classify as
// Unknown downstream.
func (p *ProcBackend) LiveVersion() (types.VersionTag, error) {
	path, err := p.imagePath()
	if err != nil {
		return "", procErr("query image path", p.pid, err)
	}

	var zero uint32
	size, err := windows.GetFileVersionInfoSize(path, &zero)
	if err != nil || size == 0 {
		return "", &types.Error{
			Kind: types.ErrKindState,
			Msg:  "target has no version resource: " + path,
			Err:  types.ErrUnsupported,
		}
	}

	block := make([]byte, size)
	if err := windows.GetFileVersionInfo(path, 0, size, unsafe.Pointer(&block[0])); err != nil {
		return "", procErr("read version resource", p.pid, err)
	}

	var fixed *windows.VS_FIXEDFILEINFO
	var fixedLen uint32
	if err := windows.VerQueryValue(unsafe.Pointer(&block[0]), `\`,
		unsafe.Pointer(&fixed), &fixedLen); err != nil {
		return "", procErr("query fixed file info", p.pid, err)
	}
	if fixed == nil || fixedLen == 0 {
		return "", &types.Error{
			Kind: types.ErrKindState,
			Msg:  "empty fixed file info: " + path,
			Err:  types.ErrUnsupported,
		}
	}

	tag := fmt.Sprintf("v%d.%d.%d.%d",
		fixed.FileVersionMS>>16, fixed.FileVersionMS&0xFFFF,
		fixed.FileVersionLS>>16, fixed.FileVersionLS&0xFFFF)
	return types.VersionTag(tag), nil
}
