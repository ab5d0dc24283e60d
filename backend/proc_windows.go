//go:build windows

package backend

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// stillActive is the exit code GetExitCodeProcess reports for a running
// process (STILL_ACTIVE).
const stillActive = 259

// ProcBackend reads and writes a live process's memory through an open
// process handle (ReadProcessMemory/WriteProcessMemory).
type ProcBackend struct {
	pid    int32
	handle windows.Handle
}

// Attach opens the target with the minimal rights the backend needs:
// VM read/write plus limited query for the exit code and image path.
func Attach(pid int32) (*ProcBackend, error) {
	h, err := windows.OpenProcess(
		windows.PROCESS_VM_READ|windows.PROCESS_VM_WRITE|windows.PROCESS_VM_OPERATION|windows.PROCESS_QUERY_LIMITED_INFORMATION,
		false, uint32(pid))
	if err != nil {
		return nil, procErr("attach", pid, err)
	}
	return &ProcBackend{pid: pid, handle: h}, nil
}

func (p *ProcBackend) ReadMemory(buf []byte, addr types.Address) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	var n uintptr
	err := windows.ReadProcessMemory(p.handle, uintptr(addr), &buf[0], uintptr(len(buf)), &n)
	if err != nil {
		if exited, e := p.exited(); e == nil && exited {
			return int(n), procErr("read", p.pid, types.ErrTargetExited)
		}
		return int(n), procErr("read", p.pid, err)
	}
	if int(n) < len(buf) {
		return int(n), &types.Error{
			Kind: types.ErrKindBackend,
			Msg:  fmt.Sprintf("short read at %s: %d of %d bytes", addr, n, len(buf)),
			Err:  types.ErrInvalidAddress,
		}
	}
	return int(n), nil
}

func (p *ProcBackend) WriteMemory(addr types.Address, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	var n uintptr
	err := windows.WriteProcessMemory(p.handle, uintptr(addr), &data[0], uintptr(len(data)), &n)
	if err != nil {
		return int(n), procErr("write", p.pid, err)
	}
	return int(n), nil
}

func (p *ProcBackend) Close() error {
	return windows.CloseHandle(p.handle)
}

// exited reports whether the target has terminated.
func (p *ProcBackend) exited() (bool, error) {
	var code uint32
	if err := windows.GetExitCodeProcess(p.handle, &code); err != nil {
		return false, err
	}
	return code != stillActive, nil
}

// imagePath returns the target's executable path.
func (p *ProcBackend) imagePath() (string, error) {
	buf := make([]uint16, windows.MAX_LONG_PATH)
	size := uint32(len(buf))
	if err := windows.QueryFullProcessImageName(p.handle, 0, &buf[0], &size); err != nil {
		return "", err
	}
	return windows.UTF16ToString(buf[:size]), nil
}

// procErr maps Windows errors to the backend error taxonomy.
func procErr(op string, pid int32, err error) error {
	sentinel := types.ErrInvalidAddress
	switch {
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		sentinel = types.ErrAccessDenied
	case errors.Is(err, windows.ERROR_INVALID_PARAMETER), errors.Is(err, types.ErrTargetExited):
		sentinel = types.ErrTargetExited
	case errors.Is(err, windows.ERROR_PARTIAL_COPY), errors.Is(err, windows.ERROR_NOACCESS):
		sentinel = types.ErrInvalidAddress
	}
	return &types.Error{
		Kind: types.ErrKindBackend,
		Msg:  fmt.Sprintf("%s pid %d: %v", op, pid, err),
		Err:  sentinel,
	}
}
