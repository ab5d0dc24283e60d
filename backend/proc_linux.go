//go:build linux

package backend

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// ProcBackend reads and writes a live process's memory through
// process_vm_readv/process_vm_writev, which need no ptrace attach and
// leave the target running.
type ProcBackend struct {
	pid int32
}

// Attach validates that the target exists and returns a backend for it.
// There is no handle to hold on Linux; each call addresses the pid
// directly.
func Attach(pid int32) (*ProcBackend, error) {
	if err := unix.Kill(int(pid), 0); err != nil {
		return nil, procErr("attach", pid, err)
	}
	return &ProcBackend{pid: pid}, nil
}

func (p *ProcBackend) ReadMemory(buf []byte, addr types.Address) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	local := []unix.Iovec{{Base: &buf[0]}}
	local[0].SetLen(len(buf))
	remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: len(buf)}}
	n, err := unix.ProcessVMReadv(int(p.pid), local, remote, 0)
	if err != nil {
		return n, procErr("read", p.pid, err)
	}
	if n < len(buf) {
		return n, &types.Error{
			Kind: types.ErrKindBackend,
			Msg:  fmt.Sprintf("short read at %s: %d of %d bytes", addr, n, len(buf)),
			Err:  types.ErrInvalidAddress,
		}
	}
	return n, nil
}

func (p *ProcBackend) WriteMemory(addr types.Address, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	local := []unix.Iovec{{Base: &data[0]}}
	local[0].SetLen(len(data))
	remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: len(data)}}
	n, err := unix.ProcessVMWritev(int(p.pid), local, remote, 0)
	if err != nil {
		return n, procErr("write", p.pid, err)
	}
	return n, nil
}

// LiveVersion is unsupported on Linux: ELF binaries carry no standard
// version resource. Callers fall back to ReadVersionString against a
// known in-memory build tag, or accept the Unknown classification.
func (p *ProcBackend) LiveVersion() (types.VersionTag, error) {
	return "", types.ErrUnsupported
}

func (p *ProcBackend) Close() error { return nil }

// procErr maps errno to the backend error taxonomy.
func procErr(op string, pid int32, err error) error {
	sentinel := types.ErrInvalidAddress
	switch {
	case errors.Is(err, unix.EPERM), errors.Is(err, unix.EACCES):
		sentinel = types.ErrAccessDenied
	case errors.Is(err, unix.ESRCH):
		sentinel = types.ErrTargetExited
	}
	return &types.Error{
		Kind: types.ErrKindBackend,
		Msg:  fmt.Sprintf("%s pid %d: %v", op, pid, err),
		Err:  sentinel,
	}
}
