//go:build !linux && !windows

package backend

import "github.com/joshuapare/offsetkit/pkg/types"

// ProcBackend is unavailable on this platform; only the in-memory backend
// works here.
type ProcBackend struct{}

// Attach always fails with ErrUnsupported on this platform.
func Attach(pid int32) (*ProcBackend, error) {
	return nil, types.ErrUnsupported
}

func (p *ProcBackend) ReadMemory(buf []byte, addr types.Address) (int, error) {
	return 0, types.ErrUnsupported
}

func (p *ProcBackend) WriteMemory(addr types.Address, data []byte) (int, error) {
	return 0, types.ErrUnsupported
}

func (p *ProcBackend) LiveVersion() (types.VersionTag, error) {
	return "", types.ErrUnsupported
}

func (p *ProcBackend) Close() error { return nil }
