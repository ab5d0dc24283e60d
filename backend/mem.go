package backend

import (
	"sort"
	"sync"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// MemBackend is an in-memory Backend over a sparse set of mapped regions.
// It backs tests and offline analysis of captured dumps: reads and writes
// outside a mapped region fail with ErrInvalidAddress exactly the way a
// live target rejects an unmapped page.
type MemBackend struct {
	mu      sync.RWMutex
	regions []memRegion
	version types.VersionTag
	closed  bool
}

type memRegion struct {
	start types.Address
	data  []byte
}

// NewMemBackend returns an empty backend reporting the given version tag.
// An empty tag makes LiveVersion fail with ErrUnsupported, mimicking a
// target without version metadata.
func NewMemBackend(version types.VersionTag) *MemBackend {
	return &MemBackend{version: version}
}

// Map copies data into a region starting at addr. Regions must not
// overlap; mapping keeps the region list sorted for lookup.
func (m *MemBackend) Map(addr types.Address, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	m.regions = append(m.regions, memRegion{start: addr, data: cp})
	sort.Slice(m.regions, func(i, j int) bool {
		return m.regions[i].start < m.regions[j].start
	})
}

// SetVersion changes the reported live version, emulating a target update
// under the consumer's feet.
func (m *MemBackend) SetVersion(v types.VersionTag) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.version = v
}

func (m *MemBackend) ReadMemory(buf []byte, addr types.Address) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, types.ErrTargetExited
	}
	region, off := m.find(addr, len(buf))
	if region == nil {
		return 0, readErr(addr)
	}
	return copy(buf, region.data[off:]), nil
}

func (m *MemBackend) WriteMemory(addr types.Address, data []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, types.ErrTargetExited
	}
	region, off := m.find(addr, len(data))
	if region == nil {
		return 0, writeErr(addr)
	}
	return copy(region.data[off:], data), nil
}

func (m *MemBackend) LiveVersion() (types.VersionTag, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", types.ErrTargetExited
	}
	if m.version == "" {
		return "", types.ErrUnsupported
	}
	return m.version, nil
}

// Close makes all further calls fail with ErrTargetExited.
func (m *MemBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// find locates the region fully containing [addr, addr+size). Caller holds
// a lock.
func (m *MemBackend) find(addr types.Address, size int) (*memRegion, int) {
	for i := range m.regions {
		r := &m.regions[i]
		if addr < r.start {
			continue
		}
		off := int(addr - r.start)
		if off+size <= len(r.data) {
			return r, off
		}
	}
	return nil, 0
}

func readErr(addr types.Address) error {
	return &types.Error{
		Kind: types.ErrKindBackend,
		Msg:  "read " + addr.String() + " outside mapped regions",
		Err:  types.ErrInvalidAddress,
	}
}

func writeErr(addr types.Address) error {
	return &types.Error{
		Kind: types.ErrKindBackend,
		Msg:  "write " + addr.String() + " outside mapped regions",
		Err:  types.ErrInvalidAddress,
	}
}
