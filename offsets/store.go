package offsets

import "sync/atomic"

// Store holds the current registry snapshot and supports whole-table
// replacement when a new capture is published. Readers always see either
// the fully-old or fully-new table; registries are immutable, so the swap
// is a single pointer publication.
type Store struct {
	cur atomic.Pointer[Registry]
}

// NewStore returns a store holding the given initial snapshot.
func NewStore(reg *Registry) *Store {
	s := &Store{}
	s.cur.Store(reg)
	return s
}

// Current returns the live snapshot. The result stays valid (and
// internally consistent) even if a Replace happens mid-use; it just may no
// longer be the newest table.
func (s *Store) Current() *Registry {
	return s.cur.Load()
}

// Replace publishes a new snapshot. No-op on nil, so a failed reload can
// never blank the store.
func (s *Store) Replace(reg *Registry) {
	if reg == nil {
		return
	}
	s.cur.Store(reg)
}

// ReloadFile loads a definitions file and swaps it in. On load failure the
// previous snapshot stays published and the error is returned.
func (s *Store) ReloadFile(path string) error {
	reg, err := LoadFile(path)
	if err != nil {
		return err
	}
	s.Replace(reg)
	return nil
}
