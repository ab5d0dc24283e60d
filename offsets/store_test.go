package offsets

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_ReplaceAndCurrent(t *testing.T) {
	old, err := Load([]Entry{{Name: "A", Kind: KindScalar, Offset: 0x1, CapturedVersion: "v1"}})
	require.NoError(t, err)
	next, err := Load([]Entry{{Name: "B", Kind: KindScalar, Offset: 0x2, CapturedVersion: "v2"}})
	require.NoError(t, err)

	s := NewStore(old)
	require.Same(t, old, s.Current())

	s.Replace(next)
	require.Same(t, next, s.Current())

	// nil never blanks the store
	s.Replace(nil)
	require.Same(t, next, s.Current())
}

func TestStore_ReloadFileKeepsOldOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/defs.offsets"
	require.NoError(t, writeFile(path, "A | Scalar | 0x1 | v1\n"))

	s := NewStore(nil)
	require.NoError(t, s.ReloadFile(path))
	require.Equal(t, 1, s.Current().Len())
	before := s.Current()

	require.NoError(t, writeFile(path, "A | Scalar | banana | v1\n"))
	require.Error(t, s.ReloadFile(path))
	require.Same(t, before, s.Current())
}

// Concurrent lookups during swaps must each observe a fully-old or
// fully-new table, never a mix. Both snapshots hold the same names with
// distinguishable per-version offsets, so a mixed view shows up as a
// version/offset combination that exists in neither table.
func TestStore_SwapAtomicity(t *testing.T) {
	mkReg := func(off int64) *Registry {
		reg, err := Load([]Entry{
			{Name: "A", Kind: KindScalar, Offset: off, CapturedVersion: "v1"},
			{Name: "B", Kind: KindScalar, Offset: off + 1, CapturedVersion: "v1"},
			{Name: "C", Kind: KindScalar, Offset: off + 2, CapturedVersion: "v1"},
		})
		require.NoError(t, err)
		return reg
	}
	regOld := mkReg(100)
	regNew := mkReg(200)

	s := NewStore(regOld)

	const readers = 8
	const iters = 5000

	var wg sync.WaitGroup
	errs := make(chan string, readers)

	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iters; j++ {
				reg := s.Current()
				a, err := reg.Lookup("A")
				if err != nil {
					errs <- err.Error()
					return
				}
				b, err := reg.Lookup("B")
				if err != nil {
					errs <- err.Error()
					return
				}
				c, err := reg.Lookup("C")
				if err != nil {
					errs <- err.Error()
					return
				}
				if b.Offset != a.Offset+1 || c.Offset != a.Offset+2 {
					errs <- "observed mixed snapshot"
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < iters; i++ {
			if i%2 == 0 {
				s.Replace(regNew)
			} else {
				s.Replace(regOld)
			}
		}
	}()

	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Fatal(msg)
	}
}
