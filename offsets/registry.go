package offsets

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/joshuapare/offsetkit/internal/defsfile"
	"github.com/joshuapare/offsetkit/pkg/types"
)

// Registry is an immutable catalog of offset entries keyed by symbolic
// name. Once built it is safe for concurrent reads without locking; the
// only way to change a registry is to load a new one and swap it in
// wholesale (see Store).
type Registry struct {
	entries []Entry
	byName  map[string]int
}

// Load builds a registry from decoded entries. It fails with
// ErrMalformedDefinition if any name repeats or an entry violates its
// invariants; a registry is never partially usable.
func Load(defs []Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(defs)),
		byName:  make(map[string]int, len(defs)),
	}
	for i := range defs {
		e := defs[i]
		if err := e.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byName[e.Name]; dup {
			return nil, loadErr("duplicate entry %q", e.Name)
		}
		r.byName[e.Name] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// LoadTable builds a registry from the pipe-delimited table format.
func LoadTable(rd io.Reader) (*Registry, error) {
	defs, err := defsfile.ParseTable(rd)
	if err != nil {
		return nil, err
	}
	return Load(fromDefs(defs))
}

// LoadYAML builds a registry from the YAML definitions format.
func LoadYAML(rd io.Reader) (*Registry, error) {
	defs, err := defsfile.ParseYAML(rd)
	if err != nil {
		return nil, err
	}
	return Load(fromDefs(defs))
}

// LoadFile builds a registry from a definitions file, choosing the decoder
// by extension (.yaml/.yml → YAML, anything else → table).
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "registry: open definitions", Err: err}
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadTable(f)
	}
}

// Lookup returns the entry bound to name. The returned entry is shared and
// read-only. Fails with ErrUnknownSymbol for absent names, which indicates
// a caller/config bug rather than drift.
func (r *Registry) Lookup(name string) (*Entry, error) {
	i, ok := r.byName[name]
	if !ok {
		return nil, &types.Error{
			Kind: types.ErrKindNotFound,
			Msg:  "registry: no entry named " + name,
			Err:  types.ErrUnknownSymbol,
		}
	}
	return &r.entries[i], nil
}

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }

// Names returns all entry names, sorted. Used for diagnostics and export;
// resolution never depends on ordering.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns an iterator over every entry. Each call starts a fresh
// iteration; the sequence is finite and its order is unspecified.
func (r *Registry) All() *EntryIterator {
	return &EntryIterator{reg: r}
}

// EntryIterator walks a registry's entries.
type EntryIterator struct {
	reg *Registry
	off int
}

// Next returns the next entry, or io.EOF when the registry is exhausted.
func (it *EntryIterator) Next() (Entry, error) {
	if it.off >= len(it.reg.entries) {
		return Entry{}, io.EOF
	}
	e := it.reg.entries[it.off]
	it.off++
	return e, nil
}

// fromDefs converts decoded definition rows into entries.
func fromDefs(defs []defsfile.Def) []Entry {
	entries := make([]Entry, 0, len(defs))
	for _, d := range defs {
		e := Entry{
			Name:            d.Name,
			Offset:          d.Offset,
			Base:            d.Base,
			Stride:          d.Stride,
			Sub:             d.Sub,
			Count:           d.Count,
			CapturedVersion: types.VersionTag(d.Version),
			Note:            d.Note,
		}
		if d.Kind == defsfile.KindComposite {
			e.Kind = KindComposite
		}
		entries = append(entries, e)
	}
	return entries
}
