package defsfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// yamlEntry mirrors Def for strict YAML decoding. Scalar entries carry
// "offset" (a value-expression string, so derivations survive verbatim);
// composite entries carry base/stride/sub and an optional count.
type yamlEntry struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Offset  string `yaml:"offset,omitempty"`
	Base    string `yaml:"base,omitempty"`
	Stride  string `yaml:"stride,omitempty"`
	Sub     string `yaml:"sub,omitempty"`
	Count   int    `yaml:"count,omitempty"`
	Version string `yaml:"captured_version"`
	Note    string `yaml:"note,omitempty"`
}

type yamlDoc struct {
	Offsets []yamlEntry `yaml:"offsets"`
}

// ParseYAML decodes the YAML flavor of the definitions source. Unknown
// fields are rejected so a typo'd capture never loads silently truncated.
func ParseYAML(r io.Reader) ([]Def, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc yamlDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, yamlErr("empty document")
		}
		return nil, &types.Error{
			Kind: types.ErrKindFormat,
			Msg:  "defs: yaml: " + err.Error(),
			Err:  types.ErrMalformedDefinition,
		}
	}

	defs := make([]Def, 0, len(doc.Offsets))
	for i, ye := range doc.Offsets {
		d := Def{
			Name:    ye.Name,
			Kind:    ye.Kind,
			Count:   ye.Count,
			Version: ye.Version,
			Note:    ye.Note,
		}
		if d.Name == "" {
			return nil, yamlErr("entry %d: empty name", i)
		}
		if d.Version == "" {
			return nil, yamlErr("entry %q: empty captured version", d.Name)
		}

		switch ye.Kind {
		case KindScalar:
			d.Expr = ye.Offset
			off, err := ParseExpr(ye.Offset)
			if err != nil {
				return nil, yamlErr("entry %q: %v", d.Name, err)
			}
			d.Offset = off
		case KindComposite:
			var err error
			if d.Base, err = ParseExpr(ye.Base); err != nil {
				return nil, yamlErr("entry %q: base: %v", d.Name, err)
			}
			if d.Stride, err = ParseExpr(ye.Stride); err != nil {
				return nil, yamlErr("entry %q: stride: %v", d.Name, err)
			}
			if d.Sub, err = ParseExpr(ye.Sub); err != nil {
				return nil, yamlErr("entry %q: sub: %v", d.Name, err)
			}
			if d.Count < 0 {
				return nil, yamlErr("entry %q: negative count", d.Name)
			}
		default:
			return nil, yamlErr("entry %q: unknown kind %q", d.Name, ye.Kind)
		}

		defs = append(defs, d)
	}
	return defs, nil
}

func yamlErr(format string, args ...any) error {
	return &types.Error{
		Kind: types.ErrKindFormat,
		Msg:  "defs: yaml: " + fmt.Sprintf(format, args...),
		Err:  types.ErrMalformedDefinition,
	}
}
