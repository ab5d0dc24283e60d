package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/offsetkit/offsets"
)

func init() {
	rootCmd.AddCommand(newExportCmd())
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <defs>",
		Short: "Export a definitions file as YAML (or JSON with --json)",
		Long: `The export command re-emits a loaded registry in the YAML definitions
format, normalizing whatever source flavor it was loaded from. Useful for
publishing a capture in a canonical shape.

Example:
  offsetctl export apex.offsets > apex.yaml
  offsetctl export apex.offsets --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args[0])
		},
	}
}

// exportEntry mirrors the YAML definitions schema.
type exportEntry struct {
	Name    string `yaml:"name" json:"name"`
	Kind    string `yaml:"kind" json:"kind"`
	Offset  string `yaml:"offset,omitempty" json:"offset,omitempty"`
	Base    string `yaml:"base,omitempty" json:"base,omitempty"`
	Stride  string `yaml:"stride,omitempty" json:"stride,omitempty"`
	Sub     string `yaml:"sub,omitempty" json:"sub,omitempty"`
	Count   int    `yaml:"count,omitempty" json:"count,omitempty"`
	Version string `yaml:"captured_version" json:"captured_version"`
	Note    string `yaml:"note,omitempty" json:"note,omitempty"`
}

func runExport(path string) error {
	reg, err := offsets.LoadFile(path)
	if err != nil {
		return err
	}

	out := struct {
		Offsets []exportEntry `yaml:"offsets" json:"offsets"`
	}{}

	it := reg.All()
	for {
		e, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		ee := exportEntry{
			Name:    e.Name,
			Kind:    e.Kind.String(),
			Version: string(e.CapturedVersion),
			Note:    e.Note,
		}
		if e.Kind == offsets.KindComposite {
			ee.Base = hexInt(e.Base)
			ee.Stride = hexInt(e.Stride)
			ee.Sub = hexInt(e.Sub)
			ee.Count = e.Count
		} else {
			ee.Offset = hexInt(e.Offset)
		}
		out.Offsets = append(out.Offsets, ee)
	}

	if jsonOut {
		return printJSON(out)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(out)
}

// hexInt formats signed offsets the way captures write them.
func hexInt(v int64) string {
	if v < 0 {
		return fmt.Sprintf("-0x%x", -v)
	}
	return fmt.Sprintf("0x%x", v)
}
