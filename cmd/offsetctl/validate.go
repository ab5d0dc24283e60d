package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/offsetkit/offsets"
	"github.com/joshuapare/offsetkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <defs>",
		Short: "Validate an offset definitions file",
		Long: `The validate command loads a definitions file and reports what it holds.
A file that fails to load is unusable as a whole; there is no partially
valid registry.

Example:
  offsetctl validate apex.offsets
  offsetctl validate apex.yaml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func runValidate(path string) error {
	printVerbose("Loading definitions: %s\n", path)

	reg, err := offsets.LoadFile(path)
	if err != nil {
		return err
	}

	versions := map[types.VersionTag]int{}
	scalars, composites := 0, 0
	it := reg.All()
	for {
		e, err := it.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		versions[e.CapturedVersion]++
		if e.Kind == offsets.KindComposite {
			composites++
		} else {
			scalars++
		}
	}

	if jsonOut {
		return printJSON(map[string]any{
			"entries":    reg.Len(),
			"scalars":    scalars,
			"composites": composites,
			"versions":   versions,
		})
	}

	printInfo("OK: %d entries (%d scalar, %d composite)\n", reg.Len(), scalars, composites)
	for v, n := range versions {
		printInfo("  captured against %s: %d entries\n", v, n)
	}
	return nil
}
