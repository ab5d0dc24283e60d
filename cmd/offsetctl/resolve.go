package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/offsetkit/offsets"
	"github.com/joshuapare/offsetkit/pkg/types"
)

var (
	resolveBase    string
	resolveIndex   int
	resolveVersion string
	resolveStrict  bool
)

func init() {
	cmd := newResolveCmd()
	cmd.Flags().StringVar(&resolveBase, "base", "", "Base address (hex or decimal, required)")
	cmd.Flags().IntVar(&resolveIndex, "index", -1, "Element index for composite entries")
	cmd.Flags().StringVar(&resolveVersion, "live-version", "", "Live target version to classify against")
	cmd.Flags().BoolVar(&resolveStrict, "strict", false, "Exit nonzero unless the result is Fresh")
	_ = cmd.MarkFlagRequired("base")
	rootCmd.AddCommand(cmd)
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <defs> <symbol>",
		Short: "Resolve a symbol to an absolute address",
		Long: `The resolve command computes the absolute address of a symbolic field
given a base pointer, and classifies the result against a live version when
one is supplied. Composite symbols need --index.

Example:
  offsetctl resolve apex.offsets ItemId --base 0x10000000
  offsetctl resolve apex.offsets HighlightColor --base 0x20000000 --index 2
  offsetctl resolve apex.offsets ItemId --base 0x10000000 --live-version v3.0.76.0 --strict`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(args[0], args[1])
		},
	}
}

func runResolve(path, symbol string) error {
	base, err := parseAddress(resolveBase)
	if err != nil {
		return err
	}

	reg, err := offsets.LoadFile(path)
	if err != nil {
		return err
	}
	e, err := reg.Lookup(symbol)
	if err != nil {
		return err
	}

	var addr types.Address
	if e.Kind == offsets.KindComposite {
		if resolveIndex < 0 {
			return fmt.Errorf("%q is composite; supply --index", symbol)
		}
		addr, err = offsets.ResolveElement(base, e, resolveIndex)
	} else {
		addr, err = offsets.ResolveScalar(base, e)
	}
	if err != nil {
		return err
	}

	fresh := offsets.CheckTag(e, types.VersionTag(resolveVersion))

	if jsonOut {
		if err := printJSON(map[string]any{
			"symbol":    symbol,
			"address":   addr.String(),
			"freshness": fresh.String(),
		}); err != nil {
			return err
		}
	} else {
		printInfo("%s = %s  [%s]\n", symbol, addr, fresh)
		if e.Note != "" {
			printVerbose("  note: %s\n", e.Note)
		}
	}

	if resolveStrict && !fresh.IsFresh() {
		return fmt.Errorf("not fresh: %s", fresh)
	}
	return nil
}

// parseAddress accepts 0x-hex or decimal base addresses.
func parseAddress(s string) (types.Address, error) {
	if s == "" {
		return 0, fmt.Errorf("empty base address")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad base address %q: %w", s, err)
	}
	return types.Address(v), nil
}
