package defsfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseTable decodes the pipe-delimited table format:
//
//	name | kind | value-expression | captured_version | note
//
// Blank lines and lines starting with '#' are skipped. The note column is
// optional. Composite value-expressions are a "base, stride, sub" triple,
// optionally followed by ", count=N".
func ParseTable(r io.Reader) ([]Def, error) {
	var defs []Def

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		cols := strings.Split(raw, "|")
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		if len(cols) < 4 || len(cols) > 5 {
			return nil, defErr(line, "expected 4 or 5 columns, got %d", len(cols))
		}

		d := Def{
			Name:    cols[0],
			Kind:    cols[1],
			Expr:    cols[2],
			Version: cols[3],
		}
		if len(cols) == 5 {
			d.Note = cols[4]
		}
		if d.Name == "" {
			return nil, defErr(line, "empty name")
		}
		if d.Version == "" {
			return nil, defErr(line, "entry %q: empty captured version", d.Name)
		}

		switch d.Kind {
		case KindScalar:
			off, err := ParseExpr(d.Expr)
			if err != nil {
				return nil, defErr(line, "entry %q: %v", d.Name, err)
			}
			d.Offset = off
		case KindComposite:
			if err := parseComposite(&d); err != nil {
				return nil, defErr(line, "entry %q: %v", d.Name, err)
			}
		default:
			return nil, defErr(line, "entry %q: unknown kind %q", d.Name, d.Kind)
		}

		defs = append(defs, d)
	}
	if err := sc.Err(); err != nil {
		return nil, defErr(line, "read: %v", err)
	}
	return defs, nil
}

// parseComposite fills Base/Stride/Sub (and optional Count) from the
// "base, stride, sub[, count=N]" triple in d.Expr.
func parseComposite(d *Def) error {
	parts := strings.Split(d.Expr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 || len(parts) > 4 {
		return fmt.Errorf("composite expression needs base, stride, sub")
	}

	var err error
	if d.Base, err = ParseExpr(parts[0]); err != nil {
		return err
	}
	if d.Stride, err = ParseExpr(parts[1]); err != nil {
		return err
	}
	if d.Sub, err = ParseExpr(parts[2]); err != nil {
		return err
	}
	if len(parts) == 4 {
		v, ok := strings.CutPrefix(parts[3], "count=")
		if !ok {
			return fmt.Errorf("unexpected composite field %q", parts[3])
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return fmt.Errorf("bad element count %q", parts[3])
		}
		d.Count = n
	}
	return nil
}
