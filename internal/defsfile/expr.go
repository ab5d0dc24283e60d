package defsfile

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseExpr folds a signed integer value-expression. Accepted forms:
//
//	0x1568        hex literal
//	-8            decimal literal
//	0x224c - 0x8  derivation from a related constant
//	0x260 + 0x4   additive derivation
//
// Only a single binary +/- between two literals is supported; deeper
// expression trees have never appeared in a capture and rejecting them
// keeps failure modes obvious.
func ParseExpr(expr string) (int64, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return 0, fmt.Errorf("empty value-expression")
	}

	// Split on the first +/- that is a binary operator, i.e. not the
	// leading sign of the first literal.
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c != '+' && c != '-' {
			continue
		}
		// "0x1568" contains no operators; an operator directly after the
		// hex marker or another operator belongs to the right literal.
		prev := s[i-1]
		if prev == 'x' || prev == 'X' || prev == '+' || prev == '-' {
			continue
		}
		lhs, err := parseInt(s[:i])
		if err != nil {
			return 0, err
		}
		rhs, err := parseInt(s[i+1:])
		if err != nil {
			return 0, err
		}
		if c == '-' {
			return lhs - rhs, nil
		}
		return lhs + rhs, nil
	}

	return parseInt(s)
}

// parseInt decodes a single signed integer literal, hex (0x…) or decimal.
func parseInt(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty integer literal")
	}
	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = strings.TrimSpace(s[1:])
	case '+':
		s = strings.TrimSpace(s[1:])
	}
	base := 10
	if len(s) > 2 && (s[:2] == "0x" || s[:2] == "0X") {
		base = 16
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, base, 63)
	if err != nil {
		return 0, fmt.Errorf("bad integer literal %q: %w", s, err)
	}
	if neg {
		return -int64(v), nil
	}
	return int64(v), nil
}
