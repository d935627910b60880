package quat

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a textual quaternion literal to a Quat, per the grammar
//
//	quat := ws? '('? ws? term (sign term)* ws? ')'? ws?
//	term := signed_number unit?
//	unit := 'i' | 'j' | 'k'
//
// where signed_number is any form accepted for a binary64 literal
// (decimal, exponent, infinity, NaN), with an optional leading sign.
// Whitespace is trimmed only at the outer edges and, if present, just
// inside a single surrounding pair of parentheses; no whitespace is
// permitted between a sign and its number, nor between a number and its
// unit. Each unit may appear at most once (missing = real); a duplicate
// unit, an empty or malformed literal, or trailing garbage all fail with
// a *ValueError.
//
// This is grounded on gonum.org/v1/gonum/num/quat.Parse's floatPart
// tokenizer, extended with outer/paren whitespace trimming and
// duplicate-unit detection, both required by the grammar above but not
// enforced by the teacher's version.
func Parse(s string) (Quat, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return Quat{}, &ValueError{Msg: fmt.Sprintf("empty quaternion literal %q", raw)}
	}

	hasOpen := strings.HasPrefix(s, "(")
	hasClose := strings.HasSuffix(s, ")")
	if hasOpen != hasClose {
		return Quat{}, &ValueError{Msg: fmt.Sprintf("unbalanced parentheses in %q", raw)}
	}
	if hasOpen {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if s == "" {
		return Quat{}, &ValueError{Msg: fmt.Sprintf("empty quaternion literal %q", raw)}
	}

	var q Quat
	var seen uint8
	for {
		v, axis, end, err := splitTerm(s)
		if err != nil {
			return Quat{}, &ValueError{Msg: fmt.Sprintf("cannot parse %q: %v", raw, err)}
		}
		bit := uint8(1) << uint(axis)
		if seen&bit != 0 {
			return Quat{}, &ValueError{Msg: fmt.Sprintf("duplicate component in %q", raw)}
		}
		seen |= bit
		switch axis {
		case 0:
			q.W = v
		case 1:
			q.X = v
		case 2:
			q.Y = v
		case 3:
			q.Z = v
		}
		s = s[end:]
		if s == "" {
			return q, nil
		}
		if s[0] != '+' && s[0] != '-' {
			return Quat{}, &ValueError{Msg: fmt.Sprintf("trailing garbage in %q", raw)}
		}
	}
}

// splitTerm parses a single signed_number unit? token from the front of
// s and returns its value, the axis its unit selects (0 for none/real,
// 1/2/3 for i/j/k), and the number of bytes consumed.
func splitTerm(s string) (value float64, axis, end int, err error) {
	n := len(s)
	i := 0
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	signLen := i

	rest := strings.ToLower(s[i:])
	switch {
	case strings.HasPrefix(rest, "infinity"):
		i += len("infinity")
	case strings.HasPrefix(rest, "inf"):
		i += len("inf")
	case strings.HasPrefix(rest, "nan"):
		i += len("nan")
	default:
		start := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i < n && s[i] == '.' {
			i++
			for i < n && isDigit(s[i]) {
				i++
			}
		}
		if i < n && (s[i] == 'e' || s[i] == 'E') {
			j := i + 1
			if j < n && (s[j] == '+' || s[j] == '-') {
				j++
			}
			k := j
			for k < n && isDigit(s[k]) {
				k++
			}
			if k > j {
				i = k
			}
		}
		if i == start {
			return 0, 0, 0, fmt.Errorf("malformed number at %q", s)
		}
	}

	numStr := s[:i]
	if strings.HasPrefix(rest, "nan") {
		// strconv.ParseFloat accepts only an unsigned NaN.
		numStr = s[signLen:i]
	}
	v, perr := strconv.ParseFloat(numStr, 64)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("malformed number %q", numStr)
	}

	if i < n {
		switch s[i] {
		case 'i':
			axis, i = 1, i+1
		case 'j':
			axis, i = 2, i+1
		case 'k':
			axis, i = 3, i+1
		}
	}
	return v, axis, i, nil
}

func isDigit(b byte) bool { return '0' <= b && b <= '9' }
