package quat

import (
	"fmt"
	"strconv"
)

// String returns the default textual form w±xi±yj±zk using
// minimum-width unambiguous decimals, grounded on
// gonum.org/v1/gonum/num/quat.Quat's Format but without that type's
// enclosing parentheses, per §4.C of the spec.
func (q Quat) String() string {
	return formatQuat(q, 'g', -1)
}

// Format implements fmt.Formatter. A precision specifier, when present,
// is honored uniformly for all four components, extending the pattern
// of gonum.org/v1/gonum/num/quat.Quat.Format to this library's
// parenthesis-free default form.
func (q Quat) Format(fs fmt.State, c rune) {
	prec, ok := fs.Precision()
	if !ok {
		prec = -1
	}
	switch c {
	case 'v':
		c = 'g'
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		fmt.Fprint(fs, formatQuat(q, byte(c), prec))
	default:
		fmt.Fprintf(fs, "%%!%c(quat.Quat=%s)", c, formatQuat(q, 'g', -1))
	}
}

func formatQuat(q Quat, verb byte, prec int) string {
	return formatComponent(q.W, verb, prec, false) +
		formatComponent(q.X, verb, prec, true) + "i" +
		formatComponent(q.Y, verb, prec, true) + "j" +
		formatComponent(q.Z, verb, prec, true) + "k"
}

func formatComponent(v float64, verb byte, prec int, forceSign bool) string {
	spec := "%"
	if forceSign {
		spec += "+"
	}
	if prec >= 0 {
		spec += "." + strconv.Itoa(prec)
	}
	spec += string(verb)
	return fmt.Sprintf(spec, v)
}
