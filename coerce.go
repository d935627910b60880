package quat

import "fmt"

// toQuat is the single conversion function used at the entry of every
// public operation that accepts a polymorphic operand (§4.B and the
// Design Notes): it is the coercion lattice through which a
// real, a complex pair, a 4-tuple, a string, or an existing Quat all
// become a Quat.
//
// Supported dynamic types: Quat, float64, int, complex128, [4]float64,
// [3]float64 (promoted as a pure vector quaternion), string.
func toQuat(v any) (Quat, error) {
	switch x := v.(type) {
	case Quat:
		return x, nil
	case float64:
		return FromReal(x), nil
	case int:
		return FromReal(float64(x)), nil
	case complex128:
		return FromComplex(x), nil
	case [4]float64:
		return Quat{W: x[0], X: x[1], Y: x[2], Z: x[3]}, nil
	case [3]float64:
		return Quat{X: x[0], Y: x[1], Z: x[2]}, nil
	case string:
		return Parse(x)
	default:
		return Quat{}, &TypeError{Msg: fmt.Sprintf("cannot coerce %T to Quat", v)}
	}
}

// FromReal promotes a real number to a quaternion (r, 0, 0, 0).
func FromReal(r float64) Quat { return Quat{W: r} }

// FromComplex promotes a complex pair (a, b) to a quaternion (a, 0, b, 0),
// following this library's convention that the complex view pairs (W, Y).
func FromComplex(c complex128) Quat { return Quat{W: real(c), Y: imag(c)} }

// FromComponents constructs a quaternion from its canonical components.
// Missing trailing components default to zero.
func FromComponents(w float64, rest ...float64) Quat {
	q := Quat{W: w}
	if len(rest) > 0 {
		q.X = rest[0]
	}
	if len(rest) > 1 {
		q.Y = rest[1]
	}
	if len(rest) > 2 {
		q.Z = rest[2]
	}
	return q
}

// FromLegacy constructs a quaternion from the legacy r,i,j,k spelling.
// It is equivalent to New(r, i, j, k).
func FromLegacy(r, i, j, k float64) Quat { return Quat{W: r, X: i, Y: j, Z: k} }

// EqualReal reports whether q equals the real number promoted to a
// quaternion, i.e. q == FromReal(r).
func EqualReal(q Quat, r float64) bool { return Equal(q, FromReal(r)) }

// EqualComplex reports whether q equals the complex pair promoted to a
// quaternion, i.e. q == FromComplex(c).
func EqualComplex(q Quat, c complex128) bool { return Equal(q, FromComplex(c)) }

// AddAny, SubAny, MulAny, and DivAny are the polymorphic forms of
// Add/Sub/Mul/Div: each operand may be a Quat or anything toQuat
// accepts (a real, a complex pair, a 4-tuple, a 3-tuple, or a textual
// literal), per §4.B's "coercion lattice, not inheritance" requirement
// that every public binary operation route through a single conversion
// function at its entry.
func AddAny(x, y any) (Quat, error) { return binAny(x, y, Add) }
func SubAny(x, y any) (Quat, error) { return binAny(x, y, Sub) }
func MulAny(x, y any) (Quat, error) { return binAny(x, y, Mul) }

func DivAny(x, y any) (Quat, error) {
	qx, qy, err := coercePair(x, y)
	if err != nil {
		return Quat{}, err
	}
	return Div(qx, qy)
}

func binAny(x, y any, op func(a, b Quat) Quat) (Quat, error) {
	qx, qy, err := coercePair(x, y)
	if err != nil {
		return Quat{}, err
	}
	return op(qx, qy), nil
}

func coercePair(x, y any) (Quat, Quat, error) {
	qx, err := toQuat(x)
	if err != nil {
		return Quat{}, Quat{}, err
	}
	qy, err := toQuat(y)
	if err != nil {
		return Quat{}, Quat{}, err
	}
	return qx, qy, nil
}
