package quat

import (
	"math"
	"math/cmplx"
)

// vectorDir returns the magnitude n = |vector(q)| and its unit direction
// n̂. When the vector part is zero, n̂ defaults to ĵ = (0,1,0) so that
// results on the real subspace agree with this library's (W,Y) complex
// convention (§4.D, Design Notes).
func vectorDir(q Quat) (n float64, nhat [3]float64) {
	n = vectorNorm(q)
	if n > 0 {
		return n, [3]float64{q.X / n, q.Y / n, q.Z / n}
	}
	return 0, [3]float64{0, 1, 0}
}

func vectorNorm(q Quat) float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// liftUnary lifts a 1D complex function f to the plane spanned by the
// real axis and q's vector direction: reduce q to z = w + i*n, apply f,
// then map the result a+i*b back to (a, b*n̂). This is the mechanism
// §4.D specifies for sin/cos/tan/their hyperbolic and inverse
// counterparts, grounded on the structure already present in
// gonum.org/v1/gonum/num/quat's util.go lift/split/join/unit helpers
// (that package's exp.go/trig.go implementation files were not present
// in the retrieved snapshot; this module writes them fresh against the
// teacher's own retrieved trig_test.go oracle values).
func liftUnary(q Quat, f func(complex128) complex128) Quat {
	n, nhat := vectorDir(q)
	r := f(complex(q.W, n))
	a, b := real(r), imag(r)
	return Quat{W: a, X: b * nhat[0], Y: b * nhat[1], Z: b * nhat[2]}
}

// Sin returns the quaternion sine of q.
func Sin(q Quat) Quat { return liftUnary(q, cmplx.Sin) }

// Cos returns the quaternion cosine of q.
func Cos(q Quat) Quat { return liftUnary(q, cmplx.Cos) }

// Tan returns the quaternion tangent of q.
func Tan(q Quat) Quat { return liftUnary(q, cmplx.Tan) }

// Sinh returns the quaternion hyperbolic sine of q.
func Sinh(q Quat) Quat { return liftUnary(q, cmplx.Sinh) }

// Cosh returns the quaternion hyperbolic cosine of q.
func Cosh(q Quat) Quat { return liftUnary(q, cmplx.Cosh) }

// Tanh returns the quaternion hyperbolic tangent of q.
func Tanh(q Quat) Quat { return liftUnary(q, cmplx.Tanh) }

// Asin returns the quaternion arcsine of q.
func Asin(q Quat) Quat { return liftUnary(q, cmplx.Asin) }

// Acos returns the quaternion arccosine of q.
func Acos(q Quat) Quat { return liftUnary(q, cmplx.Acos) }

// Atan returns the quaternion arctangent of q.
func Atan(q Quat) Quat { return liftUnary(q, cmplx.Atan) }

// Asinh returns the quaternion inverse hyperbolic sine of q.
func Asinh(q Quat) Quat { return liftUnary(q, cmplx.Asinh) }

// Acosh returns the quaternion inverse hyperbolic cosine of q.
func Acosh(q Quat) Quat { return liftUnary(q, cmplx.Acosh) }

// Atanh returns the quaternion inverse hyperbolic tangent of q.
func Atanh(q Quat) Quat { return liftUnary(q, cmplx.Atanh) }
