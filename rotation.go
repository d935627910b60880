package quat

import "math"

// FromAngleAxis returns the unit quaternion (cos(a/2), sin(a/2)*axis)
// encoding a rotation by angle (radians) about axis. axis is normalized
// internally; it fails with a *ValueError if axis has zero norm.
//
// Grounded on westphae/quaternion's FromEuler (same half-angle
// construction, generalized from Euler angles to an arbitrary axis).
func FromAngleAxis(angle float64, axis [3]float64) (Quat, error) {
	n := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if n <= 0 {
		return Quat{}, &ValueError{Msg: "rotation axis must have positive norm"}
	}
	u := [3]float64{axis[0] / n, axis[1] / n, axis[2] / n}
	half := angle / 2
	s := math.Sin(half)
	return Quat{W: math.Cos(half), X: u[0] * s, Y: u[1] * s, Z: u[2] * s}, nil
}

// Angle returns the rotation angle encoded by a unit quaternion q,
// 2*atan2(|vector|, w), in [0, 2*Pi).
func (q Quat) Angle() float64 {
	n := math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	a := 2 * math.Atan2(n, q.W)
	if a >= Tau {
		a -= Tau
	}
	return a
}

// Rotate returns v rotated (and, if q is not a unit quaternion, scaled by
// |q|^2) by q, computed as (q*[0,v]*conj(q)).Vector(). Rotate never
// normalizes q internally (Open Question (2) of the design): only
// FromAngleAxis does that.
func (q Quat) Rotate(v [3]float64) [3]float64 {
	p := Quat{X: v[0], Y: v[1], Z: v[2]}
	r := Mul(Mul(q, p), Conj(q))
	return r.Vector()
}

// Matrix returns the 3x3 rotation matrix corresponding to a unit
// quaternion q, per the standard formula of §4.C. It does not normalize
// q; callers wanting a pure rotation matrix should pre-normalize.
//
// Grounded on westphae/quaternion's RotMat, generalized to operate on q
// directly rather than q.Unit() (Open Question (2): only the
// angle/axis constructor normalizes).
func (q Quat) Matrix() [3][3]float64 {
	var m [3][3]float64
	m[0][0] = 1 - 2*(q.Y*q.Y+q.Z*q.Z)
	m[0][1] = 2 * (q.X*q.Y - q.Z*q.W)
	m[0][2] = 2 * (q.X*q.Z + q.Y*q.W)

	m[1][0] = 2 * (q.X*q.Y + q.Z*q.W)
	m[1][1] = 1 - 2*(q.X*q.X+q.Z*q.Z)
	m[1][2] = 2 * (q.Y*q.Z - q.X*q.W)

	m[2][0] = 2 * (q.X*q.Z - q.Y*q.W)
	m[2][1] = 2 * (q.Y*q.Z + q.X*q.W)
	m[2][2] = 1 - 2*(q.X*q.X+q.Y*q.Y)
	return m
}

// FromMatrix extracts a unit quaternion from a 3x3 rotation matrix using
// Shepperd's method: select the largest of 1+m00+m11+m22, 1+m00-m11-m22,
// 1-m00+m11-m22, 1-m00-m11+m22; compute the dominant component from its
// square root, then the remaining three from the off-diagonal
// differences/sums divided by 4*dominant. It does not verify
// orthogonality and assumes m is a proper rotation matrix.
func FromMatrix(m [3][3]float64) Quat {
	m00, m01, m02 := m[0][0], m[0][1], m[0][2]
	m10, m11, m12 := m[1][0], m[1][1], m[1][2]
	m20, m21, m22 := m[2][0], m[2][1], m[2][2]

	t0 := 1 + m00 + m11 + m22
	t1 := 1 + m00 - m11 - m22
	t2 := 1 - m00 + m11 - m22
	t3 := 1 - m00 - m11 + m22
	var w, x, y, z float64
	switch {
	case t0 >= t1 && t0 >= t2 && t0 >= t3:
		s := math.Sqrt(t0) * 2
		w = s / 4
		x = (m21 - m12) / s
		y = (m02 - m20) / s
		z = (m10 - m01) / s
	case t1 >= t2 && t1 >= t3:
		s := math.Sqrt(t1) * 2
		w = (m21 - m12) / s
		x = s / 4
		y = (m01 + m10) / s
		z = (m02 + m20) / s
	case t2 >= t3:
		s := math.Sqrt(t2) * 2
		w = (m02 - m20) / s
		x = (m01 + m10) / s
		y = s / 4
		z = (m12 + m21) / s
	default:
		s := math.Sqrt(t3) * 2
		w = (m10 - m01) / s
		x = (m02 + m20) / s
		y = (m12 + m21) / s
		z = s / 4
	}
	return Quat{W: w, X: x, Y: y, Z: z}
}
