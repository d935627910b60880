package quat

import (
	"encoding/binary"
	"math"

	"github.com/dchest/siphash"
)

// hashKey0, hashKey1 key the SipHash used for the general (non-degenerate)
// branch of Hash. They are arbitrary but fixed so that Hash is stable
// across calls and processes, matching the determinism SnellerInc/sneller
// relies on for its own SipHash-keyed row hashing (vm/siphash_generic.go).
const (
	hashKey0 = 0x9e3779b97f4a7c15
	hashKey1 = 0xbf58476d1ce4e5b9
)

// Hash returns a hash of q consistent with the hashing of reals and
// complex pairs (§3, DATA MODEL invariants): if q lies on the real
// subspace with a finite real part, Hash(q) equals FloatHash of its real
// part; if q lies on the complex subspace this library pairs as (W, Y)
// with both of those parts finite, Hash(q) equals ComplexHash of that
// pair; otherwise (including any NaN or infinite component) all four
// components are combined
// deterministically via SipHash over q's native 32-byte layout.
func Hash(q Quat) uint64 {
	switch {
	case q.X == 0 && q.Y == 0 && q.Z == 0 && isFinite(q.W):
		return FloatHash(q.W)
	case q.X == 0 && q.Z == 0 && isFinite(q.W) && isFinite(q.Y):
		return ComplexHash(complex(q.W, q.Y))
	default:
		return siphashQuat(q)
	}
}

// FloatHash returns a hash for a real number such that every exact
// integer value hashes equal to IntHash of that integer, matching the
// "hash for finite rationals" contract §9 asks this library to mirror.
func FloatHash(w float64) uint64 {
	if w == math.Trunc(w) && !math.IsInf(w, 0) && math.Abs(w) < (1<<63) {
		return IntHash(int64(w))
	}
	return siphash.Hash(hashKey0, hashKey1, float64Bytes(w))
}

// IntHash returns a hash for an integer; FloatHash(w) equals IntHash(n)
// whenever w is exactly representable as the integer n.
func IntHash(n int64) uint64 { return uint64(n) }

// ComplexHash returns a hash for a complex pair, pairing real and
// imaginary hashes the way CPython's complex hash combines hash(real)
// and hash(imag): h(real) + 1000003*h(imag), here taken modulo 2^64.
func ComplexHash(c complex128) uint64 {
	return FloatHash(real(c)) + 1000003*FloatHash(imag(c))
}

func siphashQuat(q Quat) uint64 {
	buf := make([]byte, 32)
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(q.W))
	binary.LittleEndian.PutUint64(buf[8:16], math.Float64bits(q.X))
	binary.LittleEndian.PutUint64(buf[16:24], math.Float64bits(q.Y))
	binary.LittleEndian.PutUint64(buf[24:32], math.Float64bits(q.Z))
	return siphash.Hash(hashKey0, hashKey1, buf)
}

func float64Bytes(w float64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, math.Float64bits(w))
	return buf
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
