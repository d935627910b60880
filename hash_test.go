package quat

import "testing"

func TestHashRealAgreesWithFloatHash(t *testing.T) {
	for _, w := range []float64{0, 1, -1, 2.5, 1e10, -3.75} {
		q := Quat{W: w}
		if got, want := Hash(q), FloatHash(w); got != want {
			t.Errorf("Hash(%v): got:%d want FloatHash(%v):%d", q, got, w, want)
		}
	}
}

func TestHashIntegerAgreesWithIntHash(t *testing.T) {
	for _, n := range []int64{0, 1, -1, 42, -1000} {
		q := Quat{W: float64(n)}
		if got, want := Hash(q), IntHash(n); got != want {
			t.Errorf("Hash(%v): got:%d want IntHash(%d):%d", q, got, n, want)
		}
	}
}

func TestHashComplexAgreesWithComplexHash(t *testing.T) {
	cases := []complex128{0, complex(1, 2), complex(-3.5, 4.25)}
	for _, c := range cases {
		q := Quat{W: real(c), Y: imag(c)}
		if got, want := Hash(q), ComplexHash(c); got != want {
			t.Errorf("Hash(%v): got:%d want ComplexHash(%v):%d", q, got, c, want)
		}
	}
}

func TestHashEqualQuaternionsHashEqual(t *testing.T) {
	a := Quat{1, 2, 3, 4}
	b := Quat{1, 2, 3, 4}
	if Hash(a) != Hash(b) {
		t.Errorf("equal quaternions hashed differently: Hash(%v)=%d Hash(%v)=%d", a, Hash(a), b, Hash(b))
	}
}

func TestHashGeneralCaseIsDeterministic(t *testing.T) {
	q := Quat{1, 2, 3, 4}
	h1 := Hash(q)
	h2 := Hash(q)
	if h1 != h2 {
		t.Errorf("Hash is not deterministic for %v: %d != %d", q, h1, h2)
	}
}

func TestFloatHashIntegerFastPath(t *testing.T) {
	if got, want := FloatHash(3), IntHash(3); got != want {
		t.Errorf("FloatHash(3): got:%d want:%d", got, want)
	}
	if got, want := FloatHash(-7), IntHash(-7); got != want {
		t.Errorf("FloatHash(-7): got:%d want:%d", got, want)
	}
}
