package quat

import (
	"math"
	"math/cmplx"
	"testing"
)

const trigTol = 1e-12

var sinTests = []struct {
	q    Quat
	want Quat
}{
	{q: Quat{}, want: Quat{}},
	{q: Quat{W: math.Pi / 2}, want: Quat{W: 1}},
	{q: Quat{X: math.Pi / 2}, want: Quat{X: imag(cmplx.Sin(complex(0, math.Pi/2)))}},
	{q: Quat{Y: math.Pi / 2}, want: Quat{Y: imag(cmplx.Sin(complex(0, math.Pi/2)))}},
	{q: Quat{Z: math.Pi / 2}, want: Quat{Z: imag(cmplx.Sin(complex(0, math.Pi/2)))}},

	// Exercises from the Real Quaternionic Calculus Handbook, doi:10.1007/978-3-0348-0622-0, Ex 6.159.
	{q: Quat{1, 1, 1, 1}, want: func() Quat {
		p := math.Cos(1) * math.Sinh(math.Sqrt(3)) / math.Sqrt(3)
		return Quat{W: math.Sin(1) * math.Cosh(math.Sqrt(3)), X: p, Y: p, Z: p}
	}()},
}

func TestSin(t *testing.T) {
	for _, test := range sinTests {
		if got := Sin(test.q); !IsClose(got, test.want, 0, trigTol) {
			t.Errorf("Sin(%v): got:%v want:%v", test.q, got, test.want)
		}
	}
}

var cosTests = []struct {
	q    Quat
	want Quat
}{
	{q: Quat{}, want: Quat{W: 1}},
	{q: Quat{W: math.Pi / 2}, want: Quat{W: 0}},
	{q: Quat{X: math.Pi / 2}, want: Quat{W: real(cmplx.Cos(complex(0, math.Pi/2)))}},

	// Example from the Real Quaternionic Calculus Handbook, p108.
	{q: Quat{1, 1, 1, 1}, want: func() Quat {
		p := math.Sin(1) * math.Sinh(math.Sqrt(3)) / math.Sqrt(3)
		return Quat{W: math.Cos(1) * math.Cosh(math.Sqrt(3)), X: -p, Y: -p, Z: -p}
	}()},
}

func TestCos(t *testing.T) {
	for _, test := range cosTests {
		if got := Cos(test.q); !IsClose(got, test.want, 0, trigTol) {
			t.Errorf("Cos(%v): got:%v want:%v", test.q, got, test.want)
		}
	}
}

func TestTanAgreesWithSinOverCos(t *testing.T) {
	qs := []Quat{{X: 1}, {1, 1, 1, 1}, {W: math.Pi / 4}}
	for _, q := range qs {
		inv, err := Inverse(Cos(q))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := Mul(Sin(q), inv)
		if got := Tan(q); !IsClose(got, want, 0, trigTol) {
			t.Errorf("Tan(%v): got:%v want:%v", q, got, want)
		}
	}
}

func TestSinhCoshFromExp(t *testing.T) {
	q := Quat{1, 1, 1, 1}
	wantSinh := Scale(0.5, Sub(Exp(q), Exp(Scale(-1, q))))
	wantCosh := Scale(0.5, Add(Exp(q), Exp(Scale(-1, q))))
	if got := Sinh(q); !IsClose(got, wantSinh, 0, trigTol) {
		t.Errorf("Sinh(%v): got:%v want:%v", q, got, wantSinh)
	}
	if got := Cosh(q); !IsClose(got, wantCosh, 0, trigTol) {
		t.Errorf("Cosh(%v): got:%v want:%v", q, got, wantCosh)
	}
}

func TestAsinInvertsSin(t *testing.T) {
	q := Quat{1, 1, 1, 1}
	got := Asin(Sin(q))
	if !IsClose(got, q, 0, trigTol) {
		t.Errorf("Asin(Sin(q)): got:%v want:%v", got, q)
	}
}

func TestAcosInvertsCos(t *testing.T) {
	q := Quat{1, 1, 1, 1}
	got := Acos(Cos(q))
	if !IsClose(got, q, 0, trigTol) {
		t.Errorf("Acos(Cos(q)): got:%v want:%v", got, q)
	}
}

func TestAtanInvertsTan(t *testing.T) {
	q := Quat{1, 1, 1, 1}
	got := Atan(Tan(q))
	if !IsClose(got, q, 0, trigTol) {
		t.Errorf("Atan(Tan(q)): got:%v want:%v", got, q)
	}
}

func TestVectorDirDefaultsToJhat(t *testing.T) {
	n, nhat := vectorDir(Quat{W: 5})
	if n != 0 {
		t.Errorf("vectorDir real quaternion: n = %v, want 0", n)
	}
	if nhat != [3]float64{0, 1, 0} {
		t.Errorf("vectorDir real quaternion: nhat = %v, want (0,1,0)", nhat)
	}
}
