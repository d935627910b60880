package quat

import (
	"math"
	"testing"
)

func TestFromAngleAxisIsUnit(t *testing.T) {
	q, err := FromAngleAxis(math.Pi/3, [3]float64{1, 1, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := Abs(q), 1.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("|q| = %v, want %v", got, want)
	}
}

func TestFromAngleAxisZeroAxisErrors(t *testing.T) {
	if _, err := FromAngleAxis(1, [3]float64{0, 0, 0}); err == nil {
		t.Errorf("expected error for zero axis")
	}
}

func TestAngleRoundTrip(t *testing.T) {
	angle := math.Pi / 2
	q, err := FromAngleAxis(angle, [3]float64{0, 0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := q.Angle(); math.Abs(got-angle) > 1e-9 {
		t.Errorf("Angle(): got:%v want:%v", got, angle)
	}
}

func TestRotateAboutZAxis(t *testing.T) {
	q, err := FromAngleAxis(math.Pi/2, [3]float64{0, 0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := q.Rotate([3]float64{1, 0, 0})
	want := [3]float64{0, 1, 0}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Rotate: got:%v want:%v", got, want)
			break
		}
	}
}

func TestRotationComposition(t *testing.T) {
	p, err := FromAngleAxis(math.Pi/4, [3]float64{0, 0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q, err := FromAngleAxis(math.Pi/4, [3]float64{0, 0, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := [3]float64{1, 0, 0}

	viaCompose := Mul(q, p).Rotate(v)
	viaSequential := q.Rotate(p.Rotate(v))
	for i := range viaCompose {
		if math.Abs(viaCompose[i]-viaSequential[i]) > 1e-9 {
			t.Errorf("rotation composition law violated: got:%v want:%v", viaCompose, viaSequential)
			break
		}
	}
}

func TestMatrixAgreesWithRotate(t *testing.T) {
	q, err := FromAngleAxis(1.1, [3]float64{0.2, -0.4, 0.9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := [3]float64{0.3, -0.7, 1.2}

	m := q.Matrix()
	var viaMatrix [3]float64
	for i := 0; i < 3; i++ {
		viaMatrix[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	viaRotate := q.Rotate(v)
	for i := range viaMatrix {
		if math.Abs(viaMatrix[i]-viaRotate[i]) > 1e-9 {
			t.Errorf("matrix/rotate disagreement: matrix:%v rotate:%v", viaMatrix, viaRotate)
			break
		}
	}
}

func TestFromMatrixRoundTrip(t *testing.T) {
	q, err := FromAngleAxis(0.7, [3]float64{1, 2, -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := q.Matrix()
	got := FromMatrix(m)

	if !IsClose(got, q, 0, 1e-9) && !IsClose(Neg(got), q, 0, 1e-9) {
		t.Errorf("FromMatrix(q.Matrix()): got:%v want:%v (up to sign)", got, q)
	}
}
