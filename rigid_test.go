package dq

import (
	"errors"
	"math"
	"testing"

	"github.com/soypat/dq/internal/d3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

func rotation(angle float64, axis r3.Vec) quat.Number {
	return quat.Number(r3.NewRotation(angle, axis))
}

func rigidFixtures() []DualQuaternion {
	return []DualQuaternion{
		One(),
		FromRotation(rotation(0.4, r3.Vec{X: 1, Y: 2, Z: 3}), r3.Vec{X: 1, Y: -2, Z: 0.5}),
		FromRotation(rotation(2.1, r3.Vec{Z: 1}), r3.Vec{X: -3, Y: 0.25, Z: 4}),
		FromTranslation(r3.Vec{X: 0.1, Y: 0.2, Z: 0.3}),
		FromAxisAngle(r3.Vec{X: -1, Y: 1}, 1.2),
	}
}

func TestRigidRoundTrip(t *testing.T) {
	for _, test := range []struct {
		rot   quat.Number
		trans r3.Vec
	}{
		{rot: quat.Number{Real: 1}, trans: r3.Vec{}},
		{rot: rotation(0.4, r3.Vec{X: 1, Y: 2, Z: 3}), trans: r3.Vec{X: 1, Y: -2, Z: 0.5}},
		{rot: rotation(math.Pi, r3.Vec{Y: 1}), trans: r3.Vec{X: 10, Y: 20, Z: 30}},
		{rot: rotation(-2.5, r3.Vec{X: 1, Z: -1}), trans: r3.Vec{Z: -1e3}},
	} {
		d := FromRotation(test.rot, test.trans)
		if got := d.Rotation(); got != test.rot {
			t.Errorf("Rotation() = %v, want %v", got, test.rot)
		}
		if got := d.Translation(); !d3.EqualWithin(got, test.trans, tol) {
			t.Errorf("Translation() = %v, want %v", got, test.trans)
		}
		if math.Abs(d.Orthogonality()) > tol {
			t.Errorf("rigid motion not orthogonal: %v", d.Orthogonality())
		}
		u, err := d.Unit()
		if err != nil {
			t.Fatal(err)
		}
		assertApprox(t, "Unit of rigid motion", u, d)
	}
	if got, want := FromAxisAngle(r3.Vec{Z: 2}, math.Pi/2).Rotation(), rotation(math.Pi/2, r3.Vec{Z: 1}); !quatEqualApprox(got, want, 1e-15, 0) {
		t.Errorf("FromAxisAngle = %v, want %v", got, want)
	}
}

func TestTransformPoint(t *testing.T) {
	p := r3.Vec{X: 0.3, Y: -1, Z: 2}
	rot := rotation(math.Pi/2, r3.Vec{Z: 1})
	d := FromRotation(rot, r3.Vec{X: 1})
	// Rotating (0.3,-1,2) a quarter turn about z gives (1,0.3,2).
	if got, want := d.TransformPoint(p), (r3.Vec{X: 2, Y: 0.3, Z: 2}); !d3.EqualWithin(got, want, 1e-12) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
	fixtures := rigidFixtures()
	for _, a := range fixtures {
		for _, b := range fixtures {
			got := a.Mul(b).TransformPoint(p)
			want := a.TransformPoint(b.TransformPoint(p))
			if !d3.EqualWithin(got, want, 1e-9) {
				t.Errorf("(a*b)(p) = %v, want a(b(p)) = %v", got, want)
			}
		}
	}
}

func TestMatrix(t *testing.T) {
	p := r3.Vec{X: 1, Y: 2, Z: -3}
	for _, a := range rigidFixtures() {
		m := a.Matrix()
		got, err := FromMatrix(m)
		if err != nil {
			t.Fatal(err)
		}
		assertApprox(t, "FromMatrix(Matrix())", got, a)

		var v mat.VecDense
		v.MulVec(m, mat.NewVecDense(4, []float64{p.X, p.Y, p.Z, 1}))
		want := a.TransformPoint(p)
		if !d3.EqualWithin(r3.Vec{X: v.AtVec(0), Y: v.AtVec(1), Z: v.AtVec(2)}, want, 1e-9) || v.AtVec(3) != 1 {
			t.Errorf("matrix transform = %v, want %v", mat.Formatted(&v), want)
		}
		for _, b := range rigidFixtures() {
			var ab mat.Dense
			ab.Mul(a.Matrix(), b.Matrix())
			if !mat.EqualApprox(&ab, a.Mul(b).Matrix(), 1e-9) {
				t.Errorf("Matrix(a*b) != Matrix(a)*Matrix(b)")
			}
		}
	}
	// q and -q are the same rotation; FromMatrix picks the non-negative real part.
	neg := rigidFixtures()[2].Neg()
	got, err := FromMatrix(neg.Matrix())
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "FromMatrix(Matrix(-a))", got, neg.Neg())
}

func TestFromMatrixNotRigid(t *testing.T) {
	scaled := rigidFixtures()[1].Matrix()
	scaled.Scale(2, scaled)
	for name, m := range map[string]mat.Matrix{
		"3x3":    mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}),
		"scaled": scaled,
		"mirror": mat.NewDiagDense(4, []float64{1, 1, -1, 1}),
		"NaN":    mat.NewDiagDense(4, []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}),
	} {
		_, err := FromMatrix(m)
		if !errors.Is(err, ErrNotRigid) {
			t.Errorf("%s: got %v, want ErrNotRigid", name, err)
		}
	}
	got, err := FromMatrix(mat.NewDiagDense(4, []float64{1, 1, 1, 1}))
	if err != nil {
		t.Fatal(err)
	}
	if !got.EqualApprox(One(), 0, 0) {
		t.Errorf("FromMatrix(I) = %v, want One", got)
	}
}

func TestSlerp(t *testing.T) {
	a, b := fixtureA(), fixtureB()
	got, err := a.Slerp(b, 1.5)
	if err != nil {
		t.Fatal(err)
	}
	want := New(
		quat.Number{Real: 0.00766191, Imag: 0.00959764, Jmag: 0.0191143, Kmag: -0.00185473},
		quat.Number{Real: 0.0256795, Imag: 0.0370031, Jmag: 0.0714485, Kmag: 0.0113163},
	)
	if !got.EqualApprox(want, tol, 0) {
		t.Errorf("slerp(a, b, 1.5) = %v, want %v", got, want)
	}
	got, err = a.Slerp(b, 0)
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "slerp(a, b, 0)", got, a)
	got, err = a.Slerp(b, 1)
	if err != nil {
		t.Fatal(err)
	}
	// a is not a unit rigid motion so the end point keeps the conj(a)*a factor.
	assertApprox(t, "slerp(a, b, 1)", got, b.Mul(a.Conjugate()).Mul(a))

	fixtures := rigidFixtures()
	for _, ra := range fixtures {
		for _, rb := range fixtures {
			got, err := ra.Slerp(rb, 0)
			if err != nil {
				t.Fatal(err)
			}
			assertApprox(t, "rigid slerp t=0", got, ra)
			got, err = ra.Slerp(rb, 1)
			if err != nil {
				t.Fatal(err)
			}
			assertApprox(t, "rigid slerp t=1", got, rb)
			mid, err := ra.Slerp(rb, 0.5)
			if err != nil {
				t.Fatal(err)
			}
			if math.Abs(mid.Magnitude()-1) > tol || math.Abs(mid.Orthogonality()) > tol {
				t.Errorf("slerp left the rigid motions: magnitude %v, orthogonality %v", mid.Magnitude(), mid.Orthogonality())
			}
		}
	}
}

func TestSlerpScrew(t *testing.T) {
	// Translation and rotation advance together.
	trans := r3.Vec{X: 2, Y: -4, Z: 6}
	mid, err := One().Slerp(FromTranslation(trans), 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := mid.Translation(), r3.Scale(0.5, trans); !d3.EqualWithin(got, want, tol) {
		t.Errorf("half translation = %v, want %v", got, want)
	}
	axis := r3.Vec{X: 1, Y: 1, Z: 1}
	quarter, err := One().Slerp(FromAxisAngle(axis, 2), 0.25)
	if err != nil {
		t.Fatal(err)
	}
	assertApprox(t, "quarter rotation", quarter, FromAxisAngle(axis, 0.5))
	// Extrapolation continues along the same screw.
	twice, err := One().Slerp(FromTranslation(trans), 2)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := twice.Translation(), r3.Scale(2, trans); !d3.EqualWithin(got, want, tol) {
		t.Errorf("extrapolated translation = %v, want %v", got, want)
	}
}

type fixedScrews struct{ s Screw }

func (f fixedScrews) ToScrew(DualQuaternion) (Screw, error) { return f.s, nil }
func (f fixedScrews) FromScrew(Screw) (DualQuaternion, error) { return One(), nil }

func TestScrew(t *testing.T) {
	d := rigidFixtures()[1]
	if _, err := d.Screw(); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("Screw() error = %v, want ErrNotImplemented", err)
	}
	if _, err := FromScrew(Screw{Direction: r3.Vec{Z: 1}, Angle: 1}); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("FromScrew() error = %v, want ErrNotImplemented", err)
	}
	old := Screws
	defer func() { Screws = old }()
	want := Screw{Direction: r3.Vec{X: 1}, Angle: 0.5, Pitch: 2}
	Screws = fixedScrews{s: want}
	got, err := d.Screw()
	if err != nil || got != want {
		t.Errorf("Screw() with custom converter = %v, %v", got, err)
	}
	if d, err := FromScrew(want); err != nil || d != One() {
		t.Errorf("FromScrew() with custom converter = %v, %v", d, err)
	}
}

func BenchmarkSlerp(b *testing.B) {
	fixtures := rigidFixtures()
	x, y := fixtures[1], fixtures[2]
	for i := 0; i < b.N; i++ {
		_, _ = x.Slerp(y, 0.3)
	}
}
