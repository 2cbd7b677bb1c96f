// Package skin holds rigid motions in float32 form for upload to the GPU
// and blends them with dual quaternion linear blending (DLB), the usual
// way to deform a mesh vertex influenced by several bones.
package skin

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/soypat/dq"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/num/quat"
)

var (
	errNoPoses    = errors.New("skin: no poses to blend")
	errWeightsLen = errors.New("skin: length of weights and poses differ")
	errDegenerate = errors.New("skin: blended rotation has zero norm")
)

// Pose is a unit dual quaternion in single precision. Each part is
// stored as (w, i, j, k).
type Pose struct {
	Real [4]float32
	Dual [4]float32
}

// Pack converts d to single precision.
func Pack(d dq.DualQuaternion) Pose {
	return Pose{Real: pack(d.Real), Dual: pack(d.Dual)}
}

func pack(q quat.Number) [4]float32 {
	return [4]float32{float32(q.Real), float32(q.Imag), float32(q.Jmag), float32(q.Kmag)}
}

func unpack(q [4]float32) quat.Number {
	return quat.Number{Real: float64(q[0]), Imag: float64(q[1]), Jmag: float64(q[2]), Kmag: float64(q[3])}
}

// DualQuaternion converts p back to double precision.
func (p Pose) DualQuaternion() dq.DualQuaternion {
	return dq.New(unpack(p.Real), unpack(p.Dual))
}

// Float32s returns the real part followed by the dual part,
// the layout of a mat2x4 uniform.
func (p Pose) Float32s() [8]float32 {
	return [8]float32{
		p.Real[0], p.Real[1], p.Real[2], p.Real[3],
		p.Dual[0], p.Dual[1], p.Dual[2], p.Dual[3],
	}
}

// Transform rotates and then translates v. p is assumed to be a unit rigid motion.
func (p Pose) Transform(v ms3.Vec) ms3.Vec {
	w, r := p.Real[0], ms3.Vec{X: p.Real[1], Y: p.Real[2], Z: p.Real[3]}
	dw, dv := p.Dual[0], ms3.Vec{X: p.Dual[1], Y: p.Dual[2], Z: p.Dual[3]}
	// v + 2r × (r × v + w*v)
	rotated := ms3.Add(v, ms3.Scale(2, ms3.Cross(r, ms3.Add(ms3.Cross(r, v), ms3.Scale(w, v)))))
	// 2*(w*dv - dw*r + r × dv)
	t := ms3.Scale(2, ms3.Add(ms3.Sub(ms3.Scale(w, dv), ms3.Scale(dw, r)), ms3.Cross(r, dv)))
	return ms3.Add(rotated, t)
}

// Blend returns the weighted dual quaternion linear blend of poses.
// Poses whose rotation lies in the opposite hemisphere of the first
// pose are negated before summing so the blend takes the short path.
// The result is normalized by the norm of its real part.
func Blend(poses []Pose, weights []float32) (Pose, error) {
	if len(poses) == 0 {
		return Pose{}, errNoPoses
	}
	if len(weights) != len(poses) {
		return Pose{}, errWeightsLen
	}
	pivot := poses[0].Real
	var sum Pose
	for i, p := range poses {
		w := weights[i]
		if dot4(pivot, p.Real) < 0 {
			w = -w
		}
		for j := range sum.Real {
			sum.Real[j] += w * p.Real[j]
			sum.Dual[j] += w * p.Dual[j]
		}
	}
	n := math32.Sqrt(dot4(sum.Real, sum.Real))
	if n == 0 || math32.IsNaN(n) {
		return Pose{}, errDegenerate
	}
	for j := range sum.Real {
		sum.Real[j] /= n
		sum.Dual[j] /= n
	}
	return sum, nil
}

func dot4(a, b [4]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}
