package dq

// Slerp returns the screw linear interpolation between d and e:
//
//	(e * conj(d))**t * d
//
// The relative motion from d to e is raised to the power t so that
// rotation angle and translation distance advance together along
// the single screw axis joining both poses. t=0 yields d and t=1
// yields e when d is a unit rigid motion. Values of t outside [0,1]
// extrapolate along the same screw.
func (d DualQuaternion) Slerp(e DualQuaternion, t float64) (DualQuaternion, error) {
	rel, err := e.Mul(d.Conjugate()).Pow(t)
	if err != nil {
		return DualQuaternion{}, err
	}
	return rel.Mul(d), nil
}
