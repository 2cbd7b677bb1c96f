package dq

import "gonum.org/v1/gonum/spatial/r3"

// Screw parameterizes a rigid motion as a rotation by Angle about the
// line with unit Direction and Moment (Plücker coordinates), combined
// with a translation along that line of Pitch per radian.
type Screw struct {
	Direction r3.Vec
	Moment    r3.Vec
	Angle     float64
	Pitch     float64
}

// ScrewConverter converts between dual quaternions and screws.
//
// Implementations must round trip within a small epsilon for every
// unit rigid motion whose rotation angle lies strictly between 0 and π,
// and must document their sign conventions for Angle, Pitch and Moment.
type ScrewConverter interface {
	ToScrew(d DualQuaternion) (Screw, error)
	FromScrew(s Screw) (DualQuaternion, error)
}

// Screws is the converter used by DualQuaternion.Screw and FromScrew.
// The default converter returns errors wrapping ErrNotImplemented
// since no sign convention has been settled.
var Screws ScrewConverter = unimplementedScrews{}

// Screw returns the screw parameters of the rigid motion d using Screws.
func (d DualQuaternion) Screw() (Screw, error) {
	return Screws.ToScrew(d)
}

// FromScrew returns the rigid motion described by s using Screws.
func FromScrew(s Screw) (DualQuaternion, error) {
	return Screws.FromScrew(s)
}

type unimplementedScrews struct{}

func (unimplementedScrews) ToScrew(DualQuaternion) (Screw, error) {
	return Screw{}, opErr("ToScrew", ErrNotImplemented)
}

func (unimplementedScrews) FromScrew(Screw) (DualQuaternion, error) {
	return DualQuaternion{}, opErr("FromScrew", ErrNotImplemented)
}
