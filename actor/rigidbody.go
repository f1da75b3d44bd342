package actor

import (
	"github.com/go-gl/mathgl/mgl64"
)

// RigidBody represents a single free rigid body in the simulation.
// With no external forces or torques acting on it, LinVel and AngMom are
// conserved quantities; only Pos and RotMat evolve over time.
type RigidBody struct {
	// Spatial state
	Pos    mgl64.Vec3 // world-space centroid
	RotMat mgl64.Mat3 // body -> world rotation

	// Momenta
	LinVel mgl64.Vec3 // linear velocity (m/s)
	AngMom mgl64.Vec3 // world-space angular momentum L (kg*m²/s)

	// InvInertia is the inverse inertia tensor in the body frame,
	// precomputed so integration never has to invert a matrix.
	InvInertia mgl64.Mat3
}

// NewRigidBody creates a body at rest at pos, with the inverse inertia
// tensor derived from the box shape and density.
func NewRigidBody(pos mgl64.Vec3, box Box, density float64) *RigidBody {
	mass := box.ComputeMass(density)

	return &RigidBody{
		Pos:        pos,
		RotMat:     mgl64.Ident3(),
		InvInertia: box.ComputeInertia(mass).Inv(),
	}
}

// InverseInertiaWorld returns the inverse inertia tensor in world space:
// I_world^(-1) = R * I_body^(-1) * R^T
func (rb *RigidBody) InverseInertiaWorld() mgl64.Mat3 {
	return rb.RotMat.Mul3(rb.InvInertia).Mul3(rb.RotMat.Transpose())
}

// AngularVelocity returns omega = I_world^(-1) * L.
func (rb *RigidBody) AngularVelocity() mgl64.Vec3 {
	return rb.InverseInertiaWorld().Mul3x1(rb.AngMom)
}

// StepSim advances the free motion of the body by dt seconds using the
// angular-momentum formulation: the angular velocity is recomputed from the
// conserved momentum each step, so a tumbling body exchanges spin between
// axes the way Euler's equations dictate without ever integrating torque.
func (rb *RigidBody) StepSim(dt float64) {
	if dt == 0 {
		return
	}

	omega := rb.AngularVelocity()

	rb.Pos = rb.Pos.Add(rb.LinVel.Mul(dt))
	rb.RotMat = AxisAngleMat3(omega.Mul(dt)).Mul3(rb.RotMat)
	rb.RotMat = Orthonormalize(rb.RotMat)
}
