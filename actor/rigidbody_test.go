package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// Construction Tests
// =============================================================================

func TestNewRigidBody(t *testing.T) {
	pos := mgl64.Vec3{1, 2, 3}
	box := UnitBox()
	density := 2.0

	rb := NewRigidBody(pos, box, density)

	if rb.Pos != pos {
		t.Errorf("Pos = %v, want %v", rb.Pos, pos)
	}
	if rb.RotMat != mgl64.Ident3() {
		t.Errorf("RotMat = %v, want identity", rb.RotMat)
	}
	if rb.LinVel != (mgl64.Vec3{}) {
		t.Errorf("LinVel = %v, want zero", rb.LinVel)
	}
	if rb.AngMom != (mgl64.Vec3{}) {
		t.Errorf("AngMom = %v, want zero", rb.AngMom)
	}

	// InvInertia must be the inverse of the box tensor at the derived mass.
	mass := box.ComputeMass(density)
	product := rb.InvInertia.Mul3(box.ComputeInertia(mass))
	if !mat3AlmostEqual(product, mgl64.Ident3(), 1e-10) {
		t.Errorf("InvInertia * I = %v, want identity", product)
	}
}

func TestInverseInertiaWorld_IdentityRotation(t *testing.T) {
	rb := &RigidBody{
		RotMat:     mgl64.Ident3(),
		InvInertia: mgl64.Diag3(mgl64.Vec3{1, 2, 3}),
	}

	got := rb.InverseInertiaWorld()
	if !mat3AlmostEqual(got, rb.InvInertia, 1e-12) {
		t.Errorf("InverseInertiaWorld() = %v, want body tensor unchanged", got)
	}
}

func TestInverseInertiaWorld_RotatedFrame(t *testing.T) {
	// A quarter turn about Z swaps the X and Y principal axes.
	rb := &RigidBody{
		RotMat:     mgl64.Rotate3DZ(math.Pi / 2),
		InvInertia: mgl64.Diag3(mgl64.Vec3{1, 2, 3}),
	}

	got := rb.InverseInertiaWorld()
	want := mgl64.Diag3(mgl64.Vec3{2, 1, 3})
	if !mat3AlmostEqual(got, want, 1e-12) {
		t.Errorf("InverseInertiaWorld() = %v, want %v", got, want)
	}
}

// =============================================================================
// StepSim Tests
// =============================================================================

func TestStepSim_ZeroDtIsNoOp(t *testing.T) {
	rb := &RigidBody{
		Pos:        mgl64.Vec3{1, 2, 3},
		LinVel:     mgl64.Vec3{0.1, -0.2, 0.3},
		RotMat:     mgl64.Rotate3DY(0.4),
		AngMom:     mgl64.Vec3{1, 0.3, 0.1},
		InvInertia: mgl64.Diag3(mgl64.Vec3{1, 2, 3}),
	}
	before := *rb

	rb.StepSim(0)

	if *rb != before {
		t.Errorf("StepSim(0) mutated state: got %+v, want %+v", *rb, before)
	}
}

func TestStepSim_InertialTranslation(t *testing.T) {
	rb := &RigidBody{
		LinVel:     mgl64.Vec3{1, 0, 0},
		RotMat:     mgl64.Ident3(),
		InvInertia: mgl64.Ident3(),
	}

	for i := 0; i < 10; i++ {
		rb.StepSim(0.1)
	}

	if !vec3AlmostEqual(rb.Pos, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("Pos = %v, want (1, 0, 0)", rb.Pos)
	}
	if !mat3AlmostEqual(rb.RotMat, mgl64.Ident3(), 1e-12) {
		t.Errorf("RotMat = %v, want identity", rb.RotMat)
	}
}

func TestStepSim_PureSpinAboutPrincipalAxis(t *testing.T) {
	rb := &RigidBody{
		RotMat:     mgl64.Ident3(),
		AngMom:     mgl64.Vec3{0, 0, 1},
		InvInertia: mgl64.Ident3(),
	}

	for i := 0; i < 100; i++ {
		rb.StepSim(0.01)
	}

	want := mgl64.Rotate3DZ(1.0)
	if !mat3AlmostEqual(rb.RotMat, want, 1e-3) {
		t.Errorf("RotMat after 1s spin = %v, want rotation of 1 rad about +Z", rb.RotMat)
	}
}

func TestStepSim_MomentaConserved(t *testing.T) {
	linVel := mgl64.Vec3{0.25, -1, 0.5}
	angMom := mgl64.Vec3{1, 0.3, 0.1}

	rb := &RigidBody{
		LinVel:     linVel,
		RotMat:     mgl64.Ident3(),
		AngMom:     angMom,
		InvInertia: mgl64.Diag3(mgl64.Vec3{1, 2, 3}),
	}

	for i := 0; i < 1000; i++ {
		rb.StepSim(0.005)
	}

	// A free body has no torques or forces; the integrator must never
	// touch either momentum, so even the bits are unchanged.
	if rb.LinVel != linVel {
		t.Errorf("LinVel = %v, want %v unchanged", rb.LinVel, linVel)
	}
	if rb.AngMom != angMom {
		t.Errorf("AngMom = %v, want %v unchanged", rb.AngMom, angMom)
	}
}

func TestStepSim_LinearMotion(t *testing.T) {
	start := mgl64.Vec3{1, -2, 0.5}
	rb := &RigidBody{
		Pos:        start,
		LinVel:     mgl64.Vec3{0.5, 2, -1},
		RotMat:     mgl64.Ident3(),
		InvInertia: mgl64.Ident3(),
	}

	steps := 5000
	dt := 0.002
	for i := 0; i < steps; i++ {
		rb.StepSim(dt)
	}

	elapsed := float64(steps) * dt
	want := start.Add(rb.LinVel.Mul(elapsed))
	if !vec3AlmostEqual(rb.Pos, want, 1e-9) {
		t.Errorf("Pos = %v, want %v", rb.Pos, want)
	}
}

func TestStepSim_TumblingStaysOrthonormal(t *testing.T) {
	rb := &RigidBody{
		RotMat:     mgl64.Ident3(),
		AngMom:     mgl64.Vec3{1, 0.3, 0.1},
		InvInertia: mgl64.Diag3(mgl64.Vec3{1, 2, 3}),
	}

	for i := 0; i < 10000; i++ {
		rb.StepSim(1e-3)
	}

	checkProperRotation(t, rb.RotMat, 1e-3)

	if !almostEqual(rb.AngMom.Len(), mgl64.Vec3{1, 0.3, 0.1}.Len(), 1e-12) {
		t.Errorf("|AngMom| = %v, want unchanged", rb.AngMom.Len())
	}
}

func TestStepSim_LongRunOrthonormality(t *testing.T) {
	if testing.Short() {
		t.Skip("long-run drift check")
	}

	rb := &RigidBody{
		RotMat:     mgl64.Rotate3DX(0.3).Mul3(mgl64.Rotate3DY(-1.1)),
		AngMom:     mgl64.Vec3{0.7, -0.4, 1.2},
		InvInertia: mgl64.Diag3(mgl64.Vec3{1, 2, 3}),
	}

	// Without the Gram-Schmidt step this drifts visibly within seconds of
	// simulated time; a million steps must stay within tolerance.
	for i := 0; i < 1000000; i++ {
		rb.StepSim(0.01)
	}

	checkProperRotation(t, rb.RotMat, 1e-3)
}

func TestStepSim_WeakReversibility(t *testing.T) {
	rb := &RigidBody{
		LinVel:     mgl64.Vec3{0.5, -0.25, 1},
		RotMat:     mgl64.Rotate3DZ(0.2),
		AngMom:     mgl64.Vec3{1, 0.3, 0.1},
		InvInertia: mgl64.Diag3(mgl64.Vec3{1, 2, 3}),
	}
	before := *rb

	dt := 0.001
	rb.StepSim(dt)
	rb.StepSim(-dt)

	if rb.Pos != before.Pos {
		t.Errorf("Pos = %v, want %v bit-for-bit", rb.Pos, before.Pos)
	}
	if rb.LinVel != before.LinVel || rb.AngMom != before.AngMom {
		t.Error("momenta changed across a forward/backward step pair")
	}
	if !mat3AlmostEqual(rb.RotMat, before.RotMat, 1e-4) {
		t.Errorf("RotMat = %v, want %v within 1e-4", rb.RotMat, before.RotMat)
	}
}

func TestAngularVelocity_PrincipalAxis(t *testing.T) {
	rb := &RigidBody{
		RotMat:     mgl64.Ident3(),
		AngMom:     mgl64.Vec3{0, 3, 0},
		InvInertia: mgl64.Diag3(mgl64.Vec3{1, 0.5, 2}),
	}

	got := rb.AngularVelocity()
	want := mgl64.Vec3{0, 1.5, 0}
	if !vec3AlmostEqual(got, want, 1e-12) {
		t.Errorf("AngularVelocity() = %v, want %v", got, want)
	}
}

// checkProperRotation fails the test when m is not a rotation matrix within
// epsilon: columns orthonormal and determinant +1.
func checkProperRotation(t *testing.T, m mgl64.Mat3, epsilon float64) {
	t.Helper()

	if !almostEqual(m.Det(), 1.0, epsilon) {
		t.Errorf("det = %v, want 1 within %v", m.Det(), epsilon)
	}

	diff := m.Transpose().Mul3(m).Sub(mgl64.Ident3())
	var frobenius float64
	for _, v := range diff {
		frobenius += v * v
	}
	frobenius = math.Sqrt(frobenius)
	if frobenius > epsilon {
		t.Errorf("||R^T R - I|| = %v, want <= %v", frobenius, epsilon)
	}
}
