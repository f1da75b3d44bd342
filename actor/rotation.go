package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// smallAngle is the threshold under which Rodrigues' formula degrades
// numerically and the first-order expansion R = I + [v]x is used instead.
const smallAngle = 1e-8

// skewSymmetric builds the cross-product matrix [v]x such that
// [v]x * u == v.Cross(u)
func skewSymmetric(v mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{0, -v.Z(), v.Y()},
		mgl64.Vec3{v.Z(), 0, -v.X()},
		mgl64.Vec3{-v.Y(), v.X(), 0},
	)
}

// AxisAngleMat3 converts an axis-angle vector into a rotation matrix using
// Rodrigues' formula. The direction of v is the rotation axis and its
// magnitude is the angle in radians. The zero vector yields the identity.
func AxisAngleMat3(v mgl64.Vec3) mgl64.Mat3 {
	angle := v.Len()
	if angle < smallAngle {
		// First-order expansion, valid for tiny angles and exact for zero.
		return mgl64.Ident3().Add(skewSymmetric(v))
	}

	k := skewSymmetric(v.Mul(1.0 / angle))

	// R = I + sin(a)*K + (1-cos(a))*K²
	return mgl64.Ident3().
		Add(k.Mul(math.Sin(angle))).
		Add(k.Mul3(k).Mul(1 - math.Cos(angle)))
}

// Orthonormalize projects a near-orthonormal matrix back onto a proper
// rotation using modified Gram-Schmidt across its columns. The integrator
// calls this every step to keep scale and shear from accumulating.
func Orthonormalize(m mgl64.Mat3) mgl64.Mat3 {
	c0 := m.Col(0)
	c1 := m.Col(1)
	c2 := m.Col(2)

	c0 = c0.Normalize()
	c1 = c1.Sub(c0.Mul(c1.Dot(c0))).Normalize()
	c2 = c2.Sub(c0.Mul(c2.Dot(c0)))
	c2 = c2.Sub(c1.Mul(c2.Dot(c1))).Normalize()

	return mgl64.Mat3FromCols(c0, c1, c2)
}
