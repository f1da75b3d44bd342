package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is a solid cuboid defined by its half-extents
// (half-width, half-height, half-depth).
type Box struct {
	HalfExtents mgl64.Vec3
}

// UnitBox returns the canonical cube with corners at ±0.5 on every axis.
func UnitBox() Box {
	return Box{HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5}}
}

// Corners enumerates the eight local-space corners in the canonical order:
// sign patterns (---, --+, -+-, -++, +--, +-+, ++-, +++), x varying slowest.
func (b Box) Corners() [8]mgl64.Vec3 {
	hx, hy, hz := b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()

	return [8]mgl64.Vec3{
		{-hx, -hy, -hz},
		{-hx, -hy, +hz},
		{-hx, +hy, -hz},
		{-hx, +hy, +hz},
		{+hx, -hy, -hz},
		{+hx, -hy, +hz},
		{+hx, +hy, -hz},
		{+hx, +hy, +hz},
	}
}

// ComputeMass calculates the mass of the box for a given density
func (b Box) ComputeMass(density float64) float64 {
	// Volume = 8 * hx * hy * hz (full dimensions are 2*halfExtents)
	volume := 8.0 * b.HalfExtents.X() * b.HalfExtents.Y() * b.HalfExtents.Z()

	return density * volume
}

// ComputeInertia returns the body-frame inertia tensor of the solid box:
// I = (m/12) * diag(y²+z², x²+z², x²+y²) with full dimensions x, y, z.
func (b Box) ComputeInertia(mass float64) mgl64.Mat3 {
	x := b.HalfExtents.X() * 2
	y := b.HalfExtents.Y() * 2
	z := b.HalfExtents.Z() * 2

	factor := mass / 12.0
	ix := factor * (y*y + z*z)
	iy := factor * (x*x + z*z)
	iz := factor * (x*x + y*y)

	return mgl64.Mat3{
		ix, 0, 0,
		0, iy, 0,
		0, 0, iz,
	}
}

// ComputeAABB returns the world-space axis-aligned bounds of the box
// rotated by rot and centred at pos.
func (b Box) ComputeAABB(pos mgl64.Vec3, rot mgl64.Mat3) AABB {
	corners := b.Corners()

	worldCorner := rot.Mul3x1(corners[0]).Add(pos)
	min := worldCorner
	max := worldCorner

	for i := 1; i < 8; i++ {
		worldCorner = rot.Mul3x1(corners[i]).Add(pos)

		min[0] = math.Min(min[0], worldCorner[0])
		min[1] = math.Min(min[1], worldCorner[1])
		min[2] = math.Min(min[2], worldCorner[2])

		max[0] = math.Max(max[0], worldCorner[0])
		max[1] = math.Max(max[1], worldCorner[1])
		max[2] = math.Max(max[2], worldCorner[2])
	}

	return AABB{Min: min, Max: max}
}
