// Package geometry converts simulation state into interleaved float32
// vertex arrays ready for upload to a GPU vertex buffer.
package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/TK-A369/physsim-viz/actor"
)

// Triangle and edge lists index into the canonical corner order of
// actor.Box.Corners(): sign patterns (---, --+, -+-, -++, +--, +-+, ++-, +++).
var (
	// cuboidTriangles lists the 12 faces, two triangles per side, in the
	// fixed order -X, +X, -Y, +Y, -Z, +Z.
	cuboidTriangles = [12][3]int{
		{0, 1, 3}, {0, 3, 2},
		{4, 5, 7}, {4, 7, 6},
		{0, 1, 5}, {0, 5, 4},
		{2, 3, 7}, {2, 7, 6},
		{0, 2, 6}, {0, 6, 4},
		{1, 3, 7}, {1, 7, 5},
	}

	// cuboidEdges lists the 12 edges: four parallel to each axis, x first.
	cuboidEdges = [12][2]int{
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{0, 2}, {1, 3}, {4, 6}, {5, 7},
		{0, 1}, {2, 3}, {4, 5}, {6, 7},
	}
)

func appendVertex(dst []float32, v mgl64.Vec3) []float32 {
	return append(dst, float32(v.X()), float32(v.Y()), float32(v.Z()))
}

// AppendCuboid emits the unit cube posed by rot and pos into dst as
// position-only vertices. Solid mode produces 12 triangles (36 vertices),
// wireframe mode 12 edges (24 vertices) for drawing as LINES. The face and
// edge sequences are fixed.
func AppendCuboid(dst []float32, pos mgl64.Vec3, rot mgl64.Mat3, wireframe bool) []float32 {
	local := actor.UnitBox().Corners()

	var world [8]mgl64.Vec3
	for i, c := range local {
		world[i] = rot.Mul3x1(c).Add(pos)
	}

	if wireframe {
		for _, e := range cuboidEdges {
			dst = appendVertex(dst, world[e[0]])
			dst = appendVertex(dst, world[e[1]])
		}
		return dst
	}

	for _, tri := range cuboidTriangles {
		for _, idx := range tri {
			dst = appendVertex(dst, world[idx])
		}
	}
	return dst
}
