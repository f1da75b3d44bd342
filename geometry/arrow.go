package geometry

import "github.com/go-gl/mathgl/mgl64"

// Color is an RGB triple in the [0, 1] range, interleaved after each vertex
// position in colored vertex arrays.
type Color struct {
	R, G, B float32
}

var (
	Red    = Color{1, 0, 0}
	Green  = Color{0, 1, 0}
	Blue   = Color{0, 0, 1}
	Yellow = Color{1, 1, 0}
	Cyan   = Color{0, 1, 1}
)

// arrowSegments returns the 7 line segments of an arrow: the shaft from
// origin to origin+dir, then six tip legs from the head back along
// ±tipSize on each world axis.
func arrowSegments(origin, dir mgl64.Vec3, tipSize float64) [7][2]mgl64.Vec3 {
	head := origin.Add(dir)

	return [7][2]mgl64.Vec3{
		{origin, head},
		{head, head.Add(mgl64.Vec3{tipSize, 0, 0})},
		{head, head.Add(mgl64.Vec3{-tipSize, 0, 0})},
		{head, head.Add(mgl64.Vec3{0, tipSize, 0})},
		{head, head.Add(mgl64.Vec3{0, -tipSize, 0})},
		{head, head.Add(mgl64.Vec3{0, 0, tipSize})},
		{head, head.Add(mgl64.Vec3{0, 0, -tipSize})},
	}
}

// AppendArrow emits an uncolored arrow as a LINES list, 3 floats per vertex.
func AppendArrow(dst []float32, origin, dir mgl64.Vec3, tipSize float64) []float32 {
	for _, seg := range arrowSegments(origin, dir, tipSize) {
		dst = appendVertex(dst, seg[0])
		dst = appendVertex(dst, seg[1])
	}
	return dst
}

// AppendColoredArrow emits an arrow as a LINES list with a uniform color,
// 6 floats per vertex (x, y, z, r, g, b).
func AppendColoredArrow(dst []float32, origin, dir mgl64.Vec3, tipSize float64, color Color) []float32 {
	for _, seg := range arrowSegments(origin, dir, tipSize) {
		dst = appendVertex(dst, seg[0])
		dst = append(dst, color.R, color.G, color.B)
		dst = appendVertex(dst, seg[1])
		dst = append(dst, color.R, color.G, color.B)
	}
	return dst
}
