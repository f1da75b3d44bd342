package physviz

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/TK-A369/physsim-viz/actor"
	"github.com/TK-A369/physsim-viz/geometry"
)

// Projection parameters (OpenGL clip convention, z mapped to [-1, 1]).
const (
	fovyDegrees = 75.0
	aspectRatio = 1.333
	zNear       = 0.01
	zFar        = 1000.0
)

// World-axis and momentum arrow dimensions.
const (
	axisLength  = 5.0
	axisTipSize = 0.5
	bodyTipSize = 0.1
)

// projectionView composes the fixed perspective with the inverse camera
// transform and narrows it for upload.
func projectionView(camera actor.Camera) [16]float32 {
	proj := mgl64.Perspective(mgl64.DegToRad(fovyDegrees), aspectRatio, zNear, zFar)
	pv := proj.Mul4(camera.ViewMatrix())

	var out [16]float32
	for i, v := range pv {
		out[i] = float32(v)
	}
	return out
}

// OnRenderTick snapshots the simulation state, rebuilds the two vertex
// arrays and issues the frame: body geometry with the plain program, then
// coordinate axes and momentum arrows with the colored program.
func (r *Runner) OnRenderTick() {
	r.mu.Lock()
	body := *r.state.Body
	camera := r.state.Camera
	wireframe := r.state.Wireframe
	r.mu.Unlock()

	pv := projectionView(camera)

	r.plainVerts = geometry.AppendCuboid(r.plainVerts[:0], body.Pos, body.RotMat, wireframe)

	colored := r.coloredVerts[:0]
	colored = geometry.AppendColoredArrow(colored, mgl64.Vec3{}, mgl64.Vec3{axisLength, 0, 0}, axisTipSize, geometry.Red)
	colored = geometry.AppendColoredArrow(colored, mgl64.Vec3{}, mgl64.Vec3{0, axisLength, 0}, axisTipSize, geometry.Green)
	colored = geometry.AppendColoredArrow(colored, mgl64.Vec3{}, mgl64.Vec3{0, 0, axisLength}, axisTipSize, geometry.Blue)
	colored = geometry.AppendColoredArrow(colored, body.Pos, body.LinVel, bodyTipSize, geometry.Yellow)
	colored = geometry.AppendColoredArrow(colored, body.Pos, body.AngMom, bodyTipSize, geometry.Cyan)
	r.coloredVerts = colored

	r.gpu.Clear()

	bodyMode := Triangles
	if wireframe {
		bodyMode = Lines
	}

	r.gpu.UseProgram(r.plain)
	r.gpu.BindVertexArray(r.vao)
	r.gpu.BindBuffer(r.vbo)
	r.gpu.UploadDynamic(r.plainVerts)
	r.gpu.SetAttribs(r.plain, plainLayout)
	r.gpu.SetMat4(r.plain, "projection", pv)
	r.gpu.Draw(bodyMode, len(r.plainVerts)/3)

	r.gpu.UseProgram(r.colored)
	r.gpu.UploadDynamic(r.coloredVerts)
	r.gpu.SetAttribs(r.colored, coloredLayout)
	r.gpu.SetMat4(r.colored, "projection", pv)
	r.gpu.Draw(Lines, len(r.coloredVerts)/6)
}
