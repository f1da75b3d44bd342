package physviz

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/TK-A369/physsim-viz/actor"
)

func TestProjectionView_DefaultCameraIsPerspectiveOnly(t *testing.T) {
	got := projectionView(actor.NewCamera())

	proj := mgl64.Perspective(mgl64.DegToRad(fovyDegrees), aspectRatio, zNear, zFar)
	for i, v := range proj {
		if !almostEqual(float64(got[i]), v, 1e-6) {
			t.Fatalf("element %d = %v, want %v", i, got[i], v)
		}
	}
}

func TestProjectionView_NearFarPlanes(t *testing.T) {
	pv := projectionView(actor.NewCamera())

	// Clip-space z must map the near plane to -1 and the far plane to +1
	// after perspective division.
	ndcZ := func(z float64) float64 {
		m := pv
		clipZ := float64(m[2])*0 + float64(m[6])*0 + float64(m[10])*z + float64(m[14])
		clipW := float64(m[3])*0 + float64(m[7])*0 + float64(m[11])*z + float64(m[15])
		return clipZ / clipW
	}

	if !almostEqual(ndcZ(-zNear), -1.0, 1e-4) {
		t.Errorf("near plane maps to %v, want -1", ndcZ(-zNear))
	}
	if !almostEqual(ndcZ(-zFar), 1.0, 1e-4) {
		t.Errorf("far plane maps to %v, want 1", ndcZ(-zFar))
	}
}

func TestProjectionView_FollowsCamera(t *testing.T) {
	camera := actor.NewCamera()
	camera.Pos = mgl64.Vec3{0, 0, 5}
	pv := projectionView(camera)

	// The world origin sits 5 units in front of this camera, so it should
	// project to the center of the screen with positive depth.
	clip := mulPoint(pv, mgl64.Vec3{})
	if !almostEqual(clip.X()/clip.W(), 0, 1e-6) || !almostEqual(clip.Y()/clip.W(), 0, 1e-6) {
		t.Errorf("origin projects to (%v, %v), want screen center",
			clip.X()/clip.W(), clip.Y()/clip.W())
	}
	if clip.W() <= 0 {
		t.Errorf("clip w = %v, want positive (point in front of camera)", clip.W())
	}
}

func mulPoint(m [16]float32, p mgl64.Vec3) mgl64.Vec4 {
	var m64 mgl64.Mat4
	for i, v := range m {
		m64[i] = float64(v)
	}
	return m64.Mul4x1(p.Vec4(1))
}
