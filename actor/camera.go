package actor

import "github.com/go-gl/mathgl/mgl64"

// Movement speeds per millisecond of physics time.
const (
	CameraLinearSpeed  = 0.001 // units/ms
	CameraAngularSpeed = 0.001 // rad/ms
)

// KeysPressed is the set of currently-held control keys. Translation is
// expressed in camera-local axes (forward is local -Z); rotation slots come
// in signed pairs per axis.
type KeysPressed struct {
	Forward bool // -Z
	Back    bool // +Z
	Left    bool // -X
	Right   bool // +X
	Down    bool // -Y
	Up      bool // +Y

	PitchDown bool
	PitchUp   bool
	YawLeft   bool
	YawRight  bool
	RollCCW   bool
	RollCW    bool
}

// Camera is a free-fly camera: a world position plus an orientation.
type Camera struct {
	Pos mgl64.Vec3
	Rot mgl64.Mat3
}

// NewCamera returns a camera at the origin looking down the world -Z axis.
func NewCamera() Camera {
	return Camera{Rot: mgl64.Ident3()}
}

// translate moves the camera along one of its local axes; the orientation is
// applied first so motion is relative to the current facing.
func (c *Camera) translate(axis mgl64.Vec3, amount float64) {
	c.Pos = c.Pos.Add(c.Rot.Mul3x1(axis).Mul(amount))
}

// rotate post-multiplies the orientation so the turn happens about a
// camera-local axis.
func (c *Camera) rotate(axis mgl64.Vec3, angle float64) {
	c.Rot = c.Rot.Mul3(AxisAngleMat3(axis.Mul(angle)))
}

// Apply composes the camera update for every held key over dtMs milliseconds
// of physics time. Yawing right is a positive rotation about local +Y: a
// quarter turn maps the local -Z forward direction onto world -X.
func (c *Camera) Apply(keys KeysPressed, dtMs float64) {
	step := CameraLinearSpeed * dtMs
	if keys.Forward {
		c.translate(mgl64.Vec3{0, 0, -1}, step)
	}
	if keys.Back {
		c.translate(mgl64.Vec3{0, 0, 1}, step)
	}
	if keys.Left {
		c.translate(mgl64.Vec3{-1, 0, 0}, step)
	}
	if keys.Right {
		c.translate(mgl64.Vec3{1, 0, 0}, step)
	}
	if keys.Down {
		c.translate(mgl64.Vec3{0, -1, 0}, step)
	}
	if keys.Up {
		c.translate(mgl64.Vec3{0, 1, 0}, step)
	}

	angle := CameraAngularSpeed * dtMs
	if keys.PitchDown {
		c.rotate(mgl64.Vec3{-1, 0, 0}, angle)
	}
	if keys.PitchUp {
		c.rotate(mgl64.Vec3{1, 0, 0}, angle)
	}
	if keys.YawLeft {
		c.rotate(mgl64.Vec3{0, -1, 0}, angle)
	}
	if keys.YawRight {
		c.rotate(mgl64.Vec3{0, 1, 0}, angle)
	}
	// Roll is about the view axis (-Z), so counter-clockwise as seen by the
	// camera is a negative rotation about local +Z.
	if keys.RollCCW {
		c.rotate(mgl64.Vec3{0, 0, -1}, angle)
	}
	if keys.RollCW {
		c.rotate(mgl64.Vec3{0, 0, 1}, angle)
	}
}

// ViewMatrix returns (T(pos) * R(rot))^-1 = R^T * T(-pos), the transform
// from world space into camera space.
func (c Camera) ViewMatrix() mgl64.Mat4 {
	return c.Rot.Transpose().Mat4().
		Mul4(mgl64.Translate3D(-c.Pos.X(), -c.Pos.Y(), -c.Pos.Z()))
}
