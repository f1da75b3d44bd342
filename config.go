package physviz

import (
	"encoding/json"
	"os"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/TK-A369/physsim-viz/actor"
)

// Config describes the window and the initial scene. It is read from a JSON
// file at start-up; a missing or invalid file silently falls back to the
// defaults so the visualizer always comes up.
type Config struct {
	WindowWidth  int    `json:"window_width"`
	WindowHeight int    `json:"window_height"`
	WindowTitle  string `json:"window_title"`

	// Body shape and mass distribution.
	Density     float64    `json:"density"`
	HalfExtents [3]float64 `json:"half_extents"`

	// Initial body state.
	Position        [3]float64 `json:"position"`
	LinearVelocity  [3]float64 `json:"linear_velocity"`
	AngularMomentum [3]float64 `json:"angular_momentum"`

	CameraPosition [3]float64 `json:"camera_position"`
}

// DefaultConfig returns a unit cube tumbling about a non-principal axis in
// front of the default camera.
func DefaultConfig() Config {
	return Config{
		WindowWidth:     1024,
		WindowHeight:    768,
		WindowTitle:     "physsim-viz",
		Density:         1.0,
		HalfExtents:     [3]float64{0.5, 0.5, 0.5},
		AngularMomentum: [3]float64{0.05, 0.15, 0.01},
		CameraPosition:  [3]float64{0, 0, 5},
	}
}

// LoadConfig reads the scene description from path. If the file is missing
// or does not parse, the defaults are returned and no error is raised.
func LoadConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig()
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig()
	}
	return cfg
}

func vec3(a [3]float64) mgl64.Vec3 {
	return mgl64.Vec3{a[0], a[1], a[2]}
}

// Box returns the configured body shape.
func (c Config) Box() actor.Box {
	return actor.Box{HalfExtents: vec3(c.HalfExtents)}
}

// NewBody builds the rigid body described by the config, deriving the
// inverse inertia tensor from the box shape and density.
func (c Config) NewBody() *actor.RigidBody {
	body := actor.NewRigidBody(vec3(c.Position), c.Box(), c.Density)
	body.LinVel = vec3(c.LinearVelocity)
	body.AngMom = vec3(c.AngularMomentum)
	return body
}

// NewCamera builds the starting camera, looking down the world -Z axis.
func (c Config) NewCamera() actor.Camera {
	camera := actor.NewCamera()
	camera.Pos = vec3(c.CameraPosition)
	return camera
}
