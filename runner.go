package physviz

import (
	"fmt"
	"sync"
	"time"

	"github.com/TK-A369/physsim-viz/actor"
)

// Tick periods. Physics runs at a fixed 100 Hz; rendering at 10 Hz.
const (
	PhysicsInterval = 10 * time.Millisecond
	DrawInterval    = 100 * time.Millisecond
)

// RunnerState is the single shared state object. It is mutated only under
// the runner's guard, with the scope of one entry-point invocation.
type RunnerState struct {
	Body      *actor.RigidBody
	Camera    actor.Camera
	Keys      actor.KeysPressed
	Wireframe bool
	Counter   uint64 // monotonic physics tick count
}

// Runner wires the simulation state to the host's timers, keyboard and GPU.
// All three entry points are delivered serially by the host loop; the mutex
// is an explicit re-entrancy barrier, never held across a host call.
type Runner struct {
	mu    sync.Mutex
	state RunnerState

	clock Clock
	gpu   GPU

	plain   ProgramID
	colored ProgramID
	vao     VertexArrayID
	vbo     BufferID

	timers  []TimerID
	stopped bool

	// Scratch vertex arrays reused across render ticks.
	plainVerts   []float32
	coloredVerts []float32
}

// NewRunner acquires the GPU resources, registers the key listeners and
// starts both tick timers. Any resource or timer failure aborts construction
// with a single wrapped error; nothing registered so far is leaked.
func NewRunner(host Host, body *actor.RigidBody, camera actor.Camera) (*Runner, error) {
	r := &Runner{
		state: RunnerState{
			Body:   body,
			Camera: camera,
		},
		clock: host.Clock,
		gpu:   host.GPU,
	}

	var err error
	if r.plain, err = host.GPU.CreateProgram(plainVertexShader, plainFragmentShader); err != nil {
		return nil, fmt.Errorf("compile plain program: %w", err)
	}
	if r.colored, err = host.GPU.CreateProgram(coloredVertexShader, coloredFragmentShader); err != nil {
		r.release()
		return nil, fmt.Errorf("compile colored program: %w", err)
	}
	if r.vao, err = host.GPU.CreateVertexArray(); err != nil {
		r.release()
		return nil, fmt.Errorf("create vertex array: %w", err)
	}
	if r.vbo, err = host.GPU.CreateBuffer(); err != nil {
		r.release()
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	host.Keyboard.AddKeyListener(KeyDown, func(code string) { r.OnKey(code, true) })
	host.Keyboard.AddKeyListener(KeyUp, func(code string) { r.OnKey(code, false) })

	physics, err := host.Clock.SetInterval(r.OnPhysicsTick, PhysicsInterval)
	if err != nil {
		r.release()
		return nil, fmt.Errorf("register physics timer: %w", err)
	}
	r.timers = append(r.timers, physics)

	draw, err := host.Clock.SetInterval(r.OnRenderTick, DrawInterval)
	if err != nil {
		r.release()
		return nil, fmt.Errorf("register draw timer: %w", err)
	}
	r.timers = append(r.timers, draw)

	return r, nil
}

// OnPhysicsTick applies the held camera controls, then advances the body by
// one fixed physics interval.
func (r *Runner) OnPhysicsTick() {
	r.mu.Lock()
	defer r.mu.Unlock()

	dtMs := float64(PhysicsInterval.Milliseconds())
	r.state.Camera.Apply(r.state.Keys, dtMs)
	r.state.Body.StepSim(PhysicsInterval.Seconds())
	r.state.Counter++
}

// OnKey updates the held-key set. A "KeyV" press edge toggles between solid
// and wireframe body rendering instead of latching a key slot.
func (r *Runner) OnKey(code string, pressed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch code {
	case "KeyV":
		if pressed {
			r.state.Wireframe = !r.state.Wireframe
		}
	case "KeyW":
		r.state.Keys.Forward = pressed
	case "KeyS":
		r.state.Keys.Back = pressed
	case "KeyA":
		r.state.Keys.Left = pressed
	case "KeyD":
		r.state.Keys.Right = pressed
	case "KeyQ":
		r.state.Keys.Down = pressed
	case "KeyE":
		r.state.Keys.Up = pressed
	case "KeyI":
		r.state.Keys.PitchDown = pressed
	case "KeyK":
		r.state.Keys.PitchUp = pressed
	case "KeyJ":
		r.state.Keys.YawLeft = pressed
	case "KeyL":
		r.state.Keys.YawRight = pressed
	case "KeyU":
		r.state.Keys.RollCCW = pressed
	case "KeyO":
		r.state.Keys.RollCW = pressed
	}
}

// State returns a copy of the shared state, with the body dereferenced so
// the caller cannot alias the live instance.
func (r *Runner) State() RunnerState {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := r.state
	body := *r.state.Body
	snapshot.Body = &body
	return snapshot
}

// Stop cancels the timers and releases the GPU resources. A second call is
// a no-op. The guard is dropped before talking to the host.
func (r *Runner) Stop() {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.stopped = true
	timers := r.timers
	r.timers = nil
	r.mu.Unlock()

	for _, id := range timers {
		r.clock.ClearInterval(id)
	}
	r.release()
}

func (r *Runner) release() {
	r.gpu.ReleaseAll()
}
