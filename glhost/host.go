// Package glhost adapts a GLFW window and OpenGL 4.1 core context to the
// narrow host contract the runner drives: interval timers delivered on the
// loop thread, key transition listeners and the GPU surface.
package glhost

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	physviz "github.com/TK-A369/physsim-viz"
)

type timer struct {
	id        physviz.TimerID
	period    time.Duration
	next      time.Time
	fn        func()
	cancelled bool
}

// Host owns the window and event loop. All callbacks fire serially on the
// thread running Run; there is no parallelism to guard against.
type Host struct {
	window *glfw.Window
	gpu    *GPU

	timers      []*timer
	nextTimerID physviz.TimerID

	downListeners []func(code string)
	upListeners   []func(code string)
}

// New initializes GLFW, opens the window and prepares the GL context. The
// caller must have locked the main OS thread and should defer Close.
func New(width, height int, title string) (*Host, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	h := &Host{
		window: window,
		gpu:    &GPU{},
	}
	h.installKeyCallback()

	return h, nil
}

// Adapter bundles the host's collaborator interfaces for the runner.
func (h *Host) Adapter() physviz.Host {
	return physviz.Host{
		Clock:    h,
		Keyboard: h,
		GPU:      h.gpu,
	}
}

// SetInterval registers a repeating callback. Callbacks fire from Run, in
// registration order when several are due at once.
func (h *Host) SetInterval(fn func(), period time.Duration) (physviz.TimerID, error) {
	if period <= 0 {
		return 0, fmt.Errorf("interval period must be positive, got %v", period)
	}

	h.nextTimerID++
	t := &timer{
		id:     h.nextTimerID,
		period: period,
		next:   time.Now().Add(period),
		fn:     fn,
	}
	h.timers = append(h.timers, t)

	return t.id, nil
}

// ClearInterval cancels a timer. Unknown IDs are ignored. The timer is only
// marked here; Run compacts the list, so cancelling from inside a callback
// is safe.
func (h *Host) ClearInterval(id physviz.TimerID) {
	for _, t := range h.timers {
		if t.id == id {
			t.cancelled = true
			return
		}
	}
}

// AddKeyListener registers a callback for key press or release transitions.
func (h *Host) AddKeyListener(action physviz.KeyAction, fn func(code string)) {
	if action == physviz.KeyDown {
		h.downListeners = append(h.downListeners, fn)
	} else {
		h.upListeners = append(h.upListeners, fn)
	}
}

func (h *Host) installKeyCallback() {
	h.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		code, ok := keyCode(key)
		if !ok {
			return
		}

		// Auto-repeat events are not transitions.
		switch action {
		case glfw.Press:
			for _, fn := range h.downListeners {
				fn(code)
			}
		case glfw.Release:
			for _, fn := range h.upListeners {
				fn(code)
			}
		}
	})
}

// keyCode maps letter keys to the "KeyA".."KeyZ" naming the runner expects.
func keyCode(key glfw.Key) (string, bool) {
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return "Key" + string(rune('A'+int(key-glfw.KeyA))), true
	}
	return "", false
}

// Run pumps the event loop until the window is closed, firing due timers
// and swapping buffers whenever a frame was drawn.
func (h *Host) Run() {
	for !h.window.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		for _, t := range h.timers {
			if t.cancelled || now.Before(t.next) {
				continue
			}
			// Reschedule from the intended deadline to keep the average
			// rate fixed even when a tick fires late.
			t.next = t.next.Add(t.period)
			if t.next.Before(now) {
				t.next = now.Add(t.period)
			}
			t.fn()
		}

		// Drop cancelled timers outside the dispatch loop.
		live := h.timers[:0]
		for _, t := range h.timers {
			if !t.cancelled {
				live = append(live, t)
			}
		}
		h.timers = live

		if h.gpu.frameDirty {
			h.gpu.frameDirty = false
			h.window.SwapBuffers()
		}

		time.Sleep(time.Millisecond)
	}
}

// Close releases the window and shuts GLFW down.
func (h *Host) Close() {
	h.timers = nil
	glfw.Terminate()
}
