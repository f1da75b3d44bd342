// Package physviz drives the interactive rigid-body visualizer: it owns the
// shared simulation state and exposes the physics tick, render tick and key
// handler that the host environment schedules.
package physviz

import "time"

// TimerID identifies a registered interval timer.
type TimerID int

// KeyAction distinguishes press and release transitions.
type KeyAction int

const (
	KeyDown KeyAction = iota
	KeyUp
)

// DrawMode selects the primitive used by GPU.Draw.
type DrawMode int

const (
	Triangles DrawMode = iota
	Lines
)

// Opaque GPU resource handles. The host owns the underlying objects; the
// runner only stores and passes these back.
type (
	ProgramID     uint32
	VertexArrayID uint32
	BufferID      uint32
)

// Clock schedules fixed-rate callbacks on the host loop thread.
type Clock interface {
	SetInterval(fn func(), period time.Duration) (TimerID, error)
	ClearInterval(id TimerID)
}

// Keyboard delivers key transitions. Codes follow the "KeyA".."KeyZ" naming.
type Keyboard interface {
	AddKeyListener(action KeyAction, fn func(code string))
}

// Attrib describes one interleaved vertex attribute of a program.
type Attrib struct {
	Name   string
	Size   int // number of float components
	Stride int // bytes between consecutive vertices
	Offset int // bytes from the start of a vertex
}

// GPU is the minimal rendering surface the runner needs. Resource creation
// may fail and is only performed at start-up; per-frame calls are infallible.
type GPU interface {
	CreateProgram(vertexSrc, fragmentSrc string) (ProgramID, error)
	CreateVertexArray() (VertexArrayID, error)
	CreateBuffer() (BufferID, error)

	UseProgram(p ProgramID)
	BindVertexArray(v VertexArrayID)
	BindBuffer(b BufferID)
	SetAttribs(p ProgramID, attribs []Attrib)
	UploadDynamic(data []float32)
	SetMat4(p ProgramID, name string, value [16]float32)
	Clear()
	Draw(mode DrawMode, vertexCount int)

	// ReleaseAll frees every resource handed out so far, in reverse
	// acquisition order.
	ReleaseAll()
}

// Host bundles the three collaborators the runner depends on.
type Host struct {
	Clock    Clock
	Keyboard Keyboard
	GPU      GPU
}
