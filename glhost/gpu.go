package glhost

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	physviz "github.com/TK-A369/physsim-viz"
)

// GPU implements physviz.GPU on an OpenGL 4.1 core context. Resource names
// are handed back as opaque IDs; acquisition order is recorded so ReleaseAll
// can free in reverse.
type GPU struct {
	programs []uint32
	vaos     []uint32
	buffers  []uint32

	// frameDirty is set by Draw and consumed by the host loop to decide
	// when to swap buffers.
	frameDirty bool
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("compile shader: %v", strings.TrimRight(infoLog, "\x00"))
	}

	return shader, nil
}

// CreateProgram compiles and links a vertex/fragment shader pair. The
// driver's info log is included in the error on failure.
func (g *GPU) CreateProgram(vertexSrc, fragmentSrc string) (physviz.ProgramID, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("link program: %v", strings.TrimRight(infoLog, "\x00"))
	}

	g.programs = append(g.programs, program)
	return physviz.ProgramID(program), nil
}

func (g *GPU) CreateVertexArray() (physviz.VertexArrayID, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return 0, fmt.Errorf("generate vertex array object")
	}

	g.vaos = append(g.vaos, vao)
	return physviz.VertexArrayID(vao), nil
}

func (g *GPU) CreateBuffer() (physviz.BufferID, error) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	if vbo == 0 {
		return 0, fmt.Errorf("generate vertex buffer")
	}

	g.buffers = append(g.buffers, vbo)
	return physviz.BufferID(vbo), nil
}

func (g *GPU) UseProgram(p physviz.ProgramID) {
	gl.UseProgram(uint32(p))
}

func (g *GPU) BindVertexArray(v physviz.VertexArrayID) {
	gl.BindVertexArray(uint32(v))
}

func (g *GPU) BindBuffer(b physviz.BufferID) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b))
}

// SetAttribs points the program's named attributes into the bound buffer.
// Attributes the linker optimized away are skipped.
func (g *GPU) SetAttribs(p physviz.ProgramID, attribs []physviz.Attrib) {
	for _, a := range attribs {
		location := gl.GetAttribLocation(uint32(p), gl.Str(a.Name+"\x00"))
		if location < 0 {
			continue
		}
		gl.VertexAttribPointer(uint32(location), int32(a.Size), gl.FLOAT, false,
			int32(a.Stride), gl.PtrOffset(a.Offset))
		gl.EnableVertexAttribArray(uint32(location))
	}
}

func (g *GPU) UploadDynamic(data []float32) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.DYNAMIC_DRAW)
}

func (g *GPU) SetMat4(p physviz.ProgramID, name string, value [16]float32) {
	location := gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
	if location < 0 {
		return
	}
	gl.UniformMatrix4fv(location, 1, false, &value[0])
}

func (g *GPU) Clear() {
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (g *GPU) Draw(mode physviz.DrawMode, vertexCount int) {
	glMode := uint32(gl.TRIANGLES)
	if mode == physviz.Lines {
		glMode = gl.LINES
	}
	gl.DrawArrays(glMode, 0, int32(vertexCount))
	g.frameDirty = true
}

// ReleaseAll frees buffers, vertex arrays and programs, newest first, in the
// reverse of acquisition order.
func (g *GPU) ReleaseAll() {
	for i := len(g.buffers) - 1; i >= 0; i-- {
		gl.DeleteBuffers(1, &g.buffers[i])
	}
	for i := len(g.vaos) - 1; i >= 0; i-- {
		gl.DeleteVertexArrays(1, &g.vaos[i])
	}
	for i := len(g.programs) - 1; i >= 0; i-- {
		gl.DeleteProgram(g.programs[i])
	}
	g.buffers = nil
	g.vaos = nil
	g.programs = nil
}
