package physviz

// Vertex layouts for the two fixed programs.
const (
	// Plain vertices are position only: 3 floats, 12 bytes.
	PlainStride = 12
	// Colored vertices interleave position and RGB: 6 floats, 24 bytes.
	ColoredStride = 24
	ColorOffset   = 12
)

const plainVertexShader = `#version 410 core
in vec3 position;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(position, 1.0);
}
`

const plainFragmentShader = `#version 410 core
out vec4 outColor;

void main() {
    outColor = vec4(1.0, 1.0, 1.0, 1.0);
}
`

const coloredVertexShader = `#version 410 core
in vec3 position;
in vec3 color;

uniform mat4 projection;

out vec3 vertexColor;

void main() {
    gl_Position = projection * vec4(position, 1.0);
    vertexColor = color;
}
`

const coloredFragmentShader = `#version 410 core
in vec3 vertexColor;
out vec4 outColor;

void main() {
    outColor = vec4(vertexColor, 1.0);
}
`

var plainLayout = []Attrib{
	{Name: "position", Size: 3, Stride: PlainStride, Offset: 0},
}

var coloredLayout = []Attrib{
	{Name: "position", Size: 3, Stride: ColoredStride, Offset: 0},
	{Name: "color", Size: 3, Stride: ColoredStride, Offset: ColorOffset},
}
