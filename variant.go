package learngl

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownVariant is returned by LookupVariant for an unregistered name.
var ErrUnknownVariant = errors.New("unknown variant")

// TextureSlot binds one texture to a sampler uniform. Slot order is texture unit order.
type TextureSlot struct {
	Uniform string
	Params  TextureParams
	FlipY   bool // flip rows so image top maps to t = 1
}

// Variant selects everything that differs between exercises.
type Variant struct {
	Name        string
	Description string
	Shaders     ShaderSource
	Mesh        Mesh
	Textures    []TextureSlot
	ClearColor  Color
	DepthTest   bool

	// Camera and Model are nil for flat variants.
	Camera    CameraFunc
	Model     ModelFunc
	Instances int
}

// Uniforms lists the uniform names the variant's renderer pushes.
func (v *Variant) Uniforms() []string {
	var names []string
	for _, t := range v.Textures {
		names = append(names, t.Uniform)
	}
	if v.Camera != nil {
		names = append(names, UniformView, UniformProjection)
	}
	if v.Model != nil {
		names = append(names, UniformModel)
	}
	return names
}

var variants = map[string]*Variant{}

// RegisterVariant adds v to the registry, replacing any variant with the same name.
func RegisterVariant(v *Variant) {
	variants[v.Name] = v
}

// LookupVariant returns the registered variant called name.
func LookupVariant(name string) (*Variant, error) {
	v, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return v, nil
}

// Variants returns the registered variant names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// VariantUsage lists every registered variant with its description, one per line.
func VariantUsage() string {
	var b strings.Builder
	for _, name := range Variants() {
		fmt.Fprintf(&b, "  %-10s %s\n", name, variants[name].Description)
	}
	return b.String()
}

// MissingTextures returns the image paths the variant would load from paths
// that do not exist on disk. Slots without a configured path are reported as "".
func (v *Variant) MissingTextures(paths []string) []string {
	var missing []string
	for i := range v.Textures {
		if i >= len(paths) {
			missing = append(missing, "")
			continue
		}
		if _, err := os.Stat(paths[i]); err != nil {
			missing = append(missing, paths[i])
		}
	}
	return missing
}

func init() {
	RegisterVariant(TriangleVariant())
	RegisterVariant(QuadVariant())
	RegisterVariant(ColorVariant())
	RegisterVariant(TextureVariant())
	RegisterVariant(CubesVariant())
}

const flatVertexShader = `#version 410 core
layout (location = 0) in vec3 position;

void main()
{
    gl_Position = vec4(position, 1.0);
}
`

const flatFragmentShader = `#version 410 core
out vec4 color;

void main()
{
    color = vec4(1.0, 0.5, 0.2, 1.0);
}
`

// TriangleVariant draws a single orange triangle from three vertices.
func TriangleVariant() *Variant {
	return &Variant{
		Name:        "triangle",
		Description: "non-indexed triangle",
		Shaders:     ShaderSource{Vertex: flatVertexShader, Fragment: flatFragmentShader},
		Mesh: Mesh{
			Vertices: []float32{
				-0.5, -0.5, 0.0,
				0.5, -0.5, 0.0,
				0.0, 0.5, 0.0,
			},
			Layout: Layout(3),
		},
		ClearColor: ClearColor,
	}
}

// QuadIndices splits a four-vertex quad into two triangles.
var QuadIndices = []uint32{
	0, 1, 3,
	1, 2, 3,
}

// QuadVariant draws a rectangle from four vertices and six indices.
func QuadVariant() *Variant {
	return &Variant{
		Name:        "quad",
		Description: "indexed quad",
		Shaders:     ShaderSource{Vertex: flatVertexShader, Fragment: flatFragmentShader},
		Mesh: Mesh{
			Vertices: []float32{
				0.5, 0.5, 0.0, // top right
				0.5, -0.5, 0.0, // bottom right
				-0.5, -0.5, 0.0, // bottom left
				-0.5, 0.5, 0.0, // top left
			},
			Indices: QuadIndices,
			Layout:  Layout(3),
		},
		ClearColor: ClearColor,
	}
}

const colorVertexShader = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 color;

out vec3 ourColor;

void main()
{
    gl_Position = vec4(position, 1.0);
    ourColor = color;
}
`

const colorFragmentShader = `#version 410 core
in vec3 ourColor;
out vec4 color;

void main()
{
    color = vec4(ourColor, 1.0);
}
`

// ColorVariant draws a triangle with red, green and blue corners.
func ColorVariant() *Variant {
	return &Variant{
		Name:        "color",
		Description: "per-vertex color triangle",
		Shaders:     ShaderSource{Vertex: colorVertexShader, Fragment: colorFragmentShader},
		Mesh: Mesh{
			Vertices: []float32{
				// positions     // colors
				0.5, -0.5, 0.0, 1.0, 0.0, 0.0, // bottom right
				-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
				0.0, 0.5, 0.0, 0.0, 0.0, 1.0, // top
			},
			Layout: Layout(3, 3),
		},
		ClearColor: ClearColor,
	}
}

const textureVertexShader = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 color;
layout (location = 2) in vec2 texCoord;

out vec3 ourColor;
out vec2 TexCoord;

void main()
{
    gl_Position = vec4(position, 1.0);
    ourColor = color;
    TexCoord = texCoord;
}
`

const textureFragmentShader = `#version 410 core
in vec3 ourColor;
in vec2 TexCoord;
out vec4 color;

uniform sampler2D texture1;
uniform sampler2D texture2;

void main()
{
    color = mix(texture(texture1, TexCoord), texture(texture2, TexCoord), 0.2);
}
`

// twoTextures samples the two asset images on units 0 and 1.
func twoTextures() []TextureSlot {
	return []TextureSlot{
		{Uniform: "texture1", Params: DefaultTextureParams(), FlipY: true},
		{Uniform: "texture2", Params: DefaultTextureParams(), FlipY: true},
	}
}

// TextureVariant draws an indexed quad blending two textures.
func TextureVariant() *Variant {
	return &Variant{
		Name:        "texture",
		Description: "indexed quad with two blended textures",
		Shaders:     ShaderSource{Vertex: textureVertexShader, Fragment: textureFragmentShader},
		Mesh: Mesh{
			Vertices: []float32{
				// positions     // colors      // texture coords
				0.5, 0.5, 0.0, 1.0, 0.0, 0.0, 1.0, 1.0, // top right
				0.5, -0.5, 0.0, 0.0, 1.0, 0.0, 1.0, 0.0, // bottom right
				-0.5, -0.5, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, // bottom left
				-0.5, 0.5, 0.0, 1.0, 1.0, 0.0, 0.0, 1.0, // top left
			},
			Indices: QuadIndices,
			Layout:  Layout(3, 3, 2),
		},
		Textures:   twoTextures(),
		ClearColor: ClearColor,
	}
}

const cubeVertexShader = `#version 410 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec2 texCoord;

out vec2 TexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main()
{
    gl_Position = projection * view * model * vec4(position, 1.0);
    TexCoord = vec2(texCoord.x, texCoord.y);
}
`

const cubeFragmentShader = `#version 410 core
in vec2 TexCoord;
out vec4 color;

uniform sampler2D texture1;
uniform sampler2D texture2;

void main()
{
    color = mix(texture(texture1, TexCoord), texture(texture2, TexCoord), 0.2);
}
`

// CubePositions are the world positions of the cubes.
var CubePositions = []mgl32.Vec3{
	{0.0, 0.0, 0.0},
	{2.0, 5.0, -15.0},
	{-1.5, -2.2, -2.5},
	{-3.8, -2.0, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3.0, -7.5},
	{1.3, -2.0, -2.5},
	{1.5, 2.0, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1.0, -1.5},
}

// cubeAxis is the shared rotation axis.
var cubeAxis = mgl32.Vec3{1.0, 0.3, 0.5}.Normalize()

// CubeAngle returns the rotation of cube i in degrees at time t.
// Every third cube spins at 30°/s; the others hold a fixed 20°·i tilt.
func CubeAngle(i int, t float64) float32 {
	if i%3 == 0 {
		return float32(30.0 * t)
	}
	return 20.0 * float32(i)
}

// CubeModel places cube i at its position and rotates it around cubeAxis.
func CubeModel(i int, t float64) mgl32.Mat4 {
	pos := CubePositions[i%len(CubePositions)]
	model := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	return model.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(CubeAngle(i, t)), cubeAxis))
}

// CubeCamera looks down -Z from three units back with a 45° perspective.
func CubeCamera(f Frame) (view, projection mgl32.Mat4) {
	view = mgl32.Translate3D(0, 0, -3)
	projection = mgl32.Perspective(mgl32.DegToRad(45), f.Aspect(), 0.1, 100)
	return view, projection
}

// CubesVariant draws ten textured cubes in perspective.
func CubesVariant() *Variant {
	return &Variant{
		Name:        "cubes",
		Description: "ten rotating textured cubes",
		Shaders:     ShaderSource{Vertex: cubeVertexShader, Fragment: cubeFragmentShader},
		Mesh: Mesh{
			Vertices: cubeVertices,
			Layout:   Layout(3, 2),
		},
		Textures:   twoTextures(),
		ClearColor: ClearColor,
		DepthTest:  true,
		Camera:     CubeCamera,
		Model:      CubeModel,
		Instances:  len(CubePositions),
	}
}

// cubeVertices are 36 position/texcoord vertices, two triangles per face.
var cubeVertices = []float32{
	-0.5, -0.5, -0.5, 0.0, 0.0,
	0.5, -0.5, -0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 0.0,

	-0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 1.0,
	-0.5, 0.5, 0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,

	-0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, -0.5, 1.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, 0.5, 1.0, 0.0,

	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, 0.5, 0.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,

	-0.5, -0.5, -0.5, 0.0, 1.0,
	0.5, -0.5, -0.5, 1.0, 1.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	0.5, -0.5, 0.5, 1.0, 0.0,
	-0.5, -0.5, 0.5, 0.0, 0.0,
	-0.5, -0.5, -0.5, 0.0, 1.0,

	-0.5, 0.5, -0.5, 0.0, 1.0,
	0.5, 0.5, -0.5, 1.0, 1.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	0.5, 0.5, 0.5, 1.0, 0.0,
	-0.5, 0.5, 0.5, 0.0, 0.0,
	-0.5, 0.5, -0.5, 0.0, 1.0,
}
