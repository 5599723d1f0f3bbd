package learngl

import "github.com/go-gl/mathgl/mgl32"

// Frame carries per-frame timing and framebuffer size.
type Frame struct {
	Index         uint64
	Time          float64 // seconds since the loop started
	Width, Height int
}

// Aspect returns the framebuffer aspect ratio, or 1 for a degenerate size.
func (f Frame) Aspect() float32 {
	if f.Width <= 0 || f.Height <= 0 {
		return 1
	}
	return float32(f.Width) / float32(f.Height)
}

// CameraFunc returns the view and projection matrices for a frame.
type CameraFunc func(f Frame) (view, projection mgl32.Mat4)

// ModelFunc returns the model matrix of object i at time t (seconds).
type ModelFunc func(i int, t float64) mgl32.Mat4

// Uniform names pushed by the renderer.
const (
	UniformModel      = "model"
	UniformView       = "view"
	UniformProjection = "projection"
)

// Renderer draws one frame of a scene.
type Renderer struct {
	dev        Device
	program    *Program
	mesh       *MeshBuffers
	textures   []*Texture
	uniforms   *Uniforms
	clearColor Color
	depthTest  bool
	camera     CameraFunc
	model      ModelFunc
	instances  int
}

// Render clears the framebuffer and draws the mesh once per object.
func (r *Renderer) Render(f Frame) {
	r.dev.Viewport(0, 0, int32(f.Width), int32(f.Height))
	r.dev.ClearColor(r.clearColor)
	mask := ClearColorBit
	if r.depthTest {
		mask |= ClearDepthBit
	}
	r.dev.Clear(mask)

	for unit, tex := range r.textures {
		tex.Bind(uint32(unit))
	}

	r.program.Use()

	if r.camera != nil {
		view, projection := r.camera(f)
		r.uniforms.SetMat4(UniformView, view)
		r.uniforms.SetMat4(UniformProjection, projection)
	}

	r.dev.BindVertexArray(r.mesh.VAO)
	if r.model == nil {
		r.mesh.Draw()
	} else {
		for i := 0; i < r.instances; i++ {
			r.uniforms.SetMat4(UniformModel, r.model(i, f.Time))
			r.mesh.Draw()
		}
	}
	r.dev.BindVertexArray(0)
}
