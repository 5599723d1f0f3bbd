package learngl

import (
	"fmt"
)

// DefaultTexturePaths are the asset images sampled by textured variants.
var DefaultTexturePaths = []string{"assets/1.jpg", "assets/2.png"}

// ImageLoader decodes the image at path.
type ImageLoader func(path string) (Image, error)

// SceneOption configures NewScene.
type SceneOption func(*sceneConfig)

type sceneConfig struct {
	loadImage    ImageLoader
	texturePaths []string
}

// WithImageLoader replaces LoadImage, e.g. with an in-memory loader in tests.
func WithImageLoader(fn ImageLoader) SceneOption {
	return func(c *sceneConfig) { c.loadImage = fn }
}

// WithTexturePaths sets the image path for each texture slot, in slot order.
func WithTexturePaths(paths ...string) SceneOption {
	return func(c *sceneConfig) { c.texturePaths = paths }
}

// Scene owns every GPU resource of one variant. All of it is created in
// NewScene, before the render loop starts.
type Scene struct {
	Variant  *Variant
	Program  *Program
	Mesh     *MeshBuffers
	Textures []*Texture
	Uniforms *Uniforms

	dev Device
}

// NewScene builds the program, uploads mesh and textures and resolves uniforms
// for v. Shader build failures are returned as *BuildError; image decode
// failures are returned as-is and are meant to be fatal.
func NewScene(dev Device, v *Variant, opts ...SceneOption) (*Scene, error) {
	cfg := sceneConfig{
		loadImage:    LoadImage,
		texturePaths: DefaultTexturePaths,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(v.Textures) > len(cfg.texturePaths) {
		return nil, fmt.Errorf("variant %s needs %d textures, %d paths configured", v.Name, len(v.Textures), len(cfg.texturePaths))
	}

	s := &Scene{Variant: v, dev: dev}

	prog, err := BuildProgram(dev, v.Shaders)
	if err != nil {
		return nil, fmt.Errorf("variant %s: %w", v.Name, err)
	}
	s.Program = prog

	s.Mesh, err = UploadMesh(dev, v.Mesh)
	if err != nil {
		s.Delete()
		return nil, fmt.Errorf("variant %s mesh: %w", v.Name, err)
	}

	for i, slot := range v.Textures {
		path := cfg.texturePaths[i]
		img, err := cfg.loadImage(path)
		if err != nil {
			s.Delete()
			return nil, fmt.Errorf("texture %s: %w", slot.Uniform, err)
		}
		if slot.FlipY {
			img = FlipVertical(img)
		}
		tex, err := UploadTexture(dev, img, slot.Params)
		if err != nil {
			s.Delete()
			return nil, fmt.Errorf("texture %s (%s): %w", slot.Uniform, path, err)
		}
		s.Textures = append(s.Textures, tex)
	}

	s.Uniforms, err = ResolveUniforms(dev, prog, v.Uniforms()...)
	if err != nil {
		s.Delete()
		return nil, err
	}

	// Sampler units never change, so they are set once.
	prog.Use()
	for unit, slot := range v.Textures {
		s.Uniforms.SetInt(slot.Uniform, int32(unit))
	}
	dev.SetDepthTest(v.DepthTest)

	logger.Info("scene ready", "variant", v.Name, "program", prog.ID, "textures", len(s.Textures))
	return s, nil
}

// Renderer returns the frame renderer for the scene.
func (s *Scene) Renderer() *Renderer {
	v := s.Variant
	instances := v.Instances
	if v.Model != nil && instances == 0 {
		instances = 1
	}
	return &Renderer{
		dev:        s.dev,
		program:    s.Program,
		mesh:       s.Mesh,
		textures:   s.Textures,
		uniforms:   s.Uniforms,
		clearColor: v.ClearColor,
		depthTest:  v.DepthTest,
		camera:     v.Camera,
		model:      v.Model,
		instances:  instances,
	}
}

// Delete releases every GPU object owned by the scene.
func (s *Scene) Delete() {
	for _, t := range s.Textures {
		t.Delete()
	}
	s.Textures = nil
	if s.Mesh != nil {
		s.Mesh.Delete()
	}
	if s.Program != nil {
		s.Program.Delete()
	}
}

// FlipVertical returns a copy of img with its rows in reverse order.
func FlipVertical(img Image) Image {
	rowLen := img.Width * 3
	if img.Height <= 0 || len(img.Pix) != rowLen*img.Height {
		return img
	}
	out := Image{Width: img.Width, Height: img.Height, Pix: make([]byte, len(img.Pix))}
	for y := 0; y < img.Height; y++ {
		src := img.Pix[y*rowLen : (y+1)*rowLen]
		dst := (img.Height - 1 - y) * rowLen
		copy(out.Pix[dst:dst+rowLen], src)
	}
	return out
}
