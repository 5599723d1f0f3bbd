package learngl_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/internal/gltest"
)

func newTestScene(t *testing.T, v *learngl.Variant) (*gltest.Device, *learngl.Scene) {
	t.Helper()
	dev := gltest.NewDevice()
	var loaded []string
	scene, err := learngl.NewScene(dev, v, learngl.WithImageLoader(fakeImages(&loaded)))
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	dev.Reset()
	return dev, scene
}

func TestRenderFlatVariant(t *testing.T) {
	dev, scene := newTestScene(t, learngl.ColorVariant())

	scene.Renderer().Render(learngl.Frame{Width: 800, Height: 800})

	if len(dev.Draws) != 1 {
		t.Fatalf("expected 1 draw, got %d", len(dev.Draws))
	}
	d := dev.Draws[0]
	if d.Indexed || d.Count != 3 {
		t.Errorf("draw = %+v, want 3 vertices", d)
	}
	if d.Program != scene.Program.ID || d.VAO != scene.Mesh.VAO {
		t.Errorf("draw used program %d vao %d", d.Program, d.VAO)
	}
	if dev.BoundVAO != 0 {
		t.Error("vertex array should be unbound after the frame")
	}
	if len(dev.Uniforms) != 0 {
		t.Errorf("flat variant should not push uniforms, got %d", len(dev.Uniforms))
	}

	clears := 0
	for _, c := range dev.Calls {
		if c.Name == "Clear" {
			clears++
			if c.Args[0].(learngl.ClearMask) != learngl.ClearColorBit {
				t.Errorf("clear mask = %v, want color only", c.Args[0])
			}
		}
	}
	if clears != 1 {
		t.Errorf("expected 1 clear, got %d", clears)
	}
}

func TestRenderIndexedQuad(t *testing.T) {
	dev, scene := newTestScene(t, learngl.TextureVariant())

	scene.Renderer().Render(learngl.Frame{Width: 800, Height: 800})

	if len(dev.Draws) != 1 || !dev.Draws[0].Indexed || dev.Draws[0].Count != 6 {
		t.Fatalf("draws = %+v, want one indexed draw of 6", dev.Draws)
	}
	if got := dev.Count("ActiveTexture"); got != 2 {
		t.Errorf("expected 2 texture units bound, got %d", got)
	}
}

func TestRenderCubes(t *testing.T) {
	dev, scene := newTestScene(t, learngl.CubesVariant())

	scene.Renderer().Render(learngl.Frame{Time: 1.5, Width: 800, Height: 600})

	if len(dev.Draws) != len(learngl.CubePositions) {
		t.Fatalf("expected %d draws, got %d", len(learngl.CubePositions), len(dev.Draws))
	}
	if got := len(dev.UniformsNamed("view")); got != 1 {
		t.Errorf("view pushed %d times, want 1", got)
	}
	if got := len(dev.UniformsNamed("projection")); got != 1 {
		t.Errorf("projection pushed %d times, want 1", got)
	}

	models := dev.UniformsNamed("model")
	if len(models) != len(learngl.CubePositions) {
		t.Fatalf("model pushed %d times", len(models))
	}
	for i, m := range models {
		if want := learngl.CubeModel(i, 1.5); !m.Mat4.ApproxEqual(want) {
			t.Errorf("model %d = %v, want %v", i, m.Mat4, want)
		}
	}

	proj := dev.UniformsNamed("projection")[0].Mat4
	want := mgl32.Perspective(mgl32.DegToRad(45), 800.0/600.0, 0.1, 100)
	if !proj.ApproxEqual(want) {
		t.Errorf("projection = %v, want %v", proj, want)
	}

	for _, c := range dev.Calls {
		if c.Name == "Clear" && c.Args[0].(learngl.ClearMask) != learngl.ClearColorBit|learngl.ClearDepthBit {
			t.Errorf("cubes should clear color and depth, got %v", c.Args[0])
		}
	}
}

func TestCubeModelTimeDependence(t *testing.T) {
	for i := range learngl.CubePositions {
		a := learngl.CubeModel(i, 0.5)
		b := learngl.CubeModel(i, 2.0)

		if i%3 == 0 {
			if a.ApproxEqual(b) {
				t.Errorf("cube %d should rotate with time", i)
			}
			if got := learngl.CubeAngle(i, 2.0); got != 60 {
				t.Errorf("cube %d angle at t=2 = %v, want 60", i, got)
			}
			continue
		}
		if !a.ApproxEqual(b) {
			t.Errorf("cube %d should hold a fixed rotation", i)
		}
		if got, want := learngl.CubeAngle(i, 2.0), float32(20*i); got != want {
			t.Errorf("cube %d angle = %v, want %v", i, got, want)
		}
	}
}

func TestCubeModelTranslation(t *testing.T) {
	for i, pos := range learngl.CubePositions {
		m := learngl.CubeModel(i, 3)
		if got := m.Col(3).Vec3(); !got.ApproxEqual(pos) {
			t.Errorf("cube %d translation = %v, want %v", i, got, pos)
		}
	}
}

func TestFrameAspect(t *testing.T) {
	if got := (learngl.Frame{Width: 800, Height: 400}).Aspect(); got != 2 {
		t.Errorf("Aspect = %v, want 2", got)
	}
	if got := (learngl.Frame{}).Aspect(); got != 1 {
		t.Errorf("degenerate Aspect = %v, want 1", got)
	}
}
