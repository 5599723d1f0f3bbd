package learngl_test

import (
	"testing"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/internal/gltest"
)

// countingRenderer records the frames it was asked to draw.
type countingRenderer struct {
	frames []learngl.Frame
}

func (r *countingRenderer) Render(f learngl.Frame) {
	r.frames = append(r.frames, f)
}

func TestLoopEscapeCloses(t *testing.T) {
	win := gltest.NewWindow()
	win.Events = []gltest.KeyEvent{{Poll: 4, Key: learngl.KeyEscape, Down: true}}
	r := &countingRenderer{}

	loop := learngl.NewLoop(win, r)
	if loop.State() != learngl.Running {
		t.Fatalf("initial state = %v", loop.State())
	}
	loop.Run()

	if loop.State() != learngl.Closing {
		t.Errorf("state = %v, want closing", loop.State())
	}
	if len(r.frames) != 3 {
		t.Errorf("rendered %d frames, want 3", len(r.frames))
	}
	if win.Swaps != 3 {
		t.Errorf("presented %d frames, want 3", win.Swaps)
	}
	if !win.ShouldClose() {
		t.Error("window should be asked to close")
	}
}

func TestLoopNoDrawAfterClosing(t *testing.T) {
	dev, scene := newTestScene(t, learngl.QuadVariant())
	win := gltest.NewWindow()
	loop := learngl.NewLoop(win, scene.Renderer())

	if !loop.Step() {
		t.Fatal("first step should render")
	}
	draws := len(dev.Draws)

	win.Events = []gltest.KeyEvent{{Poll: win.Polls + 1, Key: learngl.KeyEscape, Down: true}}
	if loop.Step() {
		t.Fatal("step after Escape should not render")
	}
	if loop.State() != learngl.Closing {
		t.Fatalf("state = %v, want closing", loop.State())
	}
	if loop.Step() {
		t.Fatal("closing loop should stay closed")
	}
	if len(dev.Draws) != draws {
		t.Errorf("%d draws issued after closing", len(dev.Draws)-draws)
	}
}

func TestLoopWindowClose(t *testing.T) {
	win := gltest.NewWindow()
	win.CloseOnPoll = 2
	r := &countingRenderer{}

	learngl.NewLoop(win, r).Run()

	if len(r.frames) != 1 {
		t.Errorf("rendered %d frames, want 1", len(r.frames))
	}
}

func TestLoopExitKeyOption(t *testing.T) {
	win := gltest.NewWindow()
	win.Events = []gltest.KeyEvent{
		{Poll: 1, Key: learngl.KeyEscape, Down: true},
		{Poll: 3, Key: learngl.KeyQ, Down: true},
	}
	r := &countingRenderer{}

	learngl.NewLoop(win, r, learngl.WithExitKey(learngl.KeyQ)).Run()

	if len(r.frames) != 2 {
		t.Errorf("rendered %d frames, want 2", len(r.frames))
	}
}

func TestLoopMaxFramesAndHook(t *testing.T) {
	win := gltest.NewWindow()
	r := &countingRenderer{}
	var hooked []uint64

	loop := learngl.NewLoop(win, r,
		learngl.WithMaxFrames(5),
		learngl.WithAfterFrame(func(f learngl.Frame) { hooked = append(hooked, f.Index) }),
	)
	loop.Run()

	if loop.Frames() != 5 || len(r.frames) != 5 {
		t.Fatalf("rendered %d frames, want 5", loop.Frames())
	}
	if len(hooked) != 5 || hooked[4] != 4 {
		t.Errorf("hook saw %v", hooked)
	}
}

func TestLoopFrameTiming(t *testing.T) {
	win := gltest.NewWindow()
	win.FrameTime = 0.5
	r := &countingRenderer{}

	learngl.NewLoop(win, r, learngl.WithMaxFrames(3)).Run()

	for i, f := range r.frames {
		if want := float64(i+1) * 0.5; f.Time != want {
			t.Errorf("frame %d time = %v, want %v", i, f.Time, want)
		}
		if f.Width != 800 || f.Height != 600 {
			t.Errorf("frame %d size = %dx%d", i, f.Width, f.Height)
		}
	}
}
