package gltest

import "github.com/go-theft-auto/learngl"

// KeyEvent is a scripted key transition delivered on a given poll.
type KeyEvent struct {
	Poll int // 1-based poll number
	Key  learngl.Key
	Down bool
}

// Window is a scripted learngl.Window. Time advances by FrameTime per poll.
type Window struct {
	Width, Height int
	FrameTime     float64
	Events        []KeyEvent
	CloseOnPoll   int // request close on this poll, 0 for never

	Polls  int
	Swaps  int
	closed bool
	input  *learngl.InputState
}

// NewWindow returns a 800x600 window advancing 1/60 s per poll.
func NewWindow() *Window {
	return &Window{
		Width:     800,
		Height:    600,
		FrameTime: 1.0 / 60.0,
		input:     learngl.NewInputState(),
	}
}

var _ learngl.Window = (*Window)(nil)

func (w *Window) PollEvents() {
	w.Polls++
	for _, ev := range w.Events {
		if ev.Poll == w.Polls {
			w.input.SetKey(ev.Key, ev.Down)
		}
	}
	if w.CloseOnPoll > 0 && w.Polls >= w.CloseOnPoll {
		w.closed = true
	}
}

func (w *Window) ShouldClose() bool { return w.closed }
func (w *Window) SetShouldClose(v bool) { w.closed = v }
func (w *Window) SwapBuffers() { w.Swaps++ }
func (w *Window) FramebufferSize() (int, int) { return w.Width, w.Height }
func (w *Window) Time() float64 { return float64(w.Polls) * w.FrameTime }
func (w *Window) Input() *learngl.InputState { return w.input }
