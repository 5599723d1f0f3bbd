package learngl

// LoopState is the render loop state.
type LoopState int

const (
	Running LoopState = iota
	Closing
)

func (s LoopState) String() string {
	if s == Closing {
		return "closing"
	}
	return "running"
}

// Window is the windowing collaborator driven by the loop.
type Window interface {
	PollEvents()
	ShouldClose() bool
	SetShouldClose(bool)
	SwapBuffers()
	FramebufferSize() (width, height int)
	Time() float64
	Input() *InputState
}

// FrameRenderer draws a single frame.
type FrameRenderer interface {
	Render(f Frame)
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithExitKey sets the key that closes the loop. Default is KeyEscape.
func WithExitKey(k Key) LoopOption {
	return func(l *Loop) { l.exitKey = k }
}

// WithMaxFrames stops the loop after n rendered frames. Zero means unlimited.
func WithMaxFrames(n uint64) LoopOption {
	return func(l *Loop) { l.maxFrames = n }
}

// WithAfterFrame registers a hook run after each frame is rendered and before
// it is presented.
func WithAfterFrame(fn func(f Frame)) LoopOption {
	return func(l *Loop) { l.afterFrame = fn }
}

// Loop runs the render loop of one window.
type Loop struct {
	window     Window
	renderer   FrameRenderer
	state      LoopState
	exitKey    Key
	maxFrames  uint64
	afterFrame func(f Frame)
	frames     uint64
	start      float64
}

// NewLoop creates a loop in the Running state.
func NewLoop(window Window, renderer FrameRenderer, opts ...LoopOption) *Loop {
	l := &Loop{
		window:   window,
		renderer: renderer,
		state:    Running,
		exitKey:  KeyEscape,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// State returns the current loop state.
func (l *Loop) State() LoopState {
	return l.state
}

// Frames returns the number of frames rendered so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run renders frames until the loop transitions to Closing.
// It must be called on the thread that owns the GL context.
func (l *Loop) Run() {
	l.start = l.window.Time()
	for l.Step() {
	}
	logger.Debug("render loop finished", "frames", l.frames)
}

// Step polls events and, while still Running, renders and presents one frame.
// It returns false once the loop is Closing; no frame is drawn on that step.
func (l *Loop) Step() bool {
	if l.state == Closing {
		return false
	}

	input := l.window.Input()
	input.Reset()
	l.window.PollEvents()

	if input.KeyPressed(l.exitKey) {
		l.window.SetShouldClose(true)
	}
	if l.window.ShouldClose() || (l.maxFrames > 0 && l.frames >= l.maxFrames) {
		l.state = Closing
		return false
	}

	w, h := l.window.FramebufferSize()
	f := Frame{
		Index:  l.frames,
		Time:   l.window.Time() - l.start,
		Width:  w,
		Height: h,
	}
	l.renderer.Render(f)
	if l.afterFrame != nil {
		l.afterFrame(f)
	}
	l.window.SwapBuffers()
	l.frames++

	return true
}
