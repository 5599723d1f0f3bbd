package learngl

import (
	"errors"
	"fmt"
	"strings"
)

// MaxInfoLog bounds the diagnostic text retrieved for a shader or program.
const MaxInfoLog = 512

var (
	// ErrCompile is wrapped by a BuildError when at least one stage failed to compile.
	ErrCompile = errors.New("shader compilation failed")
	// ErrLink is wrapped by a BuildError when both stages compiled but linking failed.
	ErrLink = errors.New("shader program linking failed")
)

// Diagnostics holds the driver logs collected while building a program.
// A stage that compiled cleanly has an empty log.
type Diagnostics struct {
	VertexLog   string
	FragmentLog string
	LinkLog     string
}

// Empty reports whether no diagnostic text was produced.
func (d Diagnostics) Empty() bool {
	return d.VertexLog == "" && d.FragmentLog == "" && d.LinkLog == ""
}

// StageLog returns the compile log of the given stage.
func (d Diagnostics) StageLog(s Stage) string {
	if s == StageFragment {
		return d.FragmentLog
	}
	return d.VertexLog
}

// BuildError reports a failed compile or link together with every log collected.
type BuildError struct {
	Diagnostics
	linked bool // compilation succeeded, link did not
}

func (e *BuildError) Error() string {
	var b strings.Builder
	if e.linked {
		b.WriteString(ErrLink.Error())
		fmt.Fprintf(&b, ": %s", e.LinkLog)
		return b.String()
	}
	b.WriteString(ErrCompile.Error())
	if e.VertexLog != "" {
		fmt.Fprintf(&b, "\nvertex: %s", e.VertexLog)
	}
	if e.FragmentLog != "" {
		fmt.Fprintf(&b, "\nfragment: %s", e.FragmentLog)
	}
	return b.String()
}

// Unwrap returns ErrCompile or ErrLink.
func (e *BuildError) Unwrap() error {
	if e.linked {
		return ErrLink
	}
	return ErrCompile
}

// Program is a linked shader program.
type Program struct {
	ID  uint32
	Log Diagnostics // empty for a clean build

	dev Device
}

// Use makes the program current.
func (p *Program) Use() {
	p.dev.UseProgram(p.ID)
}

// Delete releases the program object.
func (p *Program) Delete() {
	if p.ID != 0 {
		p.dev.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// BuildProgram compiles both stages of src and links them.
//
// Each stage is compiled independently so that both logs are available. If a
// stage fails, linking is skipped. The per-stage shader objects are deleted
// before returning in every case. Failures are logged and returned as
// *BuildError; the caller decides whether they are fatal.
func BuildProgram(dev Device, src ShaderSource) (*Program, error) {
	var diag Diagnostics

	vs, vsOK := compileStage(dev, StageVertex, src.Vertex, &diag.VertexLog)
	fs, fsOK := compileStage(dev, StageFragment, src.Fragment, &diag.FragmentLog)
	defer dev.DeleteShader(vs)
	defer dev.DeleteShader(fs)

	if !vsOK || !fsOK {
		return nil, &BuildError{Diagnostics: diag}
	}

	program := dev.CreateProgram()
	dev.AttachShader(program, vs)
	dev.AttachShader(program, fs)
	dev.LinkProgram(program)

	if !dev.ProgramLinked(program) {
		diag.LinkLog = infoLog(dev.ProgramInfoLog(program, MaxInfoLog), "link failed")
		logger.Error("program link failed", "program", program, "log", diag.LinkLog)
		dev.DeleteProgram(program)
		return nil, &BuildError{Diagnostics: diag, linked: true}
	}

	logger.Debug("program linked", "program", program)
	return &Program{ID: program, Log: diag, dev: dev}, nil
}

// compileStage compiles one shader stage, storing the driver log in *log on failure.
func compileStage(dev Device, stage Stage, source string, log *string) (uint32, bool) {
	shader := dev.CreateShader(stage)
	dev.ShaderSource(shader, source)
	dev.CompileShader(shader)

	if dev.ShaderCompiled(shader) {
		return shader, true
	}

	*log = infoLog(dev.ShaderInfoLog(shader, MaxInfoLog), "compile failed")
	logger.Error("shader compilation failed", "stage", stage, "log", *log)
	return shader, false
}

// infoLog trims a driver log to MaxInfoLog bytes. Some drivers return an
// empty log on failure, in which case fallback is used so failures are never silent.
func infoLog(s, fallback string) string {
	if len(s) > MaxInfoLog {
		s = s[:MaxInfoLog]
	}
	s = strings.TrimRight(s, "\x00 \t\r\n")
	if s == "" {
		return fallback
	}
	return s
}
