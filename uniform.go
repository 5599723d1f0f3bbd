package learngl

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrNotLinked is returned when uniforms are resolved against a program that
// did not link.
var ErrNotLinked = errors.New("program is not linked")

// Uniforms maps uniform names to locations for one program.
// Locations are resolved once, after linking.
type Uniforms struct {
	dev       Device
	locations map[string]int32
}

// ResolveUniforms looks up the location of each name in prog.
// Names the linker optimized away resolve to -1 and are ignored by the setters.
func ResolveUniforms(dev Device, prog *Program, names ...string) (*Uniforms, error) {
	if prog == nil || prog.ID == 0 || !dev.ProgramLinked(prog.ID) {
		return nil, ErrNotLinked
	}

	u := &Uniforms{dev: dev, locations: make(map[string]int32, len(names))}
	for _, name := range names {
		if _, ok := u.locations[name]; ok {
			continue
		}
		loc := dev.UniformLocation(prog.ID, name)
		if loc < 0 {
			logger.Debug("uniform not active", "name", name)
		}
		u.locations[name] = loc
	}
	return u, nil
}

// Location returns the resolved location of name, or -1.
func (u *Uniforms) Location(name string) int32 {
	loc, ok := u.locations[name]
	if !ok {
		return -1
	}
	return loc
}

// Has reports whether name resolved to an active uniform.
func (u *Uniforms) Has(name string) bool {
	return u.Location(name) >= 0
}

// SetMat4 uploads a 4x4 matrix.
func (u *Uniforms) SetMat4(name string, m mgl32.Mat4) {
	if loc := u.Location(name); loc >= 0 {
		u.dev.UniformMatrix4(loc, m)
	}
}

// SetInt uploads an integer, typically a sampler unit.
func (u *Uniforms) SetInt(name string, v int32) {
	if loc := u.Location(name); loc >= 0 {
		u.dev.Uniform1i(loc, v)
	}
}

func (u *Uniforms) String() string {
	return fmt.Sprintf("Uniforms%v", u.locations)
}
