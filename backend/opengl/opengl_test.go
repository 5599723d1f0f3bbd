package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
)

func TestFlipRows(t *testing.T) {
	pix := []byte{
		1, 1,
		2, 2,
		3, 3,
	}
	flipRows(pix, 2, 3)

	want := []byte{3, 3, 2, 2, 1, 1}
	if string(pix) != string(want) {
		t.Errorf("pix = %v, want %v", pix, want)
	}
}

func TestGLFWKeyMapping(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want learngl.Key
	}{
		{glfw.KeyEscape, learngl.KeyEscape},
		{glfw.KeyQ, learngl.KeyQ},
		{glfw.KeyF11, learngl.KeyNone},
		{glfw.KeyW, learngl.KeyNone},
	}
	for _, tt := range tests {
		if got := glfwKeyToKey(tt.in); got != tt.want {
			t.Errorf("glfwKeyToKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestReadLogBounded(t *testing.T) {
	var requested int32
	log := readLog(2000, learngl.MaxInfoLog, func(n int32, buf *uint8) {
		requested = n
	})
	if requested != learngl.MaxInfoLog {
		t.Errorf("requested %d bytes, want %d", requested, learngl.MaxInfoLog)
	}
	if log != "" {
		t.Errorf("log = %q, want empty for a zeroed buffer", log)
	}

	if got := readLog(0, learngl.MaxInfoLog, func(int32, *uint8) { t.Error("should not be called") }); got != "" {
		t.Errorf("empty log = %q", got)
	}
}
