package learngl_test

import (
	"testing"

	"github.com/go-theft-auto/learngl"
)

func TestInputKeyEdges(t *testing.T) {
	s := learngl.NewInputState()

	s.SetKey(learngl.KeyEscape, true)
	if !s.KeyPressed(learngl.KeyEscape) {
		t.Fatal("Escape should be pressed")
	}

	s.Reset()
	if s.KeyPressed(learngl.KeyEscape) {
		t.Error("press should last one frame")
	}

	// Repeat events do not produce a second press.
	s.SetKey(learngl.KeyEscape, true)
	if s.KeyPressed(learngl.KeyEscape) {
		t.Error("held key should not press again")
	}

	s.SetKey(learngl.KeyEscape, false)
	if s.KeyPressed(learngl.KeyEscape) {
		t.Error("release should not press")
	}

	s.Reset()
	s.SetKey(learngl.KeyEscape, true)
	if !s.KeyPressed(learngl.KeyEscape) {
		t.Error("press after release should register")
	}
}

func TestInputOutOfRange(t *testing.T) {
	s := learngl.NewInputState()
	s.SetKey(learngl.KeyCount, true)
	s.SetKey(learngl.KeyNone, true)

	if s.KeyPressed(learngl.KeyCount) || s.KeyPressed(-1) || s.KeyPressed(learngl.KeyNone) {
		t.Error("out-of-range keys should be ignored")
	}
	if learngl.KeyName(learngl.KeyEscape) != "Esc" || learngl.KeyName(learngl.KeyCount) != "?" {
		t.Error("unexpected key names")
	}
}
