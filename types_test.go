package learngl_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/learngl"
)

func TestLayout(t *testing.T) {
	l := learngl.Layout(3, 3, 2)

	if got := l.FloatsPerVertex(); got != 8 {
		t.Errorf("FloatsPerVertex = %d, want 8", got)
	}
	if got := l.Stride(); got != 32 {
		t.Errorf("Stride = %d, want 32", got)
	}
	if l.Attribs[2].Index != 2 || l.Attribs[2].Offset != 6 {
		t.Errorf("third attribute = %+v", l.Attribs[2])
	}
	if err := l.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		layout learngl.VertexLayout
	}{
		{"empty", learngl.VertexLayout{}},
		{"zero components", learngl.VertexLayout{Attribs: []learngl.VertexAttrib{{Index: 0, Size: 0}}}},
		{"five components", learngl.VertexLayout{Attribs: []learngl.VertexAttrib{{Index: 0, Size: 5}}}},
		{"duplicate slot", learngl.VertexLayout{Attribs: []learngl.VertexAttrib{
			{Index: 0, Size: 3, Offset: 0},
			{Index: 0, Size: 3, Offset: 3},
		}}},
		{"overlap", learngl.VertexLayout{Attribs: []learngl.VertexAttrib{
			{Index: 0, Size: 3, Offset: 0},
			{Index: 1, Size: 2, Offset: 2},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.layout.Validate(); !errors.Is(err, learngl.ErrInvalidLayout) {
				t.Errorf("expected ErrInvalidLayout, got %v", err)
			}
		})
	}
}

func TestLayoutWithGap(t *testing.T) {
	// Padding between attributes is allowed and counts toward the stride.
	l := learngl.VertexLayout{Attribs: []learngl.VertexAttrib{
		{Index: 0, Size: 3, Offset: 0},
		{Index: 1, Size: 2, Offset: 4},
	}}
	if err := l.Validate(); err != nil {
		t.Fatal(err)
	}
	if got := l.Stride(); got != 24 {
		t.Errorf("Stride = %d, want 24", got)
	}
}

func TestStageString(t *testing.T) {
	if learngl.StageVertex.String() != "vertex" || learngl.StageFragment.String() != "fragment" {
		t.Error("unexpected stage names")
	}
}
