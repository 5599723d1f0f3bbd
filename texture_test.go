package learngl_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/internal/gltest"
)

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "img.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadImagePackedRGB(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(2, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	img, err := learngl.LoadImage(writePNG(t, src))
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}

	if img.Width != 3 || img.Height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", img.Width, img.Height)
	}
	if len(img.Pix) != 3*2*3 {
		t.Fatalf("len(Pix) = %d, want 18", len(img.Pix))
	}
	if got := img.Pix[0:3]; got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("first pixel = %v", got)
	}
	last := img.Pix[len(img.Pix)-3:]
	if last[0] != 200 || last[1] != 100 || last[2] != 50 {
		t.Errorf("last pixel = %v", last)
	}
}

func TestLoadImageKeepsTranslucentColor(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	src.Set(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 0})
	path := writePNG(t, src)

	tests := []struct {
		name string
		load func() (learngl.Image, error)
	}{
		{"decoded png", func() (learngl.Image, error) { return learngl.LoadImage(path) }},
		{"in memory", func() (learngl.Image, error) { return learngl.ToRGB(src), nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := tt.load()
			if err != nil {
				t.Fatal(err)
			}
			want := []byte{200, 100, 50, 255, 255, 255}
			if string(img.Pix) != string(want) {
				t.Errorf("Pix = %v, want %v", img.Pix, want)
			}
		})
	}
}

func TestLoadImageErrors(t *testing.T) {
	if _, err := learngl.LoadImage(filepath.Join(t.TempDir(), "missing.jpg")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := learngl.LoadImage(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestToRGBSubImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(2, 2, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	sub := src.SubImage(image.Rect(2, 2, 4, 4))

	img := learngl.ToRGB(sub)

	if img.Width != 2 || img.Height != 2 {
		t.Fatalf("size = %dx%d", img.Width, img.Height)
	}
	if img.Pix[0] != 1 || img.Pix[1] != 2 || img.Pix[2] != 3 {
		t.Errorf("first pixel = %v", img.Pix[:3])
	}
}

func TestUploadTexture(t *testing.T) {
	dev := gltest.NewDevice()
	params := learngl.TextureParams{
		WrapS:     learngl.WrapClampToEdge,
		WrapT:     learngl.WrapMirroredRepeat,
		MinFilter: learngl.FilterNearest,
		MagFilter: learngl.FilterNearest,
	}

	tex, err := learngl.UploadTexture(dev, learngl.Image{Width: 1, Height: 1, Pix: []byte{1, 2, 3}}, params)
	if err != nil {
		t.Fatal(err)
	}

	state := dev.Textures[tex.ID]
	if state.Params != params {
		t.Errorf("params = %+v, want %+v", state.Params, params)
	}
	if state.Mipmapped {
		t.Error("mipmaps were not requested")
	}

	tex.Bind(1)
	last := dev.Calls[len(dev.Calls)-1]
	if last.Name != "BindTexture" || last.Args[0] != uint32(1) || last.Args[1] != tex.ID {
		t.Errorf("last call = %+v", last)
	}
}

func TestUploadTextureRejectsMalformed(t *testing.T) {
	tests := []learngl.Image{
		{},
		{Width: 2, Height: 2, Pix: make([]byte, 11)},
		{Width: -1, Height: 1, Pix: nil},
	}

	for _, img := range tests {
		dev := gltest.NewDevice()
		_, err := learngl.UploadTexture(dev, img, learngl.DefaultTextureParams())
		if !errors.Is(err, learngl.ErrEmptyImage) {
			t.Errorf("%dx%d/%d: expected ErrEmptyImage, got %v", img.Width, img.Height, len(img.Pix), err)
		}
		if len(dev.Textures) != 0 {
			t.Error("no texture should be created")
		}
	}
}
