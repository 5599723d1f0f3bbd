package learngl

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned when an image has no pixels or its pixel buffer
// does not match its dimensions.
var ErrEmptyImage = errors.New("empty or malformed image")

// Image is decoded pixel data: tightly packed, row-major RGB, 3 bytes per pixel.
type Image struct {
	Width, Height int
	Pix           []byte
}

// WrapMode is a texture coordinate wrap mode.
type WrapMode int

const (
	WrapRepeat WrapMode = iota
	WrapMirroredRepeat
	WrapClampToEdge
)

// FilterMode is a texture minification or magnification filter.
type FilterMode int

const (
	FilterLinear FilterMode = iota
	FilterNearest
	FilterLinearMipmapLinear
	FilterNearestMipmapNearest
)

// TextureParams are the sampling parameters applied at upload.
type TextureParams struct {
	WrapS, WrapT WrapMode
	MinFilter    FilterMode
	MagFilter    FilterMode
	Mipmaps      bool
}

// DefaultTextureParams repeats in both directions with trilinear minification.
func DefaultTextureParams() TextureParams {
	return TextureParams{
		WrapS:     WrapRepeat,
		WrapT:     WrapRepeat,
		MinFilter: FilterLinearMipmapLinear,
		MagFilter: FilterLinear,
		Mipmaps:   true,
	}
}

// Texture is an uploaded 2D texture.
type Texture struct {
	ID            uint32
	Width, Height int

	dev Device
}

// LoadImage decodes the file at path into packed RGB. Alpha is discarded.
// JPEG, PNG, BMP and WebP are recognized.
func LoadImage(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return Image{}, fmt.Errorf("decode %s: %w", path, err)
	}
	img := ToRGB(src)
	logger.Debug("image decoded", "path", path, "format", format, "width", img.Width, "height", img.Height)
	return img, nil
}

// ToRGB converts any image to packed RGB. Color channels are taken
// unpremultiplied, so alpha is dropped without darkening translucent pixels.
func ToRGB(src image.Image) Image {
	bounds := src.Bounds()
	rgba, ok := src.(*image.NRGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	}

	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 0, w*h*3)
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+w*4]
		for x := 0; x < w; x++ {
			pix = append(pix, row[x*4], row[x*4+1], row[x*4+2])
		}
	}
	return Image{Width: w, Height: h, Pix: pix}
}

// UploadTexture creates a 2D texture from img with the given parameters.
// The texture is left unbound on return.
func UploadTexture(dev Device, img Image, params TextureParams) (*Texture, error) {
	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) != img.Width*img.Height*3 {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrEmptyImage, img.Width, img.Height, len(img.Pix))
	}

	t := &Texture{Width: img.Width, Height: img.Height, dev: dev}
	t.ID = dev.GenTexture()
	dev.BindTexture(t.ID)
	dev.TexParameters(params)
	dev.TexImageRGB(img.Width, img.Height, img.Pix)
	if params.Mipmaps {
		dev.GenerateMipmap()
	}
	dev.BindTexture(0)

	return t, nil
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	t.dev.ActiveTexture(unit)
	t.dev.BindTexture(t.ID)
}

// Delete releases the texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		t.dev.DeleteTexture(t.ID)
		t.ID = 0
	}
}
