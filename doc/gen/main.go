// Command gen renders every exercise in a hidden window, captures the last
// frame and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

const (
	shotWidth  = 400
	shotHeight = 400
	shotFrames = 3
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	cfg := learngl.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = shotWidth, shotHeight
	cfg.Window.Title = "screenshot-gen"
	cfg.Window.VSync = false

	window, err := opengl.NewWindow(cfg.Window, opengl.Hidden())
	if err != nil {
		return err
	}
	defer window.Destroy()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	dev := opengl.NewDevice()
	generated := 0
	for _, name := range learngl.Variants() {
		variant, err := learngl.LookupVariant(name)
		if err != nil {
			return err
		}
		if missing := variant.MissingTextures(cfg.Textures); len(missing) > 0 {
			fmt.Printf("  %s skipped, missing assets %v\n", name, missing)
			continue
		}
		if err := capture(dev, window, variant, cfg.Textures, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", name, err)
		}
		fmt.Printf("  %s.jpg\n", name)
		generated++
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", generated, outDir)
	return nil
}

func capture(dev learngl.Device, window *opengl.Window, variant *learngl.Variant, textures []string, outDir string) error {
	// Fresh scene per screenshot so no GL state leaks between variants.
	scene, err := learngl.NewScene(dev, variant, learngl.WithTexturePaths(textures...))
	if err != nil {
		return err
	}
	defer scene.Delete()

	var last *image.RGBA
	loop := learngl.NewLoop(window, scene.Renderer(),
		learngl.WithMaxFrames(shotFrames),
		learngl.WithAfterFrame(func(f learngl.Frame) {
			last = opengl.ReadPixels(f.Width, f.Height)
		}),
	)
	loop.Run()
	if last == nil {
		return fmt.Errorf("no frame rendered")
	}

	path := filepath.Join(outDir, variant.Name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return jpeg.Encode(f, last, &jpeg.Options{Quality: 90})
}
