// Example runs one of the learngl exercises in a window until Escape is
// pressed or the window is closed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell                         # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/ -variant cubes     # run an exercise
//	go run ./example/ -config learngl.toml
//
// Variants: triangle, quad, color, texture, cubes. The texture and cubes
// variants read assets/1.jpg and assets/2.png relative to the working directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "TOML config file")
	variantName := flag.String("variant", "", "exercise to run:\n"+learngl.VariantUsage())
	fullscreen := flag.Bool("fullscreen", false, "fullscreen on the primary monitor")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg := learngl.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = learngl.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *variantName != "" {
		cfg.Variant = *variantName
	}
	if *fullscreen {
		cfg.Window.Fullscreen = true
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	learngl.SetVerbose(cfg.Verbose)

	variant, err := learngl.LookupVariant(cfg.Variant)
	if err != nil {
		return err
	}

	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	window, err := opengl.NewWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	scene, err := learngl.NewScene(opengl.NewDevice(), variant, learngl.WithTexturePaths(cfg.Textures...))
	if err != nil {
		return err
	}
	defer scene.Delete()

	learngl.Logger().Info("running", "variant", variant.Name, "exit", learngl.KeyName(learngl.KeyEscape))
	learngl.NewLoop(window, scene.Renderer()).Run()

	return nil
}
