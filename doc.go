/*
Package learngl provides a small reusable OpenGL pipeline for a series of
learning exercises: a shader program builder, mesh and texture upload, a frame
renderer and a Running/Closing render loop.

# Overview

Every exercise is described by a Variant: shader source, mesh data, texture
set and optional camera and per-object model functions. Setup happens once in
NewScene; the loop then renders one frame per display refresh until the exit
key is pressed or the window asks to close.

# Quick Start

	dev := opengl.NewDevice()
	variant, _ := learngl.LookupVariant("cubes")

	scene, err := learngl.NewScene(dev, variant)
	if err != nil {
	    return err
	}
	defer scene.Delete()

	loop := learngl.NewLoop(window, scene.Renderer())
	loop.Run()

# Graphics device

The pipeline never calls OpenGL directly. It talks to a Device, implemented by
backend/opengl for real contexts and by internal/gltest for tests. Device
methods map one-to-one to GL entry points.

# Shader diagnostics

BuildProgram compiles both stages before deciding on the outcome, so a syntax
error in one stage leaves the other stage's log empty. Diagnostics are capped
at MaxInfoLog bytes. Failures come back as *BuildError:

	prog, err := learngl.BuildProgram(dev, src)
	var buildErr *learngl.BuildError
	if errors.As(err, &buildErr) {
	    fmt.Println(buildErr.FragmentLog)
	}
*/
package learngl
