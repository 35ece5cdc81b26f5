// Package display shows rendered frames in an OpenGL window. Frames arrive
// as CPU-side RGBA images; the window uploads each one to a texture and
// blits it to the default framebuffer.
package display

import (
	"fmt"
	"image"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// FrameFunc produces the next frame to display. elapsed is the time in
// seconds since the window opened. Returning a nil image ends the loop.
type FrameFunc func(elapsed float64) *image.RGBA

// Window is a fixed-size window displaying a stream of rendered frames.
type Window struct {
	window  *glfw.Window
	texture uint32
	texFbo  uint32
	width   int
	height  int
}

// NewWindow opens a window with an attached framebuffer texture of the given
// size. Call Run to start the frame loop and Close when done.
func NewWindow(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("display: failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: could not create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("display: could not init opengl: %w", err)
	}

	w := &Window{
		window: window,
		width:  width,
		height: height,
	}
	gl.GenTextures(1, &w.texture)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)

	gl.GenFramebuffers(1, &w.texFbo)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.texFbo)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, w.texture, 0)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			window.SetShouldClose(true)
		}
	})

	return w, nil
}

// Run drives the frame loop: poll events, ask for the next frame, show it.
// It returns when the window is closed, escape is pressed, or nextFrame
// returns nil.
func (w *Window) Run(nextFrame FrameFunc) error {
	start := glfw.GetTime()
	for !w.window.ShouldClose() {
		glfw.PollEvents()

		frame := nextFrame(glfw.GetTime() - start)
		if frame == nil {
			return nil
		}
		if b := frame.Bounds(); b.Dx() != w.width || b.Dy() != w.height {
			return fmt.Errorf("display: frame is %dx%d, window is %dx%d", b.Dx(), b.Dy(), w.width, w.height)
		}

		gl.BindTexture(gl.TEXTURE_2D, w.texture)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w.width), int32(w.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix))

		// Blit with a flipped source rect: image rows run top-down, GL
		// framebuffer rows run bottom-up.
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, w.texFbo)
		gl.BlitFramebuffer(0, int32(w.height), int32(w.width), 0,
			0, 0, int32(w.width), int32(w.height), gl.COLOR_BUFFER_BIT, gl.NEAREST)
		gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

		w.window.SwapBuffers()
	}
	return nil
}

// Close destroys the window and shuts down glfw.
func (w *Window) Close() {
	if w.window != nil {
		w.window.Destroy()
	}
	glfw.Terminate()
}
