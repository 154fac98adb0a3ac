// Package input handles SDL2 input events and the movement key state.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/voxelspace/internal/engine/camera"
)

// Input handles all input processing.
type Input struct {
	screenshot bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{}
}

// Update drains the SDL event queue. Returns true if the viewer should
// quit, either because the window was closed or Escape was pressed.
func (i *Input) Update() bool {
	i.screenshot = false
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			quit = true

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				quit = true
			case sdl.SCANCODE_F12:
				if e.Repeat == 0 {
					i.screenshot = true
				}
			}
		}
	}

	return quit
}

// ScreenshotRequested reports whether F12 was pressed this frame.
func (i *Input) ScreenshotRequested() bool {
	return i.screenshot
}

// Controls snapshots the movement keys. Keys are read from the current
// keyboard state, so holding a key moves the camera every frame.
func (i *Input) Controls() camera.Controls {
	state := sdl.GetKeyboardState()
	down := func(sc sdl.Scancode) bool {
		return int(sc) < len(state) && state[sc] != 0
	}
	return camera.Controls{
		Forward:   down(sdl.SCANCODE_W),
		Back:      down(sdl.SCANCODE_S),
		Left:      down(sdl.SCANCODE_A),
		Right:     down(sdl.SCANCODE_D),
		TurnLeft:  down(sdl.SCANCODE_Q),
		TurnRight: down(sdl.SCANCODE_E),
	}
}
