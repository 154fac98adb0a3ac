// Package window handles the SDL2 window and the renderer frames are drawn with.
package window

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/voxelspace/internal/logger"
	"github.com/Faultbox/voxelspace/internal/terrain"
)

func init() {
	// SDL video calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps an SDL2 window and its 2D renderer.
type Window struct {
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
	canvas    *Canvas
	log       *zap.Logger
}

// New creates a window with an accelerated renderer.
func New(cfg Config) (*Window, error) {
	w := &Window{
		log: logger.Named("window"),
	}

	w.log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rendererFlags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	// Frames are always rendered at the configured size and scaled to the window
	if err := w.renderer.SetLogicalSize(int32(cfg.Width), int32(cfg.Height)); err != nil {
		w.log.Warn("failed to set logical size", zap.Error(err))
	}

	w.canvas = &Canvas{renderer: w.renderer}

	w.log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the renderer and window and shuts SDL2 down.
func (w *Window) Close() {
	w.log.Info("closing window")

	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// Canvas returns the drawing surface backed by the window's renderer.
func (w *Window) Canvas() *Canvas {
	return w.canvas
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// ReadPixels reads back the current render target as RGBA rows, pitch
// bytes apart. Call it after drawing a frame and before presenting it.
func (w *Window) ReadPixels() (pixels []byte, width, height, pitch int, err error) {
	ow, oh, err := w.renderer.GetOutputSize()
	if err != nil {
		return nil, 0, 0, 0, fmt.Errorf("SDL_GetRendererOutputSize failed: %w", err)
	}

	width, height = int(ow), int(oh)
	pitch = width * 4
	pixels = make([]byte, pitch*height)
	// ABGR8888 is R, G, B, A in memory on little-endian hosts
	if err := w.renderer.ReadPixels(nil, sdl.PIXELFORMAT_ABGR8888, unsafe.Pointer(&pixels[0]), pitch); err != nil {
		return nil, 0, 0, 0, fmt.Errorf("SDL_RenderReadPixels failed: %w", err)
	}
	return pixels, width, height, pitch, nil
}

// Canvas draws vertical lines with an SDL renderer. SDL reports draw
// failures per call; Canvas keeps the first one and returns it from Present.
type Canvas struct {
	renderer *sdl.Renderer
	err      error
}

// DrawVerticalLine fills column x from yTop to yBottom inclusive.
func (c *Canvas) DrawVerticalLine(x, yTop, yBottom int, col terrain.RGB) {
	if c.err != nil {
		return
	}
	if err := c.renderer.SetDrawColor(col.R, col.G, col.B, 255); err != nil {
		c.err = fmt.Errorf("SDL_SetRenderDrawColor failed: %w", err)
		return
	}
	if err := c.renderer.DrawLine(int32(x), int32(yTop), int32(x), int32(yBottom)); err != nil {
		c.err = fmt.Errorf("SDL_RenderDrawLine failed: %w", err)
	}
}

// Clear fills the frame with col.
func (c *Canvas) Clear(col terrain.RGB) {
	if c.err != nil {
		return
	}
	if err := c.renderer.SetDrawColor(col.R, col.G, col.B, 255); err != nil {
		c.err = fmt.Errorf("SDL_SetRenderDrawColor failed: %w", err)
		return
	}
	if err := c.renderer.Clear(); err != nil {
		c.err = fmt.Errorf("SDL_RenderClear failed: %w", err)
	}
}

// Present shows the frame and reports the first draw error since the
// previous Present.
func (c *Canvas) Present() error {
	c.renderer.Present()
	err := c.err
	c.err = nil
	return err
}
