// Package sdlui implements the menu engine's render, input and audio
// adapters on top of SDL2. It is the platform glue used on the actual
// handheld; tests and other frontends supply their own adapters.
package sdlui

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/braciole/internal"
)

// Options configures the SDL window. Width/Height of 0 use the current
// display mode, which is what the handheld targets want.
type Options struct {
	WindowTitle string
	Width       int32
	Height      int32
	FontPath    string
	FontSize    int
}

// UI owns the SDL window and the adapter implementations.
type UI struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font

	display *Display
	input   *Input
	audio   *AudioGate
}

// Init brings up SDL, the window and the font, and returns the adapter
// bundle. Must be called before any other sdlui function.
func Init(opts Options) (*UI, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return nil, fmt.Errorf("sdl init: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("ttf init: %w", err)
	}

	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		mode, err := sdl.GetCurrentDisplayMode(0)
		if err != nil {
			internal.GetLogger().Error("failed to get display mode", "error", err)
			width, height = 320, 240
		} else {
			width, height = mode.W, mode.H
		}
	}

	window, err := sdl.CreateWindow(opts.WindowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height, sdl.WINDOW_SHOWN)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	renderer.SetLogicalSize(width, height)

	fontSize := opts.FontSize
	if fontSize == 0 {
		fontSize = 16
	}
	font, err := ttf.OpenFont(opts.FontPath, fontSize)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		ttf.Quit()
		sdl.Quit()
		return nil, fmt.Errorf("open font %s: %w", opts.FontPath, err)
	}

	ui := &UI{
		window:   window,
		renderer: renderer,
		font:     font,
	}
	ui.display = &Display{renderer: renderer, font: font, width: width, height: height}
	ui.input = newInput()
	ui.audio = &AudioGate{}

	internal.GetLogger().Debug("sdl window initialized", "width", width, "height", height)
	return ui, nil
}

// Display returns the render adapter.
func (u *UI) Display() *Display { return u.display }

// Input returns the input adapter.
func (u *UI) Input() *Input { return u.input }

// Audio returns the audio pause gate.
func (u *UI) Audio() *AudioGate { return u.audio }

// Close tears SDL down. Must be called after the last session.
func (u *UI) Close() {
	u.input.close()
	u.font.Close()
	u.renderer.Destroy()
	u.window.Destroy()
	ttf.Quit()
	sdl.Quit()
}
