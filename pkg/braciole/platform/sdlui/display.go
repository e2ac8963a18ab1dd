package sdlui

import (
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
	"github.com/BrandonKowalski/braciole/internal"
)

// Display renders menu text through SDL's accelerated renderer.
type Display struct {
	renderer *sdl.Renderer
	font     *ttf.Font
	width    int32
	height   int32
}

func sdlColor(c braciole.Color) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// TextWidth measures the rendered width of text in pixels.
func (d *Display) TextWidth(text string) int {
	w, _, err := d.font.SizeUTF8(text)
	if err != nil {
		internal.GetLogger().Error("failed to measure text", "text", text, "error", err)
		return 0
	}
	return w
}

// TextHeight measures the rendered height of text in pixels.
func (d *Display) TextHeight(text string) int {
	_, h, err := d.font.SizeUTF8(text)
	if err != nil {
		internal.GetLogger().Error("failed to measure text", "text", text, "error", err)
		return 0
	}
	return h
}

func (d *Display) blit(surface *sdl.Surface, x, y int32) {
	texture, err := d.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		internal.GetLogger().Error("failed to create text texture", "error", err)
		return
	}
	defer texture.Destroy()

	d.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H})
}

// DrawOutlinedText draws text with a one-pixel outline. The outline is a
// copy of the glyph run shifted to the eight neighboring offsets, which
// matches how low-resolution handheld menus keep text readable over any
// background.
func (d *Display) DrawOutlinedText(text string, fg, outline braciole.Color, x, y int) {
	if text == "" {
		return
	}

	outlineSurface, err := d.font.RenderUTF8Blended(text, sdlColor(outline))
	if err != nil {
		internal.GetLogger().Error("failed to render text", "text", text, "error", err)
		return
	}
	defer outlineSurface.Free()

	for dy := int32(-1); dy <= 1; dy++ {
		for dx := int32(-1); dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d.blit(outlineSurface, int32(x)+dx, int32(y)+dy)
		}
	}

	fgSurface, err := d.font.RenderUTF8Blended(text, sdlColor(fg))
	if err != nil {
		internal.GetLogger().Error("failed to render text", "text", text, "error", err)
		return
	}
	defer fgSurface.Free()

	d.blit(fgSurface, int32(x), int32(y))
}

// FillBackground clears the frame to a solid color.
func (d *Display) FillBackground(c braciole.Color) {
	d.renderer.SetDrawColor(c.R, c.G, c.B, 255)
	d.renderer.Clear()
}

// Present flips the finished frame to the screen.
func (d *Display) Present() {
	d.renderer.Present()
}

// Size returns the logical viewport dimensions.
func (d *Display) Size() (int, int) {
	return int(d.width), int(d.height)
}
