package braciole

// Action is one discrete logical input reduced from raw button state.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionEnter
	ActionLeave
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionEnter:
		return "enter"
	case ActionLeave:
		return "leave"
	}
	return "unknown"
}

// Color is a device-independent RGB triple. Platform renderers convert it
// to whatever their surface format needs.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color from a 0xRRGGBB value.
func RGB(hex uint32) Color {
	return Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
	}
}

// Renderer is the drawing surface the menu renders onto. Implementations
// live outside the core (see platform/sdlui); tests use a recording fake.
type Renderer interface {
	// TextWidth and TextHeight measure a string in pixels.
	TextWidth(text string) int
	TextHeight(text string) int
	// DrawOutlinedText draws text with a one-pixel outline for legibility
	// on arbitrary backgrounds.
	DrawOutlinedText(text string, fg, outline Color, x, y int)
	FillBackground(c Color)
	// Present flips the finished frame to the screen.
	Present()
	// Size returns the viewport dimensions in pixels.
	Size() (w, h int)
}

// Input yields discrete logical actions and, for remap capture, the raw
// pressed-button mask.
type Input interface {
	PollAction() Action
	PressedButtons() Buttons
}

// Machine is the emulated machine the menu is embedded in.
type Machine interface {
	Reset()
	RequestExit()
}

// Audio is the external audio subsystem; it is paused for the duration of
// a menu session and resumed on exit.
type Audio interface {
	Pause()
	Resume()
}

// Theme holds the color pairings used by the default display functions.
// Error rows use a pairing distinct from both normal and active rows.
type Theme struct {
	Background    Color
	Text          Color
	TextOutline   Color
	ActiveText    Color
	ActiveOutline Color
	TitleText     Color
	TitleOutline  Color
	ErrorText     Color
	ErrorOutline  Color
}

// DefaultTheme is the stock dark-green palette.
func DefaultTheme() Theme {
	return Theme{
		Background:    RGB(0x003000),
		Text:          RGB(0x40A040),
		TextOutline:   RGB(0x000000),
		ActiveText:    RGB(0xFFFFFF),
		ActiveOutline: RGB(0x000000),
		TitleText:     RGB(0x80FF80),
		TitleOutline:  RGB(0x006000),
		ErrorText:     RGB(0xFF4040),
		ErrorOutline:  RGB(0x500000),
	}
}
