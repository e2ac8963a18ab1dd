package sdlui

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
	"github.com/BrandonKowalski/braciole/internal"
)

// keyboardButtons maps development-keyboard keys onto the handheld's
// physical buttons so the menu is fully drivable without a pad attached.
var keyboardButtons = map[sdl.Keycode]braciole.Buttons{
	sdl.K_UP:     braciole.ButtonUp,
	sdl.K_DOWN:   braciole.ButtonDown,
	sdl.K_LEFT:   braciole.ButtonLeft,
	sdl.K_RIGHT:  braciole.ButtonRight,
	sdl.K_RETURN: braciole.ButtonStart,
	sdl.K_RSHIFT: braciole.ButtonSelect,
	sdl.K_x:      braciole.ButtonA,
	sdl.K_z:      braciole.ButtonB,
	sdl.K_a:      braciole.ButtonY,
	sdl.K_s:      braciole.ButtonX,
	sdl.K_q:      braciole.ButtonL,
	sdl.K_w:      braciole.ButtonR,
}

var controllerButtons = map[uint8]braciole.Buttons{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       braciole.ButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     braciole.ButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     braciole.ButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    braciole.ButtonRight,
	sdl.CONTROLLER_BUTTON_START:         braciole.ButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          braciole.ButtonSelect,
	sdl.CONTROLLER_BUTTON_A:             braciole.ButtonA,
	sdl.CONTROLLER_BUTTON_B:             braciole.ButtonB,
	sdl.CONTROLLER_BUTTON_X:             braciole.ButtonX,
	sdl.CONTROLLER_BUTTON_Y:             braciole.ButtonY,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  braciole.ButtonL,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: braciole.ButtonR,
}

// actionFor reduces a newly pressed button to the logical action it
// triggers, if any. Only single-button presses produce actions.
func actionFor(b braciole.Buttons) braciole.Action {
	switch b {
	case braciole.ButtonUp, braciole.ButtonAnalogUp:
		return braciole.ActionUp
	case braciole.ButtonDown, braciole.ButtonAnalogDown:
		return braciole.ActionDown
	case braciole.ButtonLeft, braciole.ButtonAnalogLeft:
		return braciole.ActionLeft
	case braciole.ButtonRight, braciole.ButtonAnalogRight:
		return braciole.ActionRight
	case braciole.ButtonA:
		return braciole.ActionEnter
	case braciole.ButtonB:
		return braciole.ActionLeave
	}
	return braciole.ActionNone
}

// Input drains the SDL event queue into a held-button mask and a queue of
// logical actions. It must only be used from the goroutine that owns the
// SDL event loop, which is the session loop.
type Input struct {
	held        braciole.Buttons
	pending     []braciole.Action
	controllers map[sdl.JoystickID]*sdl.GameController
}

func newInput() *Input {
	return &Input{controllers: make(map[sdl.JoystickID]*sdl.GameController)}
}

func (in *Input) press(b braciole.Buttons) {
	if in.held&b == 0 {
		if a := actionFor(b); a != braciole.ActionNone {
			in.pending = append(in.pending, a)
		}
	}
	in.held |= b
}

func (in *Input) release(b braciole.Buttons) {
	in.held &^= b
}

func (in *Input) pump() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			b, ok := keyboardButtons[e.Keysym.Sym]
			if !ok {
				if e.Keysym.Sym == sdl.K_ESCAPE && e.Type == sdl.KEYDOWN {
					in.pending = append(in.pending, braciole.ActionLeave)
				}
				continue
			}
			if e.Type == sdl.KEYDOWN {
				in.press(b)
			} else {
				in.release(b)
			}

		case *sdl.ControllerButtonEvent:
			b, ok := controllerButtons[e.Button]
			if !ok {
				continue
			}
			if e.Type == sdl.CONTROLLERBUTTONDOWN {
				in.press(b)
			} else {
				in.release(b)
			}

		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				controller := sdl.GameControllerOpen(int(e.Which))
				if controller == nil {
					internal.GetLogger().Error("failed to open game controller",
						"index", e.Which, "error", sdl.GetError())
					continue
				}
				id := controller.Joystick().InstanceID()
				in.controllers[id] = controller
				internal.GetLogger().Debug("game controller attached",
					"name", controller.Name(), "id", id)
			case sdl.CONTROLLERDEVICEREMOVED:
				id := sdl.JoystickID(e.Which)
				if controller, ok := in.controllers[id]; ok {
					controller.Close()
					delete(in.controllers, id)
				}
			}

		case *sdl.QuitEvent:
			in.pending = append(in.pending, braciole.ActionLeave)
		}
	}
}

// PollAction drains the event queue and returns the next queued logical
// action, or ActionNone when the frame produced no input.
func (in *Input) PollAction() braciole.Action {
	in.pump()
	if len(in.pending) == 0 {
		return braciole.ActionNone
	}
	a := in.pending[0]
	in.pending = in.pending[1:]
	return a
}

// PressedButtons drains the event queue and returns the raw held mask.
func (in *Input) PressedButtons() braciole.Buttons {
	in.pump()
	return in.held
}

func (in *Input) close() {
	for id, controller := range in.controllers {
		controller.Close()
		delete(in.controllers, id)
	}
}
