package braciole

import (
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole/i18n"
)

// grabLines is the fixed height of the instruction block shown while
// waiting for a button press.
const grabLines = 4

// drawGrabScreen paints the background and the centered instruction
// block. Lines too wide for the viewport are logged and skipped.
func (s *Session) drawGrabScreen(lines []string, withText bool) {
	r := s.Renderer()
	r.FillBackground(s.Theme().Background)
	if withText {
		w, h := r.Size()
		th := r.TextHeight(" ")
		for i, line := range lines {
			tw := r.TextWidth(line)
			if tw > w-2 {
				s.Logger().Error("instruction line too wide for the viewport; not drawn",
					"line", line, "width", tw)
				continue
			}
			y := (h-th*grabLines)/2 + th*i
			r.DrawOutlinedText(line, s.Theme().ActiveText, s.Theme().ActiveOutline, (w-tw)/2, y)
		}
	}
	r.Present()
	s.sleep(frameDelay)
}

// GrabButton blocks until the user performs one press-and-release
// gesture and returns the union of all buttons seen while any was held.
// The sequence is: wait for the triggering buttons to be released, wait
// for a new press, then accumulate until everything is released again.
// The screen is redrawn every iteration; there is no timeout.
func (s *Session) GrabButton(lines []string) Buttons {
	for s.input.PressedButtons() != 0 {
		s.drawGrabScreen(lines, false)
	}

	var pressed Buttons
	for pressed == 0 {
		s.drawGrabScreen(lines, true)
		pressed = s.input.PressedButtons()
	}

	total := pressed
	for pressed != 0 {
		total |= pressed
		s.drawGrabScreen(lines, false)
		pressed = s.input.PressedButtons()
	}
	return total
}

// GrabButtons blocks like GrabButton but accumulates a chord instead of
// a union: a growing press extends the result, releasing part of a held
// chord leaves it intact, and an unrelated new chord replaces it (for
// example R+X turning into R+Y mid-gesture).
func (s *Session) GrabButtons(lines []string) Buttons {
	for s.input.PressedButtons() != 0 {
		s.drawGrabScreen(lines, false)
	}

	var pressed Buttons
	for pressed == 0 {
		s.drawGrabScreen(lines, true)
		pressed = s.input.PressedButtons()
	}

	total := pressed
	for pressed != 0 {
		switch {
		case pressed|total == pressed:
			// The old chord is a subset of the new one: fingers added.
			total |= pressed
		case pressed|total == total:
			// The new state is a subset: the user is releasing to finish.
		default:
			// A different chord entirely: the user changed their mind.
			total = pressed
		}
		s.drawGrabScreen(lines, false)
		pressed = s.input.PressedButtons()
	}
	return total
}

func mappingGrabLines(e *Entry, lastLine string) []string {
	current, _ := SingleButtonLabel(Buttons(*e.Value))
	return []string{
		i18n.Localize(&i18n.Message{
			ID:    "remap_setting_mapping",
			Other: "Setting mapping for {{.Name}}",
		}, map[string]interface{}{"Name": e.Name}),
		i18n.Localize(&i18n.Message{
			ID:    "remap_currently",
			Other: "Currently {{.Value}}",
		}, map[string]interface{}{"Value": current}),
		i18n.Localize(&i18n.Message{
			ID:    "remap_press_new_button",
			Other: "Press the new button or",
		}, nil),
		lastLine,
	}
}

// SetMappingAction is an OnEnter hook for single-button remap entries.
// It commits the grabbed chord only when it is exactly one button;
// pressing two at once leaves the mapping alone.
func SetMappingAction(s *Session) {
	e := s.ActiveEntry()
	if e == nil || e.Value == nil {
		return
	}
	lines := mappingGrabLines(e, i18n.Localize(&i18n.Message{
		ID:    "remap_two_to_keep",
		Other: "two at once to leave alone",
	}, nil))

	total := s.GrabButton(lines)
	if total.Count() == 1 {
		*e.Value = uint32(total)
	}
}

// SetOrClearMappingAction behaves like SetMappingAction, but a
// multi-button press clears the mapping instead of keeping it. Used for
// optional mappings such as rapid-fire buttons.
func SetOrClearMappingAction(s *Session) {
	e := s.ActiveEntry()
	if e == nil || e.Value == nil {
		return
	}
	lines := mappingGrabLines(e, i18n.Localize(&i18n.Message{
		ID:    "remap_two_to_clear",
		Other: "two at once to clear",
	}, nil))

	total := s.GrabButton(lines)
	if total.Count() == 1 {
		*e.Value = uint32(total)
	} else {
		*e.Value = 0
	}
}

// SetOrClearHotkeyAction is an OnEnter hook for combination hotkeys. The
// grabbed chord is committed as-is, except that the reserved cancel
// chord clears the hotkey.
func SetOrClearHotkeyAction(s *Session) {
	e := s.ActiveEntry()
	if e == nil || e.Value == nil {
		return
	}
	lines := []string{
		i18n.Localize(&i18n.Message{
			ID:    "remap_setting_hotkey",
			Other: "Setting hotkey for {{.Name}}",
		}, map[string]interface{}{"Name": e.Name}),
		i18n.Localize(&i18n.Message{
			ID:    "remap_currently",
			Other: "Currently {{.Value}}",
		}, map[string]interface{}{"Value": ChordLabel(Buttons(*e.Value))}),
		i18n.Localize(&i18n.Message{
			ID:    "remap_press_new_buttons",
			Other: "Press the new buttons or",
		}, nil),
		i18n.Localize(&i18n.Message{
			ID:    "remap_cancel_to_clear",
			Other: "B to clear",
		}, nil),
	}

	total := s.GrabButtons(lines)
	if total == CancelChord {
		*e.Value = 0
	} else {
		*e.Value = uint32(total)
	}
}

// DisplayMappingValue renders a single-button mapping by name,
// right-aligned like the default value renderer. A mask that somehow
// holds several buttons is shown in error colors.
func DisplayMappingValue(s *Session, drawn, active *Entry) {
	value, valid := SingleButtonLabel(Buttons(*drawn.Value))

	r := s.Renderer()
	w, _ := r.Size()
	tw := r.TextWidth(value)
	if tw > w-2 {
		s.Logger().Warn("entry value too wide for the viewport; not drawn",
			"name", drawn.Name, "value", value, "width", tw)
		return
	}
	fg, outline := rowColors(s, drawn == active, !valid)
	r.DrawOutlinedText(value, fg, outline, w-tw-1, rowY(s, drawn))
}

// DisplayHotkeyValue renders a button chord joined with '+'.
func DisplayHotkeyValue(s *Session, drawn, active *Entry) {
	value := ChordLabel(Buttons(*drawn.Value))

	r := s.Renderer()
	w, _ := r.Size()
	tw := r.TextWidth(value)
	if tw > w-2 {
		s.Logger().Warn("entry value too wide for the viewport; not drawn",
			"name", drawn.Name, "value", value, "width", tw)
		return
	}
	fg, outline := rowColors(s, drawn == active, false)
	r.DrawOutlinedText(value, fg, outline, w-tw-1, rowY(s, drawn))
}

// SaveMapping writes a single-button mapping as its one-character code,
// or "x" when unassigned or invalid.
func SaveMapping(e *Entry) string {
	b := Buttons(*e.Value)
	if b.Count() != 1 {
		return fmt.Sprintf("%s = x #None\n", e.PersistentName)
	}
	label, _ := SingleButtonLabel(b)
	return fmt.Sprintf("%s = %s #%s\n", e.PersistentName, chordCodes(b), label)
}

// LoadMapping decodes a one-character button code; anything unassigned
// or unknown clears the mapping (the fix-up pass restores required ones).
func LoadMapping(e *Entry, value string) error {
	var b Buttons
	if len(value) > 0 && value[0] != 'x' {
		for i := 0; i < ButtonCount; i++ {
			if value[0] == buttonCodes[i] {
				b = 1 << i
				break
			}
		}
	}
	*e.Value = uint32(b)
	return nil
}

// SaveHotkey writes a chord as one code character per button.
func SaveHotkey(e *Entry) string {
	b := Buttons(*e.Value)
	if b == 0 {
		return fmt.Sprintf("%s = x #None\n", e.PersistentName)
	}
	return fmt.Sprintf("%s = %s #%s\n", e.PersistentName, chordCodes(b), ChordLabel(b))
}

// LoadHotkey decodes a multi-character chord token.
func LoadHotkey(e *Entry, value string) error {
	*e.Value = uint32(parseChordCodes(value))
	return nil
}
