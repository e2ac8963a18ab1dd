package braciole

import (
	"math/bits"
	"strings"
)

// Buttons is a bitmask of physical device buttons. A value with more than
// one bit set describes a chord.
type Buttons uint32

const (
	ButtonL Buttons = 1 << iota
	ButtonR
	ButtonDown
	ButtonUp
	ButtonLeft
	ButtonRight
	ButtonStart
	ButtonSelect
	ButtonB
	ButtonA
	ButtonY
	ButtonX
	ButtonAnalogDown
	ButtonAnalogUp
	ButtonAnalogLeft
	ButtonAnalogRight

	ButtonCount = 16
)

// CancelChord is the reserved chord that clears a hotkey assignment
// instead of committing it.
const CancelChord = ButtonB

var buttonLabels = [ButtonCount]string{
	"L",
	"R",
	"D-pad Down",
	"D-pad Up",
	"D-pad Left",
	"D-pad Right",
	"Start",
	"Select",
	"B",
	"A",
	"Y",
	"X",
	"Analog Down",
	"Analog Up",
	"Analog Left",
	"Analog Right",
}

// buttonCodes are the single-character persistent tokens written to the
// configuration file for button mappings. 'x' is reserved for "none".
var buttonCodes = [ButtonCount]byte{
	'L',
	'R',
	'v',
	'^',
	'<',
	'>',
	'S',
	's',
	'B',
	'A',
	'Y',
	'X',
	'd',
	'u',
	'l',
	'r',
}

// SingleButtonLabel describes a Buttons value that is expected to hold at
// most one button. The second return value is false when the mask holds
// more than one bit, in which case the label is "Invalid".
func SingleButtonLabel(b Buttons) (string, bool) {
	if b == 0 {
		return "None", true
	}
	for i := 0; i < ButtonCount; i++ {
		if b == 1<<i {
			return buttonLabels[i], true
		}
	}
	return "Invalid", false
}

// ChordLabel describes a button chord, joining the individual button
// labels with '+'. The empty chord is "None".
func ChordLabel(b Buttons) string {
	if b == 0 {
		return "None"
	}
	var sb strings.Builder
	for i := 0; i < ButtonCount; i++ {
		if b&(1<<i) != 0 {
			if sb.Len() > 0 {
				sb.WriteByte('+')
			}
			sb.WriteString(buttonLabels[i])
		}
	}
	return sb.String()
}

// chordCodes returns the persistent token for a chord: one code character
// per pressed button, or "x" for the empty chord.
func chordCodes(b Buttons) string {
	if b == 0 {
		return "x"
	}
	var sb strings.Builder
	for i := 0; i < ButtonCount; i++ {
		if b&(1<<i) != 0 {
			sb.WriteByte(buttonCodes[i])
		}
	}
	return sb.String()
}

// parseChordCodes decodes a persistent token into a chord. Unknown code
// characters are ignored; "x" (and any token starting with it) decodes to
// the empty chord.
func parseChordCodes(token string) Buttons {
	if len(token) == 0 || token[0] == 'x' {
		return 0
	}
	var b Buttons
	for j := 0; j < len(token); j++ {
		for i := 0; i < ButtonCount; i++ {
			if token[j] == buttonCodes[i] {
				b |= 1 << i
				break
			}
		}
	}
	return b
}

// Count reports how many buttons are held in the mask.
func (b Buttons) Count() int {
	return bits.OnesCount32(uint32(b))
}
