package braciole

import "testing"

func TestSingleButtonLabel(t *testing.T) {
	tests := []struct {
		b     Buttons
		label string
		valid bool
	}{
		{0, "None", true},
		{ButtonA, "A", true},
		{ButtonUp, "D-pad Up", true},
		{ButtonAnalogRight, "Analog Right", true},
		{ButtonA | ButtonB, "Invalid", false},
	}
	for _, tt := range tests {
		label, valid := SingleButtonLabel(tt.b)
		if label != tt.label || valid != tt.valid {
			t.Errorf("SingleButtonLabel(%v) = (%q, %v), want (%q, %v)",
				tt.b, label, valid, tt.label, tt.valid)
		}
	}
}

func TestChordLabel(t *testing.T) {
	tests := []struct {
		b    Buttons
		want string
	}{
		{0, "None"},
		{ButtonR, "R"},
		{ButtonR | ButtonX, "R+X"},
		{ButtonL | ButtonR | ButtonStart, "L+R+Start"},
	}
	for _, tt := range tests {
		if got := ChordLabel(tt.b); got != tt.want {
			t.Errorf("ChordLabel(%v) = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestChordCodesRoundTrip(t *testing.T) {
	chords := []Buttons{
		ButtonA,
		ButtonUp | ButtonDown,
		ButtonL | ButtonR | ButtonSelect,
		ButtonAnalogUp | ButtonAnalogDown | ButtonAnalogLeft | ButtonAnalogRight,
	}
	for _, b := range chords {
		token := chordCodes(b)
		if got := parseChordCodes(token); got != b {
			t.Errorf("parseChordCodes(chordCodes(%v)) = %v via %q", b, got, token)
		}
	}
}

func TestParseChordCodes(t *testing.T) {
	tests := []struct {
		token string
		want  Buttons
	}{
		{"", 0},
		{"x", 0},
		{"xA", 0}, // 'x' marks the whole token as empty
		{"A", ButtonA},
		{"RX", ButtonR | ButtonX},
		{"R?X", ButtonR | ButtonX}, // unknown codes are skipped
	}
	for _, tt := range tests {
		if got := parseChordCodes(tt.token); got != tt.want {
			t.Errorf("parseChordCodes(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestButtonsCount(t *testing.T) {
	if got := Buttons(0).Count(); got != 0 {
		t.Errorf("Count(0) = %d, want 0", got)
	}
	if got := ButtonA.Count(); got != 1 {
		t.Errorf("Count(A) = %d, want 1", got)
	}
	if got := (ButtonL | ButtonR | ButtonStart).Count(); got != 3 {
		t.Errorf("Count(L|R|Start) = %d, want 3", got)
	}
}
