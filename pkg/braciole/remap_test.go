package braciole

import "testing"

func grabFixture(t *testing.T, entry *Entry, buttons []Buttons) (*Session, *fakeRenderer) {
	t.Helper()
	root := &Menu{Title: "Input settings", Entries: []*Entry{entry}}
	in := &scriptedInput{buttons: buttons}
	return newTestSession(t, root, in)
}

func TestGrabButtonAccumulatesUnion(t *testing.T) {
	var cell uint32
	e := mappingEntry(0, "Emulated A", "pad_a", &cell, false)
	// Trigger press still held, released, then a press that grows to a
	// two-button union before release.
	s, _ := grabFixture(t, e, []Buttons{ButtonA, 0, ButtonY, ButtonY | ButtonX, 0})

	got := s.GrabButton(nil)
	if got != ButtonY|ButtonX {
		t.Fatalf("GrabButton = %v, want %v", got, ButtonY|ButtonX)
	}
}

func TestSetMappingActionCommitsSingleButton(t *testing.T) {
	var cell uint32
	e := mappingEntry(0, "Emulated A", "pad_a", &cell, false)
	s, _ := grabFixture(t, e, []Buttons{0, ButtonY, 0})

	s.Step(ActionEnter)
	if cell != uint32(ButtonY) {
		t.Fatalf("mapping = %d, want %d", cell, uint32(ButtonY))
	}
}

func TestSetMappingActionKeepsOldValueOnChord(t *testing.T) {
	cell := uint32(ButtonA)
	e := mappingEntry(0, "Emulated A", "pad_a", &cell, false)
	s, _ := grabFixture(t, e, []Buttons{0, ButtonY | ButtonX, 0})

	s.Step(ActionEnter)
	if cell != uint32(ButtonA) {
		t.Fatalf("mapping = %d, want %d (unchanged)", cell, uint32(ButtonA))
	}
}

func TestSetOrClearMappingActionClearsOnChord(t *testing.T) {
	cell := uint32(ButtonA)
	e := mappingEntry(0, "Rapid-fire A", "rapid_a", &cell, true)
	s, _ := grabFixture(t, e, []Buttons{0, ButtonY | ButtonX, 0})

	s.Step(ActionEnter)
	if cell != 0 {
		t.Fatalf("mapping = %d, want 0 (cleared)", cell)
	}
}

func TestGrabButtonsExtendsChord(t *testing.T) {
	var cell uint32
	e := hotkeyEntry(0, "Fast-forward", "hotkey_fast_forward", &cell)
	// R pressed, X added, R released early, everything released.
	s, _ := grabFixture(t, e, []Buttons{0, ButtonR, ButtonR | ButtonX, ButtonX, 0})

	got := s.GrabButtons(nil)
	if got != ButtonR|ButtonX {
		t.Fatalf("GrabButtons = %v, want %v", got, ButtonR|ButtonX)
	}
}

func TestGrabButtonsReplacesDivergentChord(t *testing.T) {
	var cell uint32
	e := hotkeyEntry(0, "Fast-forward", "hotkey_fast_forward", &cell)
	// R+X turns into R+Y mid-gesture; the new chord wins.
	s, _ := grabFixture(t, e, []Buttons{0, ButtonR | ButtonX, ButtonR | ButtonY, 0})

	got := s.GrabButtons(nil)
	if got != ButtonR|ButtonY {
		t.Fatalf("GrabButtons = %v, want %v", got, ButtonR|ButtonY)
	}
}

func TestSetOrClearHotkeyActionCommitsChord(t *testing.T) {
	var cell uint32
	e := hotkeyEntry(0, "Fast-forward", "hotkey_fast_forward", &cell)
	s, _ := grabFixture(t, e, []Buttons{0, ButtonR, ButtonR | ButtonX, 0})

	s.Step(ActionEnter)
	if cell != uint32(ButtonR|ButtonX) {
		t.Fatalf("hotkey = %d, want %d", cell, uint32(ButtonR|ButtonX))
	}
}

func TestSetOrClearHotkeyActionCancelChordClears(t *testing.T) {
	cell := uint32(ButtonR | ButtonX)
	e := hotkeyEntry(0, "Fast-forward", "hotkey_fast_forward", &cell)
	s, _ := grabFixture(t, e, []Buttons{0, CancelChord, 0})

	s.Step(ActionEnter)
	if cell != 0 {
		t.Fatalf("hotkey = %d, want 0 (cleared)", cell)
	}
}

func TestGrabScreenShowsInstructions(t *testing.T) {
	var cell uint32
	e := mappingEntry(0, "Emulated A", "pad_a", &cell, false)
	s, r := grabFixture(t, e, []Buttons{0, ButtonY, 0})

	s.Step(ActionEnter)
	// The last frame with text is drawn while waiting for the press.
	if r.fills == 0 {
		t.Fatal("grab never painted the screen")
	}
}

func TestSaveMapping(t *testing.T) {
	tests := []struct {
		name string
		cell uint32
		want string
	}{
		{"assigned", uint32(ButtonA), "pad_a = A #A\n"},
		{"unassigned", 0, "pad_a = x #None\n"},
		{"invalid chord", uint32(ButtonA | ButtonB), "pad_a = x #None\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mappingEntry(0, "Emulated A", "pad_a", &tt.cell, false)
			if got := SaveMapping(e); got != tt.want {
				t.Fatalf("SaveMapping = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadMapping(t *testing.T) {
	tests := []struct {
		value string
		want  uint32
	}{
		{"A", uint32(ButtonA)},
		{"^", uint32(ButtonUp)},
		{"x", 0},
		{"?", 0},
		{"AB", uint32(ButtonA)}, // only the first code character counts
	}
	for _, tt := range tests {
		cell := uint32(ButtonY)
		e := mappingEntry(0, "Emulated A", "pad_a", &cell, false)
		if err := LoadMapping(e, tt.value); err != nil {
			t.Fatalf("LoadMapping(%q): %v", tt.value, err)
		}
		if cell != tt.want {
			t.Errorf("LoadMapping(%q) set %d, want %d", tt.value, cell, tt.want)
		}
	}
}

func TestSaveLoadHotkeyRoundTrip(t *testing.T) {
	cell := uint32(ButtonR | ButtonX)
	e := hotkeyEntry(0, "Fast-forward", "hotkey_fast_forward", &cell)

	if got, want := SaveHotkey(e), "hotkey_fast_forward = RX #R+X\n"; got != want {
		t.Fatalf("SaveHotkey = %q, want %q", got, want)
	}

	cell = 0
	if err := LoadHotkey(e, "RX"); err != nil {
		t.Fatalf("LoadHotkey: %v", err)
	}
	if cell != uint32(ButtonR|ButtonX) {
		t.Fatalf("hotkey = %d, want %d", cell, uint32(ButtonR|ButtonX))
	}
}
