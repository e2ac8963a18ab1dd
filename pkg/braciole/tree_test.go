package braciole

import "testing"

func TestFixUpKeepsCompleteMapping(t *testing.T) {
	st := NewDefaultSettings()
	st.KeypadRemapping[RemapA] = uint32(ButtonY)
	st.KeypadRemapping[RemapRapidA] = 0 // optional, may stay unassigned

	st.FixUp()

	if st.KeypadRemapping[RemapA] != uint32(ButtonY) {
		t.Fatalf("RemapA = %d, want %d (custom mapping kept)",
			st.KeypadRemapping[RemapA], uint32(ButtonY))
	}
	if st.KeypadRemapping[RemapRapidA] != 0 {
		t.Fatalf("RemapRapidA = %d, want 0", st.KeypadRemapping[RemapRapidA])
	}
}

func TestFixUpResetsAllOnMissingRequiredMapping(t *testing.T) {
	st := NewDefaultSettings()
	st.KeypadRemapping[RemapA] = uint32(ButtonY) // would survive alone
	st.KeypadRemapping[RemapStart] = 0           // required slot lost

	st.FixUp()

	if st.KeypadRemapping != DefaultKeypadRemapping() {
		t.Fatalf("mapping = %v, want the full default set", st.KeypadRemapping)
	}
}

func TestNewMainMenuWiring(t *testing.T) {
	st := NewDefaultSettings()
	root := NewMainMenu(st, &Stats{}, &ROMInfo{})

	keys := []string{
		"boot_from", "fps_counter", "image_size", "frameskip", "fast_forward_target",
		"pad_a", "pad_b", "pad_start", "pad_select", "pad_l", "pad_r",
		"rapid_a", "rapid_b", "analog_sensitivity",
		"hotkey_fast_forward",
	}
	for _, key := range keys {
		if FindByPersistentName(root, key) == nil {
			t.Errorf("option %q not reachable from the main menu", key)
		}
	}

	for _, e := range root.Entries {
		if e.Kind == KindSubmenu && e.Submenu.Parent != root {
			t.Errorf("submenu %q not linked back to its parent", e.Name)
		}
	}
}

func TestMainMenuOptionCellsPointIntoSettings(t *testing.T) {
	st := NewDefaultSettings()
	root := NewMainMenu(st, &Stats{}, &ROMInfo{})

	e := FindByPersistentName(root, "fps_counter")
	if e == nil {
		t.Fatal("fps_counter not found")
	}
	*e.Value = 1
	if st.ShowFPS != 1 {
		t.Fatalf("ShowFPS = %d after writing through the entry, want 1", st.ShowFPS)
	}
}

func TestProfilePath(t *testing.T) {
	got := ProfilePath("/cfg", "player1")
	if got != "/cfg/player1.cfg" {
		t.Fatalf("ProfilePath = %q, want /cfg/player1.cfg", got)
	}
}
